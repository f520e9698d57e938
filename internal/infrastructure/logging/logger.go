// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEntry は1行分のJSONログを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（DEBUG, INFO, WARN, ERROR）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
	// RunID は同一プロセス内のログを関連付けるIDです
	RunID string `json:"run_id"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はzapを用いてJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	zap   *zap.Logger
	runID string
}

type options struct {
	level zapcore.Level
	runID string
}

// Option は JSONLogger の設定を変更します
type Option func(*options)

// WithLevel は出力する最小ログレベルを指定します
func WithLevel(level zapcore.Level) Option {
	return func(o *options) { o.level = level }
}

// WithRunID は生成済みのIDをログに付与します
func WithRunID(runID string) Option {
	return func(o *options) { o.runID = runID }
}

// ParseLevel は "debug" や "WARN" などの文字列をログレベルに変換します
func ParseLevel(level string) (zapcore.Level, error) {
	return zapcore.ParseLevel(level)
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer, opts ...Option) *JSONLogger {
	if writer == nil {
		writer = os.Stdout
	}

	o := options{level: zapcore.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), o.level)

	return &JSONLogger{
		zap:   zap.New(core).With(zap.String("run_id", o.runID)),
		runID: o.runID,
	}
}

// RunID はこのロガーが付与しているIDを返します
func (l *JSONLogger) RunID() string {
	return l.runID
}

// Log はメッセージをJSONフォーマットでログ出力します。
// 不明なレベルはINFOとして扱い、ERRORより上のレベルはERRORに丸めます。
func (l *JSONLogger) Log(level, message string, err error) {
	lvl, parseErr := zapcore.ParseLevel(level)
	if parseErr != nil {
		lvl = zapcore.InfoLevel
	}
	if lvl > zapcore.ErrorLevel {
		lvl = zapcore.ErrorLevel
	}

	if ce := l.zap.Check(lvl, message); ce != nil {
		ce.Write(zap.Error(err))
	}
}

// Sync はバッファされたログを書き出します
func (l *JSONLogger) Sync() error {
	return l.zap.Sync()
}
