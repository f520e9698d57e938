// Package config はアプリケーション設定の読み込みを提供します
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultRoot はデータセットルートの既定値です
const DefaultRoot = "../kaggle/home-credit-credit-risk-model-stability"

// 環境変数名
const (
	EnvRoot     = "DATASET_ROOT"
	EnvFormat   = "DATASETSCOPE_FORMAT"
	EnvLogLevel = "DATASETSCOPE_LOG_LEVEL"
)

// Config はアプリケーション設定です
type Config struct {
	// Root はデータセットのルートディレクトリです
	Root string
	// Format は一覧の出力形式（text, json, yaml）です
	Format string
	// LogLevel は標準エラーに出すログの最小レベルです
	LogLevel string
}

// Load はカレントディレクトリの .env と環境変数から設定を読み込みます
func Load() (*Config, error) {
	return LoadWithEnvFiles()
}

// LoadWithEnvFiles は指定した .env ファイルを読み込んだ後、環境変数から設定を組み立てます。
// ファイルを指定しない場合はカレントディレクトリの .env を読みます。
// 既に設定されている環境変数は上書きしません。
func LoadWithEnvFiles(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env の読み込みに失敗しました: %w", err)
	}

	return &Config{
		Root:     firstNonEmpty(strings.TrimSpace(os.Getenv(EnvRoot)), DefaultRoot),
		Format:   firstNonEmpty(strings.TrimSpace(os.Getenv(EnvFormat)), "text"),
		LogLevel: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogLevel)), "warn"),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
