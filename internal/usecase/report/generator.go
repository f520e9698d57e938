// Package report はレポート生成機能を提供します
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"DatasetScope/internal/domain/model"
)

// Format は一覧の出力形式です
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DirLabel はテキスト形式で対象ディレクトリの行に付けるラベルです
const DirLabel = "TEST_DIR:"

// ParseFormat は文字列を Format に変換します
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("未対応の出力形式です: %q (text, json, yaml のいずれかを指定してください)", s)
	}
}

// Generator はレポート生成機能を提供します
type Generator struct {
	format Format
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator(format Format) *Generator {
	if format == "" {
		format = FormatText
	}
	return &Generator{format: format}
}

// Format は生成する形式を返します
func (g *Generator) Format() Format {
	return g.format
}

// WriteHeader は列挙に先立って対象ディレクトリを出力します。
// テキスト形式以外では何も出力しません。
func (g *Generator) WriteHeader(writer io.Writer, dir string) error {
	if g.format != FormatText {
		return nil
	}
	_, err := fmt.Fprintln(writer, DirLabel, dir)
	return err
}

// WriteFiles は一覧を出力します。テキスト形式では1行に1パスを書き、
// JSON/YAML形式ではディレクトリとファイルをまとめて1つの文書にします。
func (g *Generator) WriteFiles(writer io.Writer, listing model.Listing) error {
	files := listing.Files
	if files == nil {
		files = []string{}
	}

	switch g.format {
	case FormatJSON:
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(model.Listing{Dir: listing.Dir, Files: files}); err != nil {
			return fmt.Errorf("JSONの出力に失敗しました: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(writer)
		enc.SetIndent(2)
		if err := enc.Encode(model.Listing{Dir: listing.Dir, Files: files}); err != nil {
			return fmt.Errorf("YAMLの出力に失敗しました: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("YAMLの出力に失敗しました: %w", err)
		}
	default:
		for _, path := range files {
			if _, err := fmt.Fprintln(writer, path); err != nil {
				return err
			}
		}
	}
	return nil
}
