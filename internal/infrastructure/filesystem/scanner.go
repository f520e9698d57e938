// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"DatasetScope/internal/domain/model"
	"DatasetScope/internal/infrastructure/logging"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystemScanner はファイルシステムのスキャン機能を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	List(ctx context.Context, dir, pattern string) ([]string, error)
}

// Scanner はディレクトリを検証し、その直下を列挙するための構造体です
type Scanner struct {
	logger logging.Logger
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します。
// 存在しない場合、またはディレクトリでない場合は *model.DirectoryNotFoundError を返します。
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Log("DEBUG", fmt.Sprintf("ディレクトリが存在しません: %s", path), err)
			return &model.DirectoryNotFoundError{Path: path}
		}
		return fmt.Errorf("ディレクトリの確認に失敗しました: %w", err)
	}

	if !fileInfo.IsDir() {
		s.logger.Log("DEBUG", fmt.Sprintf("ディレクトリではありません: %s", path), nil)
		return &model.DirectoryNotFoundError{Path: path}
	}

	return nil
}

// List は dir 直下のエントリのうち名前が pattern に一致するものを、
// パスの辞書順で返します。サブディレクトリの中は走査しません。
func (s *Scanner) List(ctx context.Context, dir, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("不正なパターンです %q: %w", pattern, err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリの読み込みに失敗しました: %w", err)
	}

	paths := []string{}
	for _, entry := range dirEntries {
		matched, _ := filepath.Match(pattern, entry.Name())
		if !matched {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s.logger.Log("DEBUG", fmt.Sprintf("一致: %s", path), nil)
		paths = append(paths, path)
	}
	slices.Sort(paths)

	s.logger.Log("INFO", fmt.Sprintf("%s から %d 件のファイルを列挙しました", dir, len(paths)), nil)
	return paths, nil
}
