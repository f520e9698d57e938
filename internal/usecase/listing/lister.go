// Package listing はデータセットのテスト用CSVファイルを列挙するユースケースを提供します
package listing

import (
	"context"
	"fmt"

	"DatasetScope/internal/domain/model"
	"DatasetScope/internal/infrastructure/filesystem"
	"DatasetScope/internal/infrastructure/logging"
)

// Lister はルートディレクトリから対象ディレクトリを解決し、CSVファイルを列挙します
type Lister struct {
	scanner filesystem.FileSystemScanner
	logger  logging.Logger
}

// NewLister は新しい Lister インスタンスを作成します
func NewLister(scanner filesystem.FileSystemScanner, logger logging.Logger) *Lister {
	return &Lister{scanner: scanner, logger: logger}
}

// Resolve はルートディレクトリからデータセットの構成を求めます
func (l *Lister) Resolve(root string) model.Layout {
	layout := model.NewLayout(root)
	l.logger.Log("DEBUG", fmt.Sprintf("対象ディレクトリを解決しました: %s", layout.TestDir), nil)
	return layout
}

// List は layout.TestDir の存在を確認し、直下のCSVファイルを辞書順で返します。
// ディレクトリが存在しない場合は *model.DirectoryNotFoundError を返します。
func (l *Lister) List(ctx context.Context, layout model.Layout) (model.Listing, error) {
	if err := l.scanner.ValidateDirectoryPath(layout.TestDir); err != nil {
		l.logger.Log("ERROR", "対象ディレクトリの検証に失敗", err)
		return model.Listing{}, err
	}

	files, err := l.scanner.List(ctx, layout.TestDir, model.CSVPattern)
	if err != nil {
		l.logger.Log("ERROR", "CSVファイルの列挙に失敗", err)
		return model.Listing{}, fmt.Errorf("CSVファイルの列挙に失敗しました: %w", err)
	}

	return model.Listing{Dir: layout.TestDir, Files: files}, nil
}

// Run は Resolve と List を続けて実行します
func (l *Lister) Run(ctx context.Context, root string) (model.Listing, error) {
	return l.List(ctx, l.Resolve(root))
}
