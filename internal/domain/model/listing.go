// package model はドメインモデルを定義します
package model

import "path/filepath"

const (
	// CSVDirName はデータセットルート直下のCSV格納ディレクトリ名です
	CSVDirName = "csv_files"
	// TrainDirName は学習用データのディレクトリ名です
	TrainDirName = "train"
	// TestDirName はテスト用データのディレクトリ名です
	TestDirName = "test"
	// CSVPattern は列挙対象のファイル名パターンです
	CSVPattern = "*.csv"
)

// Layout はデータセットのディレクトリ構成を表します
type Layout struct {
	// Root はデータセットのルートディレクトリを表します
	Root string
	// TrainDir は Root/csv_files/train を表します（参照のみ）
	TrainDir string
	// TestDir は Root/csv_files/test を表します
	TestDir string
}

// NewLayout はルートディレクトリから Layout を組み立てます
func NewLayout(root string) Layout {
	return Layout{
		Root:     root,
		TrainDir: filepath.Join(root, CSVDirName, TrainDirName),
		TestDir:  filepath.Join(root, CSVDirName, TestDirName),
	}
}

// Listing は対象ディレクトリとその直下で見つかったファイルの一覧です
type Listing struct {
	// Dir は列挙対象のディレクトリを表します
	Dir string `json:"dir" yaml:"dir"`
	// Files はパスの辞書順に並んだファイルパスです
	Files []string `json:"files" yaml:"files"`
}
