// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"log"

	"DatasetScope/internal/config"
	"DatasetScope/internal/interface/cli"
)

// ビルド時に -ldflags で上書きされます
var version = "0.0.0-dev"

func main() {
	// 設定の読み込み（.env → 環境変数）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("エラー: %v", err)
	}

	// 一覧の出力（フラグは環境変数より優先）
	cmd := cli.NewRootCommand(cfg, version)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("エラー: %v", err)
	}
}
