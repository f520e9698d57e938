// Package cli はコマンドラインインターフェースを提供します
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"DatasetScope/internal/config"
	"DatasetScope/internal/infrastructure/filesystem"
	"DatasetScope/internal/infrastructure/logging"
	"DatasetScope/internal/usecase/listing"
	"DatasetScope/internal/usecase/report"
)

// NewRootCommand はルートコマンドを作成します。
// フラグの既定値には cfg の値を使うため、フラグ > 環境変数 > .env > 既定値 の順に優先されます。
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	opts := *cfg

	cmd := &cobra.Command{
		Use:           "datasetscope",
		Short:         "データセットの csv_files/test 直下にあるCSVファイルを一覧表示します",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.Root, "root", cfg.Root, "データセットのルートディレクトリ (env: "+config.EnvRoot+")")
	flags.StringVar(&opts.Format, "format", cfg.Format, "出力形式: text, json, yaml (env: "+config.EnvFormat+")")
	flags.StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "ログレベル: debug, info, warn, error (env: "+config.EnvLogLevel+")")

	return cmd
}

func run(cmd *cobra.Command, opts config.Config) error {
	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("不正なログレベルです %q: %w", opts.LogLevel, err)
	}

	// 標準出力は一覧専用とし、ログは標準エラーに出す
	logger := logging.NewJSONLogger(cmd.ErrOrStderr(), logging.WithLevel(level))
	defer logger.Sync()

	scanner := filesystem.NewScanner(logger)
	lister := listing.NewLister(scanner, logger)
	generator := report.NewGenerator(format)
	out := cmd.OutOrStdout()

	layout := lister.Resolve(opts.Root)
	if err := generator.WriteHeader(out, layout.TestDir); err != nil {
		return fmt.Errorf("出力に失敗しました: %w", err)
	}

	result, err := lister.List(cmd.Context(), layout)
	if err != nil {
		return err
	}

	if err := generator.WriteFiles(out, result); err != nil {
		return fmt.Errorf("出力に失敗しました: %w", err)
	}
	logger.Log("INFO", "処理が完了しました", nil)
	return nil
}
