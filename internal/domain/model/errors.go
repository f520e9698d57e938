package model

import (
	"errors"
	"fmt"
)

// KaggleInputRoot はKaggleノートブック上でのデータセットの配置先です
const KaggleInputRoot = "/kaggle/input/home-credit-credit-risk-model-stability"

// ErrDirectoryNotFound は必要なディレクトリが存在しないことを表します
var ErrDirectoryNotFound = errors.New("directory not found")

// DirectoryNotFoundError は確認したパスとともにディレクトリ不在を報告します
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("Directory not found: %s\n"+
		"Tip: If you're on Kaggle, ROOT should be '%s'. "+
		"If you're local, set ROOT to the folder where you downloaded the data.",
		e.Path, KaggleInputRoot)
}

func (e *DirectoryNotFoundError) Is(target error) bool {
	return target == ErrDirectoryNotFound
}
