package gdialog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// ErrCancelled is returned when the user closes the dialog
var ErrCancelled = dialog.ErrCancelled

func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("FEN position", "fen", "txt").Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return Result{}, ErrCancelled
		}
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}
