package gassets

import (
	"embed"
	"io"
	"os"
)

// files on disk win over the embedded copies
//
//go:embed assets
var embeddedAssets embed.FS

func ReadAsset(path string) ([]byte, error) {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return os.ReadFile(path)
	}
	return embeddedAssets.ReadFile(path)
}

func OpenAsset(path string) (io.ReadCloser, error) {
	if f, err := os.Open(path); err == nil {
		return f, nil
	}
	return embeddedAssets.Open(path)
}
