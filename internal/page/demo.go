package page

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

//go:embed all:demo
var demoFS embed.FS

//go:embed docs.md
var docs string

const demoRoot = "demo"

// Docs returns the parameter documentation as markdown.
func Docs() string { return docs }

// Demo loads the embedded demo page.
func Demo() (*Doc, error) {
	return LoadFS(demoFS, demoRoot+"/page.toml")
}

// WriteDemo copies the demo page and its data files into dstRoot. Existing
// files are left alone unless overwrite is set.
func WriteDemo(dstRoot string, overwrite bool) ([]string, error) {
	var written []string
	err := fs.WalkDir(demoFS, demoRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, demoRoot), "/")
		target := filepath.Join(dstRoot, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !overwrite {
			if _, err := os.Stat(target); err == nil {
				zap.L().Debug("demo: keeping existing file", zap.String("path", target))
				return nil
			}
		}
		b, err := fs.ReadFile(demoFS, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, b, 0o644); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	return written, err
}
