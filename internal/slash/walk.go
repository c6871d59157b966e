package slash

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindCommandFiles returns every markdown file under root at any depth.
// Hidden entries (names starting with ".") are skipped, hidden
// directories entirely. A missing root is not an error; it simply
// yields no files.
func FindCommandFiles(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
