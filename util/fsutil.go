package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir ensures a directory exists, creating it (and parents) if
// necessary.
func EnsureDir(p string) error {
	s, err := os.Stat(p)
	if err == nil {
		if !s.IsDir() {
			return fmt.Errorf("%s is not a directory", p)
		}
		return nil
	}
	return os.MkdirAll(p, 0755)
}

// EnsurePath ensures the parent directory of a file path exists.
func EnsurePath(p string) error {
	dir := filepath.Dir(p)
	return EnsureDir(dir)
}
