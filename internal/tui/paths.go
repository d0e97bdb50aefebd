package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePath makes name absolute against dir. A leading "~/" expands to the
// home directory.
func resolvePath(dir, name string) string {
	if rest, ok := strings.CutPrefix(name, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(home, rest)
		}
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return filepath.Clean(name)
}

// startDir picks where a dialog opens: the directory of the last chosen
// path, else the working directory.
func startDir(last string) string {
	if last != "" {
		return filepath.Dir(last)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
