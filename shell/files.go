package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

const defaultFileMode os.FileMode = 0o644

// readDocument loads the whole file at path as text. Line endings are folded
// to LF the way text-mode reads do.
func readDocument(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil && st.IsDir() {
		return "", fmt.Errorf("%w: %s: %w", ErrOpen, path, errIsDirectory)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrOpen, path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// writeDocument replaces the contents of the file at path with text,
// creating it if needed. The file is written in place: symlinks keep
// pointing at their target and an existing file keeps its permissions.
func writeDocument(fs afero.Fs, path, text string) error {
	if st, err := fs.Stat(path); err == nil && st.IsDir() {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, errIsDirectory)
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	_, err = io.WriteString(f, text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	return nil
}
