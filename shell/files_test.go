package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := readDocument(fs, "/absent.txt")
	require.ErrorIs(t, err, ErrOpen)

	require.NoError(t, fs.MkdirAll("/dir", 0o755))
	_, err = readDocument(fs, "/dir")
	require.ErrorIs(t, err, ErrOpen)
	require.ErrorIs(t, err, errIsDirectory)
}

func TestWriteDocument_TruncatesInPlace(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d/a.txt", []byte("a much longer original"), 0o644))

	require.NoError(t, writeDocument(fs, "/d/a.txt", "short"))

	data, err := afero.ReadFile(fs, "/d/a.txt")
	require.NoError(t, err)
	require.Equal(t, "short", string(data))

	entries, err := afero.ReadDir(fs, "/d")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteDocument_Errors(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/d/sub", 0o755))

	err := writeDocument(mem, "/d/sub", "x")
	require.ErrorIs(t, err, ErrSave)
	require.ErrorIs(t, err, errIsDirectory)

	err = writeDocument(afero.NewReadOnlyFs(mem), "/d/new.txt", "x")
	require.ErrorIs(t, err, ErrSave)
	exists, _ := afero.Exists(mem, "/d/new.txt")
	require.False(t, exists)
}

func TestWriteDocument_FollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, writeDocument(afero.NewOsFs(), link, "new"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))

	st, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, st.Mode()&os.ModeSymlink, "link must stay a symlink")
}

func TestWriteDocument_UnwritableTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "ro.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o444))

	err := writeDocument(afero.NewOsFs(), path, "overwritten")
	require.ErrorIs(t, err, ErrSave)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}
