package shell

import "errors"

// Error kinds surfaced by file operations. Both wrap the underlying I/O error.
var (
	ErrOpen = errors.New("cannot open file")
	ErrSave = errors.New("cannot save file")
)

var errIsDirectory = errors.New("is a directory")
