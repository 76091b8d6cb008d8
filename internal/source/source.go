// Package source opens the local file that is streamed to object storage.
package source

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// File is a read-only handle on the source file, positioned at offset zero.
// Callers must Close it.
type File struct {
	afero.File
	Path        string
	Size        int64
	ContentType string
}

// Open opens path on fsys, records its size and sniffs its content type.
// Errors from the filesystem are returned unwrapped so their text reaches the caller.
func Open(fsys afero.Fs, path string) (*File, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("detect content type of %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	return &File{
		File:        f,
		Path:        path,
		Size:        info.Size(),
		ContentType: mtype.String(),
	}, nil
}
