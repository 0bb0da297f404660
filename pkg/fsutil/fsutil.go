// Package fsutil writes files without ever leaving a partial file behind.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when WriteFile is given a zero mode.
const DefaultFileMode os.FileMode = 0o644

// ErrExists is returned by WriteFile when the target exists and overwrite
// was not requested.
var ErrExists = errors.New("file already exists")

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Mode is the permission of the written file. Zero means DefaultFileMode.
	Mode os.FileMode

	// Overwrite allows replacing an existing file.
	Overwrite bool
}

// WriteFile writes data to path through a temp file in the same directory
// and a rename, so readers see either the old content or the new content.
// It reports whether an existing file was replaced.
func WriteFile(ctx context.Context, path string, data []byte, opts WriteOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	mode := opts.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("write %s: is a directory", path)
	case err == nil && !opts.Overwrite:
		return false, fmt.Errorf("write %s: %w", path, ErrExists)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	replaced := err == nil

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return false, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return false, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return false, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return false, fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return replaced, nil
}
