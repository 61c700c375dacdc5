package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
)

// Scratch is a temporary sibling of a source file, used to hold formatted
// output that must not replace the source.
type Scratch struct {
	Path string
}

// WriteScratch writes content to path+suffix. The caller must call Remove
// once it is done with the file, whatever the outcome.
func WriteScratch(ctx context.Context, path, suffix string, content []byte) (*Scratch, error) {
	if suffix == "" {
		return nil, fmt.Errorf("scratch file for %s: empty suffix", path)
	}

	scratch := &Scratch{Path: OutputPath(path, suffix)}
	if err := WriteAtomic(ctx, scratch.Path, content, DefaultFileMode); err != nil {
		return nil, fmt.Errorf("write scratch file: %w", err)
	}
	return scratch, nil
}

// Matches reports whether the scratch file holds exactly original.
func (s *Scratch) Matches(original []byte) (bool, error) {
	written, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read scratch file: %w", err)
	}
	return bytes.Equal(written, original), nil
}

// Remove deletes the scratch file. A file that is already gone is not an
// error.
func (s *Scratch) Remove() error {
	if s == nil {
		return nil
	}
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove scratch file: %w", err)
	}
	return nil
}
