package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const tempPrefix = ".tmp-"

// writeAtomic writes r to a temp file next to path and renames it into place,
// so readers see either the old content or the complete new one.
func writeAtomic(path string, r io.Reader) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return errors.Join(fmt.Errorf("failed to write temp file: %w", err), tmp.Close())
	}

	if err := tmp.Sync(); err != nil {
		return errors.Join(fmt.Errorf("failed to sync temp file: %w", err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func isTemp(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}
