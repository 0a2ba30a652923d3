package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const uploadExtension = ".xlsx"

type UploadsRepository struct {
	dir string
	now func() time.Time
}

func NewUploadsRepository(dir string) *UploadsRepository {
	return &UploadsRepository{
		dir: dir,
		now: time.Now,
	}
}

func (r *UploadsRepository) Save(data []byte) (string, error) {
	ref := uuid.NewString()

	if err := writeAtomic(r.path(ref), bytes.NewReader(data)); err != nil {
		return "", err
	}

	return ref, nil
}

func (r *UploadsRepository) Read(ref string) ([]byte, error) {
	if err := uuid.Validate(ref); err != nil {
		return nil, fmt.Errorf("%w: upload %q", domain.ErrNotFound, ref)
	}

	data, err := os.ReadFile(r.path(ref))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: upload %q", domain.ErrNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %q: %w", ref, err)
	}

	return data, nil
}

func (r *UploadsRepository) Delete(ref string) error {
	if err := uuid.Validate(ref); err != nil {
		return fmt.Errorf("%w: upload %q", domain.ErrNotFound, ref)
	}

	err := os.Remove(r.path(ref))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: upload %q", domain.ErrNotFound, ref)
	}

	return err
}

// RemoveOlderThan deletes uploads, and leftover temp files, last modified more than age ago.
func (r *UploadsRepository) RemoveOlderThan(age time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %q: %w", r.dir, err)
	}

	deadline := r.now().Add(-age)

	var removed int
	for _, entry := range entries {
		if entry.IsDir() || !(strings.HasSuffix(entry.Name(), uploadExtension) || isTemp(entry.Name())) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(deadline) {
			continue
		}

		if err := os.Remove(filepath.Join(r.dir, entry.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove %q: %w", entry.Name(), err)
		}
		removed++
	}

	return removed, nil
}

func (r *UploadsRepository) path(ref string) string {
	return filepath.Join(r.dir, ref+uploadExtension)
}
