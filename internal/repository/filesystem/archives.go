package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

type ArchivesRepository struct {
	dir string
}

func NewArchivesRepository(dir string) *ArchivesRepository {
	return &ArchivesRepository{dir: dir}
}

func (r *ArchivesRepository) Put(_ context.Context, key string, rd io.Reader) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}

	return writeAtomic(path, rd)
}

func (r *ArchivesRepository) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := r.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: archive %q", domain.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %q: %w", key, err)
	}

	return f, nil
}

func (r *ArchivesRepository) Delete(_ context.Context, key string) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

func (r *ArchivesRepository) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("%w: archive %q", domain.ErrNotFound, key)
	}

	return filepath.Join(r.dir, key), nil
}
