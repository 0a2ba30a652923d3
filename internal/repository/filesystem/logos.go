package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

var logoExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// LogosRepository keeps logo images in a shared directory. Writes go through a
// temp file and a rename, so concurrent readers never see partial content.
type LogosRepository struct {
	dir string

	// serialises the exists check with the write on Save
	mu sync.Mutex
}

func NewLogosRepository(dir string) *LogosRepository {
	return &LogosRepository{dir: dir}
}

// List returns the logos sorted by name, without the blank placeholder.
func (r *LogosRepository) List() ([]*domain.LogoAsset, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", r.dir, err)
	}

	logos := make([]*domain.LogoAsset, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isTemp(name) || strings.EqualFold(name, domain.BlankLogoName) || !isLogo(name) {
			continue
		}

		logos = append(logos, &domain.LogoAsset{
			Name: name,
			Path: filepath.Join(r.dir, name),
		})
	}

	sort.Slice(logos, func(i, j int) bool { return logos[i].Name < logos[j].Name })

	return logos, nil
}

func (r *LogosRepository) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat logo %q: %w", name, err)
	}

	return true, nil
}

func (r *LogosRepository) Save(name string, content []byte, overwrite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !overwrite {
		exists, err := r.Exists(name)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("%w: logo %q", domain.ErrAlreadyExists, name)
		}
	}

	if err := writeAtomic(filepath.Join(r.dir, name), bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to save logo %q: %w", name, err)
	}

	return nil
}

func (r *LogosRepository) Delete(name string) error {
	err := os.Remove(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: logo %q", domain.ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete logo %q: %w", name, err)
	}

	return nil
}

func (r *LogosRepository) Get(name string) (*domain.LogoAsset, error) {
	path := filepath.Join(r.dir, name)

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: logo %q", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read logo %q: %w", name, err)
	}

	return &domain.LogoAsset{
		Name:    name,
		Path:    path,
		Content: content,
	}, nil
}

// Resolve finds the logo of a supplier, either by exact file name or by base
// name with any supported extension, ignoring case. Without a match it falls
// back to the blank placeholder, and returns nil if that is missing too.
func (r *LogosRepository) Resolve(supplier string) (*domain.LogoAsset, error) {
	supplier = strings.TrimSpace(supplier)

	if supplier != "" && supplier == filepath.Base(supplier) {
		name, err := r.match(supplier)
		if err != nil {
			return nil, err
		}

		if name != "" {
			logo, err := r.Get(name)
			if !errors.Is(err, domain.ErrNotFound) {
				return logo, err
			}
		}
	}

	logo, err := r.Get(domain.BlankLogoName)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}

	return logo, err
}

func (r *LogosRepository) match(supplier string) (string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", r.dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isTemp(name) || !isLogo(name) {
			continue
		}

		base := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.EqualFold(name, supplier) || strings.EqualFold(base, supplier) {
			return name, nil
		}
	}

	return "", nil
}

func isLogo(name string) bool {
	return slices.Contains(logoExtensions, strings.ToLower(filepath.Ext(name)))
}
