package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const SpreadsheetExtension = ".xlsx"

var (
	LogoExtensions   = []string{".png", ".jpg", ".jpeg", ".gif"}
	logoContentTypes = []string{"image/png", "image/jpeg", "image/gif"}

	zipSignature = []byte("PK\x03\x04")
)

// ReadSpreadsheet reads an uploaded spreadsheet into memory, rejecting it before
// any parsing if the name, size or content do not look like an xlsx workbook.
func ReadSpreadsheet(name string, r io.Reader, limit int64) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(name), SpreadsheetExtension) {
		return nil, fmt.Errorf("%w: %q is not an %s file", domain.ErrInvalidFormat, name, SpreadsheetExtension)
	}

	data, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, zipSignature) {
		return nil, fmt.Errorf("%w: %q is not a workbook", domain.ErrInvalidFormat, name)
	}

	return data, nil
}

// ReadLogo reads an uploaded logo image, checking its name, size and sniffed type.
func ReadLogo(name string, r io.Reader, limit int64) ([]byte, error) {
	if err := ValidateLogoName(name); err != nil {
		return nil, err
	}

	data, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(logoContentTypes, http.DetectContentType(data)) {
		return nil, fmt.Errorf("%w: %q is not an image", domain.ErrInvalidFormat, name)
	}

	return data, nil
}

func ValidateLogoName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: invalid logo name %q", domain.ErrInvalidFormat, name)
	}

	if !slices.Contains(LogoExtensions, strings.ToLower(filepath.Ext(name))) {
		return fmt.Errorf("%w: %q has unsupported extension", domain.ErrInvalidFormat, name)
	}

	if strings.EqualFold(name, domain.BlankLogoName) {
		return fmt.Errorf("%w: %q is reserved", domain.ErrInvalidFormat, name)
	}

	return nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: exceeds %d bytes", domain.ErrTooLarge, limit)
		}
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", domain.ErrTooLarge, limit)
	}

	return data, nil
}
