package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/jszwec/csvutil"
	"github.com/klauspost/compress/zip"
	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const ManifestName = "manifest.csv"

type Entry struct {
	Record  domain.ArtifactRecord
	Content []byte
}

// Write packages the files named by records, read from dir, into a zip archive
// followed by a manifest. Entries are written in row order.
func Write(w io.Writer, dir string, records []domain.ArtifactRecord) (err error) {
	records = sorted(records)

	zw := zip.NewWriter(w)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close archive: %w", closeErr))
		}
	}()

	for _, record := range records {
		if err := writeFile(zw, dir, record.File); err != nil {
			return err
		}
	}

	manifest, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	mw, err := zw.CreateHeader(&zip.FileHeader{Name: ManifestName, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("failed to create manifest entry: %w", err)
	}

	if _, err := mw.Write(manifest); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

func writeFile(zw *zip.Writer, dir, name string) (err error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to open artifact %q: %w", name, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	// Encoded images do not shrink under deflate.
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("failed to create entry %q: %w", name, err)
	}

	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", name, err)
	}

	return nil
}

// Read returns the archive's artifacts in manifest (row) order.
func Read(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	mf, ok := files[ManifestName]
	if !ok {
		return nil, fmt.Errorf("archive has no %s", ManifestName)
	}

	manifest, err := readEntry(mf)
	if err != nil {
		return nil, err
	}

	var records []domain.ArtifactRecord
	if err := csvutil.Unmarshal(manifest, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, record := range sorted(records) {
		f, ok := files[record.File]
		if !ok {
			return nil, fmt.Errorf("archive is missing %q", record.File)
		}

		content, err := readEntry(f)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{Record: record, Content: content})
	}

	return entries, nil
}

func readEntry(f *zip.File) (_ []byte, err error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %q: %w", f.Name, err)
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", f.Name, err)
	}

	return data, nil
}

func sorted(records []domain.ArtifactRecord) []domain.ArtifactRecord {
	out := make([]domain.ArtifactRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RowIndex < out[j].RowIndex })

	return out
}
