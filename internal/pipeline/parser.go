package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/xuri/excelize/v2"
)

var requiredColumns = []string{domain.ColumnTitle}

type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{
		log: log,
	}
}

// Parse reads the first sheet of an xlsx workbook. The first row is the header,
// every following row becomes one record. Any invalid row fails the whole parse.
func (p *Parser) Parse(data []byte) (_ []*domain.RowRecord, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", domain.ErrMalformedContent, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrMalformedContent)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %w", domain.ErrMalformedContent, sheets[0], err)
	}

	p.log.Debug("parsing records", slog.String("sheet", sheets[0]), slog.Int("rows", len(rows)))

	return p.parseRows(rows)
}

func (p *Parser) parseRows(rows [][]string) ([]*domain.RowRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrMalformedContent)
	}

	header, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	if len(rows) == 1 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrMalformedContent)
	}

	records := make([]*domain.RowRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, &domain.RowError{Row: i + 1, Err: fmt.Errorf("has %d cells, header has %d", len(row), len(header))}
		}

		values := make([]string, len(header))
		for j, cell := range row {
			values[j] = strings.TrimSpace(cell)
		}

		record := &domain.RowRecord{
			Index:   i,
			Columns: header,
			Values:  values,
		}

		if err := validateRecord(record); err != nil {
			return nil, &domain.RowError{Row: i + 1, Err: err}
		}

		records = append(records, record)
	}

	p.log.Debug("successfully parsed records", slog.Int("record_count", len(records)))

	return records, nil
}

func parseHeader(row []string) ([]string, error) {
	header := make([]string, len(row))
	seen := make(map[string]struct{}, len(row))

	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			return nil, fmt.Errorf("%w: header column %d is empty", domain.ErrMalformedContent, i+1)
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: duplicate header column %q", domain.ErrMalformedContent, name)
		}

		seen[name] = struct{}{}
		header[i] = name
	}

	for _, column := range requiredColumns {
		if _, ok := seen[column]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", domain.ErrMalformedContent, column)
		}
	}

	return header, nil
}

func validateRecord(r *domain.RowRecord) error {
	if r.Label() == "" {
		return fmt.Errorf("%s is required", domain.ColumnTitle)
	}

	if price := r.Get(domain.ColumnPrice); price != "" {
		if _, err := strconv.ParseFloat(strings.ReplaceAll(price, ",", "."), 64); err != nil {
			return fmt.Errorf("invalid %s %q", domain.ColumnPrice, price)
		}
	}

	return nil
}
