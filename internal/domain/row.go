package domain

import "strings"

const (
	ColumnTitle    = "title"
	ColumnSupplier = "supplier"
	ColumnPrice    = "price"
)

// RowRecord is one parsed data row. Index is zero-based in file order.
type RowRecord struct {
	Index   int
	Columns []string
	Values  []string
}

func (r *RowRecord) Get(column string) string {
	column = strings.ToLower(column)
	for i, c := range r.Columns {
		if c == column && i < len(r.Values) {
			return r.Values[i]
		}
	}

	return ""
}

func (r *RowRecord) Label() string {
	return r.Get(ColumnTitle)
}
