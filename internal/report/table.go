package report

import (
	"fmt"

	"syntaxa/internal/translate"
)

// Table is a rectangular result with named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Values are formatted with fmt's %v; nil becomes an
// empty cell. A row must have one value per column.
func (t *Table) AddRow(values ...any) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}

	row := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			row[i] = fmt.Sprint(v)
		}
	}

	t.Rows = append(t.Rows, row)

	return nil
}

// Translations converts reconciled rows into a table with the reconciler
// columns.
func Translations(rows []translate.Row) *Table {
	t := New(translate.Columns...)
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Values())
	}

	return t
}
