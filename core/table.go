package core

import (
	"fmt"
	"sort"
)

// Table is an ordered set of named float64 columns. A valid table has the
// same number of rows in every column; Validate reports when it does not.
type Table struct {
	names   []string
	columns map[string][]float64
}

func NewTable() *Table {
	return &Table{
		names:   make([]string, 0),
		columns: make(map[string][]float64),
	}
}

// TableFromColumns builds a table with names[i] holding cols[i].
func TableFromColumns(names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns", len(names), len(cols))
	}
	table := NewTable()
	for i, name := range names {
		if err := table.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// TableFromMap builds a table whose columns are ordered by name.
func TableFromMap(cols map[string][]float64) (*Table, error) {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	table := NewTable()
	for _, name := range names {
		if err := table.AddColumn(name, cols[name]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// AddColumn appends a copy of values under name. The zero Table is usable.
func (table *Table) AddColumn(name string, values []float64) error {
	if table.columns == nil {
		table.columns = make(map[string][]float64)
	}
	if _, ok := table.columns[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	column := make([]float64, len(values))
	copy(column, values)
	table.names = append(table.names, name)
	table.columns[name] = column
	return nil
}

// Column returns the backing slice for name. Callers must not modify it.
func (table *Table) Column(name string) ([]float64, bool) {
	column, ok := table.columns[name]
	return column, ok
}

func (table *Table) Columns() []string {
	names := make([]string, len(table.names))
	copy(names, table.names)
	return names
}

func (table *Table) NumColumns() int {
	return len(table.names)
}

func (table *Table) NumRows() int {
	if len(table.names) == 0 {
		return 0
	}
	return len(table.columns[table.names[0]])
}

func (table *Table) Validate() error {
	rows := table.NumRows()
	for _, name := range table.names {
		if n := len(table.columns[name]); n != rows {
			return fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrShapeMismatch, name, n, rows)
		}
	}
	return nil
}

func (table *Table) Copy() *Table {
	out := NewTable()
	for _, name := range table.names {
		_ = out.AddColumn(name, table.columns[name])
	}
	return out
}

// Equal reports whether both tables have the same columns, in the same order,
// holding the same values.
func (table *Table) Equal(other *Table) bool {
	if other == nil || len(table.names) != len(other.names) {
		return false
	}
	for i, name := range table.names {
		if other.names[i] != name {
			return false
		}
		a, b := table.columns[name], other.columns[name]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

func (table Table) String() string {
	return fmt.Sprintf("<Table: Columns %d Rows %d>", table.NumColumns(), table.NumRows())
}

// appendRows extends every stored column with chunk's rows, zero-filling
// columns that only one side has. chunk must already be valid.
func (table *Table) appendRows(chunk *Table) {
	stored := table.NumRows()
	added := chunk.NumRows()

	for _, name := range chunk.names {
		if _, ok := table.columns[name]; !ok {
			table.names = append(table.names, name)
			table.columns[name] = make([]float64, stored, stored+added)
		}
	}
	for _, name := range table.names {
		if values, ok := chunk.columns[name]; ok {
			table.columns[name] = append(table.columns[name], values...)
		} else {
			table.columns[name] = append(table.columns[name], make([]float64, added)...)
		}
	}
}
