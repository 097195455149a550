package core

import (
	"fmt"
)

// Accumulator grows a table chunk by chunk and keeps a running DataTable per
// column so summaries never rescan stored rows. It does no locking of its own.
type Accumulator struct {
	table     *Table
	columns   map[string]*DataTable
	operators *OpSet
}

func NewAccumulator() *Accumulator {
	acc, _ := NewAccumulatorWithOps(DefaultOpNames)
	return acc
}

func NewAccumulatorWithOps(operatorNames []string) (*Accumulator, error) {
	operators, err := NewOpSet(operatorNames)
	if err != nil {
		return nil, err
	}
	return &Accumulator{
		table:     NewTable(),
		columns:   make(map[string]*DataTable),
		operators: operators,
	}, nil
}

// Append adds chunk's rows. A ragged chunk is rejected before anything
// changes; a chunk without rows is ignored.
func (acc *Accumulator) Append(chunk *Table) error {
	return acc.appendMasked(chunk, nil)
}

// appendMasked is Append where valid[name][i] == false keeps row i of column
// name out of the operators. The row is still stored. Columns missing from
// valid are fully valid.
func (acc *Accumulator) appendMasked(chunk *Table, valid map[string][]bool) error {
	if chunk == nil {
		return nil
	}
	if err := chunk.Validate(); err != nil {
		return err
	}
	if chunk.NumRows() == 0 {
		return nil
	}

	for _, name := range chunk.names {
		data, ok := acc.columns[name]
		if !ok {
			data = NewDataTable()
			acc.columns[name] = data
		}
		mask := valid[name]
		for i, value := range chunk.columns[name] {
			if mask != nil && !mask[i] {
				continue
			}
			acc.operators.Insert(data, value)
		}
	}
	acc.table.appendRows(chunk)
	return nil
}

// Summarize returns the sum of every column seen so far.
func (acc *Accumulator) Summarize() Summary {
	summary, _ := acc.Query("sum")
	return summary
}

// Query returns the result of the named operator for every column.
func (acc *Accumulator) Query(op string) (Summary, error) {
	opCompute := acc.operators.GetOp(op)
	if opCompute == nil {
		return nil, fmt.Errorf("%w: %q is not tracked", ErrUnknownOp, op)
	}
	summary := make(Summary, len(acc.columns))
	for name, data := range acc.columns {
		summary[name] = opCompute.Result(data)
	}
	return summary, nil
}

// Merge folds other's running state and stored rows into acc. Both must track
// the same operators, even when other is empty.
//
// Column sums are combined as acc's total plus other's total rather than row
// by row, so a merged sum can differ from appending the same chunks in order
// by floating-point rounding.
func (acc *Accumulator) Merge(other *Accumulator) error {
	if other == nil {
		return nil
	}
	if !acc.operators.Equals(other.operators) {
		return fmt.Errorf("%w: operator sets %v and %v differ",
			ErrUnknownOp, acc.operators.Names(), other.operators.Names())
	}
	if other.NumRows() == 0 {
		return nil
	}

	for _, name := range other.table.names {
		incoming := []DataTable{*other.columns[name]}
		data, ok := acc.columns[name]
		if !ok {
			acc.columns[name] = acc.operators.Merge(incoming)
			continue
		}
		merged := acc.operators.Merge(append([]DataTable{*data}, incoming...))
		acc.columns[name] = merged
	}
	acc.table.appendRows(other.table)
	return nil
}

// Data returns a copy of every row appended so far.
func (acc *Accumulator) Data() *Table {
	return acc.table.Copy()
}

func (acc *Accumulator) NumRows() int {
	return acc.table.NumRows()
}

// Columns lists column names in the order they were first appended.
func (acc *Accumulator) Columns() []string {
	return acc.table.Columns()
}

func (acc *Accumulator) Operators() []string {
	return acc.operators.Names()
}

func (acc *Accumulator) Reset() {
	acc.table = NewTable()
	acc.columns = make(map[string]*DataTable)
}
