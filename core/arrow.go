package core

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hashicorp/go-multierror"
)

type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type numericArray[T numeric] interface {
	Len() int
	NullN() int
	IsNull(i int) bool
	Value(i int) T
}

// numericValues stores nulls as zero. valid is nil when col has no nulls,
// otherwise valid[i] is false at every null position.
func numericValues[T numeric](col numericArray[T]) (values []float64, valid []bool) {
	values = make([]float64, col.Len())
	if col.NullN() > 0 {
		valid = make([]bool, col.Len())
	}
	for i := range values {
		if col.IsNull(i) {
			continue
		}
		values[i] = float64(col.Value(i))
		if valid != nil {
			valid[i] = true
		}
	}
	return values, valid
}

func columnValues(col arrow.Array) ([]float64, []bool, bool) {
	var values []float64
	var valid []bool
	switch c := col.(type) {
	case *array.Float64:
		values, valid = numericValues[float64](c)
	case *array.Float32:
		values, valid = numericValues[float32](c)
	case *array.Int64:
		values, valid = numericValues[int64](c)
	case *array.Int32:
		values, valid = numericValues[int32](c)
	case *array.Int16:
		values, valid = numericValues[int16](c)
	case *array.Int8:
		values, valid = numericValues[int8](c)
	case *array.Uint64:
		values, valid = numericValues[uint64](c)
	case *array.Uint32:
		values, valid = numericValues[uint32](c)
	case *array.Uint16:
		values, valid = numericValues[uint16](c)
	case *array.Uint8:
		values, valid = numericValues[uint8](c)
	default:
		return nil, nil, false
	}
	return values, valid, true
}

// TableFromRecord copies the numeric columns of rec into a Table, storing
// nulls as zero. Every non-numeric column is reported in the returned error.
func TableFromRecord(rec arrow.RecordBatch) (*Table, error) {
	table, _, err := tableFromRecord(rec)
	return table, err
}

// tableFromRecord also returns the validity of every column that has nulls.
func tableFromRecord(rec arrow.RecordBatch) (*Table, map[string][]bool, error) {
	var result *multierror.Error
	table := NewTable()
	masks := make(map[string][]bool)
	schema := rec.Schema()
	for i := 0; i < int(rec.NumCols()); i++ {
		name := schema.Field(i).Name
		col := rec.Column(i)
		values, valid, ok := columnValues(col)
		if !ok {
			result = multierror.Append(result,
				fmt.Errorf("%w: column %q is %s", ErrUnsupportedType, name, col.DataType()))
			continue
		}
		if err := table.AddColumn(name, values); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if valid != nil {
			masks[name] = valid
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, nil, err
	}
	return table, masks, nil
}

// AppendRecord appends rec's numeric columns. Nulls are stored as zero but
// are skipped by every operator, so count, max, min, mean and var only see
// non-null values.
func (acc *Accumulator) AppendRecord(rec arrow.RecordBatch) error {
	table, masks, err := tableFromRecord(rec)
	if err != nil {
		return err
	}
	return acc.appendMasked(table, masks)
}

// RecordFromTable builds a Float64 record batch holding table's columns. The
// caller owns the returned record and must Release it.
func RecordFromTable(table *Table, mem memory.Allocator) arrow.RecordBatch {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	fields := make([]arrow.Field, 0, table.NumColumns())
	for _, name := range table.names {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64})
	}
	b := array.NewRecordBuilder(mem, arrow.NewSchema(fields, nil))
	defer b.Release()

	for i, name := range table.names {
		b.Field(i).(*array.Float64Builder).AppendValues(table.columns[name], nil)
	}
	return b.NewRecordBatch()
}
