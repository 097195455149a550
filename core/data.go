package core

import (
	"math"

	"accumdb/stats"
)

type Scalar struct {
	Value float64
}

// DataTable holds the running state of every operator for a single column.
// Only values that were actually appended under the column are folded in;
// zero-fill in the stored table never reaches it.
type DataTable struct {
	Count *Scalar
	Sum   *Scalar
	Max   *Scalar
	Min   *Scalar
	Mean  *stats.Welford
	Var   *stats.Welford
}

func NewDataTable() *DataTable {
	return &DataTable{
		Count: &Scalar{Value: 0.0},
		Sum:   &Scalar{Value: 0.0},
		Max:   &Scalar{Value: -math.MaxFloat64},
		Min:   &Scalar{Value: math.MaxFloat64},
		Mean:  stats.NewWelford(),
		Var:   stats.NewWelford(),
	}
}
