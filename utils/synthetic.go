package utils

import (
	"math/rand/v2"
	"strconv"

	"accumdb/core"
)

// ColumnName is the name RandomTable gives column i.
func ColumnName(i int) string {
	return "c" + strconv.Itoa(i)
}

// RandomTable builds a rows x cols table of uniform values in [0, scale).
func RandomTable(rng *rand.Rand, rows, cols int, scale float64) *core.Table {
	table := core.NewTable()
	for c := 0; c < cols; c++ {
		values := make([]float64, rows)
		for r := range values {
			values[r] = rng.Float64() * scale
		}
		// Names are unique by construction.
		_ = table.AddColumn(ColumnName(c), values)
	}
	return table
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
