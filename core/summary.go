package core

import (
	"math"
	"sort"
)

// Summary maps a column name to one scalar reduced over that column.
type Summary map[string]float64

func (summary Summary) Columns() []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (summary Summary) Copy() Summary {
	out := make(Summary, len(summary))
	for name, value := range summary {
		out[name] = value
	}
	return out
}

// ApproxEqual compares with a combined absolute and relative tolerance.
func (summary Summary) ApproxEqual(other Summary, tolerance float64) bool {
	if len(summary) != len(other) {
		return false
	}
	for name, a := range summary {
		b, ok := other[name]
		if !ok {
			return false
		}
		diff := math.Abs(a - b)
		if diff > tolerance && diff > tolerance*math.Max(math.Abs(a), math.Abs(b)) {
			return false
		}
	}
	return true
}
