package core

import (
	"fmt"
	"reflect"
	"sort"
)

// DefaultOpNames are the operators tracked by NewAccumulator.
var DefaultOpNames = []string{"sum", "count", "max", "min", "mean", "var"}

func GetOpFromName(opName string) Op {
	switch opName {
	case "sum":
		return NewSumOp()
	case "count":
		return NewCountOp()
	case "max":
		return NewMaxOp()
	case "min":
		return NewMinOp()
	case "mean":
		return NewMeanOp()
	case "var":
		return NewVarOp()
	default:
		return nil
	}
}

func GetOpNameFromOpType(opType OpType) string {
	switch opType {
	case OpTypeSum:
		return "sum"
	case OpTypeCount:
		return "count"
	case OpTypeMax:
		return "max"
	case OpTypeMin:
		return "min"
	case OpTypeMean:
		return "mean"
	case OpTypeVar:
		return "var"
	default:
		return ""
	}
}

type OpSet struct {
	ops map[string]Op
}

// NewOpSet builds the set for operatorNames. sum is always part of the set.
func NewOpSet(operatorNames []string) (*OpSet, error) {
	ops := map[string]Op{"sum": NewSumOp()}
	for _, operatorName := range operatorNames {
		op := GetOpFromName(operatorName)
		if op == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, operatorName)
		}
		ops[operatorName] = op
	}
	return &OpSet{ops: ops}, nil
}

func (set *OpSet) GetOp(operatorName string) Op {
	return set.ops[operatorName]
}

func (set *OpSet) Names() []string {
	names := make([]string, 0, len(set.ops))
	for name := range set.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (set *OpSet) Insert(data *DataTable, value float64) {
	for _, op := range set.ops {
		op.Apply(data, data, value)
	}
}

func (set *OpSet) Merge(data []DataTable) *DataTable {
	mergedData := NewDataTable()
	for _, op := range set.ops {
		op.Merge(mergedData, data)
	}
	return mergedData
}

func (set *OpSet) Equals(other *OpSet) bool {
	return reflect.DeepEqual(set.Names(), other.Names())
}
