package core

type OpType int

const (
	OpTypeSum OpType = iota
	OpTypeCount
	OpTypeMax
	OpTypeMin
	OpTypeMean
	OpTypeVar
)

func (opType OpType) String() string {
	return GetOpNameFromOpType(opType)
}

// Op is a per-column monoid. Apply folds one value into a running DataTable,
// Merge folds whole DataTables and Result reads the scalar back out.
type Op interface {
	GetOpType() OpType
	Apply(retData, aggData *DataTable, insertValue float64)
	Merge(retData *DataTable, values []DataTable)
	Result(data *DataTable) float64
}
