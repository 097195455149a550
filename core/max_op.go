package core

import "math"

type MaxOp struct {
	OpType OpType
}

func NewMaxOp() *MaxOp {
	return &MaxOp{
		OpType: OpTypeMax,
	}
}

func (op *MaxOp) GetOpType() OpType {
	return op.OpType
}

func (op *MaxOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Max.Value = math.Max(aggData.Max.Value, insertValue)
}

func (op *MaxOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Max.Value = math.Max(retData.Max.Value, value.Max.Value)
	}
}

func (op *MaxOp) Result(data *DataTable) float64 {
	return data.Max.Value
}

type MinOp struct {
	OpType OpType
}

func NewMinOp() *MinOp {
	return &MinOp{
		OpType: OpTypeMin,
	}
}

func (op *MinOp) GetOpType() OpType {
	return op.OpType
}

func (op *MinOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Min.Value = math.Min(aggData.Min.Value, insertValue)
}

func (op *MinOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Min.Value = math.Min(retData.Min.Value, value.Min.Value)
	}
}

func (op *MinOp) Result(data *DataTable) float64 {
	return data.Min.Value
}
