package core

type CountOp struct {
	OpType OpType
}

func NewCountOp() *CountOp {
	return &CountOp{
		OpType: OpTypeCount,
	}
}

func (op *CountOp) GetOpType() OpType {
	return op.OpType
}

func (op *CountOp) Apply(retData, aggData *DataTable, _ float64) {
	retData.Count.Value = aggData.Count.Value + 1
}

func (op *CountOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Count.Value += value.Count.Value
	}
}

func (op *CountOp) Result(data *DataTable) float64 {
	return data.Count.Value
}
