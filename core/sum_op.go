package core

type SumOp struct {
	OpType OpType
}

func NewSumOp() *SumOp {
	return &SumOp{
		OpType: OpTypeSum,
	}
}

func (op *SumOp) GetOpType() OpType {
	return op.OpType
}

func (op *SumOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Sum.Value = aggData.Sum.Value + insertValue
}

func (op *SumOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Sum.Value += value.Sum.Value
	}
}

func (op *SumOp) Result(data *DataTable) float64 {
	return data.Sum.Value
}
