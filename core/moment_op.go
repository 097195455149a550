package core

// MeanOp and VarOp each keep their own Welford state so either can be
// tracked without the other.

type MeanOp struct {
	OpType OpType
}

func NewMeanOp() *MeanOp {
	return &MeanOp{
		OpType: OpTypeMean,
	}
}

func (op *MeanOp) GetOpType() OpType {
	return op.OpType
}

func (op *MeanOp) Apply(retData, aggData *DataTable, insertValue float64) {
	if retData != aggData {
		moments := *aggData.Mean
		retData.Mean = &moments
	}
	retData.Mean.Update(insertValue)
}

func (op *MeanOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Mean.Merge(value.Mean)
	}
}

func (op *MeanOp) Result(data *DataTable) float64 {
	return data.Mean.GetMean()
}

type VarOp struct {
	OpType OpType
}

func NewVarOp() *VarOp {
	return &VarOp{
		OpType: OpTypeVar,
	}
}

func (op *VarOp) GetOpType() OpType {
	return op.OpType
}

func (op *VarOp) Apply(retData, aggData *DataTable, insertValue float64) {
	if retData != aggData {
		moments := *aggData.Var
		retData.Var = &moments
	}
	retData.Var.Update(insertValue)
}

func (op *VarOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Var.Merge(value.Var)
	}
}

// Result is the population variance.
func (op *VarOp) Result(data *DataTable) float64 {
	return data.Var.GetVariance()
}
