package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumOp_Apply(t *testing.T) {
	data := NewDataTable()
	data.Sum.Value = 3

	op := NewSumOp()
	op.Apply(data, data, 2.5)

	assert.Equal(t, data.Sum.Value, 5.5)
	assert.Equal(t, op.GetOpType(), OpTypeSum)
}

func TestSumOp_ApplyLeavesAggregateUntouched(t *testing.T) {
	agg := NewDataTable()
	agg.Sum.Value = 1
	ret := NewDataTable()

	NewSumOp().Apply(ret, agg, 2)

	assert.Equal(t, ret.Sum.Value, 3.0)
	assert.Equal(t, agg.Sum.Value, 1.0)
}

func TestSumOp_Merge(t *testing.T) {
	data := NewDataTable()
	mergingData := make([]DataTable, 0)
	for i := 0; i < 5; i++ {
		mergeData := NewDataTable()
		mergeData.Sum.Value = float64(i) + 0.5
		mergeData.Count.Value = 100
		mergingData = append(mergingData, *mergeData)
	}

	op := NewSumOp()
	op.Merge(data, mergingData)

	assert.Equal(t, op.Result(data), 12.5)
}
