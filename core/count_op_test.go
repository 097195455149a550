package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOp_Apply(t *testing.T) {
	data := NewDataTable()
	data.Count.Value = 3

	op := NewCountOp()
	op.Apply(data, data, 0.0)

	assert.Equal(t, data.Count.Value, float64(4))
}

func TestCountOp_Merge(t *testing.T) {
	data := NewDataTable()
	mergingData := make([]DataTable, 0)
	for i := 0; i < 5; i++ {
		mergeData := NewDataTable()
		mergeData.Count.Value = float64(i)
		mergingData = append(mergingData, *mergeData)
	}

	op := NewCountOp()
	op.Merge(data, mergingData)

	assert.Equal(t, data.Count.Value, float64(10))
	assert.Equal(t, op.Result(data), float64(10))
}
