package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTable(t *testing.T) {
	table := RandomTable(NewRand(7), 100, 3, 2.0)

	require.NoError(t, table.Validate())
	assert.Equal(t, 100, table.NumRows())
	assert.Equal(t, []string{"c0", "c1", "c2"}, table.Columns())

	values, ok := table.Column("c1")
	require.True(t, ok)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 2.0)
	}
}

func TestRandomTable_Deterministic(t *testing.T) {
	a := RandomTable(NewRand(42), 10, 2, 1.0)
	b := RandomTable(NewRand(42), 10, 2, 1.0)
	c := RandomTable(NewRand(43), 10, 2, 1.0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
