package core

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, cacheEnabled bool) *DB {
	t.Helper()
	config := DefaultStoreConfig()
	config.CacheEnabled = cacheEnabled
	db, err := NewDB(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBasicDB(t *testing.T) {
	for _, cacheEnabled := range []bool{true, false} {
		t.Run(fmt.Sprintf("cache=%v", cacheEnabled), func(t *testing.T) {
			db := newTestDB(t, cacheEnabled)

			id, err := db.NewAccumulator("events")
			require.NoError(t, err)
			found, err := db.Lookup("events")
			require.NoError(t, err)
			assert.Equal(t, id, found)

			summary, err := db.Summarize(id)
			require.NoError(t, err)
			assert.Empty(t, summary)

			require.NoError(t, db.Append(id, mustTable(t, []string{"a", "b"}, []float64{1, 2}, []float64{3, 4})))
			summary, err = db.Summarize(id)
			require.NoError(t, err)
			assert.Equal(t, Summary{"a": 3, "b": 7}, summary)

			// Repeated queries may be served from the cache but never stale.
			for i := 0; i < 3; i++ {
				require.NoError(t, db.Append(id, mustTable(t, []string{"a"}, []float64{1})))
				summary, err = db.Summarize(id)
				require.NoError(t, err)
				assert.Equal(t, 4.0+float64(i), summary["a"])
			}

			counts, err := db.Query(id, "count")
			require.NoError(t, err)
			assert.Equal(t, Summary{"a": 5, "b": 2}, counts)

			data, err := db.Data(id)
			require.NoError(t, err)
			assert.Equal(t, 5, data.NumRows())
		})
	}
}

func TestDB_CachedSummaryIsCopy(t *testing.T) {
	db := newTestDB(t, true)
	id, err := db.NewAccumulator("x")
	require.NoError(t, err)
	require.NoError(t, db.Append(id, mustTable(t, []string{"a"}, []float64{1})))

	first, err := db.Summarize(id)
	require.NoError(t, err)
	first["a"] = 100

	second, err := db.Summarize(id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, second["a"])
}

func TestDB_Errors(t *testing.T) {
	db := newTestDB(t, true)

	_, err := db.NewAccumulator("x")
	require.NoError(t, err)
	_, err = db.NewAccumulator("x")
	assert.True(t, errors.Is(err, ErrDuplicateAccumulator))

	_, err = db.Lookup("missing")
	assert.True(t, errors.Is(err, ErrAccumulatorNotFound))
	_, err = db.Summarize(42)
	assert.True(t, errors.Is(err, ErrAccumulatorNotFound))
	assert.True(t, errors.Is(db.Append(42, NewTable()), ErrAccumulatorNotFound))
	assert.True(t, errors.Is(db.Drop(42), ErrAccumulatorNotFound))

	id, _ := db.Lookup("x")
	_, err = db.Query(id, "median")
	assert.True(t, errors.Is(err, ErrUnknownOp))
	err = db.Append(id, mustTable(t, []string{"a", "b"}, []float64{1}, []float64{}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	config := DefaultStoreConfig()
	config.OperatorNames = []string{"median"}
	_, err = NewDB(config)
	assert.True(t, errors.Is(err, ErrUnknownOp))
}

func TestDB_Drop(t *testing.T) {
	db := newTestDB(t, true)
	first, err := db.NewAccumulator("x")
	require.NoError(t, err)
	require.NoError(t, db.Append(first, mustTable(t, []string{"a"}, []float64{1})))
	_, err = db.Summarize(first)
	require.NoError(t, err)

	require.NoError(t, db.Drop(first))
	assert.Empty(t, db.Names())

	second, err := db.NewAccumulator("x")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	summary, err := db.Summarize(second)
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestDB_ConcurrentAppends(t *testing.T) {
	db := newTestDB(t, true)
	names := []string{"a", "b", "c"}
	for _, name := range names {
		_, err := db.NewAccumulator(name)
		require.NoError(t, err)
	}
	assert.Equal(t, names, db.Names())

	chunk := mustTable(t, []string{"v"}, []float64{1})
	var wg sync.WaitGroup
	for _, name := range names {
		id, err := db.Lookup(name)
		require.NoError(t, err)
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					_ = db.Append(id, chunk)
					_, _ = db.Summarize(id)
				}
			}()
		}
	}
	wg.Wait()

	for _, name := range names {
		id, _ := db.Lookup(name)
		summary, err := db.Summarize(id)
		require.NoError(t, err)
		assert.Equal(t, 400.0, summary["v"])
	}
}
