package score_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/graphcausal/cgm/score"
	"github.com/stretchr/testify/require"
)

func TestCache_QueryDoesNotInsert(t *testing.T) {
	var calls int32
	c := score.NewCache(func(k int) (float64, error) {
		atomic.AddInt32(&calls, 1)
		return float64(k) * 2, nil
	})
	ownedKey, v, err := c.Query(5)
	require.NoError(t, err)
	require.NotNil(t, ownedKey)
	require.Equal(t, 10.0, v)
	require.Equal(t, 0, c.Len()) // not yet inserted

	ownedKey2, v2, err := c.Query(5)
	require.NoError(t, err)
	require.NotNil(t, ownedKey2) // recomputed again, still not cached
	require.Equal(t, 10.0, v2)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCache_ExtendThenQueryHits(t *testing.T) {
	c := score.NewCache(func(k int) (float64, error) { return float64(k), nil })
	key, v, err := c.Query(3)
	require.NoError(t, err)
	c.Extend([]score.Pair[int]{{Key: *key, Value: v}})
	require.Equal(t, 1, c.Len())

	ownedKey, v2, err := c.Query(3)
	require.NoError(t, err)
	require.Nil(t, ownedKey) // cache hit: no owned key returned
	require.Equal(t, v, v2)
}

func TestCache_ParExtendMergesAllKeys(t *testing.T) {
	c := score.NewCache(func(k int) (float64, error) { return float64(k) * 10, nil })
	results, err := c.ParExtend(context.Background(), []int{1, 2, 3, 2, 1})
	require.NoError(t, err)
	require.Len(t, results, 3) // map dedups identical keys
	require.Equal(t, 10.0, results[1])
	require.Equal(t, 20.0, results[2])
	require.Equal(t, 30.0, results[3])
	require.Equal(t, 3, c.Len())
}

func TestFamilyKey_OrderIndependent(t *testing.T) {
	a := score.NewFamilyKey(0, []int{2, 1})
	b := score.NewFamilyKey(0, []int{1, 2})
	require.Equal(t, a, b)
}
