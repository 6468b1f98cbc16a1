package query_test

import (
	"testing"

	"github.com/c360studio/owl2store/query"
	"github.com/stretchr/testify/require"
)

func TestJoinPoolGetReturnReusesTable(t *testing.T) {
	pool := query.NewJoinPool(10)

	before := pool.Stats()
	require.Equal(t, int64(0), before.Hits)
	require.Equal(t, int64(0), before.Misses)

	table := pool.GetTable(8)
	afterMiss := pool.Stats()
	require.Equal(t, int64(1), afterMiss.Misses)

	pool.ReturnTable(table)
	second := pool.GetTable(8)
	afterHit := pool.Stats()
	require.Equal(t, int64(1), afterHit.Hits)
	_ = second
}

func TestJoinPoolPreWarmFillsBuckets(t *testing.T) {
	pool := query.NewJoinPool(5)
	pool.PreWarm(3)

	stats := pool.Stats()
	for _, size := range stats.BucketSizes {
		require.Equal(t, 3, size)
	}
}

func TestJoinPoolHitRate(t *testing.T) {
	stats := query.JoinPoolStats{Hits: 3, Misses: 1}
	require.InDelta(t, 0.75, stats.HitRate(), 0.0001)

	empty := query.JoinPoolStats{}
	require.Equal(t, float64(0), empty.HitRate())
}
