package query_test

import (
	"testing"
	"time"

	"github.com/c360studio/owl2store/query"
	"github.com/stretchr/testify/require"
)

func TestCacheCompileOrGetPromotesAfterThreshold(t *testing.T) {
	cache := query.NewCache(3, 100)
	p := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})
	hash := query.ContentHash(p)

	require.False(t, cache.IsPromoted(hash))
	for i := 0; i < 3; i++ {
		cache.CompileOrGet(p)
	}
	require.True(t, cache.IsPromoted(hash))
}

func TestCacheResultLRURoundTripsPerEpoch(t *testing.T) {
	cache := query.NewCache(5, 100)
	result := &query.QueryResult{Variables: []string{"s"}}

	cache.PutResult(1, 2, result)
	got, ok := cache.GetResult(1, 2)
	require.True(t, ok)
	require.Same(t, result, got)

	cache.BumpEpoch()
	_, ok = cache.GetResult(1, 2)
	require.False(t, ok, "result computed under prior epoch must be unreachable after a mutation")
}

func TestCacheRecordExecutionNoopBeforePromotion(t *testing.T) {
	cache := query.NewCache(100, 100)
	p := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})
	hash := query.ContentHash(p)
	cache.CompileOrGet(p)
	// Should not panic even though the entry is not yet promoted.
	cache.RecordExecution(hash, time.Millisecond)
	require.False(t, cache.IsPromoted(hash))
}
