package query_test

import (
	"testing"

	"github.com/c360studio/owl2store/query"
	"github.com/stretchr/testify/require"
)

func TestClassifyAccessPath(t *testing.T) {
	typeQuery := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")}
	require.Equal(t, query.AccessTypeQuery, query.ClassifyAccessPath(typeQuery))

	propQuery := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const("ex:knows"), Object: query.Var("o")}
	require.Equal(t, query.AccessPropertyQuery, query.ClassifyAccessPath(propQuery))

	varPred := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Var("p"), Object: query.Var("o")}
	require.Equal(t, query.AccessVariablePredicate, query.ClassifyAccessPath(varPred))
}

func TestCompileOrdersMostConstantFirst(t *testing.T) {
	// The second triple has two constants bound (predicate + object); the
	// first has none. The compiled plan should evaluate the more
	// selective triple first.
	loose := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Var("p"), Object: query.Var("o")}
	tight := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")}

	p := query.BasicGraphPattern(loose, tight)
	cp := query.Compile(p)

	require.Len(t, cp.Triples, 2)
	require.Equal(t, tight, cp.Triples[0].Pattern)
	require.Equal(t, query.AccessTypeQuery, cp.Triples[0].AccessPath)
}

func TestCompileJoinOrderPrefersBoundVariableOverlap(t *testing.T) {
	t1 := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")}
	t2 := query.TriplePattern{Subject: query.Var("other"), Predicate: query.Const("ex:knows"), Object: query.Var("o")}
	t3 := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const("ex:knows"), Object: query.Var("o")}

	p := query.BasicGraphPattern(t1, t2, t3)
	cp := query.Compile(p)

	require.Equal(t, t1, cp.Triples[0].Pattern)
	// t3 shares "s" with t1; t2 shares nothing yet bound, so t3 should be
	// chosen before t2 despite both having one constant position.
	require.Equal(t, t3, cp.Triples[1].Pattern)
}

func TestContentHashStableAndStructureSensitive(t *testing.T) {
	a := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})
	b := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})
	c := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Dog")})

	require.Equal(t, query.ContentHash(a), query.ContentHash(b))
	require.NotEqual(t, query.ContentHash(a), query.ContentHash(c))
}

func TestConfigHashDiffersByFlag(t *testing.T) {
	base := query.ExecConfig{MaxResults: 10}
	withReasoning := base
	withReasoning.ReasoningEnabled = true

	require.NotEqual(t, query.ConfigHash(base), query.ConfigHash(withReasoning))
	require.Equal(t, query.ConfigHash(base), query.ConfigHash(base))
}
