package query_test

import (
	"testing"

	"github.com/c360studio/owl2store/query"
	"github.com/stretchr/testify/require"
)

func TestTriplePatternVariables(t *testing.T) {
	tp := query.TriplePattern{
		Subject:   query.Var("s"),
		Predicate: query.Const(query.RDFType),
		Object:    query.Var("s"), // repeated variable collapses to one
	}
	require.Equal(t, []string{"s"}, tp.Variables())
}

func TestBindingCloneIsIndependent(t *testing.T) {
	a := query.Binding{"x": "1"}
	b := a.Clone()
	b["x"] = "2"
	require.Equal(t, "1", a["x"])
}

func TestPatternConstructors(t *testing.T) {
	tp := query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")}
	bgp := query.BasicGraphPattern(tp)
	require.Equal(t, query.PatternBasicGraph, bgp.Kind)

	opt := query.OptionalPattern(bgp, bgp)
	require.Equal(t, query.PatternOptional, opt.Kind)

	u := query.UnionPattern(bgp, bgp)
	require.Equal(t, query.PatternUnion, u.Kind)

	d := query.DistinctPattern(bgp)
	require.Equal(t, query.PatternDistinct, d.Kind)

	r := query.ReducedPattern(bgp)
	require.Equal(t, query.PatternReduced, r.Kind)

	f := query.FilterPattern(bgp, "always-true", func(query.Binding) (bool, bool) { return true, true })
	require.Equal(t, query.PatternFilter, f.Kind)
}
