// Package query implements the triple-pattern query engine (C8): pattern
// compilation with greedy join ordering, a three-tier cache (adaptive query
// index, compiled-pattern cache, result LRU), a Markov-style access-pattern
// predictor, a pooled hash-join executor, and deadline-aware execution.
package query

import "fmt"

// Term is one position of a TriplePattern: either a variable (compared by
// name) or a constant IRI/literal value.
type Term struct {
	Variable string
	Constant string
	isConst  bool
}

// Var constructs a variable term.
func Var(name string) Term { return Term{Variable: name} }

// Const constructs a constant term.
func Const(value string) Term { return Term{Constant: value, isConst: true} }

// IsVariable reports whether t is a variable position.
func (t Term) IsVariable() bool { return !t.isConst }

func (t Term) String() string {
	if t.isConst {
		return t.Constant
	}
	return "?" + t.Variable
}

// TriplePattern is one subject/predicate/object position triple, each
// position independently a variable or a constant.
type TriplePattern struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Variables returns the distinct variable names referenced by p, in
// subject/predicate/object order.
func (p TriplePattern) Variables() []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range []Term{p.Subject, p.Predicate, p.Object} {
		if t.IsVariable() && !seen[t.Variable] {
			seen[t.Variable] = true
			out = append(out, t.Variable)
		}
	}
	return out
}

// constantCount returns how many of the pattern's three positions are
// constants — used by the compiler's greedy selectivity ordering.
func (p TriplePattern) constantCount() int {
	n := 0
	for _, t := range []Term{p.Subject, p.Predicate, p.Object} {
		if !t.IsVariable() {
			n++
		}
	}
	return n
}

// PatternKind discriminates the query pattern algebra of spec §4.5.1.
type PatternKind int

const (
	PatternBasicGraph PatternKind = iota
	PatternOptional
	PatternUnion
	PatternFilter
	PatternDistinct
	PatternReduced
)

// FilterExpr evaluates a binding, returning (result, ok); ok is false when
// the expression references an unbound variable or otherwise fails to
// evaluate, in which case the binding is dropped rather than erroring the
// whole query (spec §4.5.7).
type FilterExpr func(Binding) (bool, bool)

// Pattern is the query algebra: a tagged union over the six pattern kinds.
type Pattern struct {
	Kind PatternKind

	// PatternBasicGraph
	Triples []TriplePattern

	// PatternOptional, PatternUnion
	Left, Right *Pattern

	// PatternFilter, PatternDistinct, PatternReduced
	Inner *Pattern

	// PatternFilter
	Filter FilterExpr
	// FilterLabel names the filter. It is the only part of a filter that
	// enters ContentHash, since FilterExpr values are not otherwise
	// inspectable.
	FilterLabel string
}

// BasicGraphPattern builds a conjunction of triple patterns.
func BasicGraphPattern(triples ...TriplePattern) *Pattern {
	return &Pattern{Kind: PatternBasicGraph, Triples: triples}
}

// OptionalPattern builds a left-outer join of left with right.
func OptionalPattern(left, right *Pattern) *Pattern {
	return &Pattern{Kind: PatternOptional, Left: left, Right: right}
}

// UnionPattern builds a concatenation of left and right's results.
func UnionPattern(left, right *Pattern) *Pattern {
	return &Pattern{Kind: PatternUnion, Left: left, Right: right}
}

// FilterPattern wraps inner, dropping bindings expr rejects.
func FilterPattern(inner *Pattern, label string, expr FilterExpr) *Pattern {
	return &Pattern{Kind: PatternFilter, Inner: inner, Filter: expr, FilterLabel: label}
}

// DistinctPattern deduplicates inner's bindings exactly.
func DistinctPattern(inner *Pattern) *Pattern {
	return &Pattern{Kind: PatternDistinct, Inner: inner}
}

// ReducedPattern deduplicates inner's bindings on a best-effort basis; for
// this implementation that is identical to Distinct (the spec allows either
// behavior for Reduced).
func ReducedPattern(inner *Pattern) *Pattern {
	return &Pattern{Kind: PatternReduced, Inner: inner}
}

// Binding maps variable name to a bound IRI/literal string value.
type Binding map[string]string

// Clone returns an independent copy of b.
func (b Binding) Clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// merge returns a new binding combining b and other, or ok=false if they
// disagree on any shared variable.
func (b Binding) merge(other Binding) (Binding, bool) {
	out := b.Clone()
	for k, v := range other {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}

func (p TriplePattern) String() string {
	return fmt.Sprintf("%s %s %s", p.Subject, p.Predicate, p.Object)
}
