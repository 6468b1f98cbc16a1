package query

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AccessPath names the index a compiled triple pattern is served from
// (spec §4.5.2).
type AccessPath int

const (
	// AccessTypeQuery serves rdf:type-predicate, constant-object patterns
	// from the class-instances index.
	AccessTypeQuery AccessPath = iota
	// AccessPropertyQuery serves constant, non-rdf:type predicates from
	// the property index.
	AccessPropertyQuery
	// AccessVariablePredicate falls back to a full axiom scan. It also
	// serves rdf:type patterns whose object is a variable.
	AccessVariablePredicate
)

// RDFType is the predicate IRI that routes a triple pattern to the
// class-instances index rather than the general property index.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// ClassifyAccessPath chooses the access path for a single triple pattern.
func ClassifyAccessPath(p TriplePattern) AccessPath {
	if p.Predicate.IsVariable() {
		return AccessVariablePredicate
	}
	if p.Predicate.Constant == RDFType {
		if !p.Object.IsVariable() {
			return AccessTypeQuery
		}
		return AccessVariablePredicate
	}
	return AccessPropertyQuery
}

// CompiledTriple is one triple pattern annotated with its chosen access
// path, in the join order the execution engine will evaluate it.
type CompiledTriple struct {
	Pattern    TriplePattern
	AccessPath AccessPath
}

// CompiledPattern is the pure, cacheable output of compiling a Pattern: its
// original form, a 64-bit content hash, the chosen execution plan, and the
// sorted list of output variable names.
type CompiledPattern struct {
	Original  *Pattern
	Hash      uint64
	Triples   []CompiledTriple
	Variables []string
}

// Compile produces a CompiledPattern for a BasicGraphPattern. Join order is
// chosen greedily: most-constant-positions first (highest selectivity),
// ties broken by access-path availability (indexed paths before scans);
// subsequent patterns are ordered to maximize overlap with already-bound
// variables, producing a left-deep plan. Compile only orders
// PatternBasicGraph; other pattern kinds carry their Left/Right/Inner
// sub-patterns uncompiled. The executor orders every BGP it evaluates
// (top-level or nested) with the same greedy ordering at evaluation time,
// without going through the cache.
func Compile(p *Pattern) *CompiledPattern {
	cp := &CompiledPattern{Original: p}

	if p.Kind == PatternBasicGraph {
		cp.Triples = orderTriples(p.Triples)
	}

	cp.Variables = outputVariables(p)
	sort.Strings(cp.Variables)
	cp.Hash = ContentHash(p)
	return cp
}

// orderTriples implements the greedy left-deep join order of §4.5.2.
func orderTriples(triples []TriplePattern) []CompiledTriple {
	remaining := make([]TriplePattern, len(triples))
	copy(remaining, triples)

	var ordered []CompiledTriple
	bound := make(map[string]bool)

	for len(remaining) > 0 {
		bestIdx := -1
		bestScore := -1
		for i, t := range remaining {
			score := selectivityScore(t, bound)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		chosen := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		for _, v := range chosen.Variables() {
			bound[v] = true
		}
		ordered = append(ordered, CompiledTriple{Pattern: chosen, AccessPath: ClassifyAccessPath(chosen)})
	}

	return ordered
}

// selectivityScore ranks a candidate triple pattern for the next join step:
// constant positions dominate (highest selectivity), then overlap with
// already-bound variables (maximizes left-deep join reuse), then indexed
// access paths over full scans.
func selectivityScore(t TriplePattern, bound map[string]bool) int {
	score := t.constantCount() * 100

	overlap := 0
	for _, v := range t.Variables() {
		if bound[v] {
			overlap++
		}
	}
	score += overlap * 10

	switch ClassifyAccessPath(t) {
	case AccessTypeQuery, AccessPropertyQuery:
		score += 1
	}

	return score
}

// outputVariables collects every variable name a pattern could bind,
// recursing through the pattern algebra.
func outputVariables(p *Pattern) []string {
	seen := make(map[string]bool)
	var walk func(*Pattern)
	walk = func(p *Pattern) {
		if p == nil {
			return
		}
		switch p.Kind {
		case PatternBasicGraph:
			for _, t := range p.Triples {
				for _, v := range t.Variables() {
					seen[v] = true
				}
			}
		case PatternOptional, PatternUnion:
			walk(p.Left)
			walk(p.Right)
		case PatternFilter, PatternDistinct, PatternReduced:
			walk(p.Inner)
		}
	}
	walk(p)

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

// ContentHash computes a stable 64-bit hash of a pattern's structure, used
// as the tier-1/tier-2 cache key. Two patterns with identical structure
// (same triples in the same order, same kind tree) hash identically
// regardless of where they were constructed.
func ContentHash(p *Pattern) uint64 {
	var sb strings.Builder
	writePatternKey(&sb, p)
	return xxhash.Sum64String(sb.String())
}

func writePatternKey(sb *strings.Builder, p *Pattern) {
	if p == nil {
		sb.WriteString("()")
		return
	}
	switch p.Kind {
	case PatternBasicGraph:
		sb.WriteString("bgp(")
		for i, t := range p.Triples {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(t.String())
		}
		sb.WriteString(")")
	case PatternOptional:
		sb.WriteString("opt(")
		writePatternKey(sb, p.Left)
		sb.WriteString(",")
		writePatternKey(sb, p.Right)
		sb.WriteString(")")
	case PatternUnion:
		sb.WriteString("union(")
		writePatternKey(sb, p.Left)
		sb.WriteString(",")
		writePatternKey(sb, p.Right)
		sb.WriteString(")")
	case PatternFilter:
		sb.WriteString("filter(")
		sb.WriteString(p.FilterLabel)
		sb.WriteString(",")
		writePatternKey(sb, p.Inner)
		sb.WriteString(")")
	case PatternDistinct:
		sb.WriteString("distinct(")
		writePatternKey(sb, p.Inner)
		sb.WriteString(")")
	case PatternReduced:
		sb.WriteString("reduced(")
		writePatternKey(sb, p.Inner)
		sb.WriteString(")")
	}
}

// ConfigHash folds the reasoning-enabled / max-results / parallel-enabled
// flags into the tier-3 cache key alongside the pattern hash, so results
// computed under one execution configuration are never returned for
// another (spec §4.5.3).
func ConfigHash(cfg ExecConfig) uint64 {
	var sb strings.Builder
	if cfg.ReasoningEnabled {
		sb.WriteString("r1")
	} else {
		sb.WriteString("r0")
	}
	sb.WriteString(",max=")
	sb.WriteString(itoa(cfg.MaxResults))
	if cfg.EnableParallel {
		sb.WriteString(",p1")
	} else {
		sb.WriteString(",p0")
	}
	return xxhash.Sum64String(sb.String())
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
