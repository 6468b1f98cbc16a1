// Package rules implements the forward-chaining rule engine (C7): pattern
// rules over class/property assertions and subclass relationships, matched
// by breadth-first binding propagation and driven to a fixed point.
package rules

import "github.com/c360studio/owl2store/iri"

// Term is either a bound constant IRI or a variable name to be resolved
// during matching.
type Term struct {
	Variable string // non-empty means this slot is a variable
	Constant *iri.Handle
}

// Var returns a variable term.
func Var(name string) Term { return Term{Variable: name} }

// Const returns a constant term bound to h.
func Const(h *iri.Handle) Term { return Term{Constant: h} }

// IsVariable reports whether t is an unbound variable slot.
func (t Term) IsVariable() bool { return t.Variable != "" }

// PatternKind tags the condition shape a Pattern represents.
type PatternKind int

const (
	PatternClassAssertion PatternKind = iota
	PatternPropertyAssertion
	PatternSubClassOf
	PatternEquivalentClasses
	PatternDisjointClasses
)

// Pattern is one LHS condition of a Rule (§4.4).
type Pattern struct {
	Kind PatternKind

	// PatternClassAssertion
	Individual Term
	Class      Term

	// PatternPropertyAssertion
	Subject  Term
	Property Term
	Object   Term

	// PatternSubClassOf
	Sub, Super Term

	// PatternEquivalentClasses, PatternDisjointClasses
	Classes []Term
}

// Binding maps variable names to resolved IRI handles.
type Binding map[string]*iri.Handle

// Clone returns a shallow copy of b.
func (b Binding) Clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Consequence is one RHS instantiation template of a Rule.
type Consequence struct {
	Kind PatternKind

	Individual Term
	Class      Term

	Subject  Term
	Property Term
	Object   Term

	Sub, Super Term
}

// Rule pairs an LHS pattern list with RHS consequences, in priority order
// (§4.4).
type Rule struct {
	Name         string
	Priority     int
	Conditions   []Pattern
	Consequences []Consequence
	// Guard, if non-nil, additionally filters candidate bindings — used by
	// the transitive/symmetric standard rules to require the relevant
	// property characteristic axiom be present (the rule engine's explicit
	// property-characteristic guard).
	Guard func(Binding) bool
}
