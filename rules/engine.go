package rules

import (
	"sort"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/owlerr"
)

const (
	// DefaultMaxIterations caps the fixed-point loop against pathological
	// rule sets (§4.4).
	DefaultMaxIterations = 1000
)

// OntologySource is the narrow read surface the engine matches ground
// facts against. Satisfied by *ontology.Ontology.
type OntologySource interface {
	ClassAssertions() []axiom.ClassAssertion
	ObjectPropertyAssertions() []axiom.ObjectPropertyAssertion
	SubClassAxioms() []axiom.SubClassOf
	DisjointClassAxioms() []axiom.DisjointClasses
	TransitiveObjectPropertyAxioms() []axiom.TransitiveObjectProperty
	SymmetricObjectPropertyAxioms() []axiom.SymmetricObjectProperty
}

// Engine runs the standard rule set (plus any extensions) to a fixed point
// over an ontology (§4.4).
type Engine struct {
	rules         []Rule
	maxIterations int
}

// New returns an Engine pre-loaded with the four standard rules, in
// priority order. Extra rules may be appended with AddRule.
func New() *Engine {
	e := &Engine{maxIterations: DefaultMaxIterations}
	e.rules = append(e.rules, standardRules()...)
	sort.SliceStable(e.rules, func(i, j int) bool { return e.rules[i].Priority < e.rules[j].Priority })
	return e
}

// AddRule appends a custom rule and re-sorts by priority.
func (e *Engine) AddRule(r Rule) {
	e.rules = append(e.rules, r)
	sort.SliceStable(e.rules, func(i, j int) bool { return e.rules[i].Priority < e.rules[j].Priority })
}

// SetMaxIterations overrides the fixed-point iteration cap. n <= 0 is
// ignored, leaving the existing cap in place.
func (e *Engine) SetMaxIterations(n int) {
	if n > 0 {
		e.maxIterations = n
	}
}

// Result summarizes one Run: how many facts were newly derived, and in how
// many iterations the fixed point was reached.
type Result struct {
	NewClassAssertions    []struct{ Individual, Class *iri.Handle }
	NewPropertyAssertions []struct{ Subject, Property, Object *iri.Handle }
	NewSubClassOf         []struct{ Sub, Super *iri.Handle }
	Iterations            int
}

// Run iterates the rule set in priority order until an iteration produces
// zero new facts, or until maxIterations is reached. It returns an error
// (not a panic) if a derived fact contradicts an explicit DisjointClasses
// axiom (§4.4 "Failure semantics").
func (e *Engine) Run(o OntologySource) (*Result, error) {
	df := newDerivedFacts()
	disjoint := disjointPairs(o.DisjointClassAxioms())
	transitive := characteristicSet(o.TransitiveObjectPropertyAxioms(), func(a axiom.TransitiveObjectProperty) *iri.Handle { return a.Property })
	symmetric := characteristicSet(o.SymmetricObjectPropertyAxioms(), func(a axiom.SymmetricObjectProperty) *iri.Handle { return a.Property })

	iterations := 0
	for iterations < e.maxIterations {
		iterations++
		newFactCount := 0

		for _, rule := range e.rules {
			bindings := []Binding{{}}
			for _, cond := range rule.Conditions {
				bindings = extendBindings(bindings, cond, o, df)
				if len(bindings) == 0 {
					break
				}
			}

			for _, b := range bindings {
				if rule.Guard != nil {
					ok := rule.Guard(withCharacteristics(b, transitive, symmetric))
					if !ok {
						continue
					}
				}
				for _, cons := range rule.Consequences {
					inserted, err := instantiate(cons, b, o, df, disjoint)
					if err != nil {
						return nil, err
					}
					if inserted {
						newFactCount++
					}
				}
			}
		}

		if newFactCount == 0 {
			break
		}
	}

	return &Result{
		NewClassAssertions:    df.newClassAssertions,
		NewPropertyAssertions: df.newPropertyAssertions,
		NewSubClassOf:         df.newSubClass,
		Iterations:            iterations,
	}, nil
}

func characteristicSet[A any](axioms []A, prop func(A) *iri.Handle) map[string]bool {
	set := make(map[string]bool, len(axioms))
	for _, a := range axioms {
		if p := prop(a); p != nil {
			set[p.As()] = true
		}
	}
	return set
}

// guardKeyTransitive and guardKeySymmetric are synthetic keys merged into a Binding copy
// so a Guard function can query "is ?prop transitive/symmetric" uniformly
// through the same Binding type, without the engine exposing its internal
// characteristic maps.
const (
	guardKeyTransitive = "__transitive__"
	guardKeySymmetric  = "__symmetric__"
)

func withCharacteristics(b Binding, transitive, symmetric map[string]bool) Binding {
	out := b.Clone()
	if prop, ok := out["prop"]; ok {
		if transitive[prop.As()] {
			out[guardKeyTransitive] = prop
		}
		if symmetric[prop.As()] {
			out[guardKeySymmetric] = prop
		}
	}
	return out
}

func disjointPairs(axioms []axiom.DisjointClasses) map[[2]string]bool {
	pairs := make(map[[2]string]bool)
	for _, dc := range axioms {
		for i := 0; i < len(dc.Classes); i++ {
			for j := i + 1; j < len(dc.Classes); j++ {
				a, b := dc.Classes[i], dc.Classes[j]
				if a == nil || b == nil || a.Kind != axiom.CEClass || b.Kind != axiom.CEClass {
					continue
				}
				if a.Named == nil || b.Named == nil {
					continue
				}
				pairs[[2]string{a.Named.As(), b.Named.As()}] = true
				pairs[[2]string{b.Named.As(), a.Named.As()}] = true
			}
		}
	}
	return pairs
}

// instantiate grounds cons against b, checks it is not already derived,
// checks it does not contradict a DisjointClasses axiom, and inserts it.
func instantiate(cons Consequence, b Binding, o OntologySource, df *derivedFacts, disjoint map[[2]string]bool) (inserted bool, err error) {
	switch cons.Kind {
	case PatternClassAssertion:
		ind := resolve(cons.Individual, b)
		cls := resolve(cons.Class, b)
		if ind == nil || cls == nil {
			return false, nil
		}
		if df.hasClassAssertion(ind, cls) {
			return false, nil
		}
		if err := checkDisjointConflict(ind, cls, o, df, disjoint); err != nil {
			return false, err
		}
		df.insertClassAssertion(ind, cls)
		return true, nil

	case PatternPropertyAssertion:
		subj := resolve(cons.Subject, b)
		prop := resolve(cons.Property, b)
		obj := resolve(cons.Object, b)
		if subj == nil || prop == nil || obj == nil {
			return false, nil
		}
		if df.hasPropertyAssertion(subj, prop, obj) {
			return false, nil
		}
		df.insertPropertyAssertion(subj, prop, obj)
		return true, nil

	case PatternSubClassOf:
		sub := resolve(cons.Sub, b)
		super := resolve(cons.Super, b)
		if sub == nil || super == nil {
			return false, nil
		}
		if df.hasSubClass(sub, super) {
			return false, nil
		}
		df.insertSubClass(sub, super)
		return true, nil
	}
	return false, nil
}

// checkDisjointConflict surfaces a reasoning error naming the witness when
// a newly derived class assertion would put an individual in two classes
// declared disjoint. Existing explicit ClassAssertion axioms count as
// witnesses too — an inheritance derivation can conflict with data that
// was asserted directly, not only with other derivations (§4.4 "Failure
// semantics").
func checkDisjointConflict(individual, class *iri.Handle, o OntologySource, df *derivedFacts, disjoint map[[2]string]bool) error {
	conflict := func(existingClass string) error {
		if disjoint[[2]string{existingClass, class.As()}] {
			return owlerr.Newf(owlerr.KindReasoningFailed, "rule_engine.run",
				"derived ClassAssertion(%s, %s) contradicts disjointness with existing %s",
				individual.As(), class.As(), existingClass).
				WithContext("individual", individual.As(), "class", class.As(), "conflicting_class", existingClass)
		}
		return nil
	}

	for _, ca := range o.ClassAssertions() {
		if ca.Individual == nil || ca.Class == nil || ca.Class.Named == nil {
			continue
		}
		if ca.Individual.As() != individual.As() {
			continue
		}
		if err := conflict(ca.Class.Named.As()); err != nil {
			return err
		}
	}
	for key := range df.classAssertions {
		if key.individual != individual.As() {
			continue
		}
		if err := conflict(key.class); err != nil {
			return err
		}
	}
	return nil
}

func resolve(t Term, b Binding) *iri.Handle {
	if !t.IsVariable() {
		return t.Constant
	}
	return b[t.Variable]
}
