package ontology

import (
	"unicode"

	"github.com/c360studio/owl2store/axiom"
)

// ViolationKind tags the structural-validation check that produced a
// Violation.
type ViolationKind int

const (
	ViolationCircularSubClass ViolationKind = iota
	ViolationCharacteristicConflict
	ViolationExcessiveCardinality
	ViolationDuplicateDisjoint
	ViolationControlCharacterIRI
)

// Violation reports a single structural-validation finding. Validation never
// mutates the ontology; it only observes and reports (§4.2).
type Violation struct {
	Kind    ViolationKind
	Message string
	Entity  string
}

// Validate runs every structural check over the ontology's current state
// and returns every violation found; it never stops at the first.
func (o *Ontology) Validate() []Violation {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var violations []Violation
	violations = append(violations, o.checkCircularSubClassLocked()...)
	violations = append(violations, o.checkCharacteristicConflictsLocked()...)
	violations = append(violations, o.checkExcessiveCardinalityLocked()...)
	violations = append(violations, o.checkDuplicateDisjointsLocked()...)
	violations = append(violations, o.checkControlCharacterIRIsLocked()...)
	return violations
}

// checkCircularSubClassLocked walks the SubClassOf graph restricted to
// named-class edges with DFS + recursion stack; a back-edge onto the
// current path is a cycle (§4.2.1).
func (o *Ontology) checkCircularSubClassLocked() []Violation {
	edges := make(map[string][]string)
	for _, sc := range o.subClassOf {
		if sc.Sub == nil || sc.Super == nil {
			continue
		}
		if sc.Sub.Kind != axiom.CEClass || sc.Super.Kind != axiom.CEClass {
			continue
		}
		if sc.Sub.Named == nil || sc.Super.Named == nil {
			continue
		}
		sub := sc.Sub.Named.As()
		edges[sub] = append(edges[sub], sc.Super.Named.As())
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)
	var violations []Violation

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, next := range edges[node] {
			switch color[next] {
			case gray:
				violations = append(violations, Violation{
					Kind:    ViolationCircularSubClass,
					Message: "circular subclass chain detected",
					Entity:  next,
				})
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for node := range edges {
		if color[node] == white {
			visit(node)
		}
	}
	return violations
}

// checkCharacteristicConflictsLocked flags object properties declared both
// asymmetric and symmetric, or both reflexive and irreflexive (§4.2.2).
func (o *Ontology) checkCharacteristicConflictsLocked() []Violation {
	symmetric := make(map[string]bool)
	asymmetric := make(map[string]bool)
	reflexive := make(map[string]bool)
	irreflexive := make(map[string]bool)

	for _, a := range o.symmetricObjectProperty {
		if a.Property != nil {
			symmetric[a.Property.As()] = true
		}
	}
	for _, a := range o.asymmetricObjectProperty {
		if a.Property != nil {
			asymmetric[a.Property.As()] = true
		}
	}
	for _, a := range o.reflexiveObjectProperty {
		if a.Property != nil {
			reflexive[a.Property.As()] = true
		}
	}
	for _, a := range o.irreflexiveObjectProperty {
		if a.Property != nil {
			irreflexive[a.Property.As()] = true
		}
	}

	var violations []Violation
	for p := range symmetric {
		if asymmetric[p] {
			violations = append(violations, Violation{
				Kind:    ViolationCharacteristicConflict,
				Message: "object property declared both symmetric and asymmetric",
				Entity:  p,
			})
		}
	}
	for p := range reflexive {
		if irreflexive[p] {
			violations = append(violations, Violation{
				Kind:    ViolationCharacteristicConflict,
				Message: "object property declared both reflexive and irreflexive",
				Entity:  p,
			})
		}
	}
	return violations
}

// checkExcessiveCardinalityLocked flags cardinality constants over
// MaxCardinality as a structural-validation violation; the axiom itself was
// accepted at insertion (§4.2.3).
func (o *Ontology) checkExcessiveCardinalityLocked() []Violation {
	var violations []Violation
	flag := func(n int, entityLabel string) {
		if n > MaxCardinality {
			violations = append(violations, Violation{
				Kind:    ViolationExcessiveCardinality,
				Message: "cardinality constant exceeds 1,000,000",
				Entity:  entityLabel,
			})
		}
	}
	for _, a := range o.objectMinQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	for _, a := range o.objectMaxQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	for _, a := range o.objectExactQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	for _, a := range o.dataMinQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	for _, a := range o.dataMaxQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	for _, a := range o.dataExactQualifiedCardinality {
		flag(a.Cardinality, a.Class.As())
	}
	return violations
}

// checkDuplicateDisjointsLocked flags DisjointClasses axioms that name the
// same class expression more than once (§4.2.4).
func (o *Ontology) checkDuplicateDisjointsLocked() []Violation {
	var violations []Violation
	for _, dc := range o.disjointClasses {
		seen := make(map[string]bool)
		for _, ce := range dc.Classes {
			if ce == nil || ce.Kind != axiom.CEClass || ce.Named == nil {
				continue
			}
			key := ce.Named.As()
			if seen[key] {
				violations = append(violations, Violation{
					Kind:    ViolationDuplicateDisjoint,
					Message: "disjoint-classes axiom names the same class more than once",
					Entity:  key,
				})
			}
			seen[key] = true
		}
	}
	return violations
}

// checkControlCharacterIRIsLocked flags entity IRIs containing control
// characters (§4.2.5).
func (o *Ontology) checkControlCharacterIRIsLocked() []Violation {
	var violations []Violation
	check := func(s string) {
		for _, r := range s {
			if unicode.IsControl(r) {
				violations = append(violations, Violation{
					Kind:    ViolationControlCharacterIRI,
					Message: "entity IRI contains a control character",
					Entity:  s,
				})
				return
			}
		}
	}
	for k := range o.classes {
		check(k)
	}
	for k := range o.objectProperties {
		check(k)
	}
	for k := range o.dataProperties {
		check(k)
	}
	for k := range o.namedIndividuals {
		check(k)
	}
	for k := range o.annotationProps {
		check(k)
	}
	return violations
}
