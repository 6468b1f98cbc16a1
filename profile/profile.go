// Package profile implements the EL, QL, and RL profile validators (C6):
// read-only walkers over an ontology's class expressions that report
// profile-violating constructs.
package profile

import "github.com/c360studio/owl2store/axiom"

// Severity distinguishes a hard profile-membership blocker from an allowed
// but discouraged construct.
type Severity int

const (
	// SeverityError means profile membership is impossible while this
	// construct is present.
	SeverityError Severity = iota
	// SeverityWarning means the construct is allowed but may impair
	// reasoner compatibility with tools expecting strict profile input.
	SeverityWarning
)

// Violation reports one profile-incompatible construct found during a walk.
type Violation struct {
	Kind              string
	Message           string
	AffectedEntities  []string
	Severity          Severity
}

// Profile is implemented by EL, QL, and RL.
type Profile interface {
	// Name returns the profile's short name ("EL", "QL", "RL").
	Name() string
	// Validate walks every class expression reachable from o's SubClassOf
	// and EquivalentClasses axioms and returns every violation found; it
	// never stops at the first.
	Validate(o OntologyView) []Violation
	// QuickCheck short-circuits on the first disqualifying top-level axiom,
	// for fast profile detection.
	QuickCheck(o OntologyView) bool
}

// OntologyView is the narrow read-only surface the validators need; it is
// satisfied by *ontology.Ontology. Validate and QuickCheck depend only on
// this interface; RLOptimizationHints takes an *ontology.Ontology directly.
type OntologyView interface {
	SubClassAxioms() []axiom.SubClassOf
	EquivalentClassAxioms() []axiom.EquivalentClasses
	DisjointClassAxioms() []axiom.DisjointClasses
	TransitiveObjectPropertyAxioms() []axiom.TransitiveObjectProperty
	AsymmetricObjectPropertyAxioms() []axiom.AsymmetricObjectProperty
	IrreflexiveObjectPropertyAxioms() []axiom.IrreflexiveObjectProperty
	SubPropertyChainOfAxioms() []axiom.SubPropertyChainOf
}

// walkContext threads the identifying "outer axiom" entity down a
// recursive class-expression walk, so a violation found deep inside an
// expression can still be attributed to the top-level axiom (§4.3).
type walkContext struct {
	outerEntity string
}
