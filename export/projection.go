package export

import (
	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/vocabulary"
)

// OntologyView is the narrow slice of an ontology's state a Projector needs
// to produce an RDF triple set. *ontology.Ontology satisfies this
// structurally.
type OntologyView interface {
	ClassAssertions() []axiom.ClassAssertion
	ObjectPropertyAssertions() []axiom.ObjectPropertyAssertion
	DataPropertyAssertions() []axiom.DataPropertyAssertion
	SubClassAxioms() []axiom.SubClassOf
}

// Projector turns named, class-asserted axiom families into plain triples
// suitable for RDFExporter, using vocabulary.RDFType / vocabulary.RDFSSubClassOf
// for the predicate IRIs and a vocabulary.Registry for the prefix block.
type Projector struct {
	registry *vocabulary.Registry
}

// NewProjector creates a Projector backed by registry. A nil registry falls
// back to vocabulary.NewRegistry().
func NewProjector(registry *vocabulary.Registry) *Projector {
	if registry == nil {
		registry = vocabulary.NewRegistry()
	}
	return &Projector{registry: registry}
}

// Prefixes returns the short-prefix -> namespace IRI mapping backing this
// projector, for seeding an RDFExporter's Turtle/JSON-LD prefix block.
func (p *Projector) Prefixes() map[string]string {
	return p.registry.Prefixes()
}

// Project walks an ontology's named-class assertions, subclass axioms, and
// property assertions, producing one triple per axiom that names concrete
// (non-anonymous, non-expression) subjects and objects. Axioms whose class
// expressions are not simple named classes are skipped — exporting
// arbitrary class expressions as RDF requires blank-node encoding the
// export package does not attempt.
func (p *Projector) Project(o OntologyView) []Triple {
	var triples []Triple

	for _, ca := range o.ClassAssertions() {
		if ca.Class == nil || ca.Class.Kind != axiom.CEClass || ca.Class.Named == nil {
			continue
		}
		triples = append(triples, Triple{
			Subject:   ca.Individual.As(),
			Predicate: vocabulary.RDFType,
			Object:    ca.Class.Named.As(),
		})
	}

	for _, sc := range o.SubClassAxioms() {
		if sc.Sub == nil || sc.Sub.Kind != axiom.CEClass || sc.Sub.Named == nil {
			continue
		}
		if sc.Super == nil || sc.Super.Kind != axiom.CEClass || sc.Super.Named == nil {
			continue
		}
		triples = append(triples, Triple{
			Subject:   sc.Sub.Named.As(),
			Predicate: vocabulary.RDFSSubClassOf,
			Object:    sc.Super.Named.As(),
		})
	}

	for _, pa := range o.ObjectPropertyAssertions() {
		triples = append(triples, Triple{
			Subject:   pa.Subject.As(),
			Predicate: pa.Property.As(),
			Object:    pa.Object.As(),
		})
	}

	for _, da := range o.DataPropertyAssertions() {
		triples = append(triples, Triple{
			Subject:   da.Subject.As(),
			Predicate: da.Property.As(),
			Object:    da.Value.Lexical,
		})
	}

	return triples
}
