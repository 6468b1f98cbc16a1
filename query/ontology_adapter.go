package query

import (
	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/ontology"
	"github.com/c360studio/owl2store/rules"
)

// OntologyView is the subset of *ontology.Ontology the query engine scans.
// Declaring it lets OntologySource wrap either a live ontology or a fixture
// in tests.
type OntologyView interface {
	ClassInstances(classIRI string) []string
	ClassAssertions() []axiom.ClassAssertion
	ObjectPropertyAssertions() []axiom.ObjectPropertyAssertion
	DataPropertyAssertions() []axiom.DataPropertyAssertion
}

// OntologySource adapts an OntologyView to Source, flattening the typed
// axiom structs into Facts and *iri.Handle results into plain IRI strings.
type OntologySource struct {
	view OntologyView
}

// NewOntologySource wraps o for use as a query Source.
func NewOntologySource(o *ontology.Ontology) *OntologySource {
	return &OntologySource{view: ontologyView{o}}
}

// ClassInstances returns the individuals asserted (directly) to be members
// of classIRI.
func (s *OntologySource) ClassInstances(classIRI string) []string {
	return s.view.ClassInstances(classIRI)
}

// ClassAssertions returns every rdf:type fact whose class is a named class.
// Assertions against an anonymous class expression have no single IRI
// object and are omitted.
func (s *OntologySource) ClassAssertions() []Fact {
	var out []Fact
	for _, ca := range s.view.ClassAssertions() {
		if ca.Class == nil || ca.Class.Kind != axiom.CEClass || ca.Class.Named == nil {
			continue
		}
		out = append(out, Fact{Subject: ca.Individual.As(), Predicate: RDFType, Object: ca.Class.Named.As()})
	}
	return out
}

// ObjectPropertyAssertions returns every object-property fact as a Fact.
func (s *OntologySource) ObjectPropertyAssertions() []Fact {
	assertions := s.view.ObjectPropertyAssertions()
	out := make([]Fact, 0, len(assertions))
	for _, pa := range assertions {
		out = append(out, Fact{Subject: pa.Subject.As(), Predicate: pa.Property.As(), Object: pa.Object.As()})
	}
	return out
}

// DataPropertyAssertions returns every data-property fact as a Fact, using
// the literal's lexical form as the object value.
func (s *OntologySource) DataPropertyAssertions() []Fact {
	assertions := s.view.DataPropertyAssertions()
	out := make([]Fact, 0, len(assertions))
	for _, da := range assertions {
		out = append(out, Fact{Subject: da.Subject.As(), Predicate: da.Property.As(), Object: da.Value.Lexical})
	}
	return out
}

// ontologyView adapts *ontology.Ontology's *iri.Handle-returning
// ClassInstances to OntologyView's string-returning signature.
type ontologyView struct {
	o *ontology.Ontology
}

func (v ontologyView) ClassInstances(classIRI string) []string {
	handles := v.o.ClassInstances(classIRI)
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = h.As()
	}
	return out
}

func (v ontologyView) ClassAssertions() []axiom.ClassAssertion { return v.o.ClassAssertions() }

func (v ontologyView) ObjectPropertyAssertions() []axiom.ObjectPropertyAssertion {
	return v.o.ObjectPropertyAssertions()
}

func (v ontologyView) DataPropertyAssertions() []axiom.DataPropertyAssertion {
	return v.o.DataPropertyAssertions()
}

// DerivedFactsSource layers rule-engine derived class/property facts over a
// base OntologySource for reasoning-enabled execution: ClassInstances and
// ClassAssertions return the union of stored and derived facts; the
// property-assertion scans return the stored facts only.
type DerivedFactsSource struct {
	base    *OntologySource
	derived []Fact
}

// NewDerivedFactsSource wraps base, adding derivedClassFacts (typically the
// NewClassAssertions a rule run produced) to the class-membership scans.
func NewDerivedFactsSource(base *OntologySource, derivedClassFacts []Fact) *DerivedFactsSource {
	return &DerivedFactsSource{base: base, derived: derivedClassFacts}
}

// MultiSource scans every constituent Source and concatenates their
// results, giving an unscoped query (§3.8 "a triple pattern may be
// unscoped ... matches all graphs") a single Source to execute against.
type MultiSource struct {
	sources []Source
}

// NewMultiSource builds a MultiSource over the given graph sources.
func NewMultiSource(sources ...Source) *MultiSource {
	return &MultiSource{sources: sources}
}

func (m *MultiSource) ClassInstances(classIRI string) []string {
	var out []string
	for _, s := range m.sources {
		out = append(out, s.ClassInstances(classIRI)...)
	}
	return out
}

func (m *MultiSource) ClassAssertions() []Fact {
	var out []Fact
	for _, s := range m.sources {
		out = append(out, s.ClassAssertions()...)
	}
	return out
}

func (m *MultiSource) ObjectPropertyAssertions() []Fact {
	var out []Fact
	for _, s := range m.sources {
		out = append(out, s.ObjectPropertyAssertions()...)
	}
	return out
}

func (m *MultiSource) DataPropertyAssertions() []Fact {
	var out []Fact
	for _, s := range m.sources {
		out = append(out, s.DataPropertyAssertions()...)
	}
	return out
}

// DerivedFactsFromRuleResult converts a rule run's newly derived class
// assertions into the Fact form DerivedFactsSource expects, dropping the
// property/subclass derivations the current access paths do not scan.
func DerivedFactsFromRuleResult(result *rules.Result) []Fact {
	facts := make([]Fact, 0, len(result.NewClassAssertions))
	for _, ca := range result.NewClassAssertions {
		facts = append(facts, Fact{Subject: ca.Individual.As(), Predicate: RDFType, Object: ca.Class.As()})
	}
	return facts
}

// ClassInstances returns base's stored instances plus any derived class
// facts whose class matches classIRI.
func (s *DerivedFactsSource) ClassInstances(classIRI string) []string {
	out := s.base.ClassInstances(classIRI)
	for _, f := range s.derived {
		if f.Predicate == RDFType && f.Object == classIRI {
			out = append(out, f.Subject)
		}
	}
	return out
}

// ClassAssertions returns base's stored class assertions plus the derived
// facts, as Facts.
func (s *DerivedFactsSource) ClassAssertions() []Fact {
	out := s.base.ClassAssertions()
	return append(out, s.derived...)
}

// ObjectPropertyAssertions delegates to base; property assertions derived
// by a rule run (transitive/symmetric rules) are not included, since
// DerivedFactsFromRuleResult keeps only class assertions.
func (s *DerivedFactsSource) ObjectPropertyAssertions() []Fact {
	return s.base.ObjectPropertyAssertions()
}

// DataPropertyAssertions delegates to base.
func (s *DerivedFactsSource) DataPropertyAssertions() []Fact {
	return s.base.DataPropertyAssertions()
}
