// Package ontology implements the ontology store (C5): deduplicated entity
// sets, a flat axiom list with parallel typed vectors, the three lookup
// indexes, and structural validation, under a single-writer/multi-reader
// concurrency discipline.
package ontology

import (
	"sync"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/entity"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/owlerr"
)

const (
	// MaxClassIRILength is the maximum length of a class IRI string (§3.7).
	MaxClassIRILength = 2048
	// MaxCardinality is the threshold above which a cardinality constant is
	// reported as a structural-validation violation, not rejected (§4.2.3).
	MaxCardinality = 1_000_000
)

// Ontology holds entity sets, axioms, and derived indexes for one
// knowledge base. Zero value is not usable; construct with New.
//
// Concurrency: single-writer, multi-reader. AddClass/AddObjectProperty/
// AddDataProperty/AddAnnotationProperty/AddIndividual/AddAxiom take the
// write lock; every other method takes the
// read lock. Index maintenance happens inside the same critical section as
// the axiom-list append, so no reader ever observes an axiom without its
// index entries (§3.7 invariant).
type Ontology struct {
	mu sync.RWMutex

	IRI        *iri.Handle
	VersionIRI *iri.Handle
	Imports    []*iri.Handle

	classes          map[string]entity.Class
	objectProperties map[string]entity.ObjectProperty
	dataProperties   map[string]entity.DataProperty
	namedIndividuals map[string]entity.NamedIndividual
	annotationProps  map[string]entity.AnnotationProperty

	axioms []axiom.Axiom

	subClassOf                      []axiom.SubClassOf
	equivalentClasses                []axiom.EquivalentClasses
	disjointClasses                  []axiom.DisjointClasses
	classAssertions                  []axiom.ClassAssertion
	objectPropertyAssertions         []axiom.ObjectPropertyAssertion
	negObjectPropertyAssertions      []axiom.NegativeObjectPropertyAssertion
	dataPropertyAssertions           []axiom.DataPropertyAssertion
	negDataPropertyAssertions        []axiom.NegativeDataPropertyAssertion
	subObjectPropertyOf              []axiom.SubObjectPropertyOf
	equivalentObjectProperties       []axiom.EquivalentObjectProperties
	disjointObjectProperties         []axiom.DisjointObjectProperties
	subDataPropertyOf                []axiom.SubDataPropertyOf
	equivalentDataProperties         []axiom.EquivalentDataProperties
	disjointDataProperties           []axiom.DisjointDataProperties
	functionalObjectProperty         []axiom.FunctionalObjectProperty
	inverseFunctionalObjectProperty  []axiom.InverseFunctionalObjectProperty
	transitiveObjectProperty         []axiom.TransitiveObjectProperty
	symmetricObjectProperty          []axiom.SymmetricObjectProperty
	asymmetricObjectProperty         []axiom.AsymmetricObjectProperty
	reflexiveObjectProperty          []axiom.ReflexiveObjectProperty
	irreflexiveObjectProperty        []axiom.IrreflexiveObjectProperty
	functionalDataProperty           []axiom.FunctionalDataProperty
	sameIndividual                   []axiom.SameIndividual
	differentIndividuals             []axiom.DifferentIndividuals
	hasKey                           []axiom.HasKey
	annotationAssertions             []axiom.AnnotationAssertion
	subAnnotationPropertyOf          []axiom.SubAnnotationPropertyOf
	annotationPropertyDomain         []axiom.AnnotationPropertyDomain
	annotationPropertyRange          []axiom.AnnotationPropertyRange
	subPropertyChainOf               []axiom.SubPropertyChainOf
	inverseObjectProperties          []axiom.InverseObjectProperties
	objectMinQualifiedCardinality    []axiom.ObjectMinQualifiedCardinality
	objectMaxQualifiedCardinality    []axiom.ObjectMaxQualifiedCardinality
	objectExactQualifiedCardinality  []axiom.ObjectExactQualifiedCardinality
	dataMinQualifiedCardinality      []axiom.DataMinQualifiedCardinality
	dataMaxQualifiedCardinality      []axiom.DataMaxQualifiedCardinality
	dataExactQualifiedCardinality    []axiom.DataExactQualifiedCardinality
	objectPropertyDomain             []axiom.ObjectPropertyDomain
	objectPropertyRange              []axiom.ObjectPropertyRange
	dataPropertyDomain               []axiom.DataPropertyDomain
	dataPropertyRange                []axiom.DataPropertyRange
	imports                          []axiom.Import

	byType map[axiom.Tag][]axiom.Axiom

	// classInstances[C] contains a iff a ClassAssertion axiom stores
	// individual a against the named class C (§3.7 invariant: subclass
	// derivations are not reflected here unless the rule engine has run
	// and appended its own ClassAssertion axioms).
	classInstances map[string][]*iri.Handle
	// propertyDomains[P] lists subject IRIs observed in a PropertyAssertion
	// (object or data) on property P.
	propertyDomains map[string][]*iri.Handle
	// propertyRanges[P] lists *named* object IRIs observed in an
	// ObjectPropertyAssertion on property P; literal objects never appear.
	propertyRanges map[string][]*iri.Handle
}

// New returns an empty, writable ontology.
func New(iriHandle, versionIRI *iri.Handle) *Ontology {
	return &Ontology{
		IRI:              iriHandle,
		VersionIRI:       versionIRI,
		classes:          make(map[string]entity.Class),
		objectProperties: make(map[string]entity.ObjectProperty),
		dataProperties:   make(map[string]entity.DataProperty),
		namedIndividuals: make(map[string]entity.NamedIndividual),
		annotationProps:  make(map[string]entity.AnnotationProperty),
		byType:           make(map[axiom.Tag][]axiom.Axiom),
		classInstances:   make(map[string][]*iri.Handle),
		propertyDomains:  make(map[string][]*iri.Handle),
		propertyRanges:   make(map[string][]*iri.Handle),
	}
}

func isRestrictedBuiltinClass(s string) bool {
	return s == "owl:Nothing" || s == "rdfs:Resource" ||
		s == "http://www.w3.org/2002/07/owl#Nothing" ||
		s == "http://www.w3.org/2000/01/rdf-schema#Resource"
}

// AddClass registers c, validating its IRI and rejecting restricted
// built-ins. Re-adding an already-present class (by IRI) is a no-op.
func (o *Ontology) AddClass(c entity.Class) error {
	if err := validateEntityIRI(c.IRI, MaxClassIRILength); err != nil {
		return err
	}
	if isRestrictedBuiltinClass(c.IRI.As()) {
		return owlerr.Newf(owlerr.KindEntityValidation, "add_class",
			"%q is a restricted built-in class and cannot be added as a user class", c.IRI.As()).
			WithContext("iri", c.IRI.As())
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.classes[c.IRI.As()] = c
	return nil
}

// AddObjectProperty registers p. Idempotent on duplicates.
func (o *Ontology) AddObjectProperty(p entity.ObjectProperty) error {
	if err := validateEntityIRI(p.IRI, 0); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.objectProperties[p.IRI.As()] = p
	return nil
}

// AddDataProperty registers p. Idempotent on duplicates.
func (o *Ontology) AddDataProperty(p entity.DataProperty) error {
	if err := validateEntityIRI(p.IRI, 0); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dataProperties[p.IRI.As()] = p
	return nil
}

// AddIndividual registers i. Idempotent on duplicates.
func (o *Ontology) AddIndividual(i entity.NamedIndividual) error {
	if err := validateEntityIRI(i.IRI, 0); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.namedIndividuals[i.IRI.As()] = i
	return nil
}

// AddAnnotationProperty registers p. Idempotent on duplicates.
func (o *Ontology) AddAnnotationProperty(p entity.AnnotationProperty) error {
	if err := validateEntityIRI(p.IRI, 0); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.annotationProps[p.IRI.As()] = p
	return nil
}

func validateEntityIRI(h *iri.Handle, maxLen int) error {
	if h == nil {
		return owlerr.New(owlerr.KindEntityValidation, "add_entity", "entity IRI handle is nil")
	}
	if err := iri.Validate(h.As()); err != nil {
		return err
	}
	if maxLen > 0 && len(h.As()) > maxLen {
		return owlerr.Newf(owlerr.KindEntityValidation, "add_entity",
			"IRI exceeds maximum length %d for this entity kind", maxLen).
			WithContext("iri", h.As())
	}
	return nil
}

// Classes returns the deduplicated set of registered classes.
func (o *Ontology) Classes() []entity.Class {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]entity.Class, 0, len(o.classes))
	for _, c := range o.classes {
		out = append(out, c)
	}
	return out
}

// ObjectProperties returns the deduplicated set of registered object
// properties.
func (o *Ontology) ObjectProperties() []entity.ObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]entity.ObjectProperty, 0, len(o.objectProperties))
	for _, p := range o.objectProperties {
		out = append(out, p)
	}
	return out
}

// HasClass reports whether the given class IRI is registered.
func (o *Ontology) HasClass(iriStr string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.classes[iriStr]
	return ok
}

// AxiomCount returns the total number of axioms appended.
func (o *Ontology) AxiomCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.axioms)
}

// AxiomsByType returns every axiom stored under tag, an O(1) lookup into
// the by-axiom-type index.
func (o *Ontology) AxiomsByType(tag axiom.Tag) []axiom.Axiom {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.byType[tag]
}

// SubClassAxioms is a typed accessor returning a borrowed view of the
// SubClassOf vector.
func (o *Ontology) SubClassAxioms() []axiom.SubClassOf {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.subClassOf
}

// EquivalentClassAxioms is a typed accessor returning a borrowed view of the
// EquivalentClasses vector.
func (o *Ontology) EquivalentClassAxioms() []axiom.EquivalentClasses {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.equivalentClasses
}

// DisjointClassAxioms is a typed accessor returning a borrowed view of the
// DisjointClasses vector.
func (o *Ontology) DisjointClassAxioms() []axiom.DisjointClasses {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.disjointClasses
}

// TransitiveObjectPropertyAxioms is a typed accessor returning a borrowed
// view of the TransitiveObjectProperty vector.
func (o *Ontology) TransitiveObjectPropertyAxioms() []axiom.TransitiveObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.transitiveObjectProperty
}

// AsymmetricObjectPropertyAxioms is a typed accessor returning a borrowed
// view of the AsymmetricObjectProperty vector.
func (o *Ontology) AsymmetricObjectPropertyAxioms() []axiom.AsymmetricObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.asymmetricObjectProperty
}

// IrreflexiveObjectPropertyAxioms is a typed accessor returning a borrowed
// view of the IrreflexiveObjectProperty vector.
func (o *Ontology) IrreflexiveObjectPropertyAxioms() []axiom.IrreflexiveObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.irreflexiveObjectProperty
}

// SymmetricObjectPropertyAxioms is a typed accessor returning a borrowed
// view of the SymmetricObjectProperty vector.
func (o *Ontology) SymmetricObjectPropertyAxioms() []axiom.SymmetricObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.symmetricObjectProperty
}

// SubPropertyChainOfAxioms is a typed accessor returning a borrowed view of
// the SubPropertyChainOf vector.
func (o *Ontology) SubPropertyChainOfAxioms() []axiom.SubPropertyChainOf {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.subPropertyChainOf
}

// ClassAssertions is a typed accessor returning a borrowed view of the
// ClassAssertion vector.
func (o *Ontology) ClassAssertions() []axiom.ClassAssertion {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.classAssertions
}

// ObjectPropertyAssertions is a typed accessor returning a borrowed view of
// the ObjectPropertyAssertion vector.
func (o *Ontology) ObjectPropertyAssertions() []axiom.ObjectPropertyAssertion {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.objectPropertyAssertions
}

// DataPropertyAssertions is a typed accessor returning a borrowed view of
// the DataPropertyAssertion vector.
func (o *Ontology) DataPropertyAssertions() []axiom.DataPropertyAssertion {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.dataPropertyAssertions
}

// ClassInstances returns the class_instances[classIRI] index entry: every
// individual IRI with a stored ClassAssertion against the named class.
func (o *Ontology) ClassInstances(classIRI string) []*iri.Handle {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.classInstances[classIRI]
}

// PropertyDomains returns the property_domains[propertyIRI] index entry.
func (o *Ontology) PropertyDomains(propertyIRI string) []*iri.Handle {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.propertyDomains[propertyIRI]
}

// PropertyRanges returns the property_ranges[propertyIRI] index entry
// (named objects only; literal objects are never indexed here).
func (o *Ontology) PropertyRanges(propertyIRI string) []*iri.Handle {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.propertyRanges[propertyIRI]
}
