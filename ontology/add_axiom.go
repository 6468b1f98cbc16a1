package ontology

import (
	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/iri"
)

// AddAxiom appends ax to the flat axiom list, dispatches it into its typed
// vector by tag, and (for ClassAssertion and the two PropertyAssertion
// families) updates the class_instances/property_domains/property_ranges
// indexes — all inside a single write-locked critical section, so a reader
// never observes the flat list without its index entries (§3.7, §4.2).
func (o *Ontology) AddAxiom(ax axiom.Axiom) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.axioms = append(o.axioms, ax)
	o.byType[ax.Tag()] = append(o.byType[ax.Tag()], ax)

	switch a := ax.(type) {
	case axiom.SubClassOf:
		o.subClassOf = append(o.subClassOf, a)
	case axiom.EquivalentClasses:
		o.equivalentClasses = append(o.equivalentClasses, a)
	case axiom.DisjointClasses:
		o.disjointClasses = append(o.disjointClasses, a)
	case axiom.ClassAssertion:
		o.classAssertions = append(o.classAssertions, a)
		if a.Class != nil && a.Class.Kind == axiom.CEClass && a.Class.Named != nil && a.Individual != nil {
			key := a.Class.Named.As()
			o.classInstances[key] = append(o.classInstances[key], a.Individual)
		}
	case axiom.ObjectPropertyAssertion:
		o.objectPropertyAssertions = append(o.objectPropertyAssertions, a)
		o.indexPropertyAssertion(a.Property, a.Subject, a.Object)
	case axiom.NegativeObjectPropertyAssertion:
		o.negObjectPropertyAssertions = append(o.negObjectPropertyAssertions, a)
	case axiom.DataPropertyAssertion:
		o.dataPropertyAssertions = append(o.dataPropertyAssertions, a)
		if a.Property != nil && a.Subject != nil {
			key := a.Property.As()
			o.propertyDomains[key] = append(o.propertyDomains[key], a.Subject)
		}
	case axiom.NegativeDataPropertyAssertion:
		o.negDataPropertyAssertions = append(o.negDataPropertyAssertions, a)
	case axiom.SubObjectPropertyOf:
		o.subObjectPropertyOf = append(o.subObjectPropertyOf, a)
	case axiom.EquivalentObjectProperties:
		o.equivalentObjectProperties = append(o.equivalentObjectProperties, a)
	case axiom.DisjointObjectProperties:
		o.disjointObjectProperties = append(o.disjointObjectProperties, a)
	case axiom.SubDataPropertyOf:
		o.subDataPropertyOf = append(o.subDataPropertyOf, a)
	case axiom.EquivalentDataProperties:
		o.equivalentDataProperties = append(o.equivalentDataProperties, a)
	case axiom.DisjointDataProperties:
		o.disjointDataProperties = append(o.disjointDataProperties, a)
	case axiom.FunctionalObjectProperty:
		o.functionalObjectProperty = append(o.functionalObjectProperty, a)
	case axiom.InverseFunctionalObjectProperty:
		o.inverseFunctionalObjectProperty = append(o.inverseFunctionalObjectProperty, a)
	case axiom.TransitiveObjectProperty:
		o.transitiveObjectProperty = append(o.transitiveObjectProperty, a)
	case axiom.SymmetricObjectProperty:
		o.symmetricObjectProperty = append(o.symmetricObjectProperty, a)
	case axiom.AsymmetricObjectProperty:
		o.asymmetricObjectProperty = append(o.asymmetricObjectProperty, a)
	case axiom.ReflexiveObjectProperty:
		o.reflexiveObjectProperty = append(o.reflexiveObjectProperty, a)
	case axiom.IrreflexiveObjectProperty:
		o.irreflexiveObjectProperty = append(o.irreflexiveObjectProperty, a)
	case axiom.FunctionalDataProperty:
		o.functionalDataProperty = append(o.functionalDataProperty, a)
	case axiom.SameIndividual:
		o.sameIndividual = append(o.sameIndividual, a)
	case axiom.DifferentIndividuals:
		o.differentIndividuals = append(o.differentIndividuals, a)
	case axiom.HasKey:
		o.hasKey = append(o.hasKey, a)
	case axiom.AnnotationAssertion:
		o.annotationAssertions = append(o.annotationAssertions, a)
	case axiom.SubAnnotationPropertyOf:
		o.subAnnotationPropertyOf = append(o.subAnnotationPropertyOf, a)
	case axiom.AnnotationPropertyDomain:
		o.annotationPropertyDomain = append(o.annotationPropertyDomain, a)
	case axiom.AnnotationPropertyRange:
		o.annotationPropertyRange = append(o.annotationPropertyRange, a)
	case axiom.SubPropertyChainOf:
		o.subPropertyChainOf = append(o.subPropertyChainOf, a)
	case axiom.InverseObjectProperties:
		o.inverseObjectProperties = append(o.inverseObjectProperties, a)
	case axiom.ObjectMinQualifiedCardinality:
		o.objectMinQualifiedCardinality = append(o.objectMinQualifiedCardinality, a)
	case axiom.ObjectMaxQualifiedCardinality:
		o.objectMaxQualifiedCardinality = append(o.objectMaxQualifiedCardinality, a)
	case axiom.ObjectExactQualifiedCardinality:
		o.objectExactQualifiedCardinality = append(o.objectExactQualifiedCardinality, a)
	case axiom.DataMinQualifiedCardinality:
		o.dataMinQualifiedCardinality = append(o.dataMinQualifiedCardinality, a)
	case axiom.DataMaxQualifiedCardinality:
		o.dataMaxQualifiedCardinality = append(o.dataMaxQualifiedCardinality, a)
	case axiom.DataExactQualifiedCardinality:
		o.dataExactQualifiedCardinality = append(o.dataExactQualifiedCardinality, a)
	case axiom.ObjectPropertyDomain:
		o.objectPropertyDomain = append(o.objectPropertyDomain, a)
	case axiom.ObjectPropertyRange:
		o.objectPropertyRange = append(o.objectPropertyRange, a)
	case axiom.DataPropertyDomain:
		o.dataPropertyDomain = append(o.dataPropertyDomain, a)
	case axiom.DataPropertyRange:
		o.dataPropertyRange = append(o.dataPropertyRange, a)
	case axiom.Import:
		o.imports = append(o.imports, a)
		o.Imports = append(o.Imports, a.IRI)
	}

	return nil
}

// indexPropertyAssertion updates property_domains and property_ranges for
// an object-property assertion. property_ranges only ever holds named
// objects (§3.7 invariant); this is already guaranteed here because object
// assertions always carry an IRI object, never a literal.
func (o *Ontology) indexPropertyAssertion(property, subject, object *iri.Handle) {
	if property == nil {
		return
	}
	key := property.As()
	if subject != nil {
		o.propertyDomains[key] = append(o.propertyDomains[key], subject)
	}
	if object != nil {
		o.propertyRanges[key] = append(o.propertyRanges[key], object)
	}
}
