package axiom

import "github.com/c360studio/owl2store/iri"

// Tag identifies an axiom's family for the ontology's by-axiom-type index
// and for dispatch when appending to a typed vector.
type Tag int

const (
	TagSubClassOf Tag = iota
	TagEquivalentClasses
	TagDisjointClasses
	TagClassAssertion
	TagObjectPropertyAssertion
	TagNegativeObjectPropertyAssertion
	TagDataPropertyAssertion
	TagNegativeDataPropertyAssertion
	TagSubObjectPropertyOf
	TagEquivalentObjectProperties
	TagDisjointObjectProperties
	TagSubDataPropertyOf
	TagEquivalentDataProperties
	TagDisjointDataProperties
	TagFunctionalObjectProperty
	TagInverseFunctionalObjectProperty
	TagTransitiveObjectProperty
	TagSymmetricObjectProperty
	TagAsymmetricObjectProperty
	TagReflexiveObjectProperty
	TagIrreflexiveObjectProperty
	TagFunctionalDataProperty
	TagSameIndividual
	TagDifferentIndividuals
	TagHasKey
	TagAnnotationAssertion
	TagSubAnnotationPropertyOf
	TagAnnotationPropertyDomain
	TagAnnotationPropertyRange
	TagSubPropertyChainOf
	TagInverseObjectProperties
	TagObjectMinQualifiedCardinality
	TagObjectMaxQualifiedCardinality
	TagObjectExactQualifiedCardinality
	TagDataMinQualifiedCardinality
	TagDataMaxQualifiedCardinality
	TagDataExactQualifiedCardinality
	TagObjectPropertyDomain
	TagObjectPropertyRange
	TagDataPropertyDomain
	TagDataPropertyRange
	TagImport
)

// Axiom is satisfied by every axiom family struct.
type Axiom interface {
	Tag() Tag
}

// SubClassOf: Sub implies Super.
type SubClassOf struct {
	Sub, Super *ClassExpression
}

func (SubClassOf) Tag() Tag { return TagSubClassOf }

// EquivalentClasses: all listed expressions denote the same class.
type EquivalentClasses struct {
	Classes []*ClassExpression
}

func (EquivalentClasses) Tag() Tag { return TagEquivalentClasses }

// DisjointClasses: the listed expressions are pairwise disjoint.
type DisjointClasses struct {
	Classes []*ClassExpression
}

func (DisjointClasses) Tag() Tag { return TagDisjointClasses }

// ClassAssertion: Individual is an instance of Class.
type ClassAssertion struct {
	Individual *iri.Handle
	Class      *ClassExpression
}

func (ClassAssertion) Tag() Tag { return TagClassAssertion }

// ObjectPropertyAssertion: Subject-Property->Object holds.
type ObjectPropertyAssertion struct {
	Subject, Object *iri.Handle
	Property        *iri.Handle
}

func (ObjectPropertyAssertion) Tag() Tag { return TagObjectPropertyAssertion }

// NegativeObjectPropertyAssertion: Subject-Property->Object does not hold.
type NegativeObjectPropertyAssertion struct {
	Subject, Object *iri.Handle
	Property        *iri.Handle
}

func (NegativeObjectPropertyAssertion) Tag() Tag { return TagNegativeObjectPropertyAssertion }

// DataPropertyAssertion: Subject-Property->Value holds.
type DataPropertyAssertion struct {
	Subject  *iri.Handle
	Property *iri.Handle
	Value    Literal
}

func (DataPropertyAssertion) Tag() Tag { return TagDataPropertyAssertion }

// NegativeDataPropertyAssertion: Subject-Property->Value does not hold.
type NegativeDataPropertyAssertion struct {
	Subject  *iri.Handle
	Property *iri.Handle
	Value    Literal
}

func (NegativeDataPropertyAssertion) Tag() Tag { return TagNegativeDataPropertyAssertion }

// SubObjectPropertyOf: Sub implies Super.
type SubObjectPropertyOf struct {
	Sub, Super *iri.Handle
}

func (SubObjectPropertyOf) Tag() Tag { return TagSubObjectPropertyOf }

// EquivalentObjectProperties: all listed properties denote the same relation.
type EquivalentObjectProperties struct {
	Properties []*iri.Handle
}

func (EquivalentObjectProperties) Tag() Tag { return TagEquivalentObjectProperties }

// DisjointObjectProperties: the listed properties are pairwise disjoint.
type DisjointObjectProperties struct {
	Properties []*iri.Handle
}

func (DisjointObjectProperties) Tag() Tag { return TagDisjointObjectProperties }

// SubDataPropertyOf: Sub implies Super.
type SubDataPropertyOf struct {
	Sub, Super *iri.Handle
}

func (SubDataPropertyOf) Tag() Tag { return TagSubDataPropertyOf }

// EquivalentDataProperties: all listed properties denote the same relation.
type EquivalentDataProperties struct {
	Properties []*iri.Handle
}

func (EquivalentDataProperties) Tag() Tag { return TagEquivalentDataProperties }

// DisjointDataProperties: the listed properties are pairwise disjoint.
type DisjointDataProperties struct {
	Properties []*iri.Handle
}

func (DisjointDataProperties) Tag() Tag { return TagDisjointDataProperties }

// FunctionalObjectProperty: Property has at most one value per subject.
type FunctionalObjectProperty struct{ Property *iri.Handle }

func (FunctionalObjectProperty) Tag() Tag { return TagFunctionalObjectProperty }

// InverseFunctionalObjectProperty: Property has at most one subject per value.
type InverseFunctionalObjectProperty struct{ Property *iri.Handle }

func (InverseFunctionalObjectProperty) Tag() Tag { return TagInverseFunctionalObjectProperty }

// TransitiveObjectProperty: Property is transitive.
type TransitiveObjectProperty struct{ Property *iri.Handle }

func (TransitiveObjectProperty) Tag() Tag { return TagTransitiveObjectProperty }

// SymmetricObjectProperty: Property is symmetric.
type SymmetricObjectProperty struct{ Property *iri.Handle }

func (SymmetricObjectProperty) Tag() Tag { return TagSymmetricObjectProperty }

// AsymmetricObjectProperty: Property is asymmetric.
type AsymmetricObjectProperty struct{ Property *iri.Handle }

func (AsymmetricObjectProperty) Tag() Tag { return TagAsymmetricObjectProperty }

// ReflexiveObjectProperty: Property relates every individual to itself.
type ReflexiveObjectProperty struct{ Property *iri.Handle }

func (ReflexiveObjectProperty) Tag() Tag { return TagReflexiveObjectProperty }

// IrreflexiveObjectProperty: Property never relates an individual to itself.
type IrreflexiveObjectProperty struct{ Property *iri.Handle }

func (IrreflexiveObjectProperty) Tag() Tag { return TagIrreflexiveObjectProperty }

// FunctionalDataProperty: Property has at most one value per subject.
type FunctionalDataProperty struct{ Property *iri.Handle }

func (FunctionalDataProperty) Tag() Tag { return TagFunctionalDataProperty }

// SameIndividual: the listed individuals denote the same thing.
type SameIndividual struct {
	Individuals []*iri.Handle
}

func (SameIndividual) Tag() Tag { return TagSameIndividual }

// DifferentIndividuals: the listed individuals are pairwise distinct.
type DifferentIndividuals struct {
	Individuals []*iri.Handle
}

func (DifferentIndividuals) Tag() Tag { return TagDifferentIndividuals }

// HasKey: Class instances are uniquely identified by the combination of
// ObjectProperties and DataProperties values.
type HasKey struct {
	Class            *ClassExpression
	ObjectProperties []*iri.Handle
	DataProperties   []*iri.Handle
}

func (HasKey) Tag() Tag { return TagHasKey }

// AnnotationAssertion: Subject is annotated by Property with Value.
type AnnotationAssertion struct {
	Subject  *iri.Handle
	Property *iri.Handle
	Value    AnnotationValue
}

func (AnnotationAssertion) Tag() Tag { return TagAnnotationAssertion }

// AnnotationValue is either an IRI or a literal.
type AnnotationValue struct {
	IRI     *iri.Handle // nil if this is a literal value
	Literal Literal
}

// SubAnnotationPropertyOf: Sub implies Super.
type SubAnnotationPropertyOf struct {
	Sub, Super *iri.Handle
}

func (SubAnnotationPropertyOf) Tag() Tag { return TagSubAnnotationPropertyOf }

// AnnotationPropertyDomain: Property's subjects are instances of Domain.
type AnnotationPropertyDomain struct {
	Property *iri.Handle
	Domain   *iri.Handle
}

func (AnnotationPropertyDomain) Tag() Tag { return TagAnnotationPropertyDomain }

// AnnotationPropertyRange: Property's values are instances of Range.
type AnnotationPropertyRange struct {
	Property *iri.Handle
	Range    *iri.Handle
}

func (AnnotationPropertyRange) Tag() Tag { return TagAnnotationPropertyRange }

// SubPropertyChainOf: composing Chain (in order) implies Super.
type SubPropertyChainOf struct {
	Chain []*iri.Handle
	Super *iri.Handle
}

func (SubPropertyChainOf) Tag() Tag { return TagSubPropertyChainOf }

// InverseObjectProperties: First and Second are inverses of each other.
type InverseObjectProperties struct {
	First, Second *iri.Handle
}

func (InverseObjectProperties) Tag() Tag { return TagInverseObjectProperties }

// ObjectMinQualifiedCardinality: at least N Property-fillers in On.
type ObjectMinQualifiedCardinality struct {
	Class       *iri.Handle
	Property    ObjectPropertyExpr
	Cardinality int
	On          *ClassExpression
}

func (ObjectMinQualifiedCardinality) Tag() Tag { return TagObjectMinQualifiedCardinality }

// ObjectMaxQualifiedCardinality: at most N Property-fillers in On.
type ObjectMaxQualifiedCardinality struct {
	Class       *iri.Handle
	Property    ObjectPropertyExpr
	Cardinality int
	On          *ClassExpression
}

func (ObjectMaxQualifiedCardinality) Tag() Tag { return TagObjectMaxQualifiedCardinality }

// ObjectExactQualifiedCardinality: exactly N Property-fillers in On.
type ObjectExactQualifiedCardinality struct {
	Class       *iri.Handle
	Property    ObjectPropertyExpr
	Cardinality int
	On          *ClassExpression
}

func (ObjectExactQualifiedCardinality) Tag() Tag { return TagObjectExactQualifiedCardinality }

// DataMinQualifiedCardinality: at least N Property-fillers in On.
type DataMinQualifiedCardinality struct {
	Class       *iri.Handle
	Property    *iri.Handle
	Cardinality int
	On          *DataRange
}

func (DataMinQualifiedCardinality) Tag() Tag { return TagDataMinQualifiedCardinality }

// DataMaxQualifiedCardinality: at most N Property-fillers in On.
type DataMaxQualifiedCardinality struct {
	Class       *iri.Handle
	Property    *iri.Handle
	Cardinality int
	On          *DataRange
}

func (DataMaxQualifiedCardinality) Tag() Tag { return TagDataMaxQualifiedCardinality }

// DataExactQualifiedCardinality: exactly N Property-fillers in On.
type DataExactQualifiedCardinality struct {
	Class       *iri.Handle
	Property    *iri.Handle
	Cardinality int
	On          *DataRange
}

func (DataExactQualifiedCardinality) Tag() Tag { return TagDataExactQualifiedCardinality }

// ObjectPropertyDomain: Property's subjects are instances of Domain.
type ObjectPropertyDomain struct {
	Property *iri.Handle
	Domain   *ClassExpression
}

func (ObjectPropertyDomain) Tag() Tag { return TagObjectPropertyDomain }

// ObjectPropertyRange: Property's objects are instances of Range.
type ObjectPropertyRange struct {
	Property *iri.Handle
	Range    *ClassExpression
}

func (ObjectPropertyRange) Tag() Tag { return TagObjectPropertyRange }

// DataPropertyDomain: Property's subjects are instances of Domain.
type DataPropertyDomain struct {
	Property *iri.Handle
	Domain   *ClassExpression
}

func (DataPropertyDomain) Tag() Tag { return TagDataPropertyDomain }

// DataPropertyRange: Property's values lie in Range.
type DataPropertyRange struct {
	Property *iri.Handle
	Range    *DataRange
}

func (DataPropertyRange) Tag() Tag { return TagDataPropertyRange }

// Import: pulls in the ontology identified by IRI.
type Import struct{ IRI *iri.Handle }

func (Import) Tag() Tag { return TagImport }
