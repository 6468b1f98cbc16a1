// Package entity defines the six OWL2 entity kinds (§3.2): Class,
// ObjectProperty, DataProperty, NamedIndividual, AnonymousIndividual, and
// AnnotationProperty, each a thin typed wrapper over an iri.Handle.
package entity

import (
	"fmt"

	"github.com/c360studio/owl2store/iri"
	"github.com/google/uuid"
)

// Kind distinguishes the six entity kinds.
type Kind int

const (
	KindClass Kind = iota
	KindObjectProperty
	KindDataProperty
	KindNamedIndividual
	KindAnonymousIndividual
	KindAnnotationProperty
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindObjectProperty:
		return "ObjectProperty"
	case KindDataProperty:
		return "DataProperty"
	case KindNamedIndividual:
		return "NamedIndividual"
	case KindAnonymousIndividual:
		return "AnonymousIndividual"
	case KindAnnotationProperty:
		return "AnnotationProperty"
	default:
		return "Unknown"
	}
}

// Class is a named OWL2 class.
type Class struct{ IRI *iri.Handle }

func (c Class) Kind() Kind     { return KindClass }
func (c Class) String() string { return c.IRI.As() }

// Characteristics is the set of seven object-property flags §3.2 assigns
// to object properties (functional is shared with data properties, but is
// tracked per-kind to keep the two entity types independent).
type Characteristics struct {
	Functional        bool
	InverseFunctional bool
	Transitive        bool
	Symmetric         bool
	Asymmetric        bool
	Reflexive         bool
	Irreflexive       bool
}

// ObjectProperty is a named object property, carrying characteristic flags.
type ObjectProperty struct {
	IRI             *iri.Handle
	Characteristics Characteristics
}

func (p ObjectProperty) Kind() Kind     { return KindObjectProperty }
func (p ObjectProperty) String() string { return p.IRI.As() }

// DataProperty is a named data property. Only "functional" applies to data
// properties per §3.6.
type DataProperty struct {
	IRI        *iri.Handle
	Functional bool
}

func (p DataProperty) Kind() Kind     { return KindDataProperty }
func (p DataProperty) String() string { return p.IRI.As() }

// NamedIndividual is a named OWL2 individual.
type NamedIndividual struct{ IRI *iri.Handle }

func (i NamedIndividual) Kind() Kind     { return KindNamedIndividual }
func (i NamedIndividual) String() string { return i.IRI.As() }

// AnonymousIndividual is identified by a blank-node tag rather than an IRI
// (§3.2).
type AnonymousIndividual struct{ Tag string }

// NewAnonymousIndividual allocates a fresh anonymous individual tag. The tag
// embeds a random UUID rather than a counter so tags stay unique across
// ledger replay and multi-process ingestion, not just within one process.
func NewAnonymousIndividual() AnonymousIndividual {
	return AnonymousIndividual{Tag: fmt.Sprintf("_:b%s", uuid.NewString())}
}

func (i AnonymousIndividual) Kind() Kind     { return KindAnonymousIndividual }
func (i AnonymousIndividual) String() string { return i.Tag }

// AnnotationProperty is a named annotation property.
type AnnotationProperty struct{ IRI *iri.Handle }

func (p AnnotationProperty) Kind() Kind     { return KindAnnotationProperty }
func (p AnnotationProperty) String() string { return p.IRI.As() }

// Individual is satisfied by both NamedIndividual and AnonymousIndividual,
// letting class-assertion and property-assertion axioms hold either.
type Individual interface {
	Kind() Kind
	String() string
}
