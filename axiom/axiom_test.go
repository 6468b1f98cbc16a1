package axiom_test

import (
	"testing"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/iri"
	"github.com/stretchr/testify/require"
)

func TestSubClassOfTag(t *testing.T) {
	in := iri.New(10, 0.8)
	person, _, _ := in.Intern("ex:Person")
	animal, _, _ := in.Intern("ex:Animal")

	ax := axiom.SubClassOf{
		Sub:   &axiom.ClassExpression{Kind: axiom.CEClass, Named: person},
		Super: &axiom.ClassExpression{Kind: axiom.CEClass, Named: animal},
	}
	require.Equal(t, axiom.TagSubClassOf, ax.Tag())
}

func TestQualifiedCardinalityDetection(t *testing.T) {
	in := iri.New(10, 0.8)
	person, _, _ := in.Intern("ex:Person")

	unqualified := axiom.ClassExpression{Kind: axiom.CEObjectMinCardinality, Cardinality: 1}
	require.False(t, unqualified.Qualified())

	qualified := axiom.ClassExpression{
		Kind:        axiom.CEObjectMinCardinality,
		Cardinality: 1,
		Filler:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: person},
	}
	require.True(t, qualified.Qualified())
}

func TestLiteralIsSimple(t *testing.T) {
	simple := axiom.Literal{Lexical: "hello"}
	require.True(t, simple.IsSimple())

	tagged := axiom.Literal{Lexical: "bonjour", Lang: "fr"}
	require.False(t, tagged.IsSimple())

	in := iri.New(10, 0.8)
	xsdInt, _, _ := in.Intern("xsd:integer")
	typed := axiom.Literal{Lexical: "42", Datatype: xsdInt}
	require.False(t, typed.IsSimple())
}

func TestAxiomInterfaceSatisfiedByFamilies(t *testing.T) {
	in := iri.New(10, 0.8)
	p, _, _ := in.Intern("ex:knows")

	var axioms []axiom.Axiom
	axioms = append(axioms, axiom.TransitiveObjectProperty{Property: p})
	axioms = append(axioms, axiom.SymmetricObjectProperty{Property: p})
	axioms = append(axioms, axiom.FunctionalDataProperty{Property: p})

	require.Equal(t, axiom.TagTransitiveObjectProperty, axioms[0].Tag())
	require.Equal(t, axiom.TagSymmetricObjectProperty, axioms[1].Tag())
	require.Equal(t, axiom.TagFunctionalDataProperty, axioms[2].Tag())
}
