package export_test

import (
	"testing"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/export"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/ontology"
	"github.com/c360studio/owl2store/vocabulary"
	"github.com/stretchr/testify/require"
)

func TestProjectorProjectsClassAssertionsAndSubClassOf(t *testing.T) {
	in := iri.New(100, 0.8)
	o := ontology.New(nil, nil)

	cat, _, _ := in.Intern("ex:Cat")
	animal, _, _ := in.Intern("ex:Animal")
	felix, _, _ := in.Intern("ex:felix")

	require.NoError(t, o.AddAxiom(axiom.SubClassOf{
		Sub:   &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat},
		Super: &axiom.ClassExpression{Kind: axiom.CEClass, Named: animal},
	}))
	require.NoError(t, o.AddAxiom(axiom.ClassAssertion{
		Individual: felix,
		Class:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat},
	}))

	p := export.NewProjector(vocabulary.NewRegistry())
	triples := p.Project(o)

	require.Contains(t, triples, export.Triple{
		Subject: "ex:felix", Predicate: vocabulary.RDFType, Object: "ex:Cat",
	})
	require.Contains(t, triples, export.Triple{
		Subject: "ex:Cat", Predicate: vocabulary.RDFSSubClassOf, Object: "ex:Animal",
	})
}

func TestProjectorSkipsNonNamedClassExpressions(t *testing.T) {
	in := iri.New(100, 0.8)
	o := ontology.New(nil, nil)

	cat, _, _ := in.Intern("ex:Cat")
	dog, _, _ := in.Intern("ex:Dog")
	felix, _, _ := in.Intern("ex:felix")

	require.NoError(t, o.AddAxiom(axiom.ClassAssertion{
		Individual: felix,
		Class: &axiom.ClassExpression{
			Kind:     axiom.CEObjectUnionOf,
			Operands: []*axiom.ClassExpression{{Kind: axiom.CEClass, Named: cat}, {Kind: axiom.CEClass, Named: dog}},
		},
	}))

	p := export.NewProjector(nil)
	triples := p.Project(o)
	require.Empty(t, triples)
}

func TestProjectorPrefixesSeedExporter(t *testing.T) {
	registry := vocabulary.NewRegistry()
	registry.Register("ex", "https://example.org/")
	p := export.NewProjector(registry)

	e := export.NewRDFExporter()
	for prefix, ns := range p.Prefixes() {
		e.SetPrefix(prefix, ns)
	}

	output, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)
	require.Contains(t, output, "@prefix ex: <https://example.org/> .")
}

func TestProjectorProjectsPropertyAssertions(t *testing.T) {
	in := iri.New(100, 0.8)
	o := ontology.New(nil, nil)

	alice, _, _ := in.Intern("ex:alice")
	bob, _, _ := in.Intern("ex:bob")
	knows, _, _ := in.Intern("ex:knows")
	hasAge, _, _ := in.Intern("ex:hasAge")

	require.NoError(t, o.AddAxiom(axiom.ObjectPropertyAssertion{Subject: alice, Property: knows, Object: bob}))
	require.NoError(t, o.AddAxiom(axiom.DataPropertyAssertion{Subject: alice, Property: hasAge, Value: axiom.Literal{Lexical: "30"}}))

	p := export.NewProjector(nil)
	triples := p.Project(o)

	require.Contains(t, triples, export.Triple{Subject: "ex:alice", Predicate: "ex:knows", Object: "ex:bob"})
	require.Contains(t, triples, export.Triple{Subject: "ex:alice", Predicate: "ex:hasAge", Object: "30"})
}
