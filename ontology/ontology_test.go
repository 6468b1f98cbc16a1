package ontology_test

import (
	"testing"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/entity"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/ontology"
	"github.com/stretchr/testify/require"
)

func newTestOntology(t *testing.T) (*ontology.Ontology, *iri.Interner) {
	t.Helper()
	in := iri.New(1000, 0.8)
	o := ontology.New(nil, nil)
	return o, in
}

func TestAddClassIdempotent(t *testing.T) {
	o, in := newTestOntology(t)
	h, _, _ := in.Intern("ex:Person")

	require.NoError(t, o.AddClass(entity.Class{IRI: h}))
	require.NoError(t, o.AddClass(entity.Class{IRI: h}))
	require.Len(t, o.Classes(), 1)
}

func TestAddClassRejectsRestrictedBuiltin(t *testing.T) {
	o, in := newTestOntology(t)
	h, _, _ := in.Intern("owl:Nothing")

	err := o.AddClass(entity.Class{IRI: h})
	require.Error(t, err)
}

func TestAddAxiomUpdatesClassInstancesIndex(t *testing.T) {
	o, in := newTestOntology(t)
	person, _, _ := in.Intern("ex:Person")
	alice, _, _ := in.Intern("ex:alice")

	require.NoError(t, o.AddClass(entity.Class{IRI: person}))
	require.NoError(t, o.AddAxiom(axiom.ClassAssertion{
		Individual: alice,
		Class:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: person},
	}))

	instances := o.ClassInstances("ex:Person")
	require.Len(t, instances, 1)
	require.Equal(t, "ex:alice", instances[0].As())
	require.Equal(t, 1, o.AxiomCount())

	byType := o.AxiomsByType(axiom.TagClassAssertion)
	require.Len(t, byType, 1)
}

func TestAddAxiomIndexesPropertyDomainsAndRanges(t *testing.T) {
	o, in := newTestOntology(t)
	alice, _, _ := in.Intern("ex:alice")
	bob, _, _ := in.Intern("ex:bob")
	knows, _, _ := in.Intern("ex:knows")

	require.NoError(t, o.AddAxiom(axiom.ObjectPropertyAssertion{
		Subject: alice, Object: bob, Property: knows,
	}))

	domains := o.PropertyDomains("ex:knows")
	ranges := o.PropertyRanges("ex:knows")
	require.Len(t, domains, 1)
	require.Len(t, ranges, 1)
	require.Equal(t, "ex:alice", domains[0].As())
	require.Equal(t, "ex:bob", ranges[0].As())
}

func TestDataPropertyAssertionDoesNotPolluteObjectRanges(t *testing.T) {
	o, in := newTestOntology(t)
	alice, _, _ := in.Intern("ex:alice")
	age, _, _ := in.Intern("ex:age")

	require.NoError(t, o.AddAxiom(axiom.DataPropertyAssertion{
		Subject:  alice,
		Property: age,
		Value:    axiom.Literal{Lexical: "30"},
	}))

	require.Empty(t, o.PropertyRanges("ex:age"))
	require.Len(t, o.PropertyDomains("ex:age"), 1)
}

func TestValidateDetectsCircularSubClass(t *testing.T) {
	o, in := newTestOntology(t)
	a, _, _ := in.Intern("ex:A")
	b, _, _ := in.Intern("ex:B")

	ceA := &axiom.ClassExpression{Kind: axiom.CEClass, Named: a}
	ceB := &axiom.ClassExpression{Kind: axiom.CEClass, Named: b}

	require.NoError(t, o.AddAxiom(axiom.SubClassOf{Sub: ceA, Super: ceB}))
	require.NoError(t, o.AddAxiom(axiom.SubClassOf{Sub: ceB, Super: ceA}))

	violations := o.Validate()
	found := false
	for _, v := range violations {
		if v.Kind == ontology.ViolationCircularSubClass {
			found = true
		}
	}
	require.True(t, found, "expected a circular subclass violation")
}

func TestValidateDetectsCharacteristicConflict(t *testing.T) {
	o, in := newTestOntology(t)
	p, _, _ := in.Intern("ex:related")

	require.NoError(t, o.AddAxiom(axiom.SymmetricObjectProperty{Property: p}))
	require.NoError(t, o.AddAxiom(axiom.AsymmetricObjectProperty{Property: p}))

	violations := o.Validate()
	require.NotEmpty(t, violations)
	require.Equal(t, ontology.ViolationCharacteristicConflict, violations[0].Kind)
}

func TestValidateDetectsExcessiveCardinality(t *testing.T) {
	o, in := newTestOntology(t)
	c, _, _ := in.Intern("ex:Team")

	require.NoError(t, o.AddAxiom(axiom.ObjectMaxQualifiedCardinality{
		Class:       c,
		Cardinality: ontology.MaxCardinality + 1,
	}))

	violations := o.Validate()
	require.Len(t, violations, 1)
	require.Equal(t, ontology.ViolationExcessiveCardinality, violations[0].Kind)
}

func TestValidateDetectsDuplicateDisjoint(t *testing.T) {
	o, in := newTestOntology(t)
	a, _, _ := in.Intern("ex:A")

	ceA1 := &axiom.ClassExpression{Kind: axiom.CEClass, Named: a}
	ceA2 := &axiom.ClassExpression{Kind: axiom.CEClass, Named: a}

	require.NoError(t, o.AddAxiom(axiom.DisjointClasses{Classes: []*axiom.ClassExpression{ceA1, ceA2}}))

	violations := o.Validate()
	require.Len(t, violations, 1)
	require.Equal(t, ontology.ViolationDuplicateDisjoint, violations[0].Kind)
}

func TestValidateNeverMutates(t *testing.T) {
	o, in := newTestOntology(t)
	p, _, _ := in.Intern("ex:related")
	require.NoError(t, o.AddAxiom(axiom.SymmetricObjectProperty{Property: p}))

	before := o.AxiomCount()
	_ = o.Validate()
	require.Equal(t, before, o.AxiomCount())
}
