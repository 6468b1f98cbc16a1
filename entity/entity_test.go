package entity_test

import (
	"strings"
	"testing"

	"github.com/c360studio/owl2store/entity"
	"github.com/c360studio/owl2store/iri"
	"github.com/stretchr/testify/require"
)

func TestKindStrings(t *testing.T) {
	cases := map[entity.Kind]string{
		entity.KindClass:               "Class",
		entity.KindObjectProperty:      "ObjectProperty",
		entity.KindDataProperty:        "DataProperty",
		entity.KindNamedIndividual:     "NamedIndividual",
		entity.KindAnonymousIndividual: "AnonymousIndividual",
		entity.KindAnnotationProperty:  "AnnotationProperty",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
}

func TestClassWrapsHandle(t *testing.T) {
	in := iri.New(10, 0.8)
	h, _, err := in.Intern("ex:Person")
	require.NoError(t, err)

	c := entity.Class{IRI: h}
	require.Equal(t, entity.KindClass, c.Kind())
	require.Equal(t, "ex:Person", c.String())
}

func TestObjectPropertyCharacteristics(t *testing.T) {
	in := iri.New(10, 0.8)
	h, _, _ := in.Intern("ex:hasParent")

	p := entity.ObjectProperty{
		IRI: h,
		Characteristics: entity.Characteristics{
			Transitive: true,
			Functional: true,
		},
	}
	require.Equal(t, entity.KindObjectProperty, p.Kind())
	require.True(t, p.Characteristics.Transitive)
	require.True(t, p.Characteristics.Functional)
	require.False(t, p.Characteristics.Symmetric)
}

func TestAnonymousIndividualsAreUnique(t *testing.T) {
	a := entity.NewAnonymousIndividual()
	b := entity.NewAnonymousIndividual()
	require.NotEqual(t, a.Tag, b.Tag)
	require.Equal(t, entity.KindAnonymousIndividual, a.Kind())
	require.True(t, strings.HasPrefix(a.Tag, "_:b"))
}

func TestIndividualInterfaceSatisfiedByBothKinds(t *testing.T) {
	in := iri.New(10, 0.8)
	h, _, _ := in.Intern("ex:alice")

	var individuals []entity.Individual
	individuals = append(individuals, entity.NamedIndividual{IRI: h})
	individuals = append(individuals, entity.NewAnonymousIndividual())

	require.Equal(t, entity.KindNamedIndividual, individuals[0].Kind())
	require.Equal(t, entity.KindAnonymousIndividual, individuals[1].Kind())
}
