package profile

import "github.com/c360studio/owl2store/axiom"

// QL rejects transitive, asymmetric, and irreflexive object properties;
// property chains longer than two; object-max/object-exact cardinality;
// object-min cardinality greater than one; and the data-side equivalents
// (§4.3).
type QL struct{}

func (QL) Name() string { return "QL" }

func (QL) Validate(o OntologyView) []Violation {
	var violations []Violation

	for _, a := range o.TransitiveObjectPropertyAxioms() {
		violations = append(violations, Violation{
			Kind:             "transitive_property_restricted",
			Message:          "QL restricts transitive object properties",
			AffectedEntities: []string{a.Property.As()},
			Severity:         SeverityError,
		})
	}
	for _, a := range o.AsymmetricObjectPropertyAxioms() {
		violations = append(violations, Violation{
			Kind:             "asymmetric_property_forbidden",
			Message:          "QL forbids asymmetric object properties",
			AffectedEntities: []string{a.Property.As()},
			Severity:         SeverityError,
		})
	}
	for _, a := range o.IrreflexiveObjectPropertyAxioms() {
		violations = append(violations, Violation{
			Kind:             "irreflexive_property_forbidden",
			Message:          "QL forbids irreflexive object properties",
			AffectedEntities: []string{a.Property.As()},
			Severity:         SeverityError,
		})
	}
	for _, a := range o.SubPropertyChainOfAxioms() {
		if len(a.Chain) > 2 {
			violations = append(violations, Violation{
				Kind:             "property_chain_too_long",
				Message:          "QL forbids property chains longer than two",
				AffectedEntities: []string{a.Super.As()},
				Severity:         SeverityError,
			})
		}
	}

	forEachExpression(o, func(ctx walkContext, ce *axiom.ClassExpression) {
		if v, ok := qlForbidden(ce); ok {
			violations = append(violations, Violation{
				Kind:             v,
				Message:          "construct not permitted in QL: " + v,
				AffectedEntities: []string{ctx.outerEntity},
				Severity:         SeverityError,
			})
		}
	})

	return violations
}

func (QL) QuickCheck(o OntologyView) bool {
	if len(o.TransitiveObjectPropertyAxioms()) > 0 ||
		len(o.AsymmetricObjectPropertyAxioms()) > 0 ||
		len(o.IrreflexiveObjectPropertyAxioms()) > 0 {
		return false
	}
	for _, a := range o.SubPropertyChainOfAxioms() {
		if len(a.Chain) > 2 {
			return false
		}
	}
	ok := true
	forEachExpression(o, func(_ walkContext, ce *axiom.ClassExpression) {
		if !ok {
			return
		}
		if _, forbidden := qlForbidden(ce); forbidden {
			ok = false
		}
	})
	return ok
}

func qlForbidden(ce *axiom.ClassExpression) (string, bool) {
	switch ce.Kind {
	case axiom.CEObjectMaxCardinality, axiom.CEObjectExactCardinality:
		return "object_cardinality_restricted", true
	case axiom.CEObjectMinCardinality:
		if ce.Cardinality > 1 {
			return "object_min_cardinality_over_one", true
		}
	case axiom.CEDataMaxCardinality, axiom.CEDataExactCardinality:
		return "data_cardinality_restricted", true
	case axiom.CEDataMinCardinality:
		if ce.Cardinality > 1 {
			return "data_min_cardinality_over_one", true
		}
	}
	return "", false
}
