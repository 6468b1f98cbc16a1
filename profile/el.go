package profile

import "github.com/c360studio/owl2store/axiom"

// EL rejects disjoint-classes axioms, equivalent-classes with more than two
// operands, universal restrictions, has-value, any cardinality
// restriction, has-self, union, complement, and one-of, on either side of
// any class axiom; the data side mirrors the same restrictions (§4.3).
type EL struct{}

func (EL) Name() string { return "EL" }

func (EL) Validate(o OntologyView) []Violation {
	var violations []Violation

	if dc := o.DisjointClassAxioms(); len(dc) > 0 {
		for range dc {
			violations = append(violations, Violation{
				Kind:     "disjoint_classes_forbidden",
				Message:  "EL forbids DisjointClasses axioms",
				Severity: SeverityError,
			})
		}
	}
	for _, ec := range o.EquivalentClassAxioms() {
		if len(ec.Classes) > 2 {
			violations = append(violations, Violation{
				Kind:     "equivalent_classes_too_wide",
				Message:  "EL allows EquivalentClasses only between exactly two classes",
				Severity: SeverityError,
			})
		}
	}

	forEachExpression(o, func(ctx walkContext, ce *axiom.ClassExpression) {
		if v, ok := elForbidden(ce); ok {
			violations = append(violations, Violation{
				Kind:             v,
				Message:          "construct not permitted in EL: " + v,
				AffectedEntities: []string{ctx.outerEntity},
				Severity:         SeverityError,
			})
		}
	})

	return violations
}

func (EL) QuickCheck(o OntologyView) bool {
	if len(o.DisjointClassAxioms()) > 0 {
		return false
	}
	for _, ec := range o.EquivalentClassAxioms() {
		if len(ec.Classes) > 2 {
			return false
		}
	}
	ok := true
	forEachExpression(o, func(_ walkContext, ce *axiom.ClassExpression) {
		if !ok {
			return
		}
		if _, forbidden := elForbidden(ce); forbidden {
			ok = false
		}
	})
	return ok
}

func elForbidden(ce *axiom.ClassExpression) (string, bool) {
	switch ce.Kind {
	case axiom.CEObjectAllValuesFrom:
		return "universal_restriction", true
	case axiom.CEObjectHasValue:
		return "has_value", true
	case axiom.CEObjectHasSelf:
		return "has_self", true
	case axiom.CEObjectUnionOf:
		return "union", true
	case axiom.CEObjectComplementOf:
		return "complement", true
	case axiom.CEObjectOneOf:
		return "one_of", true
	case axiom.CEObjectMinCardinality, axiom.CEObjectMaxCardinality, axiom.CEObjectExactCardinality:
		return "cardinality_restriction", true
	case axiom.CEDataAllValuesFrom:
		return "data_universal_restriction", true
	case axiom.CEDataHasValue:
		return "data_has_value", true
	case axiom.CEDataMinCardinality, axiom.CEDataMaxCardinality, axiom.CEDataExactCardinality:
		return "data_cardinality_restriction", true
	default:
		return "", false
	}
}
