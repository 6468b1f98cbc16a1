package profile

import "github.com/c360studio/owl2store/axiom"

// forEachExpression visits every class expression reachable from o's
// SubClassOf and EquivalentClasses axioms, invoking visit with the
// top-level axiom's entity label attached as context (§4.3).
func forEachExpression(o OntologyView, visit func(ctx walkContext, ce *axiom.ClassExpression)) {
	for _, sc := range o.SubClassAxioms() {
		ctx := walkContext{outerEntity: labelOf(sc.Sub)}
		walkExpression(ctx, sc.Sub, visit)
		walkExpression(ctx, sc.Super, visit)
	}
	for _, ec := range o.EquivalentClassAxioms() {
		for _, ce := range ec.Classes {
			ctx := walkContext{outerEntity: labelOf(ce)}
			walkExpression(ctx, ce, visit)
		}
	}
}

func labelOf(ce *axiom.ClassExpression) string {
	if ce == nil {
		return ""
	}
	if ce.Kind == axiom.CEClass && ce.Named != nil {
		return ce.Named.As()
	}
	return "<anonymous class expression>"
}

func walkExpression(ctx walkContext, ce *axiom.ClassExpression, visit func(walkContext, *axiom.ClassExpression)) {
	if ce == nil {
		return
	}
	visit(ctx, ce)

	switch ce.Kind {
	case axiom.CEObjectIntersectionOf, axiom.CEObjectUnionOf:
		for _, op := range ce.Operands {
			walkExpression(ctx, op, visit)
		}
	case axiom.CEObjectComplementOf:
		walkExpression(ctx, ce.Complement, visit)
	case axiom.CEObjectSomeValuesFrom, axiom.CEObjectAllValuesFrom:
		walkExpression(ctx, ce.Filler, visit)
	case axiom.CEObjectMinCardinality, axiom.CEObjectMaxCardinality, axiom.CEObjectExactCardinality:
		if ce.Filler != nil {
			walkExpression(ctx, ce.Filler, visit)
		}
	}
}
