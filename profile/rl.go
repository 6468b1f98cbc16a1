package profile

import (
	"fmt"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/ontology"
)

// RL rejects data-complement, object-complement, and object-has-self;
// warns (does not error) on data-one-of; and restricts object-one-of to
// the single-individual form (§4.3).
type RL struct{}

func (RL) Name() string { return "RL" }

func (RL) Validate(o OntologyView) []Violation {
	var violations []Violation

	forEachExpression(o, func(ctx walkContext, ce *axiom.ClassExpression) {
		switch ce.Kind {
		case axiom.CEObjectComplementOf:
			violations = append(violations, Violation{
				Kind:             "object_complement_forbidden",
				Message:          "RL forbids object complement",
				AffectedEntities: []string{ctx.outerEntity},
				Severity:         SeverityError,
			})
		case axiom.CEObjectHasSelf:
			violations = append(violations, Violation{
				Kind:             "object_has_self_forbidden",
				Message:          "RL forbids object has-self",
				AffectedEntities: []string{ctx.outerEntity},
				Severity:         SeverityError,
			})
		case axiom.CEObjectOneOf:
			if len(ce.Individuals) > 1 {
				violations = append(violations, Violation{
					Kind:             "object_one_of_multi_individual",
					Message:          "RL restricts object one-of to a single individual",
					AffectedEntities: []string{ctx.outerEntity},
					Severity:         SeverityError,
				})
			}
		}
		if ce.DataRangeExpr != nil {
			violations = append(violations, dataRangeViolations(ctx, ce.DataRangeExpr)...)
		}
	})

	return violations
}

func dataRangeViolations(ctx walkContext, dr *axiom.DataRange) []Violation {
	var violations []Violation
	switch dr.Kind {
	case axiom.DRComplementOf:
		violations = append(violations, Violation{
			Kind:             "data_complement_forbidden",
			Message:          "RL forbids data complement",
			AffectedEntities: []string{ctx.outerEntity},
			Severity:         SeverityError,
		})
	case axiom.DROneOf:
		violations = append(violations, Violation{
			Kind:             "data_one_of_discouraged",
			Message:          "RL allows data one-of but it may impair reasoner compatibility",
			AffectedEntities: []string{ctx.outerEntity},
			Severity:         SeverityWarning,
		})
	}
	for _, op := range dr.Operands {
		violations = append(violations, dataRangeViolations(ctx, op)...)
	}
	if dr.Complement != nil {
		violations = append(violations, dataRangeViolations(ctx, dr.Complement)...)
	}
	return violations
}

// Hint is a non-normative suggestion produced by RLOptimizationHints: it
// never blocks anything and carries no Severity, unlike Violation.
type Hint struct {
	Kind            string
	Description     string
	EstimatedImpact string
}

// RLOptimizationHints counts RL-forbidden constructs reachable from o's
// class axioms and, for each construct kind actually present, returns a
// hint suggesting it be dropped so the ontology fires under the RL ruleset
// without translation. It duplicates none of Validate's violations: it
// aggregates counts per construct kind instead of reporting one Violation
// per occurrence, and estimates impact from how often the construct
// recurs.
func RLOptimizationHints(o *ontology.Ontology) []Hint {
	var counts struct {
		dataComplement, dataOneOf, objectComplement, objectHasSelf, objectOneOfMulti int
	}

	forEachExpression(o, func(_ walkContext, ce *axiom.ClassExpression) {
		switch ce.Kind {
		case axiom.CEObjectComplementOf:
			counts.objectComplement++
		case axiom.CEObjectHasSelf:
			counts.objectHasSelf++
		case axiom.CEObjectOneOf:
			if len(ce.Individuals) > 1 {
				counts.objectOneOfMulti++
			}
		}
		countDataRangeKinds(ce.DataRangeExpr, &counts.dataComplement, &counts.dataOneOf)
	})

	var hints []Hint
	addHint := func(n int, kind, label string) {
		if n == 0 {
			return
		}
		hints = append(hints, Hint{
			Kind:            kind,
			Description:     fmt.Sprintf("remove %d %s (not allowed in RL profile)", n, label),
			EstimatedImpact: optimizationImpact(n),
		})
	}

	addHint(counts.dataComplement, "remove_data_complement", "data complement of expressions")
	addHint(counts.dataOneOf, "simplify_data_one_of", "data one-of expressions")
	addHint(counts.objectComplement, "remove_object_complement", "object complement of expressions")
	addHint(counts.objectHasSelf, "remove_object_has_self", "object has-self restrictions")
	addHint(counts.objectOneOfMulti, "simplify_object_one_of", "multi-individual object one-of expressions")

	return hints
}

func countDataRangeKinds(dr *axiom.DataRange, complement, oneOf *int) {
	if dr == nil {
		return
	}
	switch dr.Kind {
	case axiom.DRComplementOf:
		*complement++
	case axiom.DROneOf:
		*oneOf++
	}
	for _, op := range dr.Operands {
		countDataRangeKinds(op, complement, oneOf)
	}
	countDataRangeKinds(dr.Complement, complement, oneOf)
}

// optimizationImpact mirrors the original RlOptimizer's coarse three-tier
// estimate: a handful of occurrences is cheap to hand-fix, a moderate count
// is worth tooling, and a large count is likely to dominate reasoning cost.
func optimizationImpact(n int) string {
	switch {
	case n >= 10:
		return "High"
	case n >= 3:
		return "Medium"
	default:
		return "Low"
	}
}

func (RL) QuickCheck(o OntologyView) bool {
	ok := true
	forEachExpression(o, func(_ walkContext, ce *axiom.ClassExpression) {
		if !ok {
			return
		}
		switch ce.Kind {
		case axiom.CEObjectComplementOf, axiom.CEObjectHasSelf:
			ok = false
		case axiom.CEObjectOneOf:
			if len(ce.Individuals) > 1 {
				ok = false
			}
		}
		if ce.DataRangeExpr != nil && ce.DataRangeExpr.Kind == axiom.DRComplementOf {
			ok = false
		}
	})
	return ok
}
