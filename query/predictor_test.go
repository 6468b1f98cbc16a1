package query_test

import (
	"testing"

	"github.com/c360studio/owl2store/query"
	"github.com/stretchr/testify/require"
)

func compiledOf(t *testing.T, p *query.Pattern) *query.CompiledPattern {
	t.Helper()
	return query.Compile(p)
}

func TestPredictorCorrelatesRepeatedSequence(t *testing.T) {
	typeQuery := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})
	propQuery := query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const("ex:knows"), Object: query.Var("o")})

	catCat := query.Category(compiledOf(t, typeQuery))
	knowsCat := query.Category(compiledOf(t, propQuery))

	predictor := query.NewPredictor(5, 100)
	for i := 0; i < 5; i++ {
		predictor.Observe(catCat)
		predictor.Observe(knowsCat)
	}

	predicted := predictor.PredictNext(catCat, 1)
	require.Len(t, predicted, 1)
	require.Equal(t, knowsCat, predicted[0])
}

func TestPredictorAccuracyTracksOutcomes(t *testing.T) {
	predictor := query.NewPredictor(5, 100)
	cat := query.Category(compiledOf(t, query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const(query.RDFType), Object: query.Const("ex:Cat")})))

	require.Equal(t, float64(0), predictor.Accuracy())

	predictor.RecordPredictionOutcome(cat, cat)
	require.Equal(t, float64(1), predictor.Accuracy())

	other := query.Category(compiledOf(t, query.BasicGraphPattern(query.TriplePattern{Subject: query.Var("s"), Predicate: query.Const("ex:knows"), Object: query.Var("o")})))
	predictor.RecordPredictionOutcome(cat, other)
	require.InDelta(t, 0.5, predictor.Accuracy(), 0.0001)
}
