package query

import (
	"sort"
	"sync"
)

// category coarsens a compiled pattern down to a shape the predictor
// correlates on: the ordered list of each triple's access path, ignoring
// the concrete constants involved. Two structurally different queries that
// both scan "type, then property" share a category.
type category string

// Category derives the predictor's correlation key for a compiled pattern.
func Category(cp *CompiledPattern) category {
	if len(cp.Triples) == 0 {
		return category(cp.Original.Kind.String())
	}
	s := make([]byte, 0, len(cp.Triples))
	for _, t := range cp.Triples {
		switch t.AccessPath {
		case AccessTypeQuery:
			s = append(s, 'T')
		case AccessPropertyQuery:
			s = append(s, 'P')
		default:
			s = append(s, 'V')
		}
	}
	return category(s)
}

func (k PatternKind) String() string {
	switch k {
	case PatternBasicGraph:
		return "bgp"
	case PatternOptional:
		return "optional"
	case PatternUnion:
		return "union"
	case PatternFilter:
		return "filter"
	case PatternDistinct:
		return "distinct"
	case PatternReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// Predictor tracks a bounded recent-query sequence and a first-order
// Markov-style correlation map between pattern categories, driving
// predict-next-query pre-warming and accuracy tracking (spec §4.5.4).
type Predictor struct {
	mu sync.Mutex

	lookback    int
	historyCap  int
	history     []category
	correlation map[category]map[category]int
	globalFreq  map[category]int

	predictedTotal   int
	predictedCorrect int
}

// NewPredictor creates a predictor with the given lookback window (steps)
// and bounded history length.
func NewPredictor(lookback, historyCap int) *Predictor {
	if lookback <= 0 {
		lookback = 5
	}
	if historyCap <= 0 {
		historyCap = 1000
	}
	return &Predictor{
		lookback:    lookback,
		historyCap:  historyCap,
		correlation: make(map[category]map[category]int),
		globalFreq:  make(map[category]int),
	}
}

// Observe records that cat was queried, updating the correlation map
// against the last `lookback` categories. Prediction outcomes are recorded
// separately, through RecordPredictionOutcome.
func (p *Predictor) Observe(cat category) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.globalFreq[cat]++

	start := 0
	if len(p.history) > p.lookback {
		start = len(p.history) - p.lookback
	}
	for _, prior := range p.history[start:] {
		m, ok := p.correlation[prior]
		if !ok {
			m = make(map[category]int)
			p.correlation[prior] = m
		}
		m[cat]++
	}

	p.history = append(p.history, cat)
	if len(p.history) > p.historyCap {
		p.history = p.history[len(p.history)-p.historyCap:]
	}
}

// PredictNext returns up to k categories predicted to follow current,
// ranked by score = correlation(current, candidate) * globalFrequency(candidate).
func (p *Predictor) PredictNext(current category, k int) []category {
	p.mu.Lock()
	defer p.mu.Unlock()

	correlated, ok := p.correlation[current]
	if !ok || k <= 0 {
		return nil
	}

	type scored struct {
		cat   category
		score int
	}
	scores := make([]scored, 0, len(correlated))
	for cand, corr := range correlated {
		scores = append(scores, scored{cat: cand, score: corr * p.globalFreq[cand]})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].cat < scores[j].cat
	})

	if k > len(scores) {
		k = len(scores)
	}
	out := make([]category, k)
	for i := 0; i < k; i++ {
		out[i] = scores[i].cat
	}
	return out
}

// RecordPredictionOutcome tallies whether a previously predicted category
// actually appeared as the next observed query, for accuracy tracking.
func (p *Predictor) RecordPredictionOutcome(predicted, actual category) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.predictedTotal++
	if predicted == actual {
		p.predictedCorrect++
	}
}

// Accuracy returns correct/total of tracked prediction outcomes, or 0 when
// none have been recorded.
func (p *Predictor) Accuracy() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.predictedTotal == 0 {
		return 0
	}
	return float64(p.predictedCorrect) / float64(p.predictedTotal)
}
