package query

import (
	"context"
	"sync"
	"time"

	"github.com/c360studio/owl2store/owlerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Source is the read-only ground-fact surface the query engine scans.
// OntologySource adapts an *ontology.Ontology to it; DerivedFactsSource
// layers rule-engine derived facts on top for reasoning-enabled queries.
type Source interface {
	ClassInstances(classIRI string) []string
	ClassAssertions() []Fact
	ObjectPropertyAssertions() []Fact
	DataPropertyAssertions() []Fact
}

// Fact is a single ground (subject, predicate, object) triple as scanned
// from the ontology or derived facts, independent of the axiom structs
// that produced it.
type Fact struct {
	Subject, Predicate, Object string
}

// DefaultParallelThreshold is the minimum number of top-level disjuncts
// before Union branches are evaluated concurrently.
const DefaultParallelThreshold = 4

// DefaultTimeout bounds a single Execute call absent an explicit deadline.
const DefaultTimeout = 10 * time.Second

// ExecConfig tunes one execution: whether rule-derived facts are visible,
// a result cap, and whether independent Union branches run in parallel.
// It is folded into the tier-3 cache key via ConfigHash so results
// computed under different configs never collide.
type ExecConfig struct {
	ReasoningEnabled  bool
	MaxResults        int
	EnableParallel    bool
	ParallelThreshold int
	Timeout           time.Duration
}

// QueryResult is the outcome of executing a pattern: ordered bindings, the
// variable list, and execution statistics.
type QueryResult struct {
	Bindings  []Binding
	Variables []string
	Stats     Stats
}

// Stats reports execution bookkeeping the caller may inspect.
type Stats struct {
	Incomplete bool // true if a timeout truncated the result
	FromCache  bool
	Duration   time.Duration
}

// Engine executes compiled query patterns against a Source, backed by the
// three-tier cache, a pattern predictor, and a pooled hash-join executor.
type Engine struct {
	cache     *Cache
	predictor *Predictor
	pool      *JoinPool
	group     singleflight.Group

	predictionMu      sync.Mutex
	pendingPrediction category
	havePending       bool
}

// NewEngine creates an Engine with the given tuning.
func NewEngine(promotionThreshold, resultCacheCapacity, predictorLookback, predictorHistory, joinPoolMaxPerBucket int) *Engine {
	return &Engine{
		cache:     NewCache(promotionThreshold, resultCacheCapacity),
		predictor: NewPredictor(predictorLookback, predictorHistory),
		pool:      NewJoinPool(joinPoolMaxPerBucket),
	}
}

// Cache exposes the engine's cache for inspection (hit rates, promotions).
func (e *Engine) Cache() *Cache { return e.cache }

// Predictor exposes the engine's pattern predictor.
func (e *Engine) Predictor() *Predictor { return e.predictor }

// Pool exposes the engine's join-table pool.
func (e *Engine) Pool() *JoinPool { return e.pool }

// NotifyMutation bumps the cache epoch, invalidating tier-3 results
// computed before the mutation. Callers invoke this once per ontology
// write (AddAxiom, AddClass, ...).
func (e *Engine) NotifyMutation() { e.cache.BumpEpoch() }

// Execute compiles (or fetches the compiled form of) pattern, serves a
// cached result when available, and otherwise evaluates it against src,
// populating the cache on the way out. A pattern hash's compilation is
// collapsed across concurrent identical-pattern callers via singleflight,
// so two racing compiles of the same pattern share one compile.
func (e *Engine) Execute(ctx context.Context, pattern *Pattern, src Source, cfg ExecConfig) (*QueryResult, error) {
	if cfg.ParallelThreshold <= 0 {
		cfg.ParallelThreshold = DefaultParallelThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	patternHash := ContentHash(pattern)
	configHash := ConfigHash(cfg)

	if cached, ok := e.cache.GetResult(patternHash, configHash); ok {
		hit := *cached
		hit.Stats.FromCache = true
		return &hit, nil
	}

	compiledAny, err, _ := e.group.Do(itoa64(patternHash), func() (any, error) {
		return e.cache.CompileOrGet(pattern), nil
	})
	if err != nil {
		return nil, err
	}
	cp := compiledAny.(*CompiledPattern)

	cat := Category(cp)
	e.resolvePrediction(cat)
	e.predictor.Observe(cat)
	e.storePrediction(e.predictor.PredictNext(cat, 1))

	deadline := time.Now().Add(cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	execCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	start := time.Now()
	bindings, incomplete, err := e.eval(execCtx, pattern, src, cfg)
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}

	e.cache.RecordExecution(patternHash, duration)

	if cfg.MaxResults > 0 && len(bindings) > cfg.MaxResults {
		bindings = bindings[:cfg.MaxResults]
	}

	result := &QueryResult{
		Bindings:  bindings,
		Variables: cp.Variables,
		Stats:     Stats{Incomplete: incomplete, Duration: duration},
	}

	if !incomplete {
		e.cache.PutResult(patternHash, configHash, result)
	}
	return result, nil
}

// resolvePrediction compares a category predicted following the previous
// query against the category actually observed now, recording whether the
// predictor's last forecast held.
func (e *Engine) resolvePrediction(actual category) {
	e.predictionMu.Lock()
	predicted, ok := e.pendingPrediction, e.havePending
	e.havePending = false
	e.predictionMu.Unlock()

	if ok {
		e.predictor.RecordPredictionOutcome(predicted, actual)
	}
}

// storePrediction remembers the predictor's forecast for the query that
// will follow the one just observed, for resolvePrediction to score next
// time.
func (e *Engine) storePrediction(predicted []category) {
	e.predictionMu.Lock()
	defer e.predictionMu.Unlock()
	if len(predicted) == 0 {
		e.havePending = false
		return
	}
	e.pendingPrediction = predicted[0]
	e.havePending = true
}

// eval dispatches a pattern to its executor, checking the deadline at each
// stage header per spec §5's cancellation model.
func (e *Engine) eval(ctx context.Context, p *Pattern, src Source, cfg ExecConfig) ([]Binding, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, true, nil
	}

	switch p.Kind {
	case PatternBasicGraph:
		return e.evalBasicGraph(ctx, p.Triples, src)

	case PatternOptional:
		return e.evalOptional(ctx, p, src, cfg)

	case PatternUnion:
		return e.evalUnion(ctx, p, src, cfg)

	case PatternFilter:
		inner, incomplete, err := e.eval(ctx, p.Inner, src, cfg)
		if err != nil || incomplete {
			return inner, incomplete, err
		}
		var out []Binding
		for _, b := range inner {
			if ok, valid := p.Filter(b); valid && ok {
				out = append(out, b)
			}
		}
		return out, false, nil

	case PatternDistinct, PatternReduced:
		inner, incomplete, err := e.eval(ctx, p.Inner, src, cfg)
		if err != nil || incomplete {
			return inner, incomplete, err
		}
		return dedupe(inner), false, nil

	default:
		return nil, false, owlerr.Newf(owlerr.KindQueryError, "query.execute", "unknown pattern kind %d", p.Kind)
	}
}

// evalBasicGraph implements SingleTriple/MultiTriple of §4.5.6: the first
// (most selective) pattern seeds the binding set; each subsequent pattern
// is evaluated and joined against the running set via the pooled
// hash-join.
func (e *Engine) evalBasicGraph(ctx context.Context, triples []TriplePattern, src Source) ([]Binding, bool, error) {
	if len(triples) == 0 {
		return []Binding{{}}, false, nil
	}

	ordered := orderTriples(triples)

	running := scanPattern(ordered[0].Pattern, ordered[0].AccessPath, src)
	runningVars := ordered[0].Pattern.Variables()

	for _, ct := range ordered[1:] {
		if err := ctx.Err(); err != nil {
			return running, true, nil
		}
		next := scanPattern(ct.Pattern, ct.AccessPath, src)
		common := commonVariables(runningVars, ct.Pattern.Variables())
		running = e.pool.hashJoin(running, next, common)
		runningVars = unionVars(runningVars, ct.Pattern.Variables())
	}

	return running, false, nil
}

// evalOptional implements a left-outer join: every left binding that finds
// no matching right binding is retained with the right side's variables
// unbound.
func (e *Engine) evalOptional(ctx context.Context, p *Pattern, src Source, cfg ExecConfig) ([]Binding, bool, error) {
	left, incomplete, err := e.eval(ctx, p.Left, src, cfg)
	if err != nil || incomplete {
		return left, incomplete, err
	}
	right, incomplete, err := e.eval(ctx, p.Right, src, cfg)
	if err != nil || incomplete {
		return left, incomplete, err
	}

	var out []Binding
	for _, l := range left {
		matched := false
		for _, r := range right {
			if merged, ok := l.merge(r); ok {
				out = append(out, merged)
				matched = true
			}
		}
		if !matched {
			// Right side's variables stay absent from the binding, which
			// downstream consumers already treat as unbound.
			out = append(out, l.Clone())
		}
	}
	return out, false, nil
}

// evalUnion concatenates left and right's bindings, evaluating them
// concurrently once the engine-wide parallel threshold is met.
func (e *Engine) evalUnion(ctx context.Context, p *Pattern, src Source, cfg ExecConfig) ([]Binding, bool, error) {
	branches := flattenUnion(p)

	if !cfg.EnableParallel || len(branches) < cfg.ParallelThreshold {
		var out []Binding
		for _, b := range branches {
			res, incomplete, err := e.eval(ctx, b, src, cfg)
			out = append(out, res...)
			if err != nil || incomplete {
				return out, incomplete, err
			}
		}
		return out, false, nil
	}

	results := make([][]Binding, len(branches))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range branches {
		i, b := i, b
		g.Go(func() error {
			res, _, err := e.eval(gctx, b, src, cfg)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var out []Binding
	for _, r := range results {
		out = append(out, r...)
	}
	return out, ctx.Err() != nil, nil
}

// flattenUnion collects every non-Union leaf reachable by descending
// through nested Union nodes, so a chain of unions parallelizes as one
// flat set of disjuncts rather than a binary tree of sequential pairs.
func flattenUnion(p *Pattern) []*Pattern {
	if p.Kind != PatternUnion {
		return []*Pattern{p}
	}
	return append(flattenUnion(p.Left), flattenUnion(p.Right)...)
}

// scanPattern enumerates every Fact matching a single triple pattern's
// access path and binds its variable positions.
func scanPattern(tp TriplePattern, path AccessPath, src Source) []Binding {
	var facts []Fact

	switch path {
	case AccessTypeQuery:
		for _, subject := range src.ClassInstances(tp.Object.Constant) {
			facts = append(facts, Fact{Subject: subject, Predicate: RDFType, Object: tp.Object.Constant})
		}
	case AccessPropertyQuery:
		for _, f := range src.ObjectPropertyAssertions() {
			if f.Predicate == tp.Predicate.Constant {
				facts = append(facts, f)
			}
		}
		for _, f := range src.DataPropertyAssertions() {
			if f.Predicate == tp.Predicate.Constant {
				facts = append(facts, f)
			}
		}
	case AccessVariablePredicate:
		facts = append(facts, src.ClassAssertions()...)
		facts = append(facts, src.ObjectPropertyAssertions()...)
		facts = append(facts, src.DataPropertyAssertions()...)
	}

	bindings := make([]Binding, 0, len(facts))
	for _, f := range facts {
		b := Binding{}
		ok := bindTerm(b, tp.Subject, f.Subject) &&
			bindTerm(b, tp.Predicate, f.Predicate) &&
			bindTerm(b, tp.Object, f.Object)
		if ok {
			bindings = append(bindings, b)
		}
	}
	return bindings
}

// bindTerm binds t's variable to value (checking consistency against an
// already-bound occurrence within the same triple), or checks a constant
// term for equality.
func bindTerm(b Binding, t Term, value string) bool {
	if !t.IsVariable() {
		return t.Constant == value
	}
	if existing, ok := b[t.Variable]; ok {
		return existing == value
	}
	b[t.Variable] = value
	return true
}

// dedupe removes bindings whose full variable=value set has already been
// seen, preserving first-occurrence order.
func dedupe(bindings []Binding) []Binding {
	seen := make(map[string]bool, len(bindings))
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		key := bindingKey(b)
		if !seen[key] {
			seen[key] = true
			out = append(out, b)
		}
	}
	return out
}

func bindingKey(b Binding) string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sortStrings(keys)
	buf := make([]byte, 0, 64)
	for _, k := range keys {
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = append(buf, b[k]...)
		buf = append(buf, ';')
	}
	return string(buf)
}

func unionVars(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func itoa64(h uint64) string {
	if h == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for h > 0 {
		i--
		buf[i] = byte('0' + h%10)
		h /= 10
	}
	return string(buf[i:])
}
