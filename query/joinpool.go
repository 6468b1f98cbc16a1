package query

import "sync"

// joinBucketCapacities are the fixed capacity buckets hash-join tables are
// pooled into (spec §4.5.5).
var joinBucketCapacities = []int{16, 64, 256, 1024, 4096, 16384}

// joinTable is a hash table keyed by the concatenated values of a BGP join's
// common variables, mapping to every binding observed for that key.
type joinTable struct {
	capacity int // nominal bucket capacity this table was drawn from
	rows     map[string][]Binding
}

func newJoinTable(capacity int) *joinTable {
	return &joinTable{capacity: capacity, rows: make(map[string][]Binding, capacity)}
}

func (t *joinTable) clear() {
	for k := range t.rows {
		delete(t.rows, k)
	}
}

func (t *joinTable) insert(key string, b Binding) {
	t.rows[key] = append(t.rows[key], b)
}

func (t *joinTable) probe(key string) []Binding {
	return t.rows[key]
}

// JoinPoolStats reports hits, misses, and current idle size per bucket.
type JoinPoolStats struct {
	Hits, Misses int64
	BucketSizes  map[int]int
}

// HitRate returns Hits / (Hits + Misses), or 0 with no lookups yet.
func (s JoinPoolStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// JoinPool amortizes hash-table allocation across joins by pooling cleared
// tables in fixed capacity buckets.
type JoinPool struct {
	mu sync.Mutex

	maxPerBucket int
	free         map[int][]*joinTable
	hits, misses int64
}

// NewJoinPool creates a pool whose buckets each retain at most
// maxTablesPerBucket idle tables before further returns are discarded.
func NewJoinPool(maxTablesPerBucket int) *JoinPool {
	if maxTablesPerBucket <= 0 {
		maxTablesPerBucket = 10
	}
	free := make(map[int][]*joinTable, len(joinBucketCapacities))
	for _, cap := range joinBucketCapacities {
		free[cap] = nil
	}
	return &JoinPool{maxPerBucket: maxTablesPerBucket, free: free}
}

// bucketFor picks the smallest bucket capacity that can hold estimatedSize.
func bucketFor(estimatedSize int) int {
	for _, cap := range joinBucketCapacities {
		if estimatedSize <= cap {
			return cap
		}
	}
	return joinBucketCapacities[len(joinBucketCapacities)-1]
}

// GetTable returns a cleared table sized for estimatedSize, reusing a
// pooled table from the smallest adequate bucket when one is available.
func (p *JoinPool) GetTable(estimatedSize int) *joinTable {
	bucket := bucketFor(estimatedSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	tables := p.free[bucket]
	if len(tables) > 0 {
		t := tables[len(tables)-1]
		p.free[bucket] = tables[:len(tables)-1]
		p.hits++
		t.clear()
		return t
	}

	p.misses++
	return newJoinTable(bucket)
}

// ReturnTable gives a table back to the pool. A table is kept only if its
// grown capacity is within 2x its nominal bucket capacity and the bucket
// holds fewer than maxTablesPerBucket tables already; otherwise it is
// discarded (left for the garbage collector).
func (p *JoinPool) ReturnTable(t *joinTable) {
	if t == nil {
		return
	}
	if len(t.rows) > 2*t.capacity {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free[t.capacity]) >= p.maxPerBucket {
		return
	}
	p.free[t.capacity] = append(p.free[t.capacity], t)
}

// PreWarm seeds each capacity bucket with n tables.
func (p *JoinPool) PreWarm(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cap := range joinBucketCapacities {
		for i := 0; i < n && len(p.free[cap]) < p.maxPerBucket; i++ {
			p.free[cap] = append(p.free[cap], newJoinTable(cap))
		}
	}
}

// Stats returns current hit/miss counters and per-bucket idle table counts.
func (p *JoinPool) Stats() JoinPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	sizes := make(map[int]int, len(p.free))
	for cap, tables := range p.free {
		sizes[cap] = len(tables)
	}
	return JoinPoolStats{Hits: p.hits, Misses: p.misses, BucketSizes: sizes}
}

// hashJoin performs an equality join of left and right binding sets on
// their shared variables, using a pooled table built from the smaller side.
// Returns the merged bindings for every matching pair; a merge that
// disagrees on a shared non-join variable is skipped.
func (pool *JoinPool) hashJoin(left, right []Binding, commonVars []string) []Binding {
	if len(commonVars) == 0 {
		// Cartesian product: no shared variables to join on.
		out := make([]Binding, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				if merged, ok := l.merge(r); ok {
					out = append(out, merged)
				}
			}
		}
		return out
	}

	buildSide, probeSide := left, right
	if len(right) < len(left) {
		buildSide, probeSide = right, left
	}

	table := pool.GetTable(len(buildSide))
	defer pool.ReturnTable(table)

	for _, b := range buildSide {
		table.insert(joinKey(b, commonVars), b)
	}

	var out []Binding
	for _, p := range probeSide {
		for _, b := range table.probe(joinKey(p, commonVars)) {
			if merged, ok := b.merge(p); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}

// joinKey concatenates a binding's values for the given variable names,
// producing the pooled table's hash key.
func joinKey(b Binding, vars []string) string {
	key := make([]byte, 0, 32)
	for i, v := range vars {
		if i > 0 {
			key = append(key, 0)
		}
		key = append(key, b[v]...)
	}
	return string(key)
}

// commonVariables returns the variable names present in both a and b.
func commonVariables(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	var out []string
	for _, v := range b {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}
