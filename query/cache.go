package query

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/owl2store/iri"
)

// aqiEntry is the tier-1 adaptive-query-index value: the compiled pattern
// plus the access-frequency and timing statistics that drive promotion and
// the predictor.
type aqiEntry struct {
	compiled        *CompiledPattern
	accessCount     atomic.Int64
	lastAccess      atomic.Int64 // unix nanos
	totalExecNanos  atomic.Int64
	execCount       atomic.Int64
	cachedResult    atomic.Pointer[QueryResult]
	predictionScore atomic.Int64 // fixed-point, x1000
}

// recordExec updates the rolling execution-time average and bumps the
// access count and last-access timestamp.
func (e *aqiEntry) recordExec(d time.Duration, now time.Time) {
	e.accessCount.Add(1)
	e.lastAccess.Store(now.UnixNano())
	e.totalExecNanos.Add(d.Nanoseconds())
	e.execCount.Add(1)
}

// averageExec returns the rolling average execution time.
func (e *aqiEntry) averageExec() time.Duration {
	n := e.execCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(e.totalExecNanos.Load() / n)
}

// Cache is the three-tier query cache: tier 1 (AQI, promoted-only), tier 2
// (plain compiled-pattern cache, warms passively), tier 3 (result LRU keyed
// by pattern hash + config hash). A single epoch counter invalidates tier 3
// on every ontology mutation; tiers 1 and 2 hold pure, mutation-independent
// compiled plans and are never invalidated by epoch changes.
type Cache struct {
	mu                 sync.RWMutex
	promotionThreshold int64

	aqi      map[uint64]*aqiEntry // tier 1 — promoted only
	compiled map[uint64]*CompiledPattern // tier 2 — every compiled pattern
	// freq tracks access counts for patterns not yet promoted, so
	// promotion can trigger without paying tier-1's statistics overhead
	// up front.
	freq map[uint64]int64

	resultLRU *iri.BoundedCache[resultKey, *QueryResult] // tier 3

	epoch atomic.Int64
}

// resultKey is the tier-3 cache key: pattern hash + config hash + the
// epoch the result was computed under. Including the epoch in the key
// (rather than scanning-and-deleting on mutation) makes invalidation O(1):
// a bumped epoch simply never matches old keys again, and the superseded
// entries age out of the LRU normally.
type resultKey struct {
	patternHash uint64
	configHash  uint64
	epoch       int64
}

// NewCache creates a three-tier cache. promotionThreshold is the tier-1
// promotion frequency (spec default 5); resultCacheCapacity bounds tier 3.
func NewCache(promotionThreshold, resultCacheCapacity int) *Cache {
	if promotionThreshold <= 0 {
		promotionThreshold = 5
	}
	return &Cache{
		promotionThreshold: int64(promotionThreshold),
		aqi:                make(map[uint64]*aqiEntry),
		compiled:           make(map[uint64]*CompiledPattern),
		freq:               make(map[uint64]int64),
		resultLRU:          iri.NewBoundedCache[resultKey, *QueryResult](resultCacheCapacity, 0.9),
	}
}

// Epoch returns the current mutation epoch.
func (c *Cache) Epoch() int64 { return c.epoch.Load() }

// BumpEpoch advances the mutation epoch, making every previously cached
// tier-3 result unreachable by key. Callers invoke this once per ontology
// mutation (AddAxiom, AddClass, ...).
func (c *Cache) BumpEpoch() { c.epoch.Add(1) }

// CompileOrGet returns the compiled form of p, serving from tier 1 (if
// promoted), then tier 2, then compiling fresh and populating both the
// frequency counter and tier 2. Crossing the promotion threshold moves the
// pattern into tier 1.
func (c *Cache) CompileOrGet(p *Pattern) *CompiledPattern {
	hash := ContentHash(p)

	c.mu.RLock()
	if entry, ok := c.aqi[hash]; ok {
		c.mu.RUnlock()
		entry.accessCount.Add(1)
		entry.lastAccess.Store(time.Now().UnixNano())
		return entry.compiled
	}
	if cp, ok := c.compiled[hash]; ok {
		c.mu.RUnlock()
		c.bumpFrequency(hash, cp)
		return cp
	}
	c.mu.RUnlock()

	cp := Compile(p)

	c.mu.Lock()
	c.compiled[hash] = cp
	c.mu.Unlock()
	c.bumpFrequency(hash, cp)

	return cp
}

// bumpFrequency increments the pre-promotion frequency counter for hash,
// promoting it into the AQI once it crosses the configured threshold.
func (c *Cache) bumpFrequency(hash uint64, cp *CompiledPattern) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, promoted := c.aqi[hash]; promoted {
		return
	}
	c.freq[hash]++
	if c.freq[hash] >= c.promotionThreshold {
		entry := &aqiEntry{compiled: cp}
		entry.accessCount.Store(c.freq[hash])
		entry.lastAccess.Store(time.Now().UnixNano())
		c.aqi[hash] = entry
		delete(c.freq, hash)
	}
}

// IsPromoted reports whether a pattern hash has been promoted to tier 1.
func (c *Cache) IsPromoted(hash uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.aqi[hash]
	return ok
}

// RecordExecution records execution statistics against a promoted entry,
// a no-op for patterns not yet promoted.
func (c *Cache) RecordExecution(hash uint64, d time.Duration) {
	c.mu.RLock()
	entry, ok := c.aqi[hash]
	c.mu.RUnlock()
	if ok {
		entry.recordExec(d, time.Now())
	}
}

// GetResult looks up a cached QueryResult for (pattern hash, config hash)
// at the current epoch.
func (c *Cache) GetResult(patternHash, configHash uint64) (*QueryResult, bool) {
	return c.resultLRU.Get(resultKey{patternHash: patternHash, configHash: configHash, epoch: c.Epoch()})
}

// PutResult stores a QueryResult for (pattern hash, config hash) at the
// current epoch.
func (c *Cache) PutResult(patternHash, configHash uint64, result *QueryResult) {
	c.resultLRU.Set(resultKey{patternHash: patternHash, configHash: configHash, epoch: c.Epoch()}, result)
}

// ResultCacheStats returns the tier-3 hit/miss/eviction counters.
func (c *Cache) ResultCacheStats() iri.Snapshot {
	return c.resultLRU.Stats()
}

// PromotedCount returns the number of patterns currently promoted to tier 1.
func (c *Cache) PromotedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.aqi)
}
