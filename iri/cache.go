package iri

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Stats holds hit/miss/eviction/memory-pressure counters. Every field is
// updated with relaxed atomic increments — no ordering is required between
// them, they exist only to be read back for reporting.
type Stats struct {
	Hits                 atomic.Int64
	Misses               atomic.Int64
	Evictions            atomic.Int64
	MemoryPressureEvents atomic.Int64
}

// Snapshot is a point-in-time copy of Stats suitable for marshaling.
type Snapshot struct {
	Hits                 int64
	Misses               int64
	Evictions            int64
	MemoryPressureEvents int64
}

// Snapshot copies the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:                 s.Hits.Load(),
		Misses:               s.Misses.Load(),
		Evictions:            s.Evictions.Load(),
		MemoryPressureEvents: s.MemoryPressureEvents.Load(),
	}
}

// HitRate returns Hits / (Hits + Misses), or 0 when there have been no
// lookups at all.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// BoundedCache is a size-capped associative store with least-recently-used
// eviction (ties broken by insertion order), a memory-pressure signal, and
// eviction statistics. It backs the IRI interner (C1) and is reused as-is
// for the query engine's result LRU (tier 3 of §4.5.3).
//
// Eviction never invalidates values already handed out to callers — it only
// removes the cache's own forward mapping. Callers holding a value from a
// prior Get/GetOrCreate keep a valid reference regardless of later eviction.
type BoundedCache[K comparable, V any] struct {
	mu                sync.Mutex
	cap               int
	pressureThreshold float64
	ll                *list.List // front = most recently used
	items             map[K]*list.Element
	stats             Stats
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewBoundedCache returns a cache capped at capacity entries, triggering
// eviction once the fill ratio exceeds pressureThreshold (0 disables the
// pressure-based trigger; eviction still happens once capacity is reached).
func NewBoundedCache[K comparable, V any](capacity int, pressureThreshold float64) *BoundedCache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &BoundedCache[K, V]{
		cap:               capacity,
		pressureThreshold: pressureThreshold,
		ll:                list.New(),
		items:             make(map[K]*list.Element, capacity),
	}
}

// Get returns the value for key and marks it most-recently-used.
func (c *BoundedCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		c.stats.Hits.Add(1)
		return el.Value.(*entry[K, V]).value, true
	}
	c.stats.Misses.Add(1)
	var zero V
	return zero, false
}

// Peek returns the value for key without affecting recency, and without
// counting as a hit or miss.
func (c *BoundedCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set inserts or updates key, evicting least-recently-used entries as
// needed to respect the configured capacity and pressure threshold.
func (c *BoundedCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.ll.MoveToFront(el)
		return
	}

	c.maybeEvictLocked()

	el := c.ll.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = el
}

// Delete removes key if present.
func (c *BoundedCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the current number of entries.
func (c *BoundedCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// PressureRatio returns current_size / capacity.
func (c *BoundedCache[K, V]) PressureRatio() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.ll.Len()) / float64(c.cap)
}

// CheckMemoryPressure reports whether the fill ratio exceeds the configured
// threshold, recording a memory-pressure event when it does. Bulk importers
// are expected to call this and pause when it returns true.
func (c *BoundedCache[K, V]) CheckMemoryPressure() bool {
	c.mu.Lock()
	ratio := float64(c.ll.Len()) / float64(c.cap)
	c.mu.Unlock()

	if c.pressureThreshold > 0 && ratio >= c.pressureThreshold {
		c.stats.MemoryPressureEvents.Add(1)
		return true
	}
	return false
}

// Stats returns a snapshot of hit/miss/eviction/pressure counters.
func (c *BoundedCache[K, V]) Stats() Snapshot {
	return c.stats.Snapshot()
}

// maybeEvictLocked evicts the least-recently-used entry if inserting one
// more would exceed capacity, or if the pressure threshold is already
// crossed. Caller must hold c.mu.
func (c *BoundedCache[K, V]) maybeEvictLocked() {
	ratio := float64(c.ll.Len()) / float64(c.cap)
	overPressure := c.pressureThreshold > 0 && ratio >= c.pressureThreshold
	if c.ll.Len() < c.cap && !overPressure {
		return
	}
	if overPressure {
		c.stats.MemoryPressureEvents.Add(1)
	}
	if c.ll.Len() == 0 {
		return
	}
	oldest := c.ll.Back()
	if oldest == nil {
		return
	}
	e := oldest.Value.(*entry[K, V])
	c.ll.Remove(oldest)
	delete(c.items, e.key)
	c.stats.Evictions.Add(1)
}
