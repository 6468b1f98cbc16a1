// Package iri implements the bounded, concurrent, eviction-aware IRI
// interning subsystem (C1) and the generic bounded cache it is built on
// (C2), which the query engine's result cache also uses.
package iri

import (
	"strings"

	"github.com/c360studio/owl2store/owlerr"
)

const (
	// DefaultCapacity is the default interner size cap.
	DefaultCapacity = 10000
	// DefaultPressureThreshold is the default memory-pressure ratio.
	DefaultPressureThreshold = 0.8
	// MaxIRILength rejects strings longer than this as over-length.
	MaxIRILength = 8192
)

// Interner is a bounded, concurrent string->*Handle intern table. Eviction
// under pressure never invalidates handles already handed out: the evicted
// entry only loses its forward mapping, so a later Intern of the same
// string produces a second, string-equal Handle.
type Interner struct {
	cache *BoundedCache[string, *Handle]
}

// New returns an Interner with the given capacity and eviction-pressure
// threshold. A capacity <= 0 uses DefaultCapacity; a threshold <= 0 uses
// DefaultPressureThreshold.
func New(capacity int, pressureThreshold float64) *Interner {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if pressureThreshold <= 0 {
		pressureThreshold = DefaultPressureThreshold
	}
	return &Interner{cache: NewBoundedCache[string, *Handle](capacity, pressureThreshold)}
}

// Validate checks an IRI string against §3.1/§4.1's invariants without
// interning it: non-empty, contains a scheme separator ':', and is not
// over-length.
func Validate(s string) error {
	if s == "" {
		return owlerr.New(owlerr.KindInvalidIRI, "intern", "IRI string must not be empty")
	}
	if len(s) > MaxIRILength {
		return owlerr.Newf(owlerr.KindInvalidIRI, "intern", "IRI exceeds maximum length %d", MaxIRILength).
			WithContext("iri", s, "length", len(s))
	}
	if !strings.Contains(s, ":") {
		return owlerr.Newf(owlerr.KindInvalidIRI, "intern", "IRI %q missing scheme separator ':'", s).
			WithContext("iri", s)
	}
	return nil
}

// Intern returns a shared Handle for s, creating and caching one if this is
// the first time s has been seen (or if it was previously evicted). The
// second return value reports whether a new Handle was created.
//
// Concurrent callers racing on the same s both receive string-equal
// handles, though not necessarily the same *Handle: the lookup and the
// insert each take the cache lock separately, so both callers may create a
// handle and report it as new. The forward map still holds one entry for s,
// since the later Set replaces the earlier one.
func (in *Interner) Intern(s string) (*Handle, bool, error) {
	return in.InternWithPrefix(s, "")
}

// InternWithPrefix is Intern but also attaches a pretty-printing prefix
// label to newly created handles. An existing handle's prefix is left
// unchanged.
func (in *Interner) InternWithPrefix(s, prefix string) (*Handle, bool, error) {
	if err := Validate(s); err != nil {
		return nil, false, err
	}

	if h, ok := in.cache.Get(s); ok {
		return h, false, nil
	}

	h := newHandle(s, prefix)
	in.cache.Set(s, h)
	return h, true, nil
}

// Lookup returns the currently-cached handle for s without creating one.
func (in *Interner) Lookup(s string) (*Handle, bool) {
	return in.cache.Peek(s)
}

// CheckMemoryPressure reports whether the interner's fill ratio has crossed
// its configured threshold; bulk importers should pause and let eviction
// drain when this returns true.
func (in *Interner) CheckMemoryPressure() bool {
	return in.cache.CheckMemoryPressure()
}

// Stats returns a snapshot of interner hit/miss/eviction/pressure counters.
func (in *Interner) Stats() Snapshot {
	return in.cache.Stats()
}

// Len returns the number of currently interned strings.
func (in *Interner) Len() int {
	return in.cache.Len()
}

// WithPrefix expands prefix:local against reg and interns the result,
// attaching prefix as the pretty-printing label.
func (in *Interner) WithPrefix(reg *RegistryExpander, prefix, local string) (*Handle, error) {
	full, err := reg.Expand(prefix, local)
	if err != nil {
		return nil, owlerr.Wrap(owlerr.KindInvalidIRI, "iri_with_prefix", err, "prefix expansion failed")
	}
	h, _, err := in.InternWithPrefix(full, prefix)
	return h, err
}

// RegistryExpander is satisfied by vocabulary.Registry; it is declared here
// as a narrow interface so the iri package does not import vocabulary
// (which would create a cycle were vocabulary ever to need IRI handles).
type RegistryExpander interface {
	Expand(prefix, local string) (string, error)
}
