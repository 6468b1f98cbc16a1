package iri

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Handle is a shared, immutable IRI. It carries the full string, an
// optional prefix label for pretty-printing, and a hash value computed
// once at construction time and never recomputed. Handles are always
// passed and stored by pointer — never copied by value — so that map-key
// and axiom-field usage shares the one backing string.
//
// Equality is always by string content (use Equal or compare As()), never
// by pointer identity: eviction from the interner can produce a second,
// distinct *Handle for the same string, and correctness must not depend
// on which one a caller happens to hold.
type Handle struct {
	str    string
	hash   uint64
	prefix string
}

// newHandle builds a Handle for s, computing its hash once.
func newHandle(s, prefix string) *Handle {
	return &Handle{str: s, hash: xxhash.Sum64String(s), prefix: prefix}
}

// As returns the full IRI string.
func (h *Handle) As() string {
	if h == nil {
		return ""
	}
	return h.str
}

// Hash returns the precomputed 64-bit hash. It is never recomputed from the
// string on this call.
func (h *Handle) Hash() uint64 {
	if h == nil {
		return 0
	}
	return h.hash
}

// Prefix returns the pretty-printing prefix label, if any was assigned at
// intern time.
func (h *Handle) Prefix() string {
	if h == nil {
		return ""
	}
	return h.prefix
}

// Equal compares two handles by string content.
func (h *Handle) Equal(other *Handle) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.str == other.str
}

// Less orders two handles lexicographically on their string content.
func (h *Handle) Less(other *Handle) bool {
	return h.str < other.str
}

// LocalName returns the portion of the IRI after the last '#' or '/',
// whichever occurs later; an IRI with neither (a prefixed name such as
// "ex:a") splits after its last ':'.
func (h *Handle) LocalName() string {
	s := h.str
	i := strings.LastIndexAny(s, "#/")
	if i < 0 {
		i = strings.LastIndexByte(s, ':')
	}
	if i >= 0 && i+1 < len(s) {
		return s[i+1:]
	}
	return s
}

// NamespaceIRI returns the portion of the IRI up to and including the last
// '#' or '/', or up to and including the last ':' when the IRI has neither.
func (h *Handle) NamespaceIRI() string {
	s := h.str
	i := strings.LastIndexAny(s, "#/")
	if i < 0 {
		i = strings.LastIndexByte(s, ':')
	}
	if i >= 0 {
		return s[:i+1]
	}
	return s
}

func (h *Handle) String() string { return h.str }
