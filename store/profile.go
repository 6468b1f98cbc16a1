package store

import "github.com/c360studio/owl2store/profile"

// Validate checks graphIRI against p (profile.EL, profile.QL, or
// profile.RL), returning every violation found. A graph that has never
// been created validates as empty and returns no violations.
func (s *GraphStore) Validate(graphIRI string, p profile.Profile) []profile.Violation {
	return p.Validate(s.Graph(graphIRI))
}

// QuickCheck reports whether graphIRI is already known to satisfy p
// without running the full structural walk, for a fast membership probe
// ahead of a full Validate call.
func (s *GraphStore) QuickCheck(graphIRI string, p profile.Profile) bool {
	return p.QuickCheck(s.Graph(graphIRI))
}
