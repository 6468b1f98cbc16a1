// Package store is the top-level facade (wiring C1-C10): it partitions the
// knowledge base into named graphs (§3.8), each an independently
// reasoned-over ontology, and composes the IRI interner, rule engine, query
// engine, profile validators, RDF export, and the append-only ledger over
// that partition.
package store

import (
	"sync"

	"github.com/c360studio/owl2store/config"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/ledger"
	"github.com/c360studio/owl2store/ontology"
	"github.com/c360studio/owl2store/query"
)

// GraphStore partitions the knowledge base into named graphs keyed by IRI
// (§3.8): each graph is an independently indexed *ontology.Ontology: a
// query pattern may be scoped to one graph or left unscoped to match
// across all of them. One interner is shared across every graph, since IRI
// identity is a global concern, not a per-graph one.
type GraphStore struct {
	mu sync.RWMutex

	cfg      *config.Config
	interner *iri.Interner
	graphs   map[string]*ontology.Ontology

	engine *query.Engine
}

// New creates an empty GraphStore tuned by cfg.
func New(cfg *config.Config) *GraphStore {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &GraphStore{
		cfg:      cfg,
		interner: iri.New(cfg.Interner.Capacity, cfg.Interner.PressureThreshold),
		graphs:   make(map[string]*ontology.Ontology),
		engine: query.NewEngine(
			cfg.Query.PromotionThreshold,
			cfg.Query.ResultCacheCapacity,
			cfg.Query.PredictorLookback,
			cfg.Query.PredictorHistoryLength,
			cfg.Query.JoinPoolMaxTablesPerBucket,
		),
	}
}

// Interner returns the interner shared by every graph in this store.
func (s *GraphStore) Interner() *iri.Interner { return s.interner }

// Engine returns the query engine shared by every graph in this store.
func (s *GraphStore) Engine() *query.Engine { return s.engine }

// Graph returns the ontology backing graphIRI, creating an empty one on
// first use. Every mutation made through the returned *ontology.Ontology
// must be followed by a call to NotifyMutation so cached query results
// computed before the mutation become unreachable.
func (s *GraphStore) Graph(graphIRI string) *ontology.Ontology {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.graphs[graphIRI]
	if !ok {
		o = ontology.New(nil, nil)
		s.graphs[graphIRI] = o
	}
	return o
}

// HasGraph reports whether graphIRI has been created (by a prior Graph
// call or ledger append), without creating it.
func (s *GraphStore) HasGraph(graphIRI string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.graphs[graphIRI]
	return ok
}

// GraphIRIs returns every named graph currently in the store.
func (s *GraphStore) GraphIRIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.graphs))
	for iriStr := range s.graphs {
		out = append(out, iriStr)
	}
	return out
}

// NotifyMutation bumps the query engine's cache epoch. Call this once
// after any AddAxiom/AddClass/... against a graph this store owns.
func (s *GraphStore) NotifyMutation() { s.engine.NotifyMutation() }

// graphProviderAdapter narrows GraphStore to ledger.GraphProvider: ledger
// depends on that interface rather than on *ontology.Ontology directly, so
// the store package (not ledger) owns the dependency on ontology.
type graphProviderAdapter struct{ store *GraphStore }

// GraphProvider returns an adapter satisfying ledger.GraphProvider, for
// wiring a *ledger.Ledger over this store.
func (s *GraphStore) GraphProvider() ledger.GraphProvider { return graphProviderAdapter{store: s} }

func (a graphProviderAdapter) Graph(graphIRI string) ledger.GraphSink { return a.store.Graph(graphIRI) }
