package store

import (
	"context"

	"github.com/c360studio/owl2store/query"
)

// Query executes pattern against graphIRI. An empty graphIRI runs the
// pattern unscoped, across every named graph currently in the store
// (§3.8), via a query.MultiSource built from the graphs' snapshot.
func (s *GraphStore) Query(ctx context.Context, graphIRI string, pattern *query.Pattern, cfg query.ExecConfig) (*query.QueryResult, error) {
	src := s.source(graphIRI)
	return s.engine.Execute(ctx, pattern, src, cfg)
}

// source builds the query.Source pattern an Execute call scans: a single
// graph's OntologySource when graphIRI is scoped, or a MultiSource
// spanning every graph when it is empty.
func (s *GraphStore) source(graphIRI string) query.Source {
	if graphIRI != "" {
		return query.NewOntologySource(s.Graph(graphIRI))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sources := make([]query.Source, 0, len(s.graphs))
	for _, o := range s.graphs {
		sources = append(sources, query.NewOntologySource(o))
	}
	return query.NewMultiSource(sources...)
}
