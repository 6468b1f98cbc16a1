package store

import (
	"github.com/c360studio/owl2store/export"
	"github.com/c360studio/owl2store/vocabulary"
)

// Export serializes graphIRI to format using the standard OWL2/RDF
// namespace prefixes plus whatever registry contributes. A nil registry
// falls back to vocabulary.NewRegistry().
func (s *GraphStore) Export(graphIRI string, format export.Format, registry *vocabulary.Registry) (string, error) {
	projector := export.NewProjector(registry)
	triples := projector.Project(s.Graph(graphIRI))

	exporter := export.NewRDFExporter()
	for prefix, ns := range projector.Prefixes() {
		exporter.SetPrefix(prefix, ns)
	}
	exporter.AddGraph(export.Graph{GraphIRI: graphIRI, Triples: triples})

	return exporter.Export(format)
}
