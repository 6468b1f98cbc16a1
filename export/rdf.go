// Package export serializes named graphs of triples to standard RDF
// interchange formats.
package export

import (
	"fmt"
	"strings"
	"time"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// Triple represents a single subject/predicate/object statement. Object may
// be a string (interpreted as an IRI when it looks like one, else a plain
// literal), or a Go int/float/bool, serialized with the matching XSD
// datatype.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Graph is a named collection of triples. GraphIRI identifies the named
// graph the triples belong to; none of the three output formats writes it:
// every graph's triples are serialized into a single default-graph output.
type Graph struct {
	GraphIRI string
	Triples  []Triple
}

// RDFExporter accumulates graphs and serializes them on demand.
type RDFExporter struct {
	graphs   []Graph
	prefixes map[string]string
}

// NewRDFExporter creates an exporter seeded with the standard OWL2/RDF
// namespace prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		graphs:   make([]Graph, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes used across all
// export formats.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
		"owl":  "http://www.w3.org/2002/07/owl#",
		"xsd":  "http://www.w3.org/2001/XMLSchema#",
	}
}

// SetPrefix registers or overrides a namespace prefix.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// AddGraph adds a named graph to be exported.
func (e *RDFExporter) AddGraph(g Graph) {
	e.graphs = append(e.graphs, g)
}

// AddTriples adds an anonymous (default-graph) collection of triples.
func (e *RDFExporter) AddTriples(triples []Triple) {
	e.graphs = append(e.graphs, Graph{Triples: triples})
}

// Export serializes all accumulated graphs to the specified format, using
// the matching Writer type from this package's format registry.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	default:
		if info, ok := GetFormatInfo(format); ok {
			return "", fmt.Errorf("unsupported format: %s (%s)", format, info.Description)
		}
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes all graphs' triples to Turtle, grouped by subject.
func (e *RDFExporter) toTurtle() string {
	w := NewTurtleWriter()
	for prefix, iri := range e.prefixes {
		w.SetPrefix(prefix, iri)
	}
	w.WritePrefixes()

	for _, g := range e.graphs {
		bySubject, order := groupBySubject(g.Triples)
		for _, subject := range order {
			triples := bySubject[subject]
			w.WriteSubject(subject)
			for i, t := range triples {
				w.WritePredicate(t.Predicate, t.Object, i == len(triples)-1)
			}
			w.WriteBlank()
		}
	}

	return w.String()
}

// toNTriples serializes all graphs' triples to N-Triples, one line per
// triple.
func (e *RDFExporter) toNTriples() string {
	w := NewNTriplesWriter()
	for _, g := range e.graphs {
		for _, t := range g.Triples {
			w.WriteTriple(t.Subject, t.Predicate, t.Object)
		}
	}
	return w.String()
}

// toJSONLD serializes all graphs to a single JSON-LD document, one node per
// subject.
func (e *RDFExporter) toJSONLD() string {
	w := NewJSONLDWriter()
	w.SetContext(e.prefixes)

	for _, g := range e.graphs {
		bySubject, order := groupBySubject(g.Triples)
		for _, subject := range order {
			triples := bySubject[subject]
			props := make(map[string]any, len(triples))
			for _, t := range triples {
				props[t.Predicate] = jsonLDValue(t.Object)
			}
			w.AddNode(subject, nil, props)
		}
	}

	return w.String()
}

// groupBySubject buckets triples by subject IRI, preserving first-seen
// subject order so output is deterministic across calls.
func groupBySubject(triples []Triple) (map[string][]Triple, []string) {
	bySubject := make(map[string][]Triple)
	var order []string
	for _, t := range triples {
		if _, ok := bySubject[t.Subject]; !ok {
			order = append(order, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	return bySubject, order
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^xsd:dateTime", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^xsd:decimal", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#dateTime>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^<http://www.w3.org/2001/XMLSchema#decimal>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// jsonLDValue converts an object value to the Go value JSONLDNode.MarshalJSON
// should marshal for JSON-LD output: IRIs become {"@id": ...} references,
// date-times become typed value objects, everything else passes through for
// encoding/json to render directly.
func jsonLDValue(obj any) any {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return map[string]string{"@id": v}
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return map[string]string{"@value": v, "@type": "xsd:dateTime"}
		}
		return v
	default:
		return v
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
