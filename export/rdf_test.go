package export_test

import (
	"strings"
	"testing"

	"github.com/c360studio/owl2store/export"
	"github.com/stretchr/testify/require"
)

func TestExportTurtle(t *testing.T) {
	e := export.NewRDFExporter()
	e.AddTriples([]export.Triple{
		{Subject: "ex:alice", Predicate: "ex:name", Object: "Alice"},
		{Subject: "ex:alice", Predicate: "ex:age", Object: 30},
	})

	output, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)
	require.Contains(t, output, "@prefix")
	require.Contains(t, output, "<ex:alice>")
	require.Contains(t, output, `"Alice"`)
	require.Contains(t, output, "xsd:integer")
}

func TestExportNTriples(t *testing.T) {
	e := export.NewRDFExporter()
	e.AddTriples([]export.Triple{
		{Subject: "ex:alice", Predicate: "ex:name", Object: "Alice"},
	})

	output, err := e.Export(export.FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 1)
	require.True(t, strings.HasSuffix(lines[0], " ."))
}

func TestExportJSONLD(t *testing.T) {
	e := export.NewRDFExporter()
	e.AddTriples([]export.Triple{
		{Subject: "ex:alice", Predicate: "ex:name", Object: "Alice"},
	})

	output, err := e.Export(export.FormatJSONLD)
	require.NoError(t, err)
	require.Contains(t, output, "@context")
	require.Contains(t, output, "@graph")
	require.Contains(t, output, "@id")
}

func TestExportMultipleGraphs(t *testing.T) {
	e := export.NewRDFExporter()
	e.AddGraph(export.Graph{
		GraphIRI: "ex:graph1",
		Triples: []export.Triple{
			{Subject: "ex:alice", Predicate: "ex:name", Object: "Alice"},
		},
	})
	e.AddGraph(export.Graph{
		GraphIRI: "ex:graph2",
		Triples: []export.Triple{
			{Subject: "ex:bob", Predicate: "ex:name", Object: "Bob"},
		},
	})

	output, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)
	require.Contains(t, output, "ex:alice")
	require.Contains(t, output, "ex:bob")
}

func TestExportObjectTypes(t *testing.T) {
	e := export.NewRDFExporter()
	e.AddTriples([]export.Triple{
		{Subject: "ex:s", Predicate: "ex:str", Object: "hello"},
		{Subject: "ex:s", Predicate: "ex:int", Object: 5},
		{Subject: "ex:s", Predicate: "ex:bool", Object: true},
		{Subject: "ex:s", Predicate: "ex:time", Object: "2025-01-28T10:30:00Z"},
		{Subject: "ex:s", Predicate: "ex:iri", Object: "https://example.org/thing"},
	})

	output, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)
	require.Contains(t, output, `"hello"`)
	require.Contains(t, output, "xsd:integer")
	require.Contains(t, output, "xsd:boolean")
	require.Contains(t, output, "xsd:dateTime")
	require.Contains(t, output, "<https://example.org/thing>")
}

func TestUnsupportedFormat(t *testing.T) {
	e := export.NewRDFExporter()
	_, err := e.Export("unknown")
	require.Error(t, err)
}

func TestSetPrefix(t *testing.T) {
	e := export.NewRDFExporter()
	e.SetPrefix("ex", "https://example.org/")
	e.AddTriples([]export.Triple{{Subject: "ex:s", Predicate: "ex:p", Object: "o"}})

	output, err := e.Export(export.FormatTurtle)
	require.NoError(t, err)
	require.Contains(t, output, "@prefix ex: <https://example.org/> .")
}
