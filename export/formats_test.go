package export_test

import (
	"testing"

	"github.com/c360studio/owl2store/export"
	"github.com/stretchr/testify/require"
)

func TestGetFormatInfoKnownFormats(t *testing.T) {
	info, ok := export.GetFormatInfo(export.FormatTurtle)
	require.True(t, ok)
	require.Equal(t, ".ttl", info.Extension)
	require.Equal(t, "text/turtle", info.MIMEType)

	info, ok = export.GetFormatInfo(export.FormatJSONLD)
	require.True(t, ok)
	require.Equal(t, "application/ld+json", info.MIMEType)
}

func TestGetFormatInfoUnknownFormat(t *testing.T) {
	_, ok := export.GetFormatInfo(export.Format("unknown"))
	require.False(t, ok)
}

func TestUnsupportedFormatErrorNamesIt(t *testing.T) {
	e := export.NewRDFExporter()
	_, err := e.Export(export.Format("unknown"))
	require.ErrorContains(t, err, "unsupported format: unknown")
}

func TestCompactExpandJSONLDRoundTrip(t *testing.T) {
	doc := &export.JSONLDDocument{
		Context: map[string]any{"ex": "https://example.org/"},
		Graph: []export.JSONLDNode{
			{ID: "ex:alice", Type: []string{"ex:Person"}},
		},
	}

	compact := export.CompactJSONLD(doc)
	require.Contains(t, compact, "ex:alice")

	expanded, err := export.ExpandJSONLD(compact)
	require.NoError(t, err)
	require.Equal(t, "https://example.org/", expanded.Context["ex"])
	require.Len(t, expanded.Graph, 1)
	require.Equal(t, "ex:alice", expanded.Graph[0].ID)
}
