package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/iri"
	"github.com/c360studio/owl2store/ledger"
	"github.com/c360studio/owl2store/ontology"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

// fakeGraphs is an in-memory GraphProvider backed by one *ontology.Ontology
// per named graph, mirroring how *store.GraphStore resolves graphs.
type fakeGraphs struct {
	graphs map[string]*ontology.Ontology
}

func newFakeGraphs() *fakeGraphs {
	return &fakeGraphs{graphs: make(map[string]*ontology.Ontology)}
}

func (f *fakeGraphs) Graph(graphIRI string) ledger.GraphSink {
	o, ok := f.graphs[graphIRI]
	if !ok {
		o = ontology.New(nil, nil)
		f.graphs[graphIRI] = o
	}
	return o
}

func startEmbeddedJetStream(t *testing.T) (jetstream.JetStream, func()) {
	t.Helper()

	opts := &server.Options{Port: -1, JetStream: true, NoLog: true, NoSigs: true}
	ns, err := server.NewServer(opts)
	require.NoError(t, err)

	go ns.Start()
	require.True(t, ns.ReadyForConnections(5*time.Second))

	conn, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)

	js, err := jetstream.New(conn)
	require.NoError(t, err)

	cleanup := func() {
		conn.Drain()
		conn.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	}
	return js, cleanup
}

func TestLedgerAppendInsertsPayloadAndChainMetadata(t *testing.T) {
	js, cleanup := startEmbeddedJetStream(t)
	defer cleanup()

	graphs := newFakeGraphs()
	ctx := context.Background()
	l, err := ledger.New(ctx, js, "LEDGER_TEST", "urn:owl2store:ledger:meta", graphs)
	require.NoError(t, err)

	in := iri.New(100, 0.8)
	felix, _, _ := in.Intern("ex:felix")
	cat, _, _ := in.Intern("ex:Cat")

	block0, err := l.Append(ctx, "ex:graph/0", []axiom.Axiom{
		axiom.ClassAssertion{Individual: felix, Class: &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat}},
	}, []byte("ex:felix a ex:Cat ."))
	require.NoError(t, err)
	require.Equal(t, int64(0), block0.Index)
	require.Empty(t, block0.PreviousHash)

	payloadGraph := graphs.graphs["ex:graph/0"]
	require.Len(t, payloadGraph.ClassAssertions(), 1)

	meta := graphs.graphs["urn:owl2store:ledger:meta"]
	require.Len(t, meta.DataPropertyAssertions(), 3) // hash, index, timestamp
	require.Empty(t, meta.ObjectPropertyAssertions())  // no previous link on the first block

	block1, err := l.Append(ctx, "ex:graph/1", nil, []byte("ex:tom a ex:Cat ."))
	require.NoError(t, err)
	require.Equal(t, int64(1), block1.Index)
	require.Equal(t, block0.Hash, block1.PreviousHash)
	require.NotEqual(t, block0.Hash, block1.Hash)

	require.Len(t, meta.ObjectPropertyAssertions(), 1)
	link := meta.ObjectPropertyAssertions()[0]
	require.Equal(t, "urn:owl2store:ledger:previous", link.Property.As())
	require.Equal(t, "urn:owl2store:ledger:block/0", link.Object.As())
	require.Equal(t, "urn:owl2store:ledger:block/1", link.Subject.As())
}

func TestLedgerAppendIsSequential(t *testing.T) {
	js, cleanup := startEmbeddedJetStream(t)
	defer cleanup()

	graphs := newFakeGraphs()
	ctx := context.Background()
	l, err := ledger.New(ctx, js, "LEDGER_SEQ_TEST", "urn:owl2store:ledger:meta", graphs)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		block, err := l.Append(ctx, "ex:graph", nil, []byte{byte(i)})
		require.NoError(t, err)
		require.Equal(t, int64(i), block.Index)
	}
}
