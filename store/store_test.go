package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/config"
	"github.com/c360studio/owl2store/export"
	"github.com/c360studio/owl2store/profile"
	"github.com/c360studio/owl2store/query"
	"github.com/c360studio/owl2store/store"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.GraphStore {
	t.Helper()
	cfg := config.DefaultConfig()
	return store.New(cfg)
}

// seedAnimals inserts ex:Cat sqsubseteq ex:Animal and ex:felix : ex:Cat into
// graphIRI, interning through the store's shared interner, and notifies the
// store of the mutation.
func seedAnimals(t *testing.T, s *store.GraphStore, graphIRI string) {
	t.Helper()
	in := s.Interner()
	o := s.Graph(graphIRI)

	cat, _, err := in.Intern("ex:Cat")
	require.NoError(t, err)
	animal, _, err := in.Intern("ex:Animal")
	require.NoError(t, err)
	felix, _, err := in.Intern("ex:felix")
	require.NoError(t, err)

	require.NoError(t, o.AddAxiom(axiom.SubClassOf{
		Sub:   &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat},
		Super: &axiom.ClassExpression{Kind: axiom.CEClass, Named: animal},
	}))
	require.NoError(t, o.AddAxiom(axiom.ClassAssertion{
		Individual: felix,
		Class:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat},
	}))
	s.NotifyMutation()
}

func TestGraphStoreGraphIsLazilyCreatedAndStable(t *testing.T) {
	s := newTestStore(t)
	require.False(t, s.HasGraph("ex:graph"))

	o1 := s.Graph("ex:graph")
	require.True(t, s.HasGraph("ex:graph"))

	o2 := s.Graph("ex:graph")
	require.Same(t, o1, o2)

	require.ElementsMatch(t, []string{"ex:graph"}, s.GraphIRIs())
}

func TestGraphStoreQueryScopedToOneGraph(t *testing.T) {
	s := newTestStore(t)
	seedAnimals(t, s, "ex:graph/a")

	// A second, disjoint graph must not leak into a scoped query.
	in := s.Interner()
	dog, _, err := in.Intern("ex:Dog")
	require.NoError(t, err)
	rex, _, err := in.Intern("ex:rex")
	require.NoError(t, err)
	other := s.Graph("ex:graph/b")
	require.NoError(t, other.AddAxiom(axiom.ClassAssertion{
		Individual: rex,
		Class:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: dog},
	}))
	s.NotifyMutation()

	pattern := query.BasicGraphPattern(query.TriplePattern{
		Subject:   query.Var("x"),
		Predicate: query.Const(query.RDFType),
		Object:    query.Const("ex:Cat"),
	})

	result, err := s.Query(context.Background(), "ex:graph/a", pattern, query.ExecConfig{})
	require.NoError(t, err)
	require.Len(t, result.Bindings, 1)
	require.Equal(t, "ex:felix", result.Bindings[0]["x"])
}

func TestGraphStoreQueryUnscopedSpansAllGraphs(t *testing.T) {
	s := newTestStore(t)
	seedAnimals(t, s, "ex:graph/a")

	in := s.Interner()
	dog, _, err := in.Intern("ex:Dog")
	require.NoError(t, err)
	rex, _, err := in.Intern("ex:rex")
	require.NoError(t, err)
	other := s.Graph("ex:graph/b")
	require.NoError(t, other.AddAxiom(axiom.ClassAssertion{
		Individual: rex,
		Class:      &axiom.ClassExpression{Kind: axiom.CEClass, Named: dog},
	}))
	s.NotifyMutation()

	pattern := query.BasicGraphPattern(query.TriplePattern{
		Subject:   query.Var("x"),
		Predicate: query.Const(query.RDFType),
		Object:    query.Var("class"),
	})

	result, err := s.Query(context.Background(), "", pattern, query.ExecConfig{})
	require.NoError(t, err)
	require.Len(t, result.Bindings, 2)
}

func TestGraphStoreRunRulesDerivesInheritedMembership(t *testing.T) {
	s := newTestStore(t)
	seedAnimals(t, s, "ex:graph/a")

	_, derived, err := s.RunRules("ex:graph/a", nil)
	require.NoError(t, err)

	pattern := query.BasicGraphPattern(query.TriplePattern{
		Subject:   query.Var("x"),
		Predicate: query.Const(query.RDFType),
		Object:    query.Const("ex:Animal"),
	})

	cfg := query.ExecConfig{ReasoningEnabled: true}
	engine := s.Engine()
	result, err := engine.Execute(context.Background(), pattern, derived, cfg)
	require.NoError(t, err)
	require.Len(t, result.Bindings, 1)
	require.Equal(t, "ex:felix", result.Bindings[0]["x"])
}

func TestGraphStoreValidateFlagsDisjointness(t *testing.T) {
	s := newTestStore(t)
	in := s.Interner()
	o := s.Graph("ex:graph")

	a, _, err := in.Intern("ex:A")
	require.NoError(t, err)
	b, _, err := in.Intern("ex:B")
	require.NoError(t, err)

	require.NoError(t, o.AddAxiom(axiom.DisjointClasses{
		Classes: []*axiom.ClassExpression{
			{Kind: axiom.CEClass, Named: a},
			{Kind: axiom.CEClass, Named: b},
		},
	}))

	violations := s.Validate("ex:graph", profile.EL{})
	require.NotEmpty(t, violations)
}

func TestGraphStoreExportProjectsSeededGraph(t *testing.T) {
	s := newTestStore(t)
	seedAnimals(t, s, "ex:graph/a")

	out, err := s.Export("ex:graph/a", export.FormatNTriples, nil)
	require.NoError(t, err)
	require.Contains(t, out, "ex:felix")
	require.Contains(t, out, "ex:Cat")
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

func TestGraphStoreNewLedgerAppendsIntoManagedGraph(t *testing.T) {
	js, cleanup := startEmbeddedJetStream(t)
	defer cleanup()

	s := newTestStore(t)
	ctx := context.Background()
	l, err := s.NewLedger(ctx, js)
	require.NoError(t, err)

	in := s.Interner()
	felix, _, err := in.Intern("ex:felix")
	require.NoError(t, err)
	cat, _, err := in.Intern("ex:Cat")
	require.NoError(t, err)

	block, err := l.Append(ctx, "ex:ledger/graph", []axiom.Axiom{
		axiom.ClassAssertion{Individual: felix, Class: &axiom.ClassExpression{Kind: axiom.CEClass, Named: cat}},
	}, []byte("ex:felix a ex:Cat ."))
	require.NoError(t, err)
	require.Equal(t, int64(0), block.Index)

	require.True(t, s.HasGraph("ex:ledger/graph"))
	require.Len(t, s.Graph("ex:ledger/graph").ClassAssertions(), 1)
}
