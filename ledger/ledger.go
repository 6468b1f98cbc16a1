// Package ledger implements the append-only named-graph journal (C9): each
// appended block's payload lands in its own named graph, a reserved
// metadata graph records the chain-linking facts (hash, index, timestamp,
// previous block), and the raw payload is durably published to a NATS
// JetStream stream for replication.
//
// Parsing a block's serialized Turtle/N-Quads payload into axioms is a
// surface-parser concern and out of scope here (the journal is handed an
// already-parsed axiom set alongside the raw bytes it hashes and publishes).
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/c360studio/owl2store/axiom"
	"github.com/c360studio/owl2store/iri"
	"github.com/nats-io/nats.go/jetstream"
)

// BlockNamespace prefixes the synthetic block-individual IRIs the ledger
// mints in the metadata graph (block/<n>).
const BlockNamespace = "urn:owl2store:ledger:"

const (
	predHasHash      = BlockNamespace + "hasHash"
	predHasIndex     = BlockNamespace + "hasIndex"
	predHasTimestamp = BlockNamespace + "hasTimestamp"
	predPrevious     = BlockNamespace + "previous"
)

// GraphSink is the subset of *ontology.Ontology the ledger writes axioms
// into: one per named graph.
type GraphSink interface {
	AddAxiom(ax axiom.Axiom) error
}

// GraphProvider resolves the sink for a named graph, creating it on first
// use. *store.GraphStore supplies one through its GraphProvider method.
type GraphProvider interface {
	Graph(graphIRI string) GraphSink
}

// Block is one appended journal entry's chain-linking metadata.
type Block struct {
	Index        int64
	GraphIRI     string
	Hash         string
	PreviousHash string
	Timestamp    time.Time
}

// Ledger is the append-only journal. A single Ledger owns one monotonic
// block index and hash chain; Append is safe for concurrent callers.
type Ledger struct {
	mu sync.Mutex

	js               jetstream.JetStream
	streamName       string
	graphs           GraphProvider
	metadataGraphIRI string
	interner         *iri.Interner

	nextIndex int64
	lastHash  string
}

// New creates a Ledger that publishes to streamName (created if it does not
// already exist) and records chain metadata under metadataGraphIRI.
func New(ctx context.Context, js jetstream.JetStream, streamName, metadataGraphIRI string, graphs GraphProvider) (*Ledger, error) {
	if _, err := getOrCreateStream(ctx, js, streamName); err != nil {
		return nil, fmt.Errorf("ledger: create stream %q: %w", streamName, err)
	}
	return &Ledger{
		js:               js,
		streamName:       streamName,
		graphs:           graphs,
		metadataGraphIRI: metadataGraphIRI,
		interner:         iri.New(0, 0),
	}, nil
}

func getOrCreateStream(ctx context.Context, js jetstream.JetStream, name string) (jetstream.Stream, error) {
	stream, err := js.Stream(ctx, name)
	if err == nil {
		return stream, nil
	}
	return js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     name,
		Subjects: []string{name + ".>"},
	})
}

// Append implements the ledger adapter boundary (§6): it inserts axioms
// into the graph named graphIRI, records the chain metadata (hash, index,
// timestamp, link to the previous block) into the reserved metadata graph,
// and publishes payload — the raw serialized bytes the axioms were parsed
// from — to the backing stream for durable replication.
func (l *Ledger) Append(ctx context.Context, graphIRI string, axioms []axiom.Axiom, payload []byte) (*Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sink := l.graphs.Graph(graphIRI)
	for i, ax := range axioms {
		if err := sink.AddAxiom(ax); err != nil {
			return nil, fmt.Errorf("ledger: insert payload axiom %d into graph %q: %w", i, graphIRI, err)
		}
	}

	sum := sha256.Sum256(payload)
	hash := hex.EncodeToString(sum[:])
	index := l.nextIndex
	previousHash := l.lastHash
	now := time.Now().UTC()

	if err := l.recordMetadata(index, hash, now); err != nil {
		return nil, err
	}

	subject := l.streamName + "." + sanitizeSubjectToken(graphIRI)
	if _, err := l.js.Publish(ctx, subject, payload); err != nil {
		return nil, fmt.Errorf("ledger: publish block %d: %w", index, err)
	}

	l.nextIndex++
	l.lastHash = hash

	return &Block{
		Index:        index,
		GraphIRI:     graphIRI,
		Hash:         hash,
		PreviousHash: previousHash,
		Timestamp:    now,
	}, nil
}

// recordMetadata writes block/<index>'s hash, index, timestamp, and (for
// index > 0) a link to block/<index-1> into the metadata graph.
func (l *Ledger) recordMetadata(index int64, hash string, ts time.Time) error {
	sink := l.graphs.Graph(l.metadataGraphIRI)

	blockIRI, _, err := l.interner.Intern(blockIRIString(index))
	if err != nil {
		return fmt.Errorf("ledger: intern block IRI: %w", err)
	}

	if err := l.assertLiteral(sink, blockIRI, predHasHash, hash); err != nil {
		return err
	}
	if err := l.assertLiteral(sink, blockIRI, predHasIndex, strconv.FormatInt(index, 10)); err != nil {
		return err
	}
	if err := l.assertLiteral(sink, blockIRI, predHasTimestamp, ts.Format(time.RFC3339Nano)); err != nil {
		return err
	}

	if index > 0 {
		previousProp, _, err := l.interner.Intern(predPrevious)
		if err != nil {
			return fmt.Errorf("ledger: intern previous property: %w", err)
		}
		previousIRI, _, err := l.interner.Intern(blockIRIString(index - 1))
		if err != nil {
			return fmt.Errorf("ledger: intern previous block IRI: %w", err)
		}
		if err := sink.AddAxiom(axiom.ObjectPropertyAssertion{Subject: blockIRI, Property: previousProp, Object: previousIRI}); err != nil {
			return fmt.Errorf("ledger: record previous link: %w", err)
		}
	}

	return nil
}

func (l *Ledger) assertLiteral(sink GraphSink, subject *iri.Handle, property, lexical string) error {
	prop, _, err := l.interner.Intern(property)
	if err != nil {
		return fmt.Errorf("ledger: intern property %q: %w", property, err)
	}
	if err := sink.AddAxiom(axiom.DataPropertyAssertion{Subject: subject, Property: prop, Value: axiom.Literal{Lexical: lexical}}); err != nil {
		return fmt.Errorf("ledger: record %q: %w", property, err)
	}
	return nil
}

func blockIRIString(index int64) string {
	return fmt.Sprintf("%sblock/%d", BlockNamespace, index)
}

// sanitizeSubjectToken turns a graph IRI into a safe NATS subject token by
// replacing the characters NATS subject tokens forbid.
func sanitizeSubjectToken(graphIRI string) string {
	out := make([]byte, 0, len(graphIRI))
	for i := 0; i < len(graphIRI); i++ {
		c := graphIRI[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
