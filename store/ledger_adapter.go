package store

import (
	"context"
	"fmt"

	"github.com/c360studio/owl2store/ledger"
	"github.com/nats-io/nats.go/jetstream"
)

// NewLedger wires a *ledger.Ledger over this store: blocks land in named
// graphs the store manages (created lazily via GraphProvider), and
// chain-linking metadata lands in s.cfg.Ledger.MetadataGraphIRI.
func (s *GraphStore) NewLedger(ctx context.Context, js jetstream.JetStream) (*ledger.Ledger, error) {
	l, err := ledger.New(ctx, js, s.cfg.Ledger.StreamName, s.cfg.Ledger.MetadataGraphIRI, s.GraphProvider())
	if err != nil {
		return nil, fmt.Errorf("store: wire ledger: %w", err)
	}
	return l, nil
}
