package main

import (
	"context"
	"testing"

	"github.com/c360studio/owl2store/config"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestConnectNATSEmbeddedStartsAndStops(t *testing.T) {
	cfg := config.DefaultConfig()

	js, cleanup, err := connectNATS(context.Background(), cfg, true)
	require.NoError(t, err)
	require.NotNil(t, js)
	defer cleanup()

	_, err = js.CreateStream(context.Background(), jetstream.StreamConfig{
		Name:     "CMD_TEST",
		Subjects: []string{"CMD_TEST.>"},
	})
	require.NoError(t, err)
}
