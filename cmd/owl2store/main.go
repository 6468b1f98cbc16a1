// Command owl2store runs the store as a standalone host process: it loads
// configuration, wires the graph store and ledger, and serves /healthz and
// /metrics over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c360studio/owl2store/config"
	"github.com/c360studio/owl2store/ops"
	"github.com/c360studio/owl2store/store"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; defaults are used when empty")
	listenAddr := flag.String("listen", ":8080", "address to serve /healthz and /metrics on")
	embeddedNATS := flag.Bool("embedded-nats", true, "run an embedded NATS server instead of connecting to ledger.nats_url")
	flag.Parse()

	if err := run(*configPath, *listenAddr, *embeddedNATS); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, listenAddr string, embeddedNATS bool) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	s := store.New(cfg)
	health := ops.NewHealth()
	metrics := ops.NewMetrics(prometheus.DefaultRegisterer)
	audit := ops.NewAuditLog(1000)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	js, shutdownNATS, err := connectNATS(ctx, cfg, embeddedNATS)
	if err != nil {
		return fmt.Errorf("connect NATS: %w", err)
	}
	defer shutdownNATS()

	if _, err := s.NewLedger(ctx, js); err != nil {
		return fmt.Errorf("wire ledger: %w", err)
	}
	audit.Record("startup", "", "store and ledger wired", nil)

	health.SetReady(true)
	metrics.SetGraphsActive(len(s.GraphIRIs()))

	mux := http.NewServeMux()
	mux.Handle("/healthz", health)
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{Addr: listenAddr, Handler: mux}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("owl2store listening on %s", listenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}

// connectNATS either starts an embedded dev/test NATS server or connects to
// cfg.Ledger.NATSUrl, returning a JetStream context and a cleanup func.
func connectNATS(ctx context.Context, cfg *config.Config, embedded bool) (jetstream.JetStream, func(), error) {
	var conn *nats.Conn
	var embeddedServer *server.Server

	if embedded {
		opts := &server.Options{Port: -1, JetStream: true, NoLog: true, NoSigs: true}
		ns, err := server.NewServer(opts)
		if err != nil {
			return nil, nil, fmt.Errorf("create embedded NATS server: %w", err)
		}
		go ns.Start()
		if !ns.ReadyForConnections(5 * time.Second) {
			ns.Shutdown()
			return nil, nil, fmt.Errorf("embedded NATS server failed to start")
		}
		embeddedServer = ns

		c, err := nats.Connect(ns.ClientURL())
		if err != nil {
			ns.Shutdown()
			return nil, nil, fmt.Errorf("connect to embedded NATS: %w", err)
		}
		conn = c
	} else {
		c, err := nats.Connect(cfg.Ledger.NATSUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to NATS at %s: %w", cfg.Ledger.NATSUrl, err)
		}
		conn = c
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		if embeddedServer != nil {
			embeddedServer.Shutdown()
		}
		return nil, nil, fmt.Errorf("create JetStream context: %w", err)
	}

	cleanup := func() {
		conn.Drain()
		conn.Close()
		if embeddedServer != nil {
			embeddedServer.Shutdown()
			embeddedServer.WaitForShutdown()
		}
	}
	return js, cleanup, nil
}
