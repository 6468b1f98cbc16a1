// Package config provides layered configuration loading for the store:
// interner/cache sizing, rule-engine bounds, and query-engine tuning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete tunable surface of a running store.
type Config struct {
	Interner   InternerConfig   `yaml:"interner"`
	Ontology   OntologyConfig   `yaml:"ontology"`
	RuleEngine RuleEngineConfig `yaml:"rule_engine"`
	Query      QueryConfig      `yaml:"query"`
	Ledger     LedgerConfig     `yaml:"ledger"`
}

// InternerConfig tunes the IRI interning subsystem (C1 + C2).
type InternerConfig struct {
	// Capacity is the interner's size cap before eviction.
	Capacity int `yaml:"capacity"`
	// PressureThreshold is the fill ratio (current_size / capacity) that
	// triggers eviction ahead of hitting capacity.
	PressureThreshold float64 `yaml:"pressure_threshold"`
}

// OntologyConfig tunes structural-validation limits (C5).
type OntologyConfig struct {
	// MaxClassIRILength rejects class IRIs longer than this.
	MaxClassIRILength int `yaml:"max_class_iri_length"`
	// MaxCardinality is the threshold above which a cardinality constant
	// is reported as a structural-validation violation.
	MaxCardinality int `yaml:"max_cardinality"`
}

// RuleEngineConfig tunes the forward-chaining rule engine (C7).
type RuleEngineConfig struct {
	// MaxIterations caps the fixed-point loop.
	MaxIterations int `yaml:"max_iterations"`
}

// QueryConfig tunes the query engine's caches, predictor, and join pool
// (C8).
type QueryConfig struct {
	// PromotionThreshold is the access count at which a pattern is
	// promoted into the adaptive query index (tier 1).
	PromotionThreshold int `yaml:"promotion_threshold"`
	// ResultCacheCapacity bounds tier 3, the result LRU.
	ResultCacheCapacity int `yaml:"result_cache_capacity"`
	// PredictorLookback is the Markov-style correlation window, in steps.
	PredictorLookback int `yaml:"predictor_lookback"`
	// PredictorHistoryLength bounds the recent-query sequence tracked by
	// the predictor.
	PredictorHistoryLength int `yaml:"predictor_history_length"`
	// ParallelThreshold is the minimum number of top-level disjuncts
	// before they are evaluated concurrently.
	ParallelThreshold int `yaml:"parallel_threshold"`
	// DefaultTimeout bounds a single query's execution.
	DefaultTimeout time.Duration `yaml:"default_timeout"`
	// JoinPoolMaxTablesPerBucket caps how many idle tables a capacity
	// bucket retains before further returns are discarded.
	JoinPoolMaxTablesPerBucket int `yaml:"join_pool_max_tables_per_bucket"`
}

// LedgerConfig tunes the append-only named-graph journal (C9).
type LedgerConfig struct {
	// NATSUrl is the JetStream-capable NATS server URL.
	NATSUrl string `yaml:"nats_url"`
	// StreamName is the JetStream stream the ledger appends blocks to.
	StreamName string `yaml:"stream_name"`
	// MetadataGraphIRI is the reserved named graph block metadata is
	// written into.
	MetadataGraphIRI string `yaml:"metadata_graph_iri"`
}

// DefaultConfig returns a Config with the bounds named throughout the
// design's component sections.
func DefaultConfig() *Config {
	return &Config{
		Interner: InternerConfig{
			Capacity:          10_000,
			PressureThreshold: 0.8,
		},
		Ontology: OntologyConfig{
			MaxClassIRILength: 2048,
			MaxCardinality:    1_000_000,
		},
		RuleEngine: RuleEngineConfig{
			MaxIterations: 1000,
		},
		Query: QueryConfig{
			PromotionThreshold:         5,
			ResultCacheCapacity:        1000,
			PredictorLookback:          5,
			PredictorHistoryLength:     1000,
			ParallelThreshold:          4,
			DefaultTimeout:             10 * time.Second,
			JoinPoolMaxTablesPerBucket: 10,
		},
		Ledger: LedgerConfig{
			NATSUrl:          "nats://127.0.0.1:4222",
			StreamName:       "OWL2_LEDGER",
			MetadataGraphIRI: "owl2store:ledger-metadata",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Interner.Capacity <= 0 {
		return fmt.Errorf("interner.capacity must be positive")
	}
	if c.Interner.PressureThreshold <= 0 || c.Interner.PressureThreshold > 1 {
		return fmt.Errorf("interner.pressure_threshold must be in (0, 1]")
	}
	if c.RuleEngine.MaxIterations <= 0 {
		return fmt.Errorf("rule_engine.max_iterations must be positive")
	}
	if c.Query.ResultCacheCapacity <= 0 {
		return fmt.Errorf("query.result_cache_capacity must be positive")
	}
	if c.Query.ParallelThreshold <= 0 {
		return fmt.Errorf("query.parallel_threshold must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, starting from
// defaults so a partial file only overrides what it names.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges other into c; other's non-zero values take precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Interner.Capacity != 0 {
		c.Interner.Capacity = other.Interner.Capacity
	}
	if other.Interner.PressureThreshold != 0 {
		c.Interner.PressureThreshold = other.Interner.PressureThreshold
	}

	if other.Ontology.MaxClassIRILength != 0 {
		c.Ontology.MaxClassIRILength = other.Ontology.MaxClassIRILength
	}
	if other.Ontology.MaxCardinality != 0 {
		c.Ontology.MaxCardinality = other.Ontology.MaxCardinality
	}

	if other.RuleEngine.MaxIterations != 0 {
		c.RuleEngine.MaxIterations = other.RuleEngine.MaxIterations
	}

	if other.Query.PromotionThreshold != 0 {
		c.Query.PromotionThreshold = other.Query.PromotionThreshold
	}
	if other.Query.ResultCacheCapacity != 0 {
		c.Query.ResultCacheCapacity = other.Query.ResultCacheCapacity
	}
	if other.Query.PredictorLookback != 0 {
		c.Query.PredictorLookback = other.Query.PredictorLookback
	}
	if other.Query.PredictorHistoryLength != 0 {
		c.Query.PredictorHistoryLength = other.Query.PredictorHistoryLength
	}
	if other.Query.ParallelThreshold != 0 {
		c.Query.ParallelThreshold = other.Query.ParallelThreshold
	}
	if other.Query.DefaultTimeout != 0 {
		c.Query.DefaultTimeout = other.Query.DefaultTimeout
	}
	if other.Query.JoinPoolMaxTablesPerBucket != 0 {
		c.Query.JoinPoolMaxTablesPerBucket = other.Query.JoinPoolMaxTablesPerBucket
	}

	if other.Ledger.NATSUrl != "" {
		c.Ledger.NATSUrl = other.Ledger.NATSUrl
	}
	if other.Ledger.StreamName != "" {
		c.Ledger.StreamName = other.Ledger.StreamName
	}
	if other.Ledger.MetadataGraphIRI != "" {
		c.Ledger.MetadataGraphIRI = other.Ledger.MetadataGraphIRI
	}
}
