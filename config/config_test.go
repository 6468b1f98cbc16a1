package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interner.Capacity != 10_000 {
		t.Errorf("expected default interner capacity 10000, got %d", cfg.Interner.Capacity)
	}
	if cfg.Interner.PressureThreshold != 0.8 {
		t.Errorf("expected default pressure threshold 0.8, got %f", cfg.Interner.PressureThreshold)
	}
	if cfg.RuleEngine.MaxIterations != 1000 {
		t.Errorf("expected default max iterations 1000, got %d", cfg.RuleEngine.MaxIterations)
	}
	if cfg.Query.ResultCacheCapacity != 1000 {
		t.Errorf("expected default result cache capacity 1000, got %d", cfg.Query.ResultCacheCapacity)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}, wantErr: false},
		{name: "zero interner capacity", modify: func(c *Config) { c.Interner.Capacity = 0 }, wantErr: true},
		{name: "pressure threshold too low", modify: func(c *Config) { c.Interner.PressureThreshold = 0 }, wantErr: true},
		{name: "pressure threshold too high", modify: func(c *Config) { c.Interner.PressureThreshold = 1.5 }, wantErr: true},
		{name: "zero max iterations", modify: func(c *Config) { c.RuleEngine.MaxIterations = 0 }, wantErr: true},
		{name: "zero result cache capacity", modify: func(c *Config) { c.Query.ResultCacheCapacity = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
interner:
  capacity: 50000
  pressure_threshold: 0.9
query:
  result_cache_capacity: 2000
  default_timeout: 10s
ledger:
  nats_url: "nats://test:4222"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Interner.Capacity != 50000 {
		t.Errorf("expected interner capacity 50000, got %d", cfg.Interner.Capacity)
	}
	if cfg.Interner.PressureThreshold != 0.9 {
		t.Errorf("expected pressure threshold 0.9, got %f", cfg.Interner.PressureThreshold)
	}
	if cfg.Query.ResultCacheCapacity != 2000 {
		t.Errorf("expected result cache capacity 2000, got %d", cfg.Query.ResultCacheCapacity)
	}
	if cfg.Query.DefaultTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Query.DefaultTimeout)
	}
	if cfg.Ledger.NATSUrl != "nats://test:4222" {
		t.Errorf("expected ledger nats url override, got %s", cfg.Ledger.NATSUrl)
	}
	// Fields not present in the file should retain their defaults.
	if cfg.RuleEngine.MaxIterations != 1000 {
		t.Errorf("expected rule engine max iterations to remain default, got %d", cfg.RuleEngine.MaxIterations)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Interner: InternerConfig{Capacity: 99999},
		Ledger:   LedgerConfig{NATSUrl: "nats://override:4222"},
	}

	base.Merge(override)

	if base.Interner.Capacity != 99999 {
		t.Errorf("expected interner capacity 99999, got %d", base.Interner.Capacity)
	}
	if base.Interner.PressureThreshold != 0.8 {
		t.Errorf("expected pressure threshold to remain default, got %f", base.Interner.PressureThreshold)
	}
	if base.Ledger.NATSUrl != "nats://override:4222" {
		t.Errorf("expected nats url override, got %s", base.Ledger.NATSUrl)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Interner.Capacity = 42

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Interner.Capacity != 42 {
		t.Errorf("expected interner capacity 42, got %d", loaded.Interner.Capacity)
	}
}
