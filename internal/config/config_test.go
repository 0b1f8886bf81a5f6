package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Generation.ChamberCount != 13 {
		t.Errorf("ChamberCount = %d, want 13", cfg.Generation.ChamberCount)
	}
	if cfg.Generation.Topology != "hybrid" {
		t.Errorf("Topology = %q, want hybrid", cfg.Generation.Topology)
	}
	if cfg.Save.Driver != "sqlite" {
		t.Errorf("Save.Driver = %q, want sqlite", cfg.Save.Driver)
	}

	if _, err := cfg.GenerationParams(); err != nil {
		t.Errorf("GenerationParams() on defaults failed: %v", err)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file = %v, want nil", err)
	}
	if cfg.Generation.ChamberCount != 13 {
		t.Errorf("ChamberCount = %d, want default 13", cfg.Generation.ChamberCount)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `generation:
  chamber_count: 20
  topology: grid
  difficulty: 8
server:
  max_connections: 5
  allowed_origins:
    - "https://example.com"
save:
  driver: postgres
  dsn: "host=localhost dbname=labyrinth"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Generation.ChamberCount != 20 {
		t.Errorf("ChamberCount = %d, want 20", cfg.Generation.ChamberCount)
	}
	if cfg.Generation.Topology != "grid" {
		t.Errorf("Topology = %q, want grid", cfg.Generation.Topology)
	}
	if cfg.Generation.Difficulty != 8 {
		t.Errorf("Difficulty = %d, want 8", cfg.Generation.Difficulty)
	}
	if cfg.Server.MaxConnections != 5 {
		t.Errorf("MaxConnections = %d, want 5", cfg.Server.MaxConnections)
	}
	if cfg.Save.Driver != "postgres" {
		t.Errorf("Save.Driver = %q, want postgres", cfg.Save.Driver)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("generation: [not a map"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig() on malformed YAML returned no error")
	}
	if cfg == nil || cfg.Generation.ChamberCount != 13 {
		t.Error("LoadConfig() on malformed YAML did not fall back to defaults")
	}
}

func TestGenerationParamsRejectsUnknownTopology(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Topology = "spiral"

	if _, err := cfg.GenerationParams(); err == nil {
		t.Error("GenerationParams() accepted an unknown topology")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		origins []string
		origin  string
		want    bool
	}{
		{nil, "https://example.com", false},
		{[]string{"*"}, "https://anywhere.net", true},
		{[]string{"https://example.com"}, "https://example.com", true},
		{[]string{"https://example.com"}, "https://evil.example.net", false},
	}

	for _, tc := range tests {
		cfg := ServerConfig{AllowedOrigins: tc.origins}
		if got := cfg.IsOriginAllowed(tc.origin); got != tc.want {
			t.Errorf("IsOriginAllowed(%q) with %v = %v, want %v",
				tc.origin, tc.origins, got, tc.want)
		}
	}
}
