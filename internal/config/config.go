// Package config loads game-wide configuration from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberhall/labyrinth/internal/labyrinth"
)

// GameConfig holds game-wide configuration settings.
type GameConfig struct {
	Generation GenerationConfig `yaml:"generation"`
	Server     ServerConfig     `yaml:"server"`
	Save       SaveConfig       `yaml:"save"`
}

// GenerationConfig mirrors the labyrinth generation parameters in
// YAML form; the topology travels as its name.
type GenerationConfig struct {
	ChamberCount   int     `yaml:"chamber_count"`
	Topology       string  `yaml:"topology"`
	Connectivity   float64 `yaml:"connectivity"`
	EnsureSolvable bool    `yaml:"ensure_solvable"`
	MinPathLength  int     `yaml:"min_path_length"`
	MaxDeadEnds    int     `yaml:"max_dead_ends"`
	Seed           int64   `yaml:"seed"`
	Difficulty     int     `yaml:"difficulty"`
}

// ServerConfig holds the websocket play server settings.
type ServerConfig struct {
	// AllowedOrigins lists browser origins allowed to connect. Empty
	// rejects every browser origin; "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxConnections caps concurrent sessions. 0 means unlimited.
	MaxConnections int `yaml:"max_connections"`

	// AccessPasswordHash is an optional bcrypt hash; when set, clients
	// must present the password before a session starts.
	AccessPasswordHash string `yaml:"access_password_hash"`
}

// SaveConfig holds progress persistence settings.
type SaveConfig struct {
	// Driver selects the database: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// DSN is the PostgreSQL connection string when Driver is
	// "postgres".
	DSN string `yaml:"dsn"`
}

// DefaultConfig returns a GameConfig with standard settings.
func DefaultConfig() *GameConfig {
	gen := labyrinth.DefaultConfig()
	return &GameConfig{
		Generation: GenerationConfig{
			ChamberCount:   gen.ChamberCount,
			Topology:       gen.Topology.String(),
			Connectivity:   gen.Connectivity,
			EnsureSolvable: gen.EnsureSolvable,
			MinPathLength:  gen.MinPathLength,
			MaxDeadEnds:    gen.MaxDeadEnds,
			Difficulty:     5,
		},
		Server: ServerConfig{
			AllowedOrigins: []string{},
			MaxConnections: 100,
		},
		Save: SaveConfig{
			Driver: "sqlite",
			Path:   "data/labyrinth.db",
		},
	}
}

// LoadConfig loads game configuration from a YAML file. A missing
// file yields defaults; a malformed file returns defaults and the
// parse error.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// GenerationParams converts the YAML generation section to the
// generator's config type.
func (c *GameConfig) GenerationParams() (labyrinth.GenerationConfig, error) {
	topology, err := labyrinth.ParseTopology(c.Generation.Topology)
	if err != nil {
		return labyrinth.GenerationConfig{}, err
	}
	return labyrinth.GenerationConfig{
		ChamberCount:   c.Generation.ChamberCount,
		Topology:       topology,
		Connectivity:   c.Generation.Connectivity,
		EnsureSolvable: c.Generation.EnsureSolvable,
		MinPathLength:  c.Generation.MinPathLength,
		MaxDeadEnds:    c.Generation.MaxDeadEnds,
		Seed:           c.Generation.Seed,
	}, nil
}

// IsOriginAllowed checks an origin against the server allowlist.
func (c *ServerConfig) IsOriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
