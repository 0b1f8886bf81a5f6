package labyrinth

import "fmt"

// Topology selects the base layout strategy for generation.
type Topology int

const (
	TopologyLinear Topology = iota
	TopologyCircular
	TopologyTree
	TopologyGrid
	TopologyRandom
	TopologyHybrid
)

func (t Topology) String() string {
	switch t {
	case TopologyLinear:
		return "linear"
	case TopologyCircular:
		return "circular"
	case TopologyTree:
		return "tree"
	case TopologyGrid:
		return "grid"
	case TopologyRandom:
		return "random"
	case TopologyHybrid:
		return "hybrid"
	}
	return "unknown"
}

// ParseTopology converts a topology name to a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "linear":
		return TopologyLinear, nil
	case "circular":
		return TopologyCircular, nil
	case "tree":
		return TopologyTree, nil
	case "grid":
		return TopologyGrid, nil
	case "random":
		return TopologyRandom, nil
	case "hybrid":
		return TopologyHybrid, nil
	}
	return TopologyHybrid, fmt.Errorf("unknown topology %q", s)
}

// GenerationConfig holds the parameters for labyrinth generation.
type GenerationConfig struct {
	// ChamberCount is the total number of chambers to generate (minimum 3).
	ChamberCount int `yaml:"chamber_count"`

	// Topology is the base layout strategy.
	Topology Topology `yaml:"-"`

	// Connectivity is the fraction of unused direction slots to fill
	// with extra connections after the base layout (0.0 to 1.0).
	Connectivity float64 `yaml:"connectivity"`

	// EnsureSolvable enables the path-extension and reachability
	// repair pass.
	EnsureSolvable bool `yaml:"ensure_solvable"`

	// MinPathLength is the minimum chamber count on the longest path
	// from the start chamber (at least 2, below ChamberCount).
	MinPathLength int `yaml:"min_path_length"`

	// MaxDeadEnds is accepted and validated but not enforced by any
	// generation step. Kept for config compatibility.
	MaxDeadEnds int `yaml:"max_dead_ends"`

	// Seed drives every random decision when non-zero. Zero means a
	// time-derived seed and non-reproducible output.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		ChamberCount:   13,
		Topology:       TopologyHybrid,
		Connectivity:   0.3,
		EnsureSolvable: true,
		MinPathLength:  5,
		MaxDeadEnds:    3,
	}
}

// ConfigError reports an invalid generation parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid generation config: %s %s", e.Field, e.Reason)
}

// Validate checks the configuration. No generation step ever sees an
// invalid config.
func (c GenerationConfig) Validate() error {
	if c.ChamberCount < 3 {
		return &ConfigError{Field: "chamber_count", Reason: "must be at least 3"}
	}
	if c.Connectivity < 0.0 || c.Connectivity > 1.0 {
		return &ConfigError{Field: "connectivity", Reason: "must be between 0.0 and 1.0"}
	}
	if c.MinPathLength < 2 {
		return &ConfigError{Field: "min_path_length", Reason: "must be at least 2"}
	}
	if c.MinPathLength >= c.ChamberCount {
		return &ConfigError{Field: "min_path_length", Reason: "must be below chamber_count"}
	}
	if c.MaxDeadEnds < 0 {
		return &ConfigError{Field: "max_dead_ends", Reason: "must not be negative"}
	}
	return nil
}
