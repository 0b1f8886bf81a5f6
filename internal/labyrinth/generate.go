package labyrinth

import (
	"math/rand"
	"time"

	"github.com/emberhall/labyrinth/internal/logger"
)

// Generate runs the full pipeline: config validation, base topology,
// solvability enforcement, connectivity augmentation, and the final
// structural validation. It is the only supported way to obtain a new
// graph; it never returns an unvalidated one.
func Generate(cfg GenerationConfig) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Debug("Generating labyrinth",
		"chambers", cfg.ChamberCount,
		"topology", cfg.Topology.String(),
		"connectivity", cfg.Connectivity,
		"seed", seed)

	gen := &generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}

	g := gen.buildTopology()

	if cfg.EnsureSolvable {
		gen.enforceSolvability(g)
	}

	gen.augment(g)

	if err := ValidateGraph(g, cfg); err != nil {
		logger.Warning("Generated labyrinth rejected", "error", err)
		return nil, err
	}

	logger.Info("Labyrinth generated",
		"chambers", g.ChamberCount(),
		"connections", g.EdgeCount()/2,
		"seed", seed)

	return g, nil
}
