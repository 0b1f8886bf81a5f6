package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/emberhall/labyrinth/internal/challenge"
	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/labyrinth"
	"github.com/emberhall/labyrinth/internal/world"
)

// BuildWorld generates a labyrinth, assigns content to every chamber,
// attaches challenges, and returns a navigator positioned at the start
// chamber together with the seed that produced it. A zero seed in cfg
// is replaced with the clock so the caller can save it for replay.
func BuildWorld(cfg labyrinth.GenerationConfig, catalog *content.Catalog, difficulty int) (*world.Navigator, int64, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	graph, err := labyrinth.Generate(cfg)
	if err != nil {
		return nil, 0, err
	}

	// Content and challenge draws come from a source seeded alongside
	// the graph, so one seed reproduces the whole world.
	rng := rand.New(rand.NewSource(cfg.Seed))
	assigned := catalog.Assign(graph, rng)

	chambers := make(map[int]*world.Chamber, len(assigned))
	for _, id := range graph.ChamberIDs() {
		ct := assigned[id]

		// The start chamber is a safe entrance with no challenge.
		if id == labyrinth.StartChamber {
			ct.ChallengeTag = ""
		}

		chamber := world.NewChamber(id, ct.Name, ct.Description, ct.ChallengeTag)
		if ct.ChallengeTag != "" {
			ch, err := challenge.New(ct.ChallengeTag, difficulty, rng)
			if err != nil {
				return nil, 0, fmt.Errorf("chamber %d: %w", id, err)
			}
			chamber.SetChallenge(ch)
		}
		chambers[id] = chamber
	}

	nav, err := world.NewNavigator(graph, chambers)
	if err != nil {
		return nil, 0, err
	}
	return nav, cfg.Seed, nil
}

// AttachChallenges rebuilds live challenges for every tagged chamber
// that is not yet completed. Used after restoring a saved game, where
// the snapshot records tags and completion but not challenge state.
func AttachChallenges(nav *world.Navigator, difficulty int, rng *rand.Rand) error {
	for _, id := range nav.ChamberIDs() {
		chamber := nav.Chamber(id)
		if chamber.ChallengeTag == "" || chamber.IsCompleted() {
			continue
		}
		ch, err := challenge.New(chamber.ChallengeTag, difficulty, rng)
		if err != nil {
			return fmt.Errorf("chamber %d: %w", id, err)
		}
		chamber.SetChallenge(ch)
	}
	return nil
}
