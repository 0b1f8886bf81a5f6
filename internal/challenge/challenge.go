// Package challenge implements the mini-game challenges attached to
// chambers: riddles, puzzles, combat, skill trials, and memory tests.
package challenge

import (
	"fmt"
	"math/rand"
)

// Challenge is one chamber's mini-game. Present describes it; Respond
// consumes one player answer and reports whether it is solved.
type Challenge interface {
	Present() string
	Respond(answer string) (solved bool, reply string)
}

// New creates a challenge for the given tag. Difficulty runs 1 to 10.
// All random content draws come from rng, so a seeded source yields
// reproducible challenges.
func New(tag string, difficulty int, rng *rand.Rand) (Challenge, error) {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 10 {
		difficulty = 10
	}

	switch tag {
	case "riddle":
		return newRiddle(difficulty, rng), nil
	case "puzzle":
		return newPuzzle(difficulty, rng), nil
	case "combat":
		return newCombat(difficulty, rng), nil
	case "skill":
		return newSkill(difficulty, rng), nil
	case "memory":
		return newMemory(difficulty, rng), nil
	}
	return nil, fmt.Errorf("unknown challenge type %q", tag)
}

// Tags returns the known challenge tags.
func Tags() []string {
	return []string{"riddle", "puzzle", "combat", "skill", "memory"}
}
