package challenge

import (
	"fmt"
	"math/rand"
	"strings"
)

type skillScenario struct {
	name        string
	description string
	action      string
}

var skillScenarios = []skillScenario{
	{"Collapsed Bridge", "A narrow beam spans a dark chasm.", "cross"},
	{"Rune-Locked Door", "A heavy door bears a ring of worn runes.", "turn"},
	{"Swinging Blades", "Blades sweep the corridor in a steady rhythm.", "dash"},
	{"Crumbling Ledge", "A thin ledge hugs the chamber wall.", "climb"},
}

// Skill is a timing trial: the player examines the obstacle to better
// the odds, then attempts it against a difficulty-scaled roll.
type Skill struct {
	scenario skillScenario
	chance   int
	rng      *rand.Rand
	examined bool
}

func newSkill(difficulty int, rng *rand.Rand) *Skill {
	return &Skill{
		scenario: skillScenarios[rng.Intn(len(skillScenarios))],
		chance:   90 - difficulty*5,
		rng:      rng,
	}
}

func (s *Skill) Present() string {
	return fmt.Sprintf("%s: %s\nYou can 'examine' it first, or '%s' to attempt it.",
		s.scenario.name, s.scenario.description, s.scenario.action)
}

func (s *Skill) Respond(answer string) (bool, string) {
	action := strings.ToLower(strings.TrimSpace(answer))

	switch action {
	case "examine", "look":
		if !s.examined {
			s.examined = true
			s.chance += 15
			return false, "You study the obstacle carefully and spot a safer approach."
		}
		return false, "You have already learned all you can."

	case s.scenario.action, "attempt", "try":
		roll := s.rng.Intn(100)
		if roll < s.chance {
			return true, "With practiced care you make it through unscathed."
		}
		return false, "You slip and scramble back to safety. Try again."
	}

	return false, fmt.Sprintf("Nothing happens. You can 'examine' or '%s'.", s.scenario.action)
}
