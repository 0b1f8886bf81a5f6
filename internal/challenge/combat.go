package challenge

import (
	"fmt"
	"math/rand"
	"strings"
)

var enemyNames = []string{
	"Stone Golem", "Shadow Wraith", "Crystal Spider", "Labyrinth Minotaur",
	"Spectral Guardian", "Bone Sentinel",
}

// Combat is a turn-based fight: the player attacks or defends until
// the enemy falls or the player's vigor runs out.
type Combat struct {
	enemyName    string
	enemyHealth  int
	playerHealth int
	damage       int
	rng          *rand.Rand
	lost         bool
}

func newCombat(difficulty int, rng *rand.Rand) *Combat {
	return &Combat{
		enemyName:    enemyNames[rng.Intn(len(enemyNames))],
		enemyHealth:  10 + difficulty*3,
		playerHealth: 30,
		damage:       4 + difficulty,
		rng:          rng,
	}
}

func (c *Combat) Present() string {
	return fmt.Sprintf("A %s blocks your path! (enemy health: %d, your vigor: %d)\n"+
		"Will you 'attack' or 'defend'?", c.enemyName, c.enemyHealth, c.playerHealth)
}

func (c *Combat) Respond(answer string) (bool, string) {
	if c.lost {
		// A lost fight resets so the chamber can be retried.
		c.playerHealth = 30
		c.lost = false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "attack", "a":
		dealt := 3 + c.rng.Intn(6)
		c.enemyHealth -= dealt
		if c.enemyHealth <= 0 {
			return true, fmt.Sprintf("You strike for %d damage. The %s collapses into dust!", dealt, c.enemyName)
		}

		taken := c.rng.Intn(c.damage)
		c.playerHealth -= taken
		if c.playerHealth <= 0 {
			c.lost = true
			return false, fmt.Sprintf("The %s overwhelms you. You stagger back to recover; the fight begins anew.", c.enemyName)
		}
		return false, fmt.Sprintf("You deal %d damage and take %d. (enemy: %d, vigor: %d)",
			dealt, taken, c.enemyHealth, c.playerHealth)

	case "defend", "d":
		taken := c.rng.Intn(c.damage) / 2
		c.playerHealth -= taken
		return false, fmt.Sprintf("You brace behind your guard and take only %d damage. (enemy: %d, vigor: %d)",
			taken, c.enemyHealth, c.playerHealth)
	}

	return false, "The enemy circles you. Choose 'attack' or 'defend'."
}
