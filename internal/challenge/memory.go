package challenge

import (
	"fmt"
	"math/rand"
	"strings"
)

var memorySymbols = []string{"sun", "moon", "star", "tree", "wave", "flame", "stone", "wind"}

// Memory shows a symbol sequence once; the player must repeat it back
// in order, space-separated. Sequence length scales with difficulty.
type Memory struct {
	sequence []string
	shown    bool
}

func newMemory(difficulty int, rng *rand.Rand) *Memory {
	length := 3 + difficulty/3
	sequence := make([]string, length)
	for i := range sequence {
		sequence[i] = memorySymbols[rng.Intn(len(memorySymbols))]
	}
	return &Memory{sequence: sequence}
}

func (m *Memory) Present() string {
	if !m.shown {
		m.shown = true
		return fmt.Sprintf("Sigils flash across the wall, then vanish:\n\n  %s\n\nRepeat them in order, separated by spaces.",
			strings.Join(m.sequence, "  "))
	}
	return "The wall is blank now. Repeat the sigils in order, separated by spaces."
}

func (m *Memory) Respond(answer string) (bool, string) {
	given := strings.Fields(strings.ToLower(answer))
	if len(given) != len(m.sequence) {
		return false, fmt.Sprintf("The wall stays dark. The sequence had %d sigils.", len(m.sequence))
	}
	for i, symbol := range m.sequence {
		if given[i] != symbol {
			return false, "The wall flickers and goes dark. That is not the sequence."
		}
	}
	return true, "The sigils blaze in sequence and the wall slides away. Well remembered."
}
