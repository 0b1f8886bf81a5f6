package challenge

import (
	"fmt"
	"math/rand"
	"strings"
)

type sequencePuzzle struct {
	sequence []string
	answer   string
	rule     string
}

var sequences = []sequencePuzzle{
	{[]string{"2", "4", "6", "8", "?"}, "10", "even numbers"},
	{[]string{"1", "4", "9", "16", "?"}, "25", "perfect squares"},
	{[]string{"1", "1", "2", "3", "5", "?"}, "8", "Fibonacci sequence"},
	{[]string{"2", "6", "12", "20", "?"}, "30", "n(n+1)"},
	{[]string{"1", "4", "7", "10", "?"}, "13", "add 3 each time"},
	{[]string{"3", "6", "12", "24", "?"}, "48", "double each time"},
	{[]string{"1", "2", "4", "8", "16", "?"}, "32", "powers of two"},
	{[]string{"1", "8", "27", "64", "?"}, "125", "perfect cubes"},
	{[]string{"2", "3", "5", "7", "11", "?"}, "13", "prime numbers"},
	{[]string{"1", "2", "6", "24", "120", "?"}, "720", "factorials"},
}

// Puzzle is a number sequence completion puzzle.
type Puzzle struct {
	puzzle   sequencePuzzle
	attempts int
}

func newPuzzle(difficulty int, rng *rand.Rand) *Puzzle {
	// Draw from the band at or below the requested difficulty.
	return &Puzzle{puzzle: sequences[rng.Intn(difficulty)]}
}

func (p *Puzzle) Present() string {
	return fmt.Sprintf("Glowing runes form a sequence on the wall:\n\n  %s\n\nWhat number completes it?",
		strings.Join(p.puzzle.sequence, ", "))
}

func (p *Puzzle) Respond(answer string) (bool, string) {
	if strings.TrimSpace(answer) == p.puzzle.answer {
		return true, "The runes flare bright and fade. The pattern is complete."
	}

	p.attempts++
	if p.attempts >= 2 {
		return false, "The runes dim. Hint: " + p.puzzle.rule + "."
	}
	return false, "The runes pulse angrily. That is not the next number."
}
