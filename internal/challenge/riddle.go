package challenge

import (
	"math/rand"
	"strings"
)

type riddleEntry struct {
	text    string
	answers []string
	hint    string
}

// riddles is indexed by difficulty minus one.
var riddles = []riddleEntry{
	{"What has keys but no locks, space but no room, and you can enter but not go inside?",
		[]string{"keyboard", "a keyboard"}, "You are probably using one right now."},
	{"I am not alive, but I grow; I don't have lungs, but I need air; I don't have a mouth, but water kills me. What am I?",
		[]string{"fire", "a fire", "flame"}, "It burns."},
	{"The more you take, the more you leave behind. What am I?",
		[]string{"footsteps", "steps", "footprints"}, "Think about walking."},
	{"I have cities, but no houses. I have mountains, but no trees. I have water, but no fish. What am I?",
		[]string{"map", "a map"}, "You use it to find your way."},
	{"What comes once in a minute, twice in a moment, but never in a thousand years?",
		[]string{"m", "the letter m", "letter m"}, "Look at the words themselves."},
	{"I am always hungry and will die if not fed, but whatever I touch will soon turn red. What am I?",
		[]string{"fire", "a fire", "flame"}, "It consumes everything."},
	{"What has a head, a tail, is brown, and has no legs?",
		[]string{"penny", "a penny", "coin", "a coin"}, "Check your pockets."},
	{"I speak without a mouth and hear without ears. I have no body, but come alive with wind. What am I?",
		[]string{"echo", "an echo"}, "You might find it in a canyon."},
	{"The person who makes it, sells it. The person who buys it, never uses it. The person who uses it, never knows it. What is it?",
		[]string{"coffin", "a coffin"}, "Think about endings."},
	{"I am the beginning of the end, and the end of time and space. I am essential to creation, and I surround every place. What am I?",
		[]string{"e", "the letter e", "letter e"}, "Look at the words themselves."},
}

// Riddle is a text riddle with multiple acceptable answers and a hint
// revealed after a failed attempt.
type Riddle struct {
	text     string
	answers  []string
	hint     string
	attempts int
}

func newRiddle(difficulty int, _ *rand.Rand) *Riddle {
	entry := riddles[difficulty-1]
	return &Riddle{text: entry.text, answers: entry.answers, hint: entry.hint}
}

func (r *Riddle) Present() string {
	return "A voice echoes through the chamber:\n\n" + r.text
}

func (r *Riddle) Respond(answer string) (bool, string) {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	for _, accepted := range r.answers {
		if normalized == accepted {
			return true, "The voice falls silent. The riddle is solved."
		}
	}

	r.attempts++
	if r.attempts >= 2 && r.hint != "" {
		return false, "That is not the answer. Hint: " + r.hint
	}
	return false, "That is not the answer. The voice repeats the riddle."
}
