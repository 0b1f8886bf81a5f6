// Package labyrinth generates connected, navigable chamber graphs.
package labyrinth

import "strings"

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// ParseDirection converts a direction name to a Direction.
// Returns false for anything that is not a known direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	}
	return North, false
}
