// Package world provides the runtime traversal surface over a
// validated labyrinth graph.
package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emberhall/labyrinth/internal/labyrinth"
)

// Navigator tracks the player's position over a frozen graph. The
// graph's connections are never mutated after construction; only the
// current chamber and per-chamber flags change.
//
// A Navigator has a single owner. Callers needing concurrent moves
// must serialize their own calls.
type Navigator struct {
	graph    *labyrinth.Graph
	chambers map[int]*Chamber

	currentChamberID  int
	startingChamberID int
	mu                sync.RWMutex
}

// NewNavigator creates a navigator over a validated graph. Every
// graph chamber must have a matching Chamber; the start chamber must
// exist.
func NewNavigator(graph *labyrinth.Graph, chambers map[int]*Chamber) (*Navigator, error) {
	if graph == nil || graph.ChamberCount() == 0 {
		return nil, fmt.Errorf("labyrinth must contain at least one chamber")
	}
	if !graph.Contains(labyrinth.StartChamber) {
		return nil, fmt.Errorf("starting chamber %d does not exist", labyrinth.StartChamber)
	}
	for _, id := range graph.ChamberIDs() {
		if chambers[id] == nil {
			return nil, fmt.Errorf("chamber %d has no content", id)
		}
	}

	nav := &Navigator{
		graph:             graph,
		chambers:          chambers,
		currentChamberID:  labyrinth.StartChamber,
		startingChamberID: labyrinth.StartChamber,
	}
	chambers[labyrinth.StartChamber].MarkVisited()
	return nav, nil
}

// Move moves the player in the given direction. Unknown or absent
// directions are simply "no exit": Move returns false and the
// position is unchanged.
func (n *Navigator) Move(direction string) bool {
	dir, ok := labyrinth.ParseDirection(direction)
	if !ok {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	target, ok := n.graph.Target(n.currentChamberID, dir)
	if !ok || !n.graph.Contains(target) {
		return false
	}

	n.currentChamberID = target
	n.chambers[target].MarkVisited()
	return true
}

// CurrentChamberID returns the player's position.
func (n *Navigator) CurrentChamberID() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.currentChamberID
}

// StartingChamberID returns the chamber the run began in.
func (n *Navigator) StartingChamberID() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.startingChamberID
}

// CurrentChamber returns the chamber the player is in.
func (n *Navigator) CurrentChamber() *Chamber {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.chambers[n.currentChamberID]
}

// Chamber returns a chamber by ID, or nil.
func (n *Navigator) Chamber(id int) *Chamber {
	return n.chambers[id]
}

// ChamberCount returns the number of chambers.
func (n *Navigator) ChamberCount() int {
	return n.graph.ChamberCount()
}

// ChamberIDs returns all chamber IDs in ascending order.
func (n *Navigator) ChamberIDs() []int {
	return n.graph.ChamberIDs()
}

// Connections returns a copy of a chamber's direction map. Missing
// IDs yield an empty map, never an error.
func (n *Navigator) Connections(id int) map[labyrinth.Direction]int {
	return n.graph.Connections(id)
}

// AvailableDirections returns the exit names from a chamber in fixed
// direction order.
func (n *Navigator) AvailableDirections(id int) []string {
	conns := n.graph.Connections(id)
	dirs := make([]string, 0, len(conns))
	for _, dir := range labyrinth.AllDirections() {
		if _, ok := conns[dir]; ok {
			dirs = append(dirs, dir.String())
		}
	}
	return dirs
}

// ReachableFrom returns the chamber IDs reachable from the given
// chamber, sorted. Used for "can the player still win" diagnostics.
func (n *Navigator) ReachableFrom(id int) []int {
	reachable := n.graph.ReachableFrom(id)
	ids := make([]int, 0, len(reachable))
	for chamber := range reachable {
		ids = append(ids, chamber)
	}
	sort.Ints(ids)
	return ids
}

// ResetPosition returns the player to the starting chamber.
func (n *Navigator) ResetPosition() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.currentChamberID = n.startingChamberID
}

// SetPosition places the player in a specific chamber, used when
// restoring a saved game. The chamber must exist.
func (n *Navigator) SetPosition(id int) error {
	if !n.graph.Contains(id) {
		return fmt.Errorf("chamber %d does not exist", id)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.currentChamberID = id
	n.chambers[id].MarkVisited()
	return nil
}

// CompletedChambers returns the IDs of all completed chambers, sorted.
func (n *Navigator) CompletedChambers() []int {
	var completed []int
	for _, id := range n.graph.ChamberIDs() {
		if n.chambers[id].IsCompleted() {
			completed = append(completed, id)
		}
	}
	return completed
}

// VisitedChambers returns the IDs of all visited chambers, sorted.
func (n *Navigator) VisitedChambers() []int {
	var visited []int
	for _, id := range n.graph.ChamberIDs() {
		if n.chambers[id].IsVisited() {
			visited = append(visited, id)
		}
	}
	return visited
}

// AllCompleted reports whether every chamber with a challenge has
// been completed.
func (n *Navigator) AllCompleted() bool {
	for _, id := range n.graph.ChamberIDs() {
		chamber := n.chambers[id]
		if chamber.HasChallenge() && !chamber.IsCompleted() {
			return false
		}
	}
	return true
}

// Graph returns the frozen graph for read-only collaborators.
func (n *Navigator) Graph() *labyrinth.Graph {
	return n.graph
}

// State is a snapshot of the world's mutable state.
type State struct {
	CurrentChamberID  int
	StartingChamberID int
	TotalChambers     int
	CompletedChambers []int
	VisitedChambers   []int
}

// GetState returns a snapshot of the current world state.
func (n *Navigator) GetState() State {
	n.mu.RLock()
	current := n.currentChamberID
	starting := n.startingChamberID
	n.mu.RUnlock()

	return State{
		CurrentChamberID:  current,
		StartingChamberID: starting,
		TotalChambers:     n.graph.ChamberCount(),
		CompletedChambers: n.CompletedChambers(),
		VisitedChambers:   n.VisitedChambers(),
	}
}

func (n *Navigator) String() string {
	return fmt.Sprintf("Navigator(%d chambers, current: %d)", n.graph.ChamberCount(), n.CurrentChamberID())
}
