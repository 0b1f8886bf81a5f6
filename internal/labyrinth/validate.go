package labyrinth

import (
	"fmt"
	"sort"
)

// ValidationFailure identifies which structural check rejected a graph.
type ValidationFailure int

const (
	// MissingChambers: a declared chamber ID has no entry in the graph.
	MissingChambers ValidationFailure = iota
	// DanglingEdge: a connection targets a chamber that does not exist.
	DanglingEdge
	// UnreachableChambers: breadth-first traversal from the start
	// chamber does not cover every chamber.
	UnreachableChambers
	// AsymmetricEdge: a connection has no mirror in the opposite
	// direction on its target.
	AsymmetricEdge
)

func (f ValidationFailure) String() string {
	switch f {
	case MissingChambers:
		return "missing chambers"
	case DanglingEdge:
		return "dangling edge"
	case UnreachableChambers:
		return "unreachable chambers"
	case AsymmetricEdge:
		return "asymmetric edge"
	}
	return "unknown failure"
}

// ValidationError reports why a generated graph was rejected. A graph
// that fails validation must not be used; the caller's only recovery
// is to regenerate (with a different seed) or fall back to a
// hand-authored layout.
type ValidationError struct {
	Failure ValidationFailure

	// Chambers carries the missing or unreachable ID set, sorted.
	Chambers []int

	// From, Direction, and To describe the offending edge for
	// DanglingEdge and AsymmetricEdge failures.
	From      int
	Direction Direction
	To        int
}

func (e *ValidationError) Error() string {
	switch e.Failure {
	case MissingChambers:
		return fmt.Sprintf("labyrinth validation: missing chambers %v", e.Chambers)
	case DanglingEdge:
		return fmt.Sprintf("labyrinth validation: chamber %d connects %s to non-existent chamber %d",
			e.From, e.Direction, e.To)
	case UnreachableChambers:
		return fmt.Sprintf("labyrinth validation: unreachable chambers %v", e.Chambers)
	case AsymmetricEdge:
		return fmt.Sprintf("labyrinth validation: connection %d -%s-> %d has no return connection",
			e.From, e.Direction, e.To)
	}
	return "labyrinth validation: unknown failure"
}

// ValidateGraph runs the structural checks in order: chamber
// presence, edge targets, reachability from the start chamber, and
// bidirectional consistency. The first failed check wins.
func ValidateGraph(g *Graph, cfg GenerationConfig) error {
	var missing []int
	for id := 1; id <= cfg.ChamberCount; id++ {
		if !g.Contains(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Failure: MissingChambers, Chambers: missing}
	}

	for _, id := range g.ChamberIDs() {
		for _, dir := range AllDirections() {
			target, ok := g.Target(id, dir)
			if !ok {
				continue
			}
			if !g.Contains(target) {
				return &ValidationError{Failure: DanglingEdge, From: id, Direction: dir, To: target}
			}
		}
	}

	reachable := g.ReachableFrom(StartChamber)
	if len(reachable) != cfg.ChamberCount {
		var unreachable []int
		for _, id := range g.ChamberIDs() {
			if !reachable[id] {
				unreachable = append(unreachable, id)
			}
		}
		sort.Ints(unreachable)
		return &ValidationError{Failure: UnreachableChambers, Chambers: unreachable}
	}

	for _, id := range g.ChamberIDs() {
		for _, dir := range AllDirections() {
			target, ok := g.Target(id, dir)
			if !ok {
				continue
			}
			back, ok := g.Target(target, dir.Opposite())
			if !ok || back != id {
				return &ValidationError{Failure: AsymmetricEdge, From: id, Direction: dir, To: target}
			}
		}
	}

	return nil
}
