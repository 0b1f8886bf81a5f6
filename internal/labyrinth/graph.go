package labyrinth

import "sort"

// StartChamber is the chamber every traversal begins from.
const StartChamber = 1

// Graph maps chamber IDs to their outbound directional connections.
// Chamber IDs run from 1 to the chamber count. A chamber can use each
// direction slot at most once.
type Graph struct {
	chambers map[int]map[Direction]int
}

// NewGraph creates a graph with the given number of chambers and no
// connections.
func NewGraph(chamberCount int) *Graph {
	g := &Graph{chambers: make(map[int]map[Direction]int, chamberCount)}
	for id := 1; id <= chamberCount; id++ {
		g.chambers[id] = make(map[Direction]int)
	}
	return g
}

// ChamberCount returns the number of chambers in the graph.
func (g *Graph) ChamberCount() int {
	return len(g.chambers)
}

// Contains reports whether the chamber ID exists in the graph.
func (g *Graph) Contains(id int) bool {
	_, ok := g.chambers[id]
	return ok
}

// ChamberIDs returns all chamber IDs in ascending order.
func (g *Graph) ChamberIDs() []int {
	ids := make([]int, 0, len(g.chambers))
	for id := range g.chambers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Connections returns a copy of the chamber's direction map. Missing
// chambers yield an empty map.
func (g *Graph) Connections(id int) map[Direction]int {
	conns := make(map[Direction]int, len(g.chambers[id]))
	for dir, target := range g.chambers[id] {
		conns[dir] = target
	}
	return conns
}

// Target returns the chamber connected in the given direction.
func (g *Graph) Target(id int, dir Direction) (int, bool) {
	target, ok := g.chambers[id][dir]
	return target, ok
}

// Link connects chamber a to chamber b via dir, writing both half-edges
// in the same step so the pair stays bidirectionally consistent.
func (g *Graph) Link(a int, dir Direction, b int) {
	g.chambers[a][dir] = b
	g.chambers[b][dir.Opposite()] = a
}

// AddChamber inserts a chamber with no connections. Existing chambers
// are left alone.
func (g *Graph) AddChamber(id int) {
	if _, ok := g.chambers[id]; !ok {
		g.chambers[id] = make(map[Direction]int)
	}
}

// SetTarget writes a single half-edge without its mirror. Unlike Link
// this can produce an asymmetric or dangling connection, so the result
// must go back through ValidateGraph; it exists for loaders that
// restore connections exactly as recorded.
func (g *Graph) SetTarget(a int, dir Direction, b int) {
	g.chambers[a][dir] = b
}

// Linked reports whether chamber a already has any connection to b.
func (g *Graph) Linked(a, b int) bool {
	for _, target := range g.chambers[a] {
		if target == b {
			return true
		}
	}
	return false
}

// FreeDirections returns the unused direction slots of a chamber in
// fixed north/south/east/west order.
func (g *Graph) FreeDirections(id int) []Direction {
	free := make([]Direction, 0, 4)
	for _, dir := range AllDirections() {
		if _, used := g.chambers[id][dir]; !used {
			free = append(free, dir)
		}
	}
	return free
}

// EdgeCount returns the total number of directed connections. A
// bidirectional link counts as two.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, conns := range g.chambers {
		count += len(conns)
	}
	return count
}

// ReachableFrom returns the set of chambers reachable from start via
// breadth-first traversal over connections.
func (g *Graph) ReachableFrom(start int) map[int]bool {
	visited := make(map[int]bool)
	if _, ok := g.chambers[start]; !ok {
		return visited
	}

	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			target, ok := g.chambers[current][dir]
			if !ok || visited[target] {
				continue
			}
			if _, exists := g.chambers[target]; !exists {
				continue
			}
			visited[target] = true
			queue = append(queue, target)
		}
	}

	return visited
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	clone := &Graph{chambers: make(map[int]map[Direction]int, len(g.chambers))}
	for id, conns := range g.chambers {
		copied := make(map[Direction]int, len(conns))
		for dir, target := range conns {
			copied[dir] = target
		}
		clone.chambers[id] = copied
	}
	return clone
}

// Equal reports whether two graphs have identical chambers and
// connections.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.chambers) != len(other.chambers) {
		return false
	}
	for id, conns := range g.chambers {
		otherConns, ok := other.chambers[id]
		if !ok || len(conns) != len(otherConns) {
			return false
		}
		for dir, target := range conns {
			if otherConns[dir] != target {
				return false
			}
		}
	}
	return true
}
