package labyrinth

import (
	"math"
	"math/rand"
)

// generator owns one generation run's configuration and random stream.
// The stream must not be shared across runs when determinism matters.
type generator struct {
	cfg GenerationConfig
	rng *rand.Rand
}

// pairAttempts bounds the random parent/child search in the spanning
// builders before falling back to a deterministic scan.
const pairAttempts = 32

// buildTopology produces the base layout for the configured topology.
// Every builder writes both half-edges of a connection in the same
// step, so the base layout is bidirectionally consistent by
// construction. Solvability is not considered here.
func (gen *generator) buildTopology() *Graph {
	switch gen.cfg.Topology {
	case TopologyLinear:
		return gen.buildLinear()
	case TopologyCircular:
		return gen.buildCircular()
	case TopologyTree:
		return gen.buildTree()
	case TopologyGrid:
		return gen.buildGrid()
	case TopologyRandom:
		return gen.buildRandom()
	default:
		return gen.buildHybrid()
	}
}

// buildLinear chains the chambers west to east. No randomness.
func (gen *generator) buildLinear() *Graph {
	g := NewGraph(gen.cfg.ChamberCount)
	for id := 1; id < gen.cfg.ChamberCount; id++ {
		g.Link(id, East, id+1)
	}
	return g
}

// buildCircular is a linear chain closed into a ring: the last chamber
// connects east back to the first.
func (gen *generator) buildCircular() *Graph {
	g := NewGraph(gen.cfg.ChamberCount)
	for id := 1; id < gen.cfg.ChamberCount; id++ {
		g.Link(id, East, id+1)
	}
	g.Link(gen.cfg.ChamberCount, East, StartChamber)
	return g
}

// buildTree grows a random spanning tree from chamber 1, branching
// from already-connected chambers.
func (gen *generator) buildTree() *Graph {
	return gen.buildSpanning()
}

// buildRandom also builds a random spanning structure; the single pass
// guarantees connectivity while the parent choice carries no
// structural bias.
func (gen *generator) buildRandom() *Graph {
	return gen.buildSpanning()
}

// buildSpanning repeatedly links a random connected chamber to a
// random unconnected one through a mutually free direction pair. The
// random search is bounded; when it fails, a deterministic scan over
// all remaining pairs either finds a linkable pair or proves the
// chamber pool is slot-exhausted and stops.
func (gen *generator) buildSpanning() *Graph {
	g := NewGraph(gen.cfg.ChamberCount)

	connected := []int{StartChamber}
	unconnected := make([]int, 0, gen.cfg.ChamberCount-1)
	for id := 2; id <= gen.cfg.ChamberCount; id++ {
		unconnected = append(unconnected, id)
	}

	for len(unconnected) > 0 {
		linked := false

		for attempt := 0; attempt < pairAttempts; attempt++ {
			parent := connected[gen.rng.Intn(len(connected))]
			childIdx := gen.rng.Intn(len(unconnected))
			child := unconnected[childIdx]

			dir, ok := gen.pickFreePair(g, parent, child)
			if !ok {
				continue
			}

			g.Link(parent, dir, child)
			connected = append(connected, child)
			unconnected = append(unconnected[:childIdx], unconnected[childIdx+1:]...)
			linked = true
			break
		}

		if linked {
			continue
		}

		// Random search exhausted its budget; scan every remaining
		// pair in order.
		if !gen.linkAnyPair(g, connected, &unconnected, func(child int) {
			connected = append(connected, child)
		}) {
			// No free slot pair exists anywhere. The validator will
			// reject the disconnected result.
			break
		}
	}

	return g
}

// pickFreePair returns a random free direction on a whose opposite is
// free on b.
func (gen *generator) pickFreePair(g *Graph, a, b int) (Direction, bool) {
	candidates := make([]Direction, 0, 4)
	for _, dir := range g.FreeDirections(a) {
		if _, used := g.Target(b, dir.Opposite()); !used {
			candidates = append(candidates, dir)
		}
	}
	if len(candidates) == 0 {
		return North, false
	}
	return candidates[gen.rng.Intn(len(candidates))], true
}

// linkAnyPair scans connected x unconnected for the first mutually
// free slot pair and links it. Reports whether a link was made.
func (gen *generator) linkAnyPair(g *Graph, connected []int, unconnected *[]int, onLink func(child int)) bool {
	for _, parent := range connected {
		for idx, child := range *unconnected {
			dir, ok := gen.pickFreePair(g, parent, child)
			if !ok {
				continue
			}
			g.Link(parent, dir, child)
			onLink(child)
			*unconnected = append((*unconnected)[:idx], (*unconnected)[idx+1:]...)
			return true
		}
	}
	return false
}

// buildGrid places chambers in row-major order on a square grid and
// links each to its existing cardinal neighbors.
func (gen *generator) buildGrid() *Graph {
	g := NewGraph(gen.cfg.ChamberCount)
	size := int(math.Ceil(math.Sqrt(float64(gen.cfg.ChamberCount))))

	for id := 1; id <= gen.cfg.ChamberCount; id++ {
		col := (id - 1) % size

		// Link east and south only; Link writes the mirror half, so
		// west and north come for free.
		if col+1 < size && id+1 <= gen.cfg.ChamberCount {
			g.Link(id, East, id+1)
		}
		if south := id + size; south <= gen.cfg.ChamberCount {
			g.Link(id, South, south)
		}
	}

	return g
}

// buildHybrid delegates to one of the linear, tree, or grid builders
// chosen from the seeded stream.
func (gen *generator) buildHybrid() *Graph {
	switch gen.rng.Intn(3) {
	case 0:
		return gen.buildLinear()
	case 1:
		return gen.buildTree()
	default:
		return gen.buildGrid()
	}
}
