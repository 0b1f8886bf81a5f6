package labyrinth

import "sort"

// enforceSolvability extends the longest path from the start chamber
// until it meets the minimum length, then stitches unreachable
// chambers into the reachable set. Both steps are best effort: a
// chamber with no free direction slots stays as it is, and the
// validator has the final word.
func (gen *generator) enforceSolvability(g *Graph) {
	path := longestPathFrom(g, StartChamber)
	if len(path) < gen.cfg.MinPathLength {
		gen.extendPath(g, path)
	}

	reachable := g.ReachableFrom(StartChamber)
	for _, id := range g.ChamberIDs() {
		if reachable[id] {
			continue
		}
		gen.connectChamber(g, id, reachable)
		reachable[id] = true
	}
}

// longestPathFrom finds the longest simple path from start by
// exhaustive depth-first search. Exponential in the worst case, but
// chamber counts are generation-time small.
func longestPathFrom(g *Graph, start int) []int {
	visited := make(map[int]bool)
	var longest []int

	var dfs func(current int, path []int)
	dfs = func(current int, path []int) {
		visited[current] = true
		path = append(path, current)

		if len(path) > len(longest) {
			longest = append([]int(nil), path...)
		}

		for _, dir := range AllDirections() {
			next, ok := g.Target(current, dir)
			if !ok || visited[next] {
				continue
			}
			dfs(next, path)
		}

		visited[current] = false
	}

	dfs(start, nil)
	return longest
}

// extendPath links chambers not yet on the path to the path's tail
// until the path is long enough or no linkable chamber remains.
func (gen *generator) extendPath(g *Graph, path []int) {
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	for len(path) < gen.cfg.MinPathLength {
		candidates := make([]int, 0, g.ChamberCount()-len(path))
		for _, id := range g.ChamberIDs() {
			if !onPath[id] {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			break
		}

		tail := path[len(path)-1]
		next, dir, ok := gen.pickExtension(g, tail, candidates)
		if !ok {
			break
		}

		g.Link(tail, dir, next)
		path = append(path, next)
		onPath[next] = true
	}
}

// pickExtension chooses a random candidate chamber and a random free
// direction pair between it and the tail. Candidates without a free
// pair are dropped and redrawn so the search terminates.
func (gen *generator) pickExtension(g *Graph, tail int, candidates []int) (int, Direction, bool) {
	remaining := append([]int(nil), candidates...)
	for len(remaining) > 0 {
		idx := gen.rng.Intn(len(remaining))
		chamber := remaining[idx]

		if dir, ok := gen.pickFreePair(g, tail, chamber); ok {
			return chamber, dir, true
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return 0, North, false
}

// connectChamber links one unreachable chamber to a random member of
// the reachable set. Not retried on failure: a chamber whose four
// slots are all used cannot be repaired here.
func (gen *generator) connectChamber(g *Graph, id int, reachable map[int]bool) {
	targets := make([]int, 0, len(reachable))
	for target := range reachable {
		targets = append(targets, target)
	}
	sort.Ints(targets)

	target := targets[gen.rng.Intn(len(targets))]
	if dir, ok := gen.pickFreePair(g, target, id); ok {
		g.Link(target, dir, id)
	}
}
