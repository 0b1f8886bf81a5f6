package labyrinth

import "testing"

func TestSolvableTreeMeetsMinPath(t *testing.T) {
	cfg := GenerationConfig{
		ChamberCount:   8,
		Topology:       TopologyTree,
		Connectivity:   0.0,
		EnsureSolvable: true,
		MinPathLength:  5,
		Seed:           42,
	}

	g, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	path := longestPathFrom(g, StartChamber)
	if len(path) < 5 {
		t.Errorf("longest path from start has %d chambers, want >= 5", len(path))
	}

	if reachable := g.ReachableFrom(StartChamber); len(reachable) != 8 {
		t.Errorf("%d chambers reachable, want 8", len(reachable))
	}
}

func TestLongestPathFrom(t *testing.T) {
	// 1-2-3 chain with a 2-4 branch: longest path is 1,2,4 or 1,2,3
	g := NewGraph(4)
	g.Link(1, East, 2)
	g.Link(2, East, 3)
	g.Link(2, South, 4)

	path := longestPathFrom(g, 1)
	if len(path) != 3 {
		t.Fatalf("longest path has %d chambers, want 3", len(path))
	}
	if path[0] != 1 {
		t.Errorf("longest path starts at %d, want 1", path[0])
	}

	// Extending the chain extends the result
	g.Link(3, East, 4)
	path = longestPathFrom(g, 1)
	if len(path) != 4 {
		t.Errorf("longest path after extra link has %d chambers, want 4", len(path))
	}
}

func TestSolvabilityAcrossSeeds(t *testing.T) {
	for _, topo := range []Topology{TopologyLinear, TopologyTree, TopologyGrid, TopologyRandom} {
		for seed := int64(1); seed <= 15; seed++ {
			cfg := GenerationConfig{
				ChamberCount:   10,
				Topology:       topo,
				Connectivity:   0.2,
				EnsureSolvable: true,
				MinPathLength:  4,
				Seed:           seed,
			}

			g, err := Generate(cfg)
			if err != nil {
				t.Fatalf("%s seed %d: Generate() failed: %v", topo, seed, err)
			}

			if path := longestPathFrom(g, StartChamber); len(path) < 4 {
				t.Errorf("%s seed %d: longest path has %d chambers, want >= 4",
					topo, seed, len(path))
			}
			if reachable := g.ReachableFrom(StartChamber); len(reachable) != 10 {
				t.Errorf("%s seed %d: %d chambers reachable, want 10",
					topo, seed, len(reachable))
			}
		}
	}
}
