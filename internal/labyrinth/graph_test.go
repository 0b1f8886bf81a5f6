package labyrinth

import "testing"

func TestNewGraphChambers(t *testing.T) {
	g := NewGraph(5)

	if g.ChamberCount() != 5 {
		t.Errorf("ChamberCount() = %d, want 5", g.ChamberCount())
	}

	ids := g.ChamberIDs()
	for i, id := range ids {
		if id != i+1 {
			t.Errorf("ChamberIDs()[%d] = %d, want %d", i, id, i+1)
		}
	}

	if g.Contains(0) {
		t.Error("Contains(0) = true, want false")
	}
	if g.Contains(6) {
		t.Error("Contains(6) = true, want false")
	}
}

func TestLinkWritesBothHalves(t *testing.T) {
	g := NewGraph(3)
	g.Link(1, East, 2)

	target, ok := g.Target(1, East)
	if !ok || target != 2 {
		t.Errorf("Target(1, East) = %d, %v, want 2, true", target, ok)
	}

	back, ok := g.Target(2, West)
	if !ok || back != 1 {
		t.Errorf("Target(2, West) = %d, %v, want 1, true", back, ok)
	}

	if !g.Linked(1, 2) {
		t.Error("Linked(1, 2) = false after Link")
	}
	if g.Linked(1, 3) {
		t.Error("Linked(1, 3) = true, want false")
	}
}

func TestFreeDirectionsOrder(t *testing.T) {
	g := NewGraph(3)

	free := g.FreeDirections(1)
	want := []Direction{North, South, East, West}
	if len(free) != len(want) {
		t.Fatalf("FreeDirections(1) returned %d slots, want %d", len(free), len(want))
	}
	for i, dir := range free {
		if dir != want[i] {
			t.Errorf("FreeDirections(1)[%d] = %s, want %s", i, dir, want[i])
		}
	}

	g.Link(1, East, 2)
	free = g.FreeDirections(1)
	if len(free) != 3 {
		t.Fatalf("FreeDirections(1) after Link returned %d slots, want 3", len(free))
	}
	for _, dir := range free {
		if dir == East {
			t.Error("FreeDirections(1) still contains east after Link")
		}
	}
}

func TestEdgeCount(t *testing.T) {
	g := NewGraph(3)
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d on empty graph, want 0", g.EdgeCount())
	}

	g.Link(1, East, 2)
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d after one link, want 2", g.EdgeCount())
	}

	g.Link(2, East, 3)
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d after two links, want 4", g.EdgeCount())
	}
}

func TestReachableFrom(t *testing.T) {
	g := NewGraph(4)
	g.Link(1, East, 2)
	g.Link(2, East, 3)
	// Chamber 4 is isolated

	reachable := g.ReachableFrom(1)
	if len(reachable) != 3 {
		t.Errorf("ReachableFrom(1) visited %d chambers, want 3", len(reachable))
	}
	if reachable[4] {
		t.Error("ReachableFrom(1) includes isolated chamber 4")
	}

	if got := g.ReachableFrom(99); len(got) != 0 {
		t.Errorf("ReachableFrom(99) visited %d chambers, want 0", len(got))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph(3)
	g.Link(1, East, 2)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("Clone() is not Equal to the original")
	}

	clone.Link(2, East, 3)
	if g.Equal(clone) {
		t.Error("mutating the clone changed the original")
	}
	if _, ok := g.Target(2, East); ok {
		t.Error("original gained a connection through the clone")
	}
}

func TestSetTargetWritesOneHalf(t *testing.T) {
	g := NewGraph(2)
	g.SetTarget(1, East, 2)

	if _, ok := g.Target(1, East); !ok {
		t.Error("Target(1, East) missing after SetTarget")
	}
	if _, ok := g.Target(2, West); ok {
		t.Error("SetTarget wrote the return connection, want one half only")
	}
}
