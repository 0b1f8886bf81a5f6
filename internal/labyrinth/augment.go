package labyrinth

// augment adds extra bidirectional connections up to a density-derived
// budget. Connectivity is a target, not a guarantee: attempts that hit
// an already-linked pair or exhausted direction slots are skipped, not
// retried.
func (gen *generator) augment(g *Graph) {
	if gen.cfg.Connectivity <= 0.0 {
		return
	}

	maxPossible := gen.cfg.ChamberCount * len(AllDirections())
	budget := int(float64(maxPossible-g.EdgeCount()) * gen.cfg.Connectivity)

	for i := 0; i < budget; i++ {
		a := 1 + gen.rng.Intn(gen.cfg.ChamberCount)
		b := 1 + gen.rng.Intn(gen.cfg.ChamberCount)

		if a == b || g.Linked(a, b) {
			continue
		}

		if dir, ok := gen.pickFreePair(g, a, b); ok {
			g.Link(a, dir, b)
		}
	}
}
