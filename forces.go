package main

import "math"

// ForceField computes the short-range attraction/repulsion law between all
// particle pairs. O(n^2); fine for a few hundred particles, and the first
// place to add spatial binning if counts ever grow.
type ForceField struct {
	cfg *Config
}

// Apply visits every ordered pair (i, j) with i != j and applies the
// resulting impulse to particle i only. Each unordered pair is therefore
// computed twice, once from each side; the two impulses use opposite
// directions but are computed independently, and this double application is
// part of the tuned dynamics. Do not halve the iteration.
func (f *ForceField) Apply(particles []*Particle, dt float64) {
	for i := range particles {
		p := particles[i]
		for j := range particles {
			if i == j {
				continue
			}
			q := particles[j]
			dx := q.X - p.X
			dy := q.Y - p.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= 0 || d >= f.cfg.InteractionRadius {
				continue
			}
			// Positive strength pulls p toward q. Zero crossing at
			// d = Attraction/Repulsion.
			strength := f.cfg.Attraction/(d*d) - f.cfg.Repulsion/d
			p.ApplyForce(dx/d*strength, dy/d*strength, dt)
		}
	}
}
