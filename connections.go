package main

import "math"

// Connection is one faint line between two nearby particles. The set is
// rebuilt every frame and carries no state across frames.
type Connection struct {
	AX, AY float64
	BX, BY float64
	Alpha  uint8
}

// buildConnections recomputes the proximity graph from current positions.
// Alpha falls off linearly with distance: opaque at zero, transparent at the
// cutoff. The previous slice is reused to avoid reallocating every frame.
func buildConnections(particles []*Particle, radius float64, out []Connection) []Connection {
	out = out[:0]
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			dx := particles[i].X - particles[j].X
			dy := particles[i].Y - particles[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < radius {
				out = append(out, Connection{
					AX:    particles[i].X,
					AY:    particles[i].Y,
					BX:    particles[j].X,
					BY:    particles[j].Y,
					Alpha: uint8(255 * (1 - d/radius)),
				})
			}
		}
	}
	return out
}
