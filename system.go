package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleSystem owns the particle collection and drives the per-frame
// sequence: forces, integration, proximity rebuild. It is mutated only from
// the Ebitengine update goroutine, so no locking is needed.
type ParticleSystem struct {
	Width, Height float64
	WindEnabled   bool

	cfg         *Config
	particles   []*Particle
	connections []Connection
	forces      ForceField
	wind        *windField
	elapsed     float64
	rng         *rand.Rand
}

// NewParticleSystem creates an empty system. All randomness (spawn jitter,
// base colors, wind seed) flows through rng, so a seeded source makes runs
// reproducible.
func NewParticleSystem(cfg *Config, width, height float64, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Width:  width,
		Height: height,
		cfg:    cfg,
		forces: ForceField{cfg: cfg},
		wind:   newWindField(rng.Int63()),
		rng:    rng,
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Spawn appends one particle at rest.
func (ps *ParticleSystem) Spawn(x, y, radius float64) {
	ps.particles = append(ps.particles, NewParticle(x, y, radius, ps.rng))
}

// SpawnBurst scatters count particles around a point, each at a uniform
// random angle and distance up to BurstRadius, with a random radius in
// [MinRadius, MinRadius+MaxRadiusSpread).
func (ps *ParticleSystem) SpawnBurst(cx, cy float64, count int) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		dist := ps.rng.Float64() * ps.cfg.BurstRadius
		ps.Spawn(
			cx+math.Cos(angle)*dist,
			cy+math.Sin(angle)*dist,
			ps.cfg.MinRadius+ps.rng.Float64()*ps.cfg.MaxRadiusSpread,
		)
	}
}

// Seed fills the system with the initial particle population at uniform
// random positions. Seeded particles get a wider radius spread than bursts.
func (ps *ParticleSystem) Seed() {
	for i := 0; i < ps.cfg.InitialParticles; i++ {
		ps.Spawn(
			ps.rng.Float64()*ps.Width,
			ps.rng.Float64()*ps.Height,
			ps.cfg.MinRadius+ps.rng.Float64()*12,
		)
	}
}

// Update advances the simulation by dt seconds: wind (if enabled) and
// pairwise forces over the full particle set, then integration, then the
// proximity graph rebuild so connections reflect post-step positions.
// dt is taken as-is; a stalled frame produces one large step.
func (ps *ParticleSystem) Update(dt float64) {
	ps.elapsed += dt

	if ps.WindEnabled {
		for _, p := range ps.particles {
			fx, fy := ps.wind.forceAt(p.X, p.Y, ps.elapsed)
			p.ApplyForce(fx, fy, dt)
		}
	}

	ps.forces.Apply(ps.particles, dt)

	for _, p := range ps.particles {
		p.Integrate(dt, ps.cfg, ps.Width, ps.Height)
	}

	ps.connections = buildConnections(ps.particles, ps.cfg.ConnectionRadius, ps.connections)
}

// Draw emits connection lines first so particles render on top of them.
// Circles are center-anchored at the particle position and colored by speed.
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for i := range ps.connections {
		c := &ps.connections[i]
		col := color.NRGBA{R: 255, G: 255, B: 255, A: c.Alpha}
		vector.StrokeLine(screen, float32(c.AX), float32(c.AY), float32(c.BX), float32(c.BY), 1, col, true)
	}
	for _, p := range ps.particles {
		col := speedColor(p.Speed(), ps.cfg.MaxSpeed)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), col, true)
	}
}
