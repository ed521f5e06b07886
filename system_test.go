package main

import (
	"math"
	"math/rand"
	"testing"
)

func newTestSystem(cfg *Config, seed int64) *ParticleSystem {
	return NewParticleSystem(cfg, screenWidth, screenHeight, rand.New(rand.NewSource(seed)))
}

func TestSpawnBurst(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(&cfg, 7)

	ps.SpawnBurst(100, 100, 10)

	if ps.Len() != 10 {
		t.Fatalf("Len = %d, want 10", ps.Len())
	}
	for i, p := range ps.particles {
		dx := p.X - 100
		dy := p.Y - 100
		if d := math.Sqrt(dx*dx + dy*dy); d > cfg.BurstRadius+1e-9 {
			t.Errorf("particle %d spawned %v from center, max %v", i, d, cfg.BurstRadius)
		}
		if p.Radius < cfg.MinRadius || p.Radius >= cfg.MinRadius+cfg.MaxRadiusSpread {
			t.Errorf("particle %d radius %v outside [%v, %v)",
				i, p.Radius, cfg.MinRadius, cfg.MinRadius+cfg.MaxRadiusSpread)
		}
	}
}

func TestSpawnBurstReproducibleWithSeed(t *testing.T) {
	cfg := DefaultConfig()
	a := newTestSystem(&cfg, 42)
	b := newTestSystem(&cfg, 42)

	a.SpawnBurst(300, 300, 10)
	b.SpawnBurst(300, 300, 10)

	for i := range a.particles {
		if a.particles[i].X != b.particles[i].X || a.particles[i].Y != b.particles[i].Y {
			t.Fatalf("particle %d differs across identically seeded systems", i)
		}
	}
}

func TestSeedPopulation(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(&cfg, 3)

	ps.Seed()

	if ps.Len() != cfg.InitialParticles {
		t.Fatalf("Len = %d, want %d", ps.Len(), cfg.InitialParticles)
	}
	for i, p := range ps.particles {
		if p.X < 0 || p.X >= screenWidth || p.Y < 0 || p.Y >= screenHeight {
			t.Errorf("particle %d seeded out of window: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestUpdateKeepsInvariants(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(&cfg, 11)
	ps.Seed()

	for i := 0; i < 100; i++ {
		ps.Update(1.0 / 60)
	}

	for i, p := range ps.particles {
		if p.Speed() > cfg.MaxSpeed+1e-9 {
			t.Errorf("particle %d speed %v exceeds cap", i, p.Speed())
		}
		if p.X < p.Radius || p.X > screenWidth-p.Radius ||
			p.Y < p.Radius || p.Y > screenHeight-p.Radius {
			t.Errorf("particle %d out of bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestUpdateRebuildsConnectionsFromFinalPositions(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(&cfg, 5)
	ps.Spawn(400, 400, 3)
	ps.Spawn(430, 400, 3)

	ps.Update(1.0 / 60)

	if len(ps.connections) != 1 {
		t.Fatalf("got %d connections, want 1", len(ps.connections))
	}
	c := ps.connections[0]
	a, b := ps.particles[0], ps.particles[1]
	if c.AX != a.X || c.AY != a.Y || c.BX != b.X || c.BY != b.Y {
		t.Errorf("connection endpoints do not match post-step positions")
	}
}

func TestWindToggleChangesDynamics(t *testing.T) {
	cfg := DefaultConfig()
	plain := newTestSystem(&cfg, 9)
	windy := newTestSystem(&cfg, 9)
	plain.Seed()
	windy.Seed()
	windy.WindEnabled = true

	for i := 0; i < 30; i++ {
		plain.Update(1.0 / 60)
		windy.Update(1.0 / 60)
	}

	diverged := false
	for i := range plain.particles {
		if plain.particles[i].X != windy.particles[i].X ||
			plain.particles[i].Y != windy.particles[i].Y {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("enabling wind left every trajectory unchanged")
	}
}

func TestWindEnabledKeepsContainment(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(&cfg, 13)
	ps.Seed()
	ps.WindEnabled = true

	for i := 0; i < 100; i++ {
		ps.Update(1.0 / 60)
	}
	for i, p := range ps.particles {
		if p.X < p.Radius || p.X > screenWidth-p.Radius ||
			p.Y < p.Radius || p.Y > screenHeight-p.Radius {
			t.Errorf("particle %d out of bounds under wind: (%v, %v)", i, p.X, p.Y)
		}
	}
}
