package main

import (
	"math"
	"math/rand"
)

// Particle is a single point mass with a circular footprint.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Radius float64
	Mass   float64 // Radius squared, fixed at spawn

	// Random color assigned at spawn. Rendering currently derives color from
	// speed instead; the field is kept for alternate color modes.
	BaseR, BaseG, BaseB uint8
}

// NewParticle creates a particle at rest. Radius must be positive so that
// mass stays positive.
func NewParticle(x, y, radius float64, rng *rand.Rand) *Particle {
	if radius <= 0 {
		panic("particle: radius must be positive")
	}
	return &Particle{
		X:      x,
		Y:      y,
		Radius: radius,
		Mass:   radius * radius,
		BaseR:  uint8(rng.Intn(255)),
		BaseG:  uint8(rng.Intn(255)),
		BaseB:  uint8(rng.Intn(255)),
	}
}

// Speed returns the velocity magnitude.
func (p *Particle) Speed() float64 {
	return math.Sqrt(p.VX*p.VX + p.VY*p.VY)
}

// ApplyForce accumulates an impulse over dt. Heavier particles accelerate
// less under the same force.
func (p *Particle) ApplyForce(fx, fy, dt float64) {
	p.VX += fx * dt / p.Mass
	p.VY += fy * dt / p.Mass
}

// Integrate advances the particle by dt seconds: gravity, speed clamp,
// position step, then wall reflection. Reflection clamps the position to the
// wall and negates the velocity component scaled by Damping. The min-wall
// check takes priority on each axis.
func (p *Particle) Integrate(dt float64, cfg *Config, width, height float64) {
	p.VY += cfg.Gravity * dt
	p.limitVelocity(cfg.MaxSpeed)
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.X-p.Radius < 0 {
		p.X = p.Radius
		p.VX = -p.VX * cfg.Damping
	} else if p.X+p.Radius > width {
		p.X = width - p.Radius
		p.VX = -p.VX * cfg.Damping
	}

	if p.Y-p.Radius < 0 {
		p.Y = p.Radius
		p.VY = -p.VY * cfg.Damping
	} else if p.Y+p.Radius > height {
		p.Y = height - p.Radius
		p.VY = -p.VY * cfg.Damping
	}
}

// limitVelocity caps the speed at maxSpeed, preserving direction.
func (p *Particle) limitVelocity(maxSpeed float64) {
	speed := p.Speed()
	if speed > maxSpeed {
		p.VX = p.VX / speed * maxSpeed
		p.VY = p.VY / speed * maxSpeed
	}
}
