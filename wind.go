package main

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Wind tuning. The scale stretches the noise so the field varies smoothly
// across the window; drift makes the pattern wander over time.
const (
	windScale    = 0.005
	windDrift    = 0.05
	windStrength = 40.0
)

// windField is a smooth Perlin-noise drift force. The noise value at a point
// picks an angle, so nearby particles are pushed in similar directions and
// the whole field swirls slowly. Disabled systems never sample it, leaving
// the stock dynamics untouched.
type windField struct {
	noise *perlin.Perlin
}

func newWindField(seed int64) *windField {
	return &windField{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// forceAt samples the field at a position and elapsed time.
func (w *windField) forceAt(x, y, t float64) (float64, float64) {
	n := w.noise.Noise3D(x*windScale, y*windScale, t*windDrift)
	angle := (n + 1) / 2 * 2 * math.Pi
	return math.Cos(angle) * windStrength, math.Sin(angle) * windStrength
}
