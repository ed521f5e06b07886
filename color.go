package main

import (
	"image/color"
	"math"
)

// speedColor maps a speed to a fully saturated, fully bright hue: red at
// rest, sweeping through the color wheel as the speed approaches maxSpeed.
// The speed clamp in Integrate keeps the hue inside [0, 360].
func speedColor(speed, maxSpeed float64) color.RGBA {
	hue := speed / maxSpeed * 360
	r, g, b := hsvToRGB(hue, 1, 1)
	return color.RGBA{r, g, b, 255}
}

// hsvToRGB converts an HSV triple to 8-bit RGB using the standard 60-degree
// sector formula. Hue at or beyond 360 falls through to the final sector
// rather than wrapping, which maps 360 back onto red.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64

	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h >= 60 && h < 120:
		r, g, b = x, c, 0
	case h >= 120 && h < 180:
		r, g, b = 0, c, x
	case h >= 180 && h < 240:
		r, g, b = 0, x, c
	case h >= 240 && h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
