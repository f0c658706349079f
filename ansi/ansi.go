// Package ansi converts color descriptions into terminal escape
// sequences. Colors are described as hue/saturation/lightness and
// quantized into the 256-color palette: the 6x6x6 cube for chromatic
// colors and the 24-step grayscale ramp for achromatic ones.
package ansi

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Reset clears all active styling. It is deliberately a separate
// constant: ForegroundHSL emits only the opening sequence and callers
// pair it with Reset themselves.
const Reset = "\x1b[0m"

// ForegroundHSL returns the escape sequence selecting the 256-color
// foreground nearest to the given HSL triple. Hue is in degrees and
// wraps modulo 360; saturation and lightness are percentages and clamp
// to 0-100. Out-of-range input therefore degrades to a nearby valid
// color instead of producing a broken escape.
func ForegroundHSL(hue, saturation, lightness float64) string {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	saturation = clamp(saturation, 0, 100)
	lightness = clamp(lightness, 0, 100)

	c := colorful.Hsl(hue, saturation/100, lightness/100)
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;5;%dm", index256(r, g, b))
}

// index256 maps an RGB triple to its 256-color palette index.
// Achromatic values land on the grayscale ramp (232-255), everything
// else on the 6-level cube (16-231).
func index256(r, g, b uint8) int {
	if r == g && g == b {
		// The ramp runs 0x08..0xEE in steps of 10; map linearly and
		// clamp the extremes onto the nearest ramp entry.
		step := int(math.Round(float64(int(r)-8) / 247.0 * 23.0))
		if step < 0 {
			step = 0
		}
		if step > 23 {
			step = 23
		}
		return 232 + step
	}
	q := func(v uint8) int {
		return int(math.Round(float64(v) / 255.0 * 5.0))
	}
	return 16 + 36*q(r) + 6*q(g) + q(b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
