package render

import (
	"fmt"

	"github.com/notargets/femplot/readfiles"
)

// StressRange computes the observed stress range in a single pass. Both
// bounds are seeded at zero, so a field that is entirely positive or entirely
// negative still spans zero. That is the reference behavior and changing it
// would shift the colors of any single-signed result.
func StressRange(elements []readfiles.Element) (minStress, maxStress float64) {
	for _, el := range elements {
		if el.Stress > maxStress {
			maxStress = el.Stress
		} else if el.Stress < minStress {
			minStress = el.Stress
		}
	}
	return
}

// RelativeStress normalizes a stress value into [0,1] against the observed
// range. A zero spread maps everything to 0 so a flat field still renders.
func RelativeStress(stress, minStress, maxStress float64) float64 {
	if maxStress == minStress {
		return 0
	}
	return (stress - minStress) / (maxStress - minStress)
}

// StressColor encodes a relative stress as a "#RR0000" hex string with
// RR = floor(255 * relative). Only the red channel carries the value.
func StressColor(relative float64) string {
	return fmt.Sprintf("#%02x0000", int(255*relative))
}

// StressColors derives the per-element fill colors in element order.
func StressColors(elements []readfiles.Element) (colors []string) {
	minStress, maxStress := StressRange(elements)
	colors = make([]string, len(elements))
	for i, el := range elements {
		colors[i] = StressColor(RelativeStress(el.Stress, minStress, maxStress))
	}
	return
}
