// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"
	"strings"
)

const meterWidth = 40

// peak returns the largest magnitude and the RMS of samples.
func peak(samples []float64) (pk, rms float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	var sum float64
	for _, s := range samples {
		a := math.Abs(s)
		if a > pk {
			pk = a
		}
		sum += s * s
	}
	return pk, math.Sqrt(sum / float64(len(samples)))
}

// meterBar draws rms as '#' and the distance to the peak as '-'.
func meterBar(pk, rms float64) string {
	cells := func(v float64) int {
		return int(math.Round(math.Min(v, 1) * meterWidth))
	}

	r, p := cells(rms), cells(pk)
	return "[" + strings.Repeat("#", r) + strings.Repeat("-", p-r) + strings.Repeat(" ", meterWidth-p) + "]"
}
