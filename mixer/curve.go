// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
	"strings"
)

// Curve names an easing function used by attack and falloff phases.
type Curve int

const (
	// CurveNone disables the phase it is assigned to.
	CurveNone Curve = iota
	CurveLinear
	CurveInQuad
	CurveOutQuad
	CurveInOutQuad
	CurveInCubic
	CurveOutCubic
	CurveInOutSine
	CurveSmoothstep
)

var curveNames = [...]string{
	CurveNone:       "none",
	CurveLinear:     "linear",
	CurveInQuad:     "in-quad",
	CurveOutQuad:    "out-quad",
	CurveInOutQuad:  "in-out-quad",
	CurveInCubic:    "in-cubic",
	CurveOutCubic:   "out-cubic",
	CurveInOutSine:  "in-out-sine",
	CurveSmoothstep: "smoothstep",
}

func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// ParseCurve maps a curve name to its Curve. The empty string is CurveNone.
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CurveNone, nil
	}
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return CurveNone, fmt.Errorf("%q: %w", name, ErrUnknownCurve)
}

// Ease maps progress p in [0, 1] through curve c. Progress outside the range
// is clamped. Every curve passes through (0, 0) and (1, 1); CurveNone is the
// constant 1 so that a disabled phase leaves the volume untouched.
func Ease(c Curve, p float64) float64 {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	switch c {
	case CurveNone:
		return 1
	case CurveLinear:
		return p
	case CurveInQuad:
		return p * p
	case CurveOutQuad:
		return p * (2 - p)
	case CurveInOutQuad:
		if p < 0.5 {
			return 2 * p * p
		}
		return -1 + (4-2*p)*p
	case CurveInCubic:
		return p * p * p
	case CurveOutCubic:
		q := p - 1
		return q*q*q + 1
	case CurveInOutSine:
		return -(math.Cos(math.Pi*p) - 1) / 2
	case CurveSmoothstep:
		return p * p * (3 - 2*p)
	}

	panic(fmt.Sprintf("mixer: ease with %v", c))
}
