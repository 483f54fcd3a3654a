// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

// FloatToInt16 scales x by math.MaxInt16 and rounds to nearest.
// Values at or beyond the [-1, 1] bounds give exactly MinInt16 / MaxInt16.
func FloatToInt16(x float64) int16 {
	if x >= 1 {
		return math.MaxInt16
	}
	if x <= -1 {
		return math.MinInt16
	}
	return int16(math.Round(x * math.MaxInt16))
}

// FloatToInt32 is FloatToInt16 for 32-bit output.
func FloatToInt32(x float64) int32 {
	if x >= 1 {
		return math.MaxInt32
	}
	if x <= -1 {
		return math.MinInt32
	}
	return int32(math.Round(x * math.MaxInt32))
}

// Int8ToFloat, Int16ToFloat and Int32ToFloat divide by full scale, so the
// most negative value maps to exactly -1.
func Int8ToFloat(v int8) float64   { return float64(v) / 128.0 }
func Int16ToFloat(v int16) float64 { return float64(v) / 32768.0 }
func Int32ToFloat(v int32) float64 { return float64(v) / 2147483648.0 }
