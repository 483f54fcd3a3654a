// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// BitDepth is the width of one stored sample in bits.
type BitDepth int

const (
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
	Depth32 BitDepth = 32
)

// Valid reports whether d is one of the supported depths.
func (d BitDepth) Valid() bool {
	switch d {
	case Depth8, Depth16, Depth32:
		return true
	}
	return false
}

// Bytes is the size of one sample of depth d.
func (d BitDepth) Bytes() int { return int(d) / 8 }

// FullScale is the divisor that maps a stored integer onto [-1, 1).
func (d BitDepth) FullScale() float64 {
	switch d {
	case Depth8:
		return 128.0
	case Depth16:
		return 32768.0
	case Depth32:
		return 2147483648.0
	}
	panic(fmt.Sprintf("pcm: %v", d))
}

func (d BitDepth) String() string {
	if !d.Valid() {
		return fmt.Sprintf("unsupported(%d)", int(d))
	}
	return fmt.Sprintf("%d-bit", int(d))
}
