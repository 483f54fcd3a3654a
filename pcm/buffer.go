// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"
)

// Buffer is interleaved signed PCM with a fixed element width.
type Buffer struct {
	sampleRate int
	channels   int
	depth      BitDepth

	s8  []int8
	s16 []int16
	s32 []int32
}

func checkLayout(rate, channels, n int) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	if channels <= 0 {
		return ErrInvalidChannels
	}
	if n%channels != 0 {
		return fmt.Errorf("%d samples over %d channels: %w", n, channels, ErrPartialFrame)
	}
	return nil
}

// NewBuffer8 wraps interleaved signed 8-bit samples without copying them.
func NewBuffer8(rate, channels int, data []int8) (*Buffer, error) {
	if err := checkLayout(rate, channels, len(data)); err != nil {
		return nil, err
	}
	return &Buffer{sampleRate: rate, channels: channels, depth: Depth8, s8: data}, nil
}

// NewBuffer16 wraps interleaved 16-bit samples without copying them.
func NewBuffer16(rate, channels int, data []int16) (*Buffer, error) {
	if err := checkLayout(rate, channels, len(data)); err != nil {
		return nil, err
	}
	return &Buffer{sampleRate: rate, channels: channels, depth: Depth16, s16: data}, nil
}

// NewBuffer32 wraps interleaved 32-bit samples without copying them.
func NewBuffer32(rate, channels int, data []int32) (*Buffer, error) {
	if err := checkLayout(rate, channels, len(data)); err != nil {
		return nil, err
	}
	return &Buffer{sampleRate: rate, channels: channels, depth: Depth32, s32: data}, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) Depth() BitDepth { return b.depth }

// Frames is the number of whole frames stored.
func (b *Buffer) Frames() int {
	switch b.depth {
	case Depth8:
		return len(b.s8) / b.channels
	case Depth16:
		return len(b.s16) / b.channels
	case Depth32:
		return len(b.s32) / b.channels
	}
	panic(fmt.Sprintf("pcm: buffer with %v", b.depth))
}

// At returns the normalized sample for frame and channel. Channels past the
// stored count wrap around, so a mono buffer feeds every output channel.
func (b *Buffer) At(frame, channel int) float64 {
	i := frame*b.channels + channel%b.channels
	switch b.depth {
	case Depth8:
		return Int8ToFloat(b.s8[i])
	case Depth16:
		return Int16ToFloat(b.s16[i])
	case Depth32:
		return Int32ToFloat(b.s32[i])
	}
	panic(fmt.Sprintf("pcm: buffer with %v", b.depth))
}

// Quantize converts interleaved float samples to a Buffer of the given depth.
// Values are clamped to [-1, 1] before scaling.
func Quantize(samples []float32, rate, channels int, depth BitDepth) (*Buffer, error) {
	if err := checkLayout(rate, channels, len(samples)); err != nil {
		return nil, err
	}

	switch depth {
	case Depth8:
		data := make([]int8, len(samples))
		for i, x := range samples {
			data[i] = floatToInt8(float64(x))
		}
		return &Buffer{sampleRate: rate, channels: channels, depth: depth, s8: data}, nil
	case Depth16:
		data := make([]int16, len(samples))
		for i, x := range samples {
			data[i] = FloatToInt16(float64(x))
		}
		return &Buffer{sampleRate: rate, channels: channels, depth: depth, s16: data}, nil
	case Depth32:
		data := make([]int32, len(samples))
		for i, x := range samples {
			data[i] = FloatToInt32(float64(x))
		}
		return &Buffer{sampleRate: rate, channels: channels, depth: depth, s32: data}, nil
	}

	return nil, fmt.Errorf("%v: %w", depth, ErrUnsupportedDepth)
}

func floatToInt8(x float64) int8 {
	if x >= 1 {
		return math.MaxInt8
	}
	if x <= -1 {
		return math.MinInt8
	}
	return int8(math.Round(x * math.MaxInt8))
}
