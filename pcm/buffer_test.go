// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"math"
	"testing"
)

func TestNewBuffer_Layout(t *testing.T) {
	t.Parallel()

	if _, err := NewBuffer16(0, 1, nil); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewBuffer16(rate 0) error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewBuffer16(8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewBuffer16(channels 0) error = %v, want ErrInvalidChannels", err)
	}
	if _, err := NewBuffer8(8000, 2, []int8{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("NewBuffer8(3 samples, 2 ch) error = %v, want ErrPartialFrame", err)
	}
}

func TestBuffer_At(t *testing.T) {
	t.Parallel()

	b8, _ := NewBuffer8(8000, 1, []int8{0, 64, -128})
	b16, _ := NewBuffer16(8000, 2, []int16{16384, -16384, 0, math.MinInt16})
	b32, _ := NewBuffer32(8000, 1, []int32{1 << 30, math.MinInt32})

	tests := []struct {
		name    string
		buf     *Buffer
		frame   int
		channel int
		want    float64
	}{
		{name: "8-bit half", buf: b8, frame: 1, channel: 0, want: 0.5},
		{name: "8-bit full scale", buf: b8, frame: 2, channel: 0, want: -1},
		{name: "8-bit mono wraps channel", buf: b8, frame: 1, channel: 1, want: 0.5},
		{name: "16-bit left", buf: b16, frame: 0, channel: 0, want: 0.5},
		{name: "16-bit right", buf: b16, frame: 0, channel: 1, want: -0.5},
		{name: "16-bit second frame right", buf: b16, frame: 1, channel: 1, want: -1},
		{name: "16-bit channel modulo", buf: b16, frame: 0, channel: 3, want: -0.5},
		{name: "32-bit half", buf: b32, frame: 0, channel: 0, want: 0.5},
		{name: "32-bit full scale", buf: b32, frame: 1, channel: 0, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.buf.At(tt.frame, tt.channel); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.frame, tt.channel, got, tt.want)
			}
		})
	}
}

func TestBuffer_Frames(t *testing.T) {
	t.Parallel()

	b, _ := NewBuffer16(44100, 2, make([]int16, 20))
	if b.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", b.Frames())
	}
	if b.Depth() != Depth16 {
		t.Errorf("Depth() = %v, want %v", b.Depth(), Depth16)
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.5, -0.5, 2}

	for _, depth := range []BitDepth{Depth8, Depth16, Depth32} {
		t.Run(depth.String(), func(t *testing.T) {
			t.Parallel()

			b, err := Quantize(samples, 8000, 2, depth)
			if err != nil {
				t.Fatalf("Quantize() error = %v", err)
			}
			if b.Frames() != 2 {
				t.Errorf("Frames() = %d, want 2", b.Frames())
			}

			step := 1 / depth.FullScale() * 2
			if got := b.At(0, 1); math.Abs(got-0.5) > step {
				t.Errorf("At(0, 1) = %v, want ≈0.5", got)
			}
			if got := b.At(1, 1); got <= 0.99 {
				t.Errorf("At(1, 1) = %v, want clamped near 1", got)
			}
		})
	}

	if _, err := Quantize(samples, 8000, 2, BitDepth(24)); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("Quantize(24-bit) error = %v, want ErrUnsupportedDepth", err)
	}
}

func TestBitDepth(t *testing.T) {
	t.Parallel()

	if BitDepth(24).Valid() {
		t.Error("BitDepth(24).Valid() = true, want false")
	}
	if Depth16.Bytes() != 2 {
		t.Errorf("Depth16.Bytes() = %d, want 2", Depth16.Bytes())
	}
	if Depth32.FullScale() != 2147483648.0 {
		t.Errorf("Depth32.FullScale() = %v", Depth32.FullScale())
	}
}
