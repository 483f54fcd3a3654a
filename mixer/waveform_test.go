// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audmix/pcm"
)

func TestRawSample_Sine(t *testing.T) {
	t.Parallel()

	in := instance{wave: WaveSine, freq: 441}

	if got := in.rawSample(0, 0, rate); got != 0 {
		t.Errorf("sine at frame 0 = %v, want 0", got)
	}
	// a quarter period of 441 Hz at 44100 Hz is 25 frames
	if got := in.rawSample(1, 25, rate); math.Abs(got-1) > 1e-9 {
		t.Errorf("sine at quarter period = %v, want 1", got)
	}
	if got := in.rawSample(0, 75, rate); math.Abs(got+1) > 1e-9 {
		t.Errorf("sine at three quarters = %v, want -1", got)
	}
}

func TestRawSample_Square(t *testing.T) {
	t.Parallel()

	// 100 frames per period
	in := instance{wave: WaveSquare, freq: 441}

	tests := []struct {
		frame int
		want  float64
	}{
		{0, -1},
		{49, -1},
		{51, 1},
		{99, 1},
		{101, -1},
	}

	for _, tt := range tests {
		if got := in.rawSample(0, tt.frame, rate); got != tt.want {
			t.Errorf("square at frame %d = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestRawSample_Saw(t *testing.T) {
	t.Parallel()

	in := instance{wave: WaveSaw, freq: 441}

	if got := in.rawSample(0, 0, rate); got != 0 {
		t.Errorf("saw at frame 0 = %v, want 0", got)
	}
	if got := in.rawSample(0, 25, rate); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("saw at quarter period = %v, want 0.5", got)
	}
	if got := in.rawSample(0, 60, rate); math.Abs(got+0.8) > 1e-9 {
		t.Errorf("saw past half period = %v, want -0.8", got)
	}

	for f := range 300 {
		v := in.rawSample(0, f, rate)
		if v < -1 || v > 1 {
			t.Fatalf("saw at frame %d = %v, outside [-1, 1]", f, v)
		}
	}
}

func TestRawSample_Sampled(t *testing.T) {
	t.Parallel()

	stereo, _ := pcm.NewBuffer16(44100, 2, []int16{16384, -16384, 8192, -8192})
	mono, _ := pcm.NewBuffer8(44100, 1, []int8{64, -64})
	wide, _ := pcm.NewBuffer32(44100, 1, []int32{-1 << 30})

	tests := []struct {
		name    string
		buf     *pcm.Buffer
		channel int
		frame   int
		want    float64
	}{
		{"stereo left", stereo, 0, 0, 0.5},
		{"stereo right", stereo, 1, 0, -0.5},
		{"stereo frame 1 right", stereo, 1, 1, -0.25},
		{"mono feeds right channel", mono, 1, 1, -0.5},
		{"32-bit", wide, 0, 0, -0.5},
	}

	for _, tt := range tests {
		in := instance{wave: WaveSampled, sample: tt.buf}
		if got := in.rawSample(tt.channel, tt.frame, rate); got != tt.want {
			t.Errorf("%s: rawSample = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Waveform{
		"sine": WaveSine, "Square": WaveSquare, "saw": WaveSaw,
		"sawtooth": WaveSaw, "sample": WaveSampled,
	} {
		got, err := ParseWaveform(name)
		if err != nil || got != want {
			t.Errorf("ParseWaveform(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := ParseWaveform("noise"); !errors.Is(err, ErrUnknownWaveform) {
		t.Errorf("ParseWaveform(noise) error = %v, want ErrUnknownWaveform", err)
	}
}
