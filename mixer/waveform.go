// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
	"strings"
)

// Waveform is the closed set of sources an instance can play.
type Waveform int

const (
	WaveNone Waveform = iota
	WaveSine
	WaveSquare
	WaveSaw
	WaveSampled
)

var waveformNames = [...]string{
	WaveNone:    "none",
	WaveSine:    "sine",
	WaveSquare:  "square",
	WaveSaw:     "saw",
	WaveSampled: "sample",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// procedural reports whether w is generated rather than read from a buffer.
func (w Waveform) procedural() bool {
	return w == WaveSine || w == WaveSquare || w == WaveSaw
}

// ParseWaveform maps "sine", "square", "saw" and "sample" to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw", "sawtooth":
		return WaveSaw, nil
	case "sample", "sampled":
		return WaveSampled, nil
	}
	return WaveNone, fmt.Errorf("%q: %w", name, ErrUnknownWaveform)
}

// rawSample returns the unscaled value in [-1, 1] of the instance at frame
// for the given output channel.
func (in *instance) rawSample(channel, frame int, sampleRate float64) float64 {
	t := float64(frame) / sampleRate

	switch in.wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * in.freq * t)
	case WaveSquare:
		_, frac := math.Modf(t * in.freq)
		if frac >= 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		x := in.freq * t
		return 2 * (x - math.Floor(x+0.5))
	case WaveSampled:
		return in.sample.At(frame, channel)
	case WaveNone:
		return 0
	}

	panic(fmt.Sprintf("mixer: sample from %v", in.wave))
}
