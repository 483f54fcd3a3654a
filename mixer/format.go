// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

const maxChannels = 2

// Format describes the interleaved integer PCM the engine produces.
type Format struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
}

// Validate rejects every format the encoder cannot write. It runs once in
// NewEngine so a bad format never reaches the audio callback.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", f.SampleRate, ErrUnsupportedFormat)
	}
	if f.BitsPerSample != 16 && f.BitsPerSample != 32 {
		return fmt.Errorf("%d bits per sample: %w", f.BitsPerSample, ErrUnsupportedFormat)
	}
	if f.Channels < 1 || f.Channels > maxChannels {
		return fmt.Errorf("%d channels: %w", f.Channels, ErrUnsupportedFormat)
	}
	return nil
}

// FrameBytes is the size in bytes of one interleaved frame.
func (f Format) FrameBytes() int { return f.Channels * f.BitsPerSample / 8 }

// alignModulus is where the global frame counter used by alignment gating
// wraps around.
func (f Format) alignModulus() uint64 { return uint64(f.SampleRate) * 100 }

func (f Format) String() string {
	return fmt.Sprintf("%d Hz/%d-bit/%dch", f.SampleRate, f.BitsPerSample, f.Channels)
}
