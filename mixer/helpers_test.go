// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"log/slog"
	"testing"

	"github.com/ik5/audmix/pcm"
)

var (
	stereo16 = Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2}
	mono16   = Format{SampleRate: 44100, BitsPerSample: 16, Channels: 1}
	mono32   = Format{SampleRate: 44100, BitsPerSample: 32, Channels: 1}
)

func newTestEngine(t *testing.T, f Format, ringSize int) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Format = f
	cfg.RingSize = ringSize
	cfg.Logger = slog.New(slog.DiscardHandler)

	eng, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return eng
}

func mono16Sample(t *testing.T, data ...int16) *pcm.Buffer {
	t.Helper()

	b, err := pcm.NewBuffer16(44100, 1, data)
	if err != nil {
		t.Fatalf("NewBuffer16() error = %v", err)
	}
	return b
}

func sampled(b *pcm.Buffer) Params {
	return Params{Waveform: WaveSampled, Sample: b, Volume: 1}
}

// mixFrames runs one Service pass and returns the encoded bytes.
func mixFrames(t *testing.T, eng *Engine, start uint64, frames int) []byte {
	t.Helper()

	req := Request{
		Format:       eng.Format(),
		StartFrame:   start,
		FramesNeeded: frames,
		Dst:          make([]byte, frames*eng.Format().FrameBytes()),
	}
	eng.Service(&req)

	if req.FramesFilled != frames {
		t.Fatalf("FramesFilled = %d, want %d", req.FramesFilled, frames)
	}
	if req.FillWithSilence {
		t.Fatal("FillWithSilence = true, want false")
	}
	return req.Dst
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
