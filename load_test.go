// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/pcm"
)

func TestLoadSample_Basic(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 2, 4410, 0.5)

	b, err := LoadSample(src, LoadOptions{SampleRate: 44100})
	if err != nil {
		t.Fatalf("LoadSample() error = %v", err)
	}

	if b.SampleRate() != 44100 || b.Channels() != 2 || b.Depth() != pcm.Depth16 {
		t.Fatalf("buffer = %d Hz x %d, %v", b.SampleRate(), b.Channels(), b.Depth())
	}
	if b.Frames() != 4410 {
		t.Errorf("Frames() = %d, want 4410", b.Frames())
	}
	if got := b.At(100, 1); got < 0.4999 || got > 0.5001 {
		t.Errorf("At(100, 1) = %v, want 0.5", got)
	}
}

func TestLoadSample_Conversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate, ch   int
		frames     int
		opts       LoadOptions
		wantCh     int
		wantFrames int
		wantDepth  pcm.BitDepth
	}{
		{"downsample", 48000, 1, 4800, LoadOptions{SampleRate: 24000}, 1, 2400, pcm.Depth16},
		{"upsample", 22050, 2, 2205, LoadOptions{SampleRate: 44100}, 2, 4410, pcm.Depth16},
		{"to mono", 44100, 2, 100, LoadOptions{SampleRate: 44100, Channels: 1}, 1, 100, pcm.Depth16},
		{"mono stays mono", 44100, 1, 100, LoadOptions{SampleRate: 44100, Channels: 2}, 1, 100, pcm.Depth16},
		{"surround folded", 44100, 6, 100, LoadOptions{SampleRate: 44100}, 2, 100, pcm.Depth16},
		{"32 bit", 44100, 1, 100, LoadOptions{SampleRate: 44100, Depth: pcm.Depth32}, 1, 100, pcm.Depth32},
		{"8 bit", 44100, 1, 100, LoadOptions{SampleRate: 44100, Depth: pcm.Depth8}, 1, 100, pcm.Depth8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.rate, tt.ch, tt.frames, 440)
			b, err := LoadSample(src, tt.opts)
			if err != nil {
				t.Fatalf("LoadSample() error = %v", err)
			}

			if b.Channels() != tt.wantCh {
				t.Errorf("Channels() = %d, want %d", b.Channels(), tt.wantCh)
			}
			if b.Depth() != tt.wantDepth {
				t.Errorf("Depth() = %v, want %v", b.Depth(), tt.wantDepth)
			}
			if b.SampleRate() != tt.opts.SampleRate {
				t.Errorf("SampleRate() = %d, want %d", b.SampleRate(), tt.opts.SampleRate)
			}
			if d := b.Frames() - tt.wantFrames; d < -1 || d > 1 {
				t.Errorf("Frames() = %d, want about %d", b.Frames(), tt.wantFrames)
			}
		})
	}
}

func TestLoadSample_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts LoadOptions
	}{
		{"no rate", LoadOptions{}},
		{"three channels", LoadOptions{SampleRate: 44100, Channels: 3}},
		{"24 bit", LoadOptions{SampleRate: 44100, Depth: 24}},
	}

	for _, tt := range tests {
		src := audiotest.NewSilentSource(44100, 1, 10)
		if _, err := LoadSample(src, tt.opts); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%s: error = %v, want ErrInvalidOptions", tt.name, err)
		}
	}
}

func TestLoadSample_Empty(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 0)
	if _, err := LoadSample(src, LoadOptions{SampleRate: 44100}); !errors.Is(err, ErrEmptySample) {
		t.Errorf("LoadSample() error = %v, want ErrEmptySample", err)
	}
}

func TestOptionsFor(t *testing.T) {
	t.Parallel()

	opts := OptionsFor(mixer.Format{SampleRate: 48000, BitsPerSample: 32, Channels: 2})
	want := LoadOptions{SampleRate: 48000, Channels: 2, Depth: pcm.Depth32}
	if opts != want {
		t.Errorf("OptionsFor() = %+v, want %+v", opts, want)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	got := DefaultRegistry().Formats()
	want := []string{"aif", "aiff", "mp3", "ogg", "wav", "wave"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestOpenSample_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "beep.wav")
	data := audiotest.WAV(22050, 1, 16, []int{0, 16384, 0, -16384, 0, 16384})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := NewLoader(LoadOptions{SampleRate: 22050}).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.Frames() != 6 || b.Channels() != 1 {
		t.Fatalf("buffer = %d frames x %d ch, want 6 x 1", b.Frames(), b.Channels())
	}
	if got := b.At(1, 0); got < 0.49 || got > 0.51 {
		t.Errorf("At(1, 0) = %v, want 0.5", got)
	}
}

func TestOpenSample_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := DefaultRegistry()
	opts := LoadOptions{SampleRate: 44100}

	if _, err := OpenSample(reg, filepath.Join(dir, "noext"), opts); !errors.Is(err, audio.ErrNoExtension) {
		t.Errorf("no extension: error = %v, want audio.ErrNoExtension", err)
	}
	if _, err := OpenSample(reg, filepath.Join(dir, "a.flac"), opts); !errors.Is(err, audio.ErrUnsupported) {
		t.Errorf("flac: error = %v, want audio.ErrUnsupported", err)
	}
	if _, err := OpenSample(reg, filepath.Join(dir, "missing.wav"), opts); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSample(reg, bad, opts); err == nil {
		t.Error("garbage file: error = nil")
	}
}

func TestLoadSample_PlaysInEngine(t *testing.T) {
	t.Parallel()

	eng, err := mixer.NewEngine(mixer.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	src := audiotest.NewConstantSource(22050, 1, 1000, 0.25)
	b, err := LoadSample(src, OptionsFor(eng.Format()))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Play(mixer.Params{Waveform: mixer.WaveSampled, Sample: b, Volume: 1}); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
}

func BenchmarkLoadSample(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		src := audiotest.NewSineSource(48000, 2, 48000, 440)
		if _, err := LoadSample(src, LoadOptions{SampleRate: 44100}); err != nil {
			b.Fatal(err)
		}
	}
}
