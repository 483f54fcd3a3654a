// SPDX-License-Identifier: EPL-2.0

package intsource

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type mockReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	fail       bool
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: m.sampleRate, NumChannels: m.channels}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestNew_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits    int
		wantErr bool
	}{
		{8, false},
		{12, true},
		{16, false},
		{24, false},
		{32, false},
		{64, true},
	}

	for _, tt := range tests {
		_, err := New(&mockReader{sampleRate: 8000, channels: 1}, Options{BitDepth: tt.bits})
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%d bits) error = %v, wantErr %v", tt.bits, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("New(%d bits) error = %v, want ErrUnsupportedBitDepth", tt.bits, err)
		}
	}
}

func TestNew_MissingFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&mockReader{}, Options{BitDepth: 16}); err == nil {
		t.Error("New() accepted a zero format")
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		samples  []int
		expected []float32
	}{
		{"16 bit", Options{BitDepth: 16}, []int{0, 16384, -32768}, []float32{0, 0.5, -1}},
		{"24 bit", Options{BitDepth: 24}, []int{4194304, -8388608}, []float32{0.5, -1}},
		{"32 bit", Options{BitDepth: 32}, []int{-1073741824}, []float32{-0.5}},
		{"signed 8 bit", Options{BitDepth: 8}, []int{64, -128}, []float32{0.5, -1}},
		{"unsigned 8 bit", Options{BitDepth: 8, Unsigned8: true}, []int{128, 192, 0}, []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := New(&mockReader{sampleRate: 44100, channels: 1, samples: tt.samples}, tt.opts)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			if n != len(tt.expected) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.expected))
			}
			if !errors.Is(err, io.EOF) {
				t.Errorf("short read error = %v, want io.EOF", err)
			}
			for i, want := range tt.expected {
				if dst[i] != want {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, err := New(&mockReader{sampleRate: 22050, channels: 2}, Options{BitDepth: 24, Frames: 1000})
	if err != nil {
		t.Fatal(err)
	}

	if src.SampleRate() != 22050 || src.Channels() != 2 || src.BitDepth() != 24 || src.Length() != 1000 {
		t.Errorf("metadata = %d Hz, %d ch, %d bits, %d frames", src.SampleRate(), src.Channels(), src.BitDepth(), src.Length())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadUntilEOF(t *testing.T) {
	t.Parallel()

	samples := make([]int, 10)
	src, _ := New(&mockReader{sampleRate: 8000, channels: 2, samples: samples}, Options{BitDepth: 16})

	dst := make([]float32, 4)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 10 {
		t.Errorf("read %d samples, want 10", total)
	}
	if src.BufSize() != 4 {
		t.Errorf("BufSize() = %d, want 4", src.BufSize())
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src, _ := New(&mockReader{sampleRate: 8000, channels: 1, samples: []int{1}}, Options{BitDepth: 16})
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReaderError(t *testing.T) {
	t.Parallel()

	src, _ := New(&mockReader{sampleRate: 8000, channels: 1, fail: true}, Options{BitDepth: 16})
	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
