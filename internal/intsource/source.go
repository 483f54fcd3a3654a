// SPDX-License-Identifier: EPL-2.0

// Package intsource adapts the go-audio integer PCM decoders (WAV, AIFF)
// to audio.Source.
package intsource

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// Reader is the part of the go-audio decoders a Source reads from.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Options describe the stream behind a Reader.
type Options struct {
	BitDepth int
	// Frames is the stream length when the container declares it, 0 if not.
	Frames int64
	// Unsigned8 marks 8-bit data stored offset by 128, as WAV does.
	Unsigned8 bool
}

type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	offset     int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// New wraps dec. The format must report at least one channel and a
// positive rate, and the depth must be 8, 16, 24 or 32 bits.
func New(dec Reader, opts Options) (*Source, error) {
	f := dec.Format()
	if f == nil || f.NumChannels < 1 || f.SampleRate < 1 {
		return nil, fmt.Errorf("%w: missing format", ErrUnsupportedBitDepth)
	}

	switch opts.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d bits: %w", opts.BitDepth, ErrUnsupportedBitDepth)
	}

	s := &Source{
		dec:        dec,
		sampleRate: f.SampleRate,
		channels:   f.NumChannels,
		bitDepth:   opts.BitDepth,
		frames:     opts.Frames,
		scale:      float32(int64(1) << (opts.BitDepth - 1)),
	}
	if opts.BitDepth == 8 && opts.Unsigned8 {
		s.offset = 128
	}
	return s, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Length() int64   { return s.frames }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]-s.offset) / s.scale
	}

	if err == nil && n < len(dst) {
		return n, io.EOF
	}
	return n, err
}
