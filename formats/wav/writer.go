// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Writer streams interleaved little-endian PCM, as produced by the mixer,
// into a WAV file. The header sizes are patched on Close, so the target
// must be seekable.
type Writer struct {
	enc      *gowav.Encoder
	channels int
	bits     int
	buf      *goaudio.IntBuffer
	frames   int64
	closed   bool
}

// NewWriter prepares a WAV stream of the given layout. Only 16 and 32 bit
// samples are accepted, matching the mixer output formats.
func NewWriter(ws io.WriteSeeker, sampleRate, channels, bits int) (*Writer, error) {
	if bits != 16 && bits != 32 {
		return nil, fmt.Errorf("%d bits: %w", bits, ErrUnsupportedBitDepth)
	}
	if channels < 1 || sampleRate < 1 {
		return nil, fmt.Errorf("%d Hz x %d channels: %w", sampleRate, channels, ErrUnsupportedWavLayout)
	}

	return &Writer{
		enc:      gowav.NewEncoder(ws, sampleRate, bits, channels, formatPCM),
		channels: channels,
		bits:     bits,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bits,
		},
	}, nil
}

// Frames reports how many frames were written so far.
func (w *Writer) Frames() int64 { return w.frames }

// WritePCM appends p, which must hold whole frames.
func (w *Writer) WritePCM(p []byte) error {
	if w.closed {
		return ErrWriterClosed
	}

	width := w.bits / 8
	if len(p)%(width*w.channels) != 0 {
		return ErrPartialFrame
	}
	if len(p) == 0 {
		return nil
	}

	n := len(p) / width
	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]

	for i := range n {
		b := p[i*width:]
		if width == 2 {
			w.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(b)))
		} else {
			w.buf.Data[i] = int(int32(binary.LittleEndian.Uint32(b)))
		}
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	w.frames += int64(n / w.channels)

	return nil
}

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Encode writes a complete WAV file holding pcm.
func Encode(ws io.WriteSeeker, sampleRate, channels, bits int, pcm []byte) error {
	w, err := NewWriter(ws, sampleRate, channels, bits)
	if err != nil {
		return err
	}
	if err := w.WritePCM(pcm); err != nil {
		return err
	}
	return w.Close()
}
