// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/intsource"
)

// aiffReader is the part of aiff.Decoder the source reads from.
type aiffReader = intsource.Reader

func newSource(dec aiffReader, bitDepth int, frames int64) (*intsource.Source, error) {
	src, err := intsource.New(dec, intsource.Options{BitDepth: bitDepth, Frames: frames})
	if err != nil {
		if errors.Is(err, intsource.ErrUnsupportedBitDepth) {
			return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
		}
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

// Decoder reads uncompressed AIFF files.
type Decoder struct{}

// Decode reads the COMM chunk of r and returns a source positioned at the
// first sample frame.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return newSource(dec, int(dec.BitDepth), int64(dec.NumSampleFrames))
}
