// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/pcm"
)

// LoadOptions describe the buffer a decoded file is turned into.
type LoadOptions struct {
	// SampleRate the samples are resampled to. It must match the engine
	// rate for the buffer to be playable.
	SampleRate int
	// Channels caps the result at 1 or 2 channels. Zero means 2. Sources
	// with fewer channels keep theirs; the mixer plays a mono buffer on
	// every output channel.
	Channels int
	// Depth of the stored samples. Zero means 16 bits.
	Depth pcm.BitDepth
	// BufferSize is the read chunk in samples. Zero means 4096.
	BufferSize int
}

// OptionsFor returns load options producing buffers that play on an
// engine of format f.
func OptionsFor(f mixer.Format) LoadOptions {
	return LoadOptions{
		SampleRate: f.SampleRate,
		Channels:   f.Channels,
		Depth:      pcm.BitDepth(f.BitsPerSample),
	}
}

func (o LoadOptions) withDefaults() (LoadOptions, error) {
	if o.SampleRate <= 0 {
		return o, fmt.Errorf("sample rate %d: %w", o.SampleRate, ErrInvalidOptions)
	}
	if o.Channels < 0 || o.Channels > 2 {
		return o, fmt.Errorf("%d channels: %w", o.Channels, ErrInvalidOptions)
	}
	if o.Depth == 0 {
		o.Depth = pcm.Depth16
	}
	if !o.Depth.Valid() {
		return o, fmt.Errorf("%v: %w", o.Depth, ErrInvalidOptions)
	}
	if o.BufferSize <= 0 {
		o.BufferSize = 4096
	}
	return o, nil
}

// LoadSample drains src into a pcm.Buffer: the audio is resampled to
// opts.SampleRate, folded to opts.Channels and quantized to opts.Depth.
// src is read to the end but not closed.
func LoadSample(src audio.Source, opts LoadOptions) (*pcm.Buffer, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	channels := min(src.Channels(), 2)
	if opts.Channels > 0 {
		channels = min(channels, opts.Channels)
	}

	var stage audio.Source = audio.NewResampler(src, opts.SampleRate)
	folded, err := audio.NewDownmixer(stage, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	stage = folded

	// Size the buffer once when the decoder knows its length.
	estimated := opts.SampleRate * channels
	if sz, ok := src.(audio.Sized); ok && sz.Length() > 0 {
		estimated = int(float64(sz.Length())*float64(opts.SampleRate)/float64(src.SampleRate())+1) * channels
	}
	samples := make([]float32, 0, estimated)

	chunk := opts.BufferSize - opts.BufferSize%channels
	if chunk == 0 {
		chunk = channels
	}
	buf := make([]float32, chunk)

	for {
		n, err := stage.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmptySample
	}

	b, err := pcm.Quantize(samples, opts.SampleRate, channels, opts.Depth)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return b, nil
}

// DefaultRegistry returns a registry with every bundled decoder: wav,
// wave, aif, aiff, mp3 and ogg.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// Loader opens sample files through a registry.
type Loader struct {
	Registry *audio.Registry
	Options  LoadOptions
}

// NewLoader returns a Loader using DefaultRegistry.
func NewLoader(opts LoadOptions) *Loader {
	return &Loader{Registry: DefaultRegistry(), Options: opts}
}

// Load decodes the file at path and converts it with l.Options.
func (l *Loader) Load(path string) (*pcm.Buffer, error) {
	return OpenSample(l.Registry, path, l.Options)
}

// OpenSample picks a decoder by the extension of path, decodes the file
// and loads it with opts.
func OpenSample(reg *audio.Registry, path string, opts LoadOptions) (*pcm.Buffer, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	b, err := LoadSample(src, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return b, nil
}
