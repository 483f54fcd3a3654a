// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer folds a source with more channels than wanted down to one or
// two channels. Mono output averages every channel; stereo output averages
// the even channels into the left and the odd channels into the right.
type Downmixer struct {
	src      Source
	channels int
	tmp      []float32
}

// NewDownmixer returns a Downmixer producing channels (1 or 2) from src.
// src must carry at least that many channels.
func NewDownmixer(src Source, channels int) (*Downmixer, error) {
	if channels < 1 || channels > 2 || src.Channels() < channels {
		return nil, fmt.Errorf("%d to %d channels: %w", src.Channels(), channels, ErrInvalidChannels)
	}

	return &Downmixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}, nil
}

func (m *Downmixer) SampleRate() int { return m.src.SampleRate() }
func (m *Downmixer) Channels() int   { return m.channels }
func (m *Downmixer) BufSize() int    { return m.src.BufSize() }
func (m *Downmixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with folded frames. len(dst) must be a multiple of
// the output channel count.
func (m *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	got := n / in

	for f := range got {
		frame := m.tmp[f*in : (f+1)*in]
		if m.channels == 1 {
			var sum float32
			for _, v := range frame {
				sum += v
			}
			dst[f] = sum / float32(in)
			continue
		}

		var left, right float32
		for c, v := range frame {
			if c%2 == 0 {
				left += v
			} else {
				right += v
			}
		}
		dst[2*f] = left / float32((in+1)/2)
		dst[2*f+1] = right / float32(in/2)
	}

	return got * m.channels, err
}
