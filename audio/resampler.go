// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler converts src to another sample rate using cubic interpolation
// over a sliding window of four frames. It works on interleaved samples and
// keeps the channel count. Sources already at the target rate pass through.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	// step is how many source frames one output frame covers.
	step float64

	// window holds the frames at index-1, index, index+1 and index+2.
	window [4][]float32
	index  int64
	pos    float64

	primed bool
	eof    bool
	last   int64
}

// NewResampler converts src to dstRate. When the rates already match the
// samples pass through untouched.
func NewResampler(src Source, dstRate int) *Resampler {
	r := &Resampler{
		src:      src,
		channels: src.Channels(),
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
	}
	for i := range r.window {
		r.window[i] = make([]float32, r.channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Length estimates the output length when the source knows its own.
func (r *Resampler) Length() int64 {
	s, ok := r.src.(Sized)
	if !ok {
		return 0
	}
	return int64(float64(s.Length())/r.step + 0.5)
}

// ReadSamples produces resampled frames into dst, whose length must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.step == 1 {
		return r.src.ReadSamples(dst)
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames && !r.done() {
		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = cubic(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++

		r.pos += r.step
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
	}

	if r.done() {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}

func (r *Resampler) done() bool {
	return r.eof && r.index > r.last
}

func (r *Resampler) prime() error {
	r.primed = true

	if err := r.fill(1, 0); err != nil {
		return err
	}
	if r.eof && r.last < 0 {
		return io.EOF
	}
	copy(r.window[0], r.window[1])

	if err := r.fill(2, 1); err != nil {
		return err
	}
	return r.fill(3, 2)
}

// shift drops the oldest frame and loads the next one.
func (r *Resampler) shift() error {
	oldest := r.window[0]
	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.window[3] = oldest
	r.index++

	return r.fill(3, r.index+2)
}

// fill reads the source frame at index into window slot. Past the end of
// the source the previous slot is repeated.
func (r *Resampler) fill(slot int, index int64) error {
	if r.eof {
		copy(r.window[slot], r.window[slot-1])
		return nil
	}

	n, err := r.src.ReadSamples(r.window[slot])
	if n == r.channels {
		if err == io.EOF {
			r.eof = true
			r.last = index
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	if err != nil && err != io.EOF {
		return fmt.Errorf("%w", err)
	}
	r.eof = true
	r.last = index - 1
	copy(r.window[slot], r.window[slot-1])

	return nil
}

// cubic is Catmull-Rom interpolation between y1 and y2 at fraction x.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
