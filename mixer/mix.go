// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

// Request is one pull from the audio callback.
type Request struct {
	Format Format
	// StartFrame is the global index of the first requested frame.
	StartFrame uint64
	// FramesNeeded frames are written to the start of Dst.
	FramesNeeded int
	Dst          []byte

	// Set by Service.
	FramesFilled    int
	FillWithSilence bool
}

// Service mixes req.FramesNeeded frames of every playing instance into
// req.Dst. It never fails: a request that does not match the engine format
// or does not fit its buffer is a programming error and panics.
//
// The pool lock is held for the whole pass; global volumes are read once
// before it is taken.
func (e *Engine) Service(req *Request) {
	if req.Format != e.format {
		panic(fmt.Sprintf("mixer: request format %v, engine format %v", req.Format, e.format))
	}
	size := req.FramesNeeded * e.format.FrameBytes()
	if req.FramesNeeded < 0 || len(req.Dst) < size {
		panic(fmt.Sprintf("mixer: %d frames need %d bytes, buffer has %d",
			req.FramesNeeded, size, len(req.Dst)))
	}

	vol := e.volumes.snapshot()

	e.mu.Lock()
	defer e.mu.Unlock()

	req.FramesFilled = req.FramesNeeded
	if e.closed {
		clear(req.Dst[:size])
		req.FillWithSilence = true
		return
	}

	e.mix(req.Dst[:size], req.StartFrame, req.FramesNeeded, vol)
	req.FillWithSilence = false
	e.passes.Add(1)
}

// mix runs with the pool lock held.
func (e *Engine) mix(dst []byte, start uint64, frames int, vol Volumes) {
	f := e.format
	rate := float64(f.SampleRate)
	modulus := f.alignModulus()

	var contributing [MaxInstances]bool

	for i := range frames {
		global := int((start + uint64(i)) % modulus)

		var acc [maxChannels]float64
		for s := range e.pool {
			in := &e.pool[s]
			contributing[s] = false
			if in.wave == WaveNone || !in.playing {
				continue
			}
			if in.align != 0 {
				if global%in.align != 0 {
					continue
				}
				in.align = 0
			}
			contributing[s] = true

			elapsed := float64(in.frame) * 1000 / rate
			gain := in.currentVolume(elapsed, rate, vol.Master, vol.category(in.category))
			if gain == 0 {
				continue
			}
			for ch := range f.Channels {
				acc[ch] += in.rawSample(ch, in.frame, rate) * gain
			}
		}

		// Positions move once per frame after every channel is summed, so a
		// successor started by a completion is first heard on the next frame.
		for s := range e.pool {
			if contributing[s] {
				e.pool[s].advance(&e.pool)
			}
		}

		for ch := range f.Channels {
			v := acc[ch]
			if v > 1 {
				v = 1
				e.clipped.Add(1)
			} else if v < -1 {
				v = -1
				e.clipped.Add(1)
			}
			if ch == 0 && e.ring != nil {
				e.ring.push(v)
			}
			putSample(dst, sampleOffset(i, ch, f), f.BitsPerSample, v)
		}
	}
}
