// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync/atomic"

// Stream adapts an Engine to io.Reader for pull-based audio devices. Each
// Read mixes as many whole frames as fit in p and advances the global frame
// counter by the same amount.
type Stream struct {
	eng      *Engine
	position atomic.Uint64
	req      Request
}

// NewStream returns a stream starting at global frame 0.
func NewStream(eng *Engine) *Stream {
	return &Stream{eng: eng}
}

// Position is the global index of the next frame Read will produce.
func (s *Stream) Position() uint64 { return s.position.Load() }

// Read always fills whole frames and never returns an error. Trailing bytes
// that do not make a whole frame are left untouched and not counted.
func (s *Stream) Read(p []byte) (int, error) {
	fb := s.eng.format.FrameBytes()
	frames := len(p) / fb
	if frames == 0 {
		return 0, nil
	}

	s.req = Request{
		Format:       s.eng.format,
		StartFrame:   s.position.Load(),
		FramesNeeded: frames,
		Dst:          p,
	}
	s.eng.Service(&s.req)
	s.position.Add(uint64(frames))

	return s.req.FramesFilled * fb, nil
}
