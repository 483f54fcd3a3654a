// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync"

// Ring keeps the most recent mixed samples of channel 0 for a debug
// visualizer. The mixer writes into it while holding the pool lock; the ring
// lock always nests inside the pool lock, never the other way round.
type Ring struct {
	mu     sync.Mutex
	buf    []float64
	cursor int
	full   bool
	paused bool
}

// NewRing returns a ring holding size samples.
func NewRing(size int) *Ring {
	return &Ring{buf: make([]float64, size)}
}

// Len is the ring capacity in samples.
func (r *Ring) Len() int { return len(r.buf) }

// push stores v unless the ring is paused.
func (r *Ring) push(v float64) {
	r.mu.Lock()
	if !r.paused && len(r.buf) > 0 {
		r.buf[r.cursor] = v
		r.cursor++
		if r.cursor == len(r.buf) {
			r.cursor = 0
			r.full = true
		}
	}
	r.mu.Unlock()
}

// SetPaused freezes or resumes recording.
func (r *Ring) SetPaused(paused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paused = paused
}

// Paused reports whether recording is frozen.
func (r *Ring) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.paused
}

// View calls fn with the raw storage and the write cursor while the ring
// lock is held. fn must not retain samples or call back into the engine.
func (r *Ring) View(fn func(samples []float64, cursor int)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.buf, r.cursor)
}

// Snapshot appends the recorded samples to dst, oldest first.
func (r *Ring) Snapshot(dst []float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append(dst, r.buf[:r.cursor]...)
	}
	dst = append(dst, r.buf[r.cursor:]...)
	return append(dst, r.buf[:r.cursor]...)
}

// Clear discards the recorded samples.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.buf)
	r.cursor = 0
	r.full = false
}
