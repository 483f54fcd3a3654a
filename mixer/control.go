// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

func checkSlot(slot int) {
	if slot < 0 || slot >= MaxInstances {
		panic(fmt.Sprintf("mixer: slot %d out of range [0, %d)", slot, MaxInstances))
	}
}

// StartInstance configures the idle slot from p and starts it.
func (e *Engine) StartInstance(slot int, p Params) error {
	return e.load(slot, p, true)
}

// PrepareInstance configures the idle slot from p without starting it, so
// that it can be resumed later or chained to from another instance.
func (e *Engine) PrepareInstance(slot int, p Params) error {
	return e.load(slot, p, false)
}

func (e *Engine) load(slot int, p Params, play bool) error {
	checkSlot(slot)

	frames, err := p.frames(e.format)
	if err != nil {
		return fmt.Errorf("slot %d: %w", slot, err)
	}

	e.mu.Lock()
	in := &e.pool[slot]
	if in.playing {
		e.mu.Unlock()
		return fmt.Errorf("slot %d: %w", slot, ErrSlotBusy)
	}
	in.configure(p, frames)
	in.playing = play
	e.unlink(slot)
	e.mu.Unlock()

	e.log.Debug("instance loaded",
		"slot", slot, "name", p.Name, "waveform", p.Waveform.String(),
		"frames", frames, "playing", play)

	return nil
}

// Play starts p in the first reusable slot and returns that slot. A full
// pool is not an error: Play returns -1 and counts the drop in Stats.
func (e *Engine) Play(p Params) (int, error) {
	frames, err := p.frames(e.format)
	if err != nil {
		return -1, err
	}

	e.mu.Lock()
	slot := -1
	for i := range e.pool {
		if e.pool[i].claimable() {
			slot = i
			break
		}
	}
	if slot >= 0 {
		e.pool[slot].configure(p, frames)
		e.pool[slot].playing = true
		e.unlink(slot)
	}
	e.mu.Unlock()

	if slot < 0 {
		e.dropped.Add(1)
		e.log.Debug("instance pool exhausted", "name", p.Name)
		return -1, nil
	}

	return slot, nil
}

// StopInstance pauses the slot. Its position is kept for ResumeInstance.
func (e *Engine) StopInstance(slot int) {
	checkSlot(slot)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pool[slot].playing = false
}

// ResumeInstance plays the slot from its current position.
func (e *Engine) ResumeInstance(slot int) error {
	return e.resume(slot, false)
}

// RestartInstance plays the slot from its first frame.
func (e *Engine) RestartInstance(slot int) error {
	return e.resume(slot, true)
}

func (e *Engine) resume(slot int, rewind bool) error {
	checkSlot(slot)

	e.mu.Lock()
	defer e.mu.Unlock()

	in := &e.pool[slot]
	if in.wave == WaveNone {
		return fmt.Errorf("slot %d: %w", slot, ErrNoWaveform)
	}
	if rewind {
		in.frame = 0
		in.loopCount = 0
		in.attackMs = in.attack
	}
	in.playing = true
	in.done = false

	return nil
}

// ReleaseInstance stops the slot and forgets its configuration, dropping
// the reference to any borrowed sample.
func (e *Engine) ReleaseInstance(slot int) {
	checkSlot(slot)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pool[slot] = instance{next: noSuccessor}
	e.unlink(slot)
}

// unlink drops every successor reference to slot, so that a slot reused for
// another sound is never started by an old chain. The pool lock is held.
func (e *Engine) unlink(slot int) {
	for i := range e.pool {
		if e.pool[i].next == slot {
			e.pool[i].next = noSuccessor
		}
	}
}

// StopAll pauses every slot.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.pool {
		e.pool[i].playing = false
	}
}

// Chain makes next start playing when slot completes without repeating.
// next must already be configured, typically with PrepareInstance.
// Releasing or reconfiguring next later drops the link.
func (e *Engine) Chain(slot, next int) error {
	checkSlot(slot)
	checkSlot(next)
	if slot == next {
		return fmt.Errorf("slot %d: %w", slot, ErrChainSelf)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pool[slot].wave == WaveNone {
		return fmt.Errorf("slot %d: %w", slot, ErrNoWaveform)
	}
	if e.pool[next].wave == WaveNone {
		return fmt.Errorf("successor slot %d: %w", next, ErrNoWaveform)
	}
	e.pool[slot].next = next

	return nil
}

// Unchain removes the successor of slot.
func (e *Engine) Unchain(slot int) {
	checkSlot(slot)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pool[slot].next = noSuccessor
}

// SetInstanceVolume changes the base volume of one slot.
func (e *Engine) SetInstanceVolume(slot int, volume float64) error {
	checkSlot(slot)
	if err := checkLevel(volume); err != nil {
		return fmt.Errorf("slot %d: %w", slot, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pool[slot].volume = volume
	return nil
}

// Instance returns a copy of the slot's state.
func (e *Engine) Instance(slot int) InstanceState {
	checkSlot(slot)

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pool[slot].state(slot)
}

// Active returns the number of playing slots.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for i := range e.pool {
		if e.pool[i].playing {
			n++
		}
	}
	return n
}
