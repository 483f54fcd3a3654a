// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
	"time"

	"github.com/ik5/audmix/pcm"
)

// MaxInstances is the fixed capacity of the instance pool.
const MaxInstances = 64

const noSuccessor = -1

// Params configures one sound instance.
type Params struct {
	// Name labels the instance in logs and state snapshots.
	Name     string
	Waveform Waveform

	// Frequency in Hz, for procedural waveforms.
	Frequency float64
	// Duration is the loop period of a procedural waveform. Sampled
	// instances take their length from Sample.
	Duration time.Duration
	// Sample is borrowed read-only for as long as the slot references it.
	Sample *pcm.Buffer

	Volume   float64
	Category Category

	Repeat bool
	// Loops limits a repeating instance to that many iterations; the last
	// one completes like a non-repeating instance. Zero repeats forever.
	Loops int

	Attack       time.Duration
	AttackCurve  Curve
	Falloff      time.Duration
	FalloffCurve Curve

	// Align defers the audible start until the global frame counter is a
	// multiple of Align. Zero starts immediately.
	Align int
}

// frames validates p against f and returns the instance length in frames.
func (p Params) frames(f Format) (int, error) {
	if p.Volume < 0 || math.IsNaN(p.Volume) {
		return 0, fmt.Errorf("volume %v: %w", p.Volume, ErrInvalidParams)
	}
	if p.Loops < 0 || p.Align < 0 || p.Attack < 0 || p.Falloff < 0 {
		return 0, fmt.Errorf("negative loops, align, attack or falloff: %w", ErrInvalidParams)
	}

	switch {
	case p.Waveform.procedural():
		if p.Frequency <= 0 || math.IsInf(p.Frequency, 0) || math.IsNaN(p.Frequency) {
			return 0, fmt.Errorf("frequency %v: %w", p.Frequency, ErrInvalidParams)
		}
		n := int(math.Round(p.Duration.Seconds() * float64(f.SampleRate)))
		if n < 1 {
			return 0, fmt.Errorf("duration %v shorter than one frame: %w", p.Duration, ErrInvalidParams)
		}
		return n, nil
	case p.Waveform == WaveSampled:
		if p.Sample == nil || !p.Sample.Depth().Valid() || p.Sample.Frames() == 0 {
			return 0, fmt.Errorf("empty sample: %w", ErrInvalidParams)
		}
		if p.Sample.SampleRate() != f.SampleRate {
			return 0, fmt.Errorf("sample rate %d, engine runs at %d: %w",
				p.Sample.SampleRate(), f.SampleRate, ErrInvalidParams)
		}
		return p.Sample.Frames(), nil
	}

	return 0, fmt.Errorf("%v: %w", p.Waveform, ErrInvalidParams)
}

// instance is one pool slot. Every field is guarded by the engine's pool lock.
type instance struct {
	name    string
	wave    Waveform
	playing bool
	// done marks a slot whose last run completed; Play may reclaim it.
	done bool

	frame  int
	frames int

	repeat    bool
	loops     int
	loopCount int

	// attackMs is cleared after the first loop; attack keeps the
	// configured length for the next start.
	attack       float64
	attackMs     float64
	attackCurve  Curve
	falloffMs    float64
	falloffCurve Curve

	volume   float64
	freq     float64
	sample   *pcm.Buffer
	align    int
	next     int
	category Category
}

func (in *instance) configure(p Params, frames int) {
	*in = instance{
		name:         p.Name,
		wave:         p.Waveform,
		frames:       frames,
		repeat:       p.Repeat,
		loops:        p.Loops,
		attack:       float64(p.Attack) / float64(time.Millisecond),
		attackMs:     float64(p.Attack) / float64(time.Millisecond),
		attackCurve:  p.AttackCurve,
		falloffMs:    float64(p.Falloff) / float64(time.Millisecond),
		falloffCurve: p.FalloffCurve,
		volume:       p.Volume,
		freq:         p.Frequency,
		align:        p.Align,
		next:         noSuccessor,
		category:     p.Category,
	}
	if p.Waveform == WaveSampled {
		in.sample = p.Sample
	}
}

// claimable reports whether Play may reuse the slot for a new sound.
func (in *instance) claimable() bool {
	return !in.playing && (in.wave == WaveNone || in.done)
}

// advance moves the instance one frame forward and applies the end of
// iteration rules. It reports whether the instance completed, in which case
// a configured successor has been switched to playing.
func (in *instance) advance(pool *[MaxInstances]instance) bool {
	in.frame++
	if in.frame < in.frames {
		return false
	}

	in.frame = 0
	in.loopCount++

	if in.repeat && (in.loops == 0 || in.loopCount < in.loops) {
		// attack ramps once per start, not once per loop
		in.attackMs = 0
		return false
	}

	in.playing = false
	in.done = true
	in.attackMs = in.attack

	if in.next != noSuccessor {
		if succ := &pool[in.next]; succ.wave != WaveNone {
			succ.playing = true
			succ.done = false
		}
		in.next = noSuccessor
	}

	return true
}

// InstanceState is a copy of one slot taken under the pool lock.
type InstanceState struct {
	Slot      int
	Name      string
	Waveform  Waveform
	Playing   bool
	Frame     int
	Frames    int
	Repeat    bool
	LoopCount int
	Align     int
	// Next is the successor slot, or -1.
	Next     int
	Volume   float64
	Category Category
	Attack   time.Duration
}

func (in *instance) state(slot int) InstanceState {
	return InstanceState{
		Slot:      slot,
		Name:      in.name,
		Waveform:  in.wave,
		Playing:   in.playing,
		Frame:     in.frame,
		Frames:    in.frames,
		Repeat:    in.repeat,
		LoopCount: in.loopCount,
		Align:     in.align,
		Next:      in.next,
		Volume:    in.volume,
		Category:  in.category,
		Attack:    time.Duration(in.attackMs * float64(time.Millisecond)),
	}
}
