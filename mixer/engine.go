// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Config holds the parameters fixed for the life of an Engine.
type Config struct {
	Format Format
	// RingSize is the capacity of the visualization ring in samples.
	// Zero disables the ring.
	RingSize int
	Volumes  Volumes
	// Logger receives control-path events. The audio path never logs.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig is CD-quality stereo with a 4096 sample ring.
func DefaultConfig() Config {
	return Config{
		Format:   Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2},
		RingSize: 4096,
		Volumes:  DefaultVolumes(),
	}
}

// Stats are diagnostic counters.
type Stats struct {
	// Clipped counts channel samples clamped into [-1, 1].
	Clipped uint64
	// Dropped counts Play calls that found no free slot.
	Dropped uint64
	// Passes counts completed Service calls.
	Passes uint64
}

// Engine owns the instance pool, the global volumes and the visualization
// ring. One goroutine calls Service from the audio callback while others use
// the control methods.
//
// A control call holding the pool lock delays the next mixing pass; keep
// control calls short. Nothing here mitigates that priority inversion.
type Engine struct {
	format Format
	log    *slog.Logger

	mu     sync.Mutex
	pool   [MaxInstances]instance
	closed bool

	volumes volumeSettings
	ring    *Ring

	clipped atomic.Uint64
	dropped atomic.Uint64
	passes  atomic.Uint64
}

// NewEngine validates cfg and returns an engine with every slot idle.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Format.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Volumes.validate(); err != nil {
		return nil, fmt.Errorf("initial volumes: %w", err)
	}
	if cfg.RingSize < 0 {
		return nil, fmt.Errorf("ring size %d: %w", cfg.RingSize, ErrUnsupportedFormat)
	}

	e := &Engine{
		format: cfg.Format,
		log:    cfg.Logger,
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	e.volumes.v = cfg.Volumes
	if cfg.RingSize > 0 {
		e.ring = NewRing(cfg.RingSize)
	}
	for i := range e.pool {
		e.pool[i].next = noSuccessor
	}

	e.log.Debug("mixer engine created", "format", cfg.Format.String(), "ring", cfg.RingSize)

	return e, nil
}

// Format is the output format fixed at construction.
func (e *Engine) Format() Format { return e.format }

// Ring returns the visualization ring, or nil when disabled.
func (e *Engine) Ring() *Ring { return e.ring }

// Stats returns the diagnostic counters. They are read without the pool
// lock, so the three values may come from different passes.
func (e *Engine) Stats() Stats {
	return Stats{
		Clipped: e.clipped.Load(),
		Dropped: e.dropped.Load(),
		Passes:  e.passes.Load(),
	}
}

// SetVolume changes one global level. It takes effect on the next pass.
func (e *Engine) SetVolume(k VolumeKind, level float64) error {
	if err := checkLevel(level); err != nil {
		return fmt.Errorf("%v volume: %w", k, err)
	}
	if k != VolumeMaster && k != VolumeMusic && k != VolumeEffects {
		panic(fmt.Sprintf("mixer: set %v", k))
	}
	e.volumes.set(k, level)
	return nil
}

// SetEnabled mutes or unmutes a whole category.
func (e *Engine) SetEnabled(c Category, on bool) {
	e.volumes.enable(c, on)
}

// Volumes returns the current global levels.
func (e *Engine) Volumes() Volumes { return e.volumes.snapshot() }

// Close stops every instance. Later Service calls produce silence.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	for i := range e.pool {
		e.pool[i].playing = false
	}
	e.closed = true
	e.log.Debug("mixer engine closed", "passes", e.passes.Load(), "clipped", e.clipped.Load())

	return nil
}
