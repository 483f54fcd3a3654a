//go:build headless

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/audmix/mixer"
)

// Player drains the engine in real time without a sound card, for CI and
// servers. Each tick reads one buffer worth of frames and discards it.
type Player struct {
	stream *mixer.Stream
	period time.Duration
	buf    []byte

	started bool
	closed  bool
	stop    chan struct{}
	done    chan struct{}
	mutex   sync.Mutex
}

// NewPlayer checks the engine format and prepares a buffer of
// opts.BufferSize worth of frames. Nothing runs until Start.
func NewPlayer(eng *mixer.Engine, opts Options) (*Player, error) {
	f := eng.Format()
	if err := checkFormat(f); err != nil {
		return nil, err
	}

	period := opts.bufferSize()
	frames := max(int(period.Seconds()*float64(f.SampleRate)), 1)

	slog.Debug("headless audio device ready", "format", f.String(), "buffer", period)

	return &Player{
		stream: mixer.NewStream(eng),
		period: period,
		buf:    make([]byte, frames*f.FrameBytes()),
	}, nil
}

// Stream returns the stream the ticker reads from.
func (p *Player) Stream() *mixer.Stream { return p.stream }

// Start launches the reading goroutine. Starting twice is a no-op.
func (p *Player) Start() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.started {
		return nil
	}

	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.started = true
	go p.run(p.stop, p.done)

	return nil
}

func (p *Player) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.stream.Read(p.buf)
		}
	}
}

// Stop ends the reading goroutine and waits for it. The stream keeps its
// position, so Start resumes where playback stopped.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started {
		return
	}
	close(p.stop)
	<-p.done
	p.started = false
}

// Close stops playback; later Start calls return ErrClosed.
func (p *Player) Close() error {
	p.Stop()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.closed = true

	return nil
}

// IsStarted reports whether the reading goroutine is running.
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}

// Err is always nil: nothing can fail without a device.
func (p *Player) Err() error { return nil }
