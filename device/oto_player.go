//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audmix/mixer"
)

// Player plays an engine on the default audio output. oto allows a single
// context per process, so create one Player per program.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	stream *mixer.Stream

	started bool
	closed  bool
	mutex   sync.Mutex
}

// NewPlayer opens the audio device in the engine's format. The device
// pulls frames from eng through a mixer.Stream once Start is called.
func NewPlayer(eng *mixer.Engine, opts Options) (*Player, error) {
	f := eng.Format()
	if err := checkFormat(f); err != nil {
		return nil, err
	}

	op := &oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   opts.bufferSize(),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		stream: mixer.NewStream(eng),
	}
	p.player = ctx.NewPlayer(p.stream)

	slog.Debug("audio device ready", "format", f.String(), "buffer", op.BufferSize)

	return p, nil
}

// Stream returns the stream the device reads from.
func (p *Player) Stream() *mixer.Stream { return p.stream }

// Start begins or resumes playback.
func (p *Player) Start() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return ErrClosed
	}
	if !p.started {
		p.player.Play()
		p.started = true
	}
	return nil
}

// Stop pauses playback. Start resumes it.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started && !p.closed {
		p.player.Pause()
		p.started = false
	}
}

// Close stops playback and releases the device player.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.started = false

	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// IsStarted reports whether the device is currently pulling audio.
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}

// Err reports an error the device hit while reading, if any.
func (p *Player) Err() error {
	return p.player.Err()
}
