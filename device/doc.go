// SPDX-License-Identifier: EPL-2.0

// Package device connects a mixer engine to the speakers through
// github.com/ebitengine/oto/v3.
//
// # Playback
//
// The device pulls from a mixer.Stream on its own goroutine, so the engine
// is serviced at the pace of the sound card:
//
//	p, err := device.NewPlayer(eng, device.Options{})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	if err := p.Start(); err != nil {
//	    return err
//	}
//
// Every Read from the device becomes one Service call covering as many
// whole frames as fit in the device buffer. Stream.Position() is the
// global frame counter the alignment gate sees.
//
// # Latency
//
// Options.BufferSize sets the device buffer length, DefaultBufferSize
// (40ms) when zero. Shorter buffers lower latency and raise the number of
// Service calls per second.
//
// # Lifecycle
//
//   - Start begins or resumes pulling; it fails with ErrClosed after Close
//   - Stop pauses the device; the stream keeps its position
//   - Close releases the device player
//
// oto allows one context per process, so create a single Player.
//
// # Formats
//
// Only 16-bit engine formats can be played, since oto has no 32-bit
// integer output. NewPlayer returns ErrUnsupportedDeviceFormat otherwise;
// render 32-bit engines to a file with the formats/wav Writer instead.
//
// # Headless Builds
//
// Building with the headless tag swaps oto for a timer-driven stand-in
// that consumes the stream at the same rate and discards it. It needs no
// sound card and no cgo, which suits CI and servers:
//
//	go test -tags headless ./device/...
package device
