// SPDX-License-Identifier: EPL-2.0

// Package mixer is a real-time mixing engine for a fixed pool of sound
// instances.
//
// An Engine holds up to MaxInstances slots. Each slot plays a procedural
// waveform (sine, square, saw) or a borrowed pcm.Buffer, shaped by an
// attack/falloff envelope and scaled by the master and category volumes.
// The audio callback pulls interleaved 16 or 32-bit PCM with Service:
//
//	eng, err := mixer.NewEngine(mixer.DefaultConfig())
//	...
//	eng.StartInstance(0, mixer.Params{
//		Waveform:  mixer.WaveSine,
//		Frequency: 440,
//		Duration:  time.Second,
//		Volume:    0.5,
//	})
//
//	req := mixer.Request{Format: eng.Format(), FramesNeeded: 512, Dst: buf}
//	eng.Service(&req)
//
// Stream wraps Service as an io.Reader with its own running frame counter,
// which is what pull-based device libraries expect.
//
// # Instance lifecycle
//
// A slot is either idle or playing. StartInstance (or Play, which picks a
// free slot) makes it playing. Each mixed frame advances its position once;
// at the end of an iteration a repeating instance rewinds and drops its
// attack ramp, while a non-repeating one (or the last of Loops iterations)
// goes idle and switches its successor, set with Chain, to playing.
//
// An instance with a non-zero Align stays silent, and does not advance, until
// the global frame counter reaches a multiple of Align. The counter wraps at
// one hundred seconds of frames.
//
// # Concurrency
//
// The pool lock is held for a whole Service pass and briefly by each control
// method. The visualization Ring has its own lock, always taken inside the
// pool lock. Global volumes live behind a read/write lock and are copied
// once per pass. Sample buffers are only read.
//
// # Errors
//
// Service never returns an error. Clipped samples are clamped and counted in
// Stats. Control methods return wrapped sentinel errors for bad parameters
// and panic on an out-of-range slot index, which is a programming error.
package mixer
