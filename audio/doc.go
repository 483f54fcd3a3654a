// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoded-stream plumbing used to turn audio files
// into mixer samples.
//
// # Sources
//
// Every decoder yields a Source: interleaved float32 samples in [-1, 1]
// with a fixed sample rate and channel count. Sources chain, so a decoded
// file can pass through a Resampler and a Downmixer before it is quantized
// into a mixer buffer:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	src = audio.NewResampler(src, 44100)
//	src, _ = audio.NewDownmixer(src, 2)
//
// ReadSamples returns io.EOF once the stream is exhausted. The final call
// may return data together with io.EOF.
//
// # Resampling
//
// Resampler converts between rates with Catmull-Rom cubic interpolation
// over a four frame window. Sources already at the requested rate are
// passed through untouched.
//
// # Channel folding
//
// Downmixer reduces any channel count to mono or stereo by averaging.
//
// # Format registry
//
// Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.Lookup("sounds/laser.WAV")
//
// Lookup fails with ErrNoExtension or an *UnsupportedFormatError that
// matches ErrUnsupported.
package audio
