// SPDX-License-Identifier: EPL-2.0

// Package pcm holds integer PCM sample storage and the numeric conversions
// between normalized float samples and signed integer samples.
//
// # Buffers
//
// A Buffer is an interleaved block of signed integer samples tagged with its
// element width. Exactly one of the 8, 16 or 32-bit backing slices is in use,
// selected by the constructor:
//
//	buf, err := pcm.NewBuffer16(44100, 2, data)
//	v := buf.At(frame, channel) // normalized to [-1, 1)
//
// Buffers are read-only once built. The mixer borrows them for playback and
// never writes into them.
//
// # Conversion
//
// Float to integer conversion rounds to the nearest integer and clamps values
// outside [-1, 1] to exactly the minimum or maximum representable value:
//
//	pcm.FloatToInt16(0.5)  // 16384
//	pcm.FloatToInt16(-2.0) // -32768
//
// Integer to float conversion divides by the full scale of the depth
// (2^(bits-1)), so the result always lies in [-1, 1).
package pcm
