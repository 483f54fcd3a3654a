// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files via github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - AIFF with 8, 16, 24 or 32 bit big-endian integer samples
//   - Any channel count and sample rate the COMM chunk declares
//
// # Decoding
//
//	f, _ := os.Open("snare.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF container
//	}
//
// go-audio needs an io.ReadSeeker. Other readers are read into memory
// first, so prefer passing an *os.File.
//
// # Output Format
//
// Samples are scaled by 2^(bits-1) into float32 in [-1, 1). The source
// also exposes:
//
//   - BitDepth(): the sample size from the COMM chunk
//   - Length(): the frame count from the COMM chunk
//
// Loaders use Length() to allocate the destination buffer once.
//
// # Channel Layout
//
// Frames are interleaved as in the file, [L0, R0, L1, R1, ...] for stereo.
//
// # Errors
//
//   - ErrNotAiffFile: the FORM/AIFF header is missing or broken
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: no channels or no sample rate
//
// # Loading Into The Mixer
//
// The root audmix package registers this decoder for ".aif" and ".aiff":
//
//	loader := audmix.NewLoader(audmix.OptionsFor(eng.Format()))
//	buf, err := loader.Load("snare.aiff")
package aiff
