// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
// Decoder reads the identification and setup headers up front and returns
// an audio.Source:
//
//	f, _ := os.Open("theme.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // not an Ogg stream, or a broken header
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in [-1, 1], taken straight from the codec
//   - Channels: whatever the stream carries, interleaved
//   - Sample rate: whatever the stream carries
//
// Vorbis has no integer sample width. The source reports BitDepth() 32 so
// that loaders treat it as full precision and quantize once, at the end.
//
// # Reading
//
// ReadSamples only reads whole frames: when len(dst) is not a multiple of
// the channel count the trailing values are left untouched. The end of the
// stream is reported as io.EOF, possibly together with the last samples.
//
// Length() is the stream length in frames. It needs an io.ReadSeeker to
// find the last granule position and is zero otherwise.
//
// # Channel Layout
//
// Stereo samples are interleaved as [L0, R0, L1, R1, ...]. Streams with
// more channels follow the Vorbis channel order; audio.NewDownmixer folds
// them to mono or stereo before they reach the mixer.
//
// # Loading Into The Mixer
//
// The root audmix package registers this decoder for ".ogg":
//
//	buf, err := audmix.OpenSample(audmix.DefaultRegistry(), "theme.ogg",
//	    audmix.OptionsFor(eng.Format()))
//
// # Limitations
//
//   - Decoding only, there is no Vorbis encoder
//   - Length() is zero for pipes and network streams
package vorbis
