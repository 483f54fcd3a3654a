// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// # Decoding
//
//	f, _ := os.Open("hit.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always produces 16-bit little-endian stereo, so every source
// from this package has:
//
//   - Channels: 2, even for mono files (both channels are identical)
//   - BitDepth(): 16
//   - Sample rate: the rate of the first frame header
//
// Samples are converted to float32 in [-1, 1) by dividing by 32768.
// Fold mono material back down with the audio package:
//
//	mono, _ := audio.NewDownmixer(src, 1)
//
// # Reading
//
// ReadSamples fills whole frames. A truncated last frame in the stream is
// dropped and reported as io.EOF, the same as a clean end of input.
//
// Length() reports the decoded frame count when the input is seekable and
// zero otherwise. Loaders use it only to size their buffers.
//
// # Loading Into The Mixer
//
// The root audmix package registers this decoder for ".mp3". LoadSample
// resamples to the engine rate and caps the channel count to the engine's:
//
//	buf, err := audmix.LoadSample(src, audmix.OptionsFor(eng.Format()))
//
// # Limitations
//
//   - Layer III streams only
//   - Decoding only
package mp3
