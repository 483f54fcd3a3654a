// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files using
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts 8, 16, 24 and 32 bit integer PCM in any channel layout.
// The returned source yields float32 samples in [-1, 1] and also exposes
// BitDepth() and Length() (frames):
//
//	src, err := wav.Decoder{}.Decode(f)
//
// Readers that cannot seek are buffered in memory first.
//
// 8-bit WAV data is unsigned by definition; it is re-centred around zero
// before scaling. Wider samples are signed and divided by 2^(bits-1).
//
// Length() is derived from the data chunk size and the block alignment,
// so it is exact even for files with trailing chunks.
//
// # Errors
//
//   - ErrNotWavFile: the RIFF/WAVE header is missing or broken
//   - ErrOnlyPCMSupported: a compressed or floating point format tag
//   - ErrUnsupportedBitDepth: a sample size go-audio cannot unpack
//   - ErrUnsupportedWavLayout: a header go-audio cannot read, or zero channels
//
// # Encoding
//
// Writer takes interleaved little-endian 16 or 32 bit PCM bytes, the same
// layout the mixer writes into a request buffer, and streams them into a
// WAV file:
//
//	w, _ := wav.NewWriter(f, 44100, 2, 16)
//	w.WritePCM(chunk)
//	w.Close()
//
// Close patches the header sizes, which is why the destination must be an
// io.WriteSeeker. Encode does the same for a single buffer.
//
// WritePCM rejects input that is not a whole number of frames with
// ErrPartialFrame, and any write after Close with ErrWriterClosed.
//
// # Rendering The Mixer
//
// cmd/audmix renders scenes by pairing a Writer with Service:
//
//	req := mixer.Request{Format: eng.Format(), FramesNeeded: 1024, Dst: buf}
//	for pos := uint64(0); pos < total; pos += 1024 {
//	    req.StartFrame = pos
//	    eng.Service(&req)
//	    w.WritePCM(req.Dst)
//	}
package wav
