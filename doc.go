// SPDX-License-Identifier: EPL-2.0

// Package audmix is a real-time audio mixing engine for games and
// interactive tools.
//
// The engine itself lives in the mixer subpackage: a fixed pool of sound
// instances (procedural sine, square and saw tones, or sampled PCM) that
// are summed with per-instance envelopes, category volumes and a master
// volume into interleaved 16 or 32 bit PCM whenever an output asks for
// more frames.
//
// This package connects decoded audio files to the mixer:
//
//	eng, _ := mixer.NewEngine(mixer.DefaultConfig())
//
//	loader := audmix.NewLoader(audmix.OptionsFor(eng.Format()))
//	boom, err := loader.Load("sounds/boom.wav")
//	if err != nil {
//	    return err
//	}
//
//	slot, _ := eng.Play(mixer.Params{
//	    Waveform: mixer.WaveSampled,
//	    Sample:   boom,
//	    Volume:   0.8,
//	    Category: mixer.Effect,
//	})
//
// LoadSample runs any audio.Source through a Resampler, a Downmixer and
// pcm.Quantize so the buffer matches the engine rate. DefaultRegistry maps
// the wav, aiff, mp3 and ogg extensions to their decoders.
//
// # Subpackages
//
//   - mixer: instance pool, envelopes, volumes, Service and Stream
//   - pcm: integer sample buffers and conversions
//   - audio: Source pipeline, resampling and the decoder registry
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//   - scene: YAML descriptions of engine setups
//   - device: speaker output through oto
//   - cmd/audmix: command line player and renderer
package audmix
