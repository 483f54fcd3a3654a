// SPDX-License-Identifier: EPL-2.0

// Package scene describes a mixer setup in YAML: the output format, the
// initial volumes and a list of named sounds.
//
//	format:
//	  sample_rate: 44100
//	  bits: 16
//	  channels: 2
//	volumes:
//	  master: 0.8
//	  music: 0.6
//	sounds:
//	  - name: intro
//	    wave: sine
//	    frequency: 220
//	    duration: 2s
//	    attack: {time: 500ms, curve: in-quad}
//	    falloff: {time: 1s, curve: out-cubic}
//	    category: music
//	    next: loop
//	    autostart: true
//	  - name: loop
//	    file: music/loop.ogg
//	    category: music
//	    repeat: true
//	    align: 44100
//
// Durations use Go syntax ("250ms", "2s"). Sounds without an explicit
// slot take the lowest free one. Apply prepares every sound in the engine,
// links each sound to its next one and starts the autostart sounds.
package scene
