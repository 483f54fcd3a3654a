// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/pcm"
)

// SampleLoader turns a sample file into a buffer the engine can play.
// *audmix.Loader implements it.
type SampleLoader interface {
	Load(path string) (*pcm.Buffer, error)
}

// Slots maps sound names to the engine slots holding them.
type Slots map[string]int

// assignSlots honours explicit slots and gives every other sound the
// lowest free slot, in scene order.
func (s *Scene) assignSlots() Slots {
	slots := make(Slots, len(s.Sounds))
	used := make(map[int]bool, len(s.Sounds))

	for _, snd := range s.Sounds {
		if snd.Slot != nil {
			slots[snd.Name] = *snd.Slot
			used[*snd.Slot] = true
		}
	}

	free := 0
	for _, snd := range s.Sounds {
		if snd.Slot != nil {
			continue
		}
		for used[free] {
			free++
		}
		slots[snd.Name] = free
		used[free] = true
	}
	return slots
}

func (s *Scene) resolve(path string) string {
	if filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}

// Apply loads every sound into eng, links successors and starts the
// autostart sounds. Sampled sounds are read through loader, which may be
// nil when the scene is purely procedural. On error the slots loaded so
// far are released.
func (s *Scene) Apply(eng *mixer.Engine, loader SampleLoader) (Slots, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := slog.Default().With("component", "scene")
	slots := s.assignSlots()

	var loaded []int
	release := func() {
		for _, slot := range loaded {
			eng.ReleaseInstance(slot)
		}
	}

	for i := range s.Sounds {
		snd := &s.Sounds[i]
		slot := slots[snd.Name]

		p, err := snd.params()
		if err != nil {
			release()
			return nil, fmt.Errorf("sound %q: %w", snd.Name, err)
		}

		if p.Waveform == mixer.WaveSampled {
			if loader == nil {
				release()
				return nil, fmt.Errorf("sound %q: %w", snd.Name, ErrNoLoader)
			}
			path := s.resolve(snd.File)
			buf, err := loader.Load(path)
			if err != nil {
				release()
				return nil, fmt.Errorf("sound %q: %w", snd.Name, err)
			}
			p.Sample = buf
			log.Debug("sample loaded", "sound", snd.Name, "path", path, "frames", buf.Frames())
		}

		if err := eng.PrepareInstance(slot, p); err != nil {
			release()
			return nil, fmt.Errorf("sound %q: %w", snd.Name, err)
		}
		loaded = append(loaded, slot)
	}

	for _, snd := range s.Sounds {
		if snd.Next == "" {
			continue
		}
		if err := eng.Chain(slots[snd.Name], slots[snd.Next]); err != nil {
			release()
			return nil, fmt.Errorf("sound %q: %w", snd.Name, err)
		}
	}

	started := 0
	for _, snd := range s.Sounds {
		if !snd.Autostart {
			continue
		}
		if err := eng.ResumeInstance(slots[snd.Name]); err != nil {
			release()
			return nil, fmt.Errorf("sound %q: %w", snd.Name, err)
		}
		started++
	}

	log.Info("scene applied", "sounds", len(s.Sounds), "autostart", started)

	return slots, nil
}
