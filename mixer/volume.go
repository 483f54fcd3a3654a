// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
	"sync"
)

// VolumeKind selects one of the global levels.
type VolumeKind int

const (
	VolumeMaster VolumeKind = iota
	VolumeMusic
	VolumeEffects
)

func (k VolumeKind) String() string {
	switch k {
	case VolumeMaster:
		return "master"
	case VolumeMusic:
		return "music"
	case VolumeEffects:
		return "effects"
	}
	return fmt.Sprintf("VolumeKind(%d)", int(k))
}

// Volumes is the set of global levels applied on top of every instance.
type Volumes struct {
	Master  float64
	Music   float64
	Effects float64

	MusicEnabled   bool
	EffectsEnabled bool
}

// DefaultVolumes has every level at 1 and both categories enabled.
func DefaultVolumes() Volumes {
	return Volumes{
		Master:         1,
		Music:          1,
		Effects:        1,
		MusicEnabled:   true,
		EffectsEnabled: true,
	}
}

func (v Volumes) validate() error {
	for _, l := range [...]float64{v.Master, v.Music, v.Effects} {
		if err := checkLevel(l); err != nil {
			return err
		}
	}
	return nil
}

func checkLevel(l float64) error {
	if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fmt.Errorf("%v: %w", l, ErrInvalidVolume)
	}
	return nil
}

// category resolves the group level for c; a disabled group is silent.
func (v Volumes) category(c Category) float64 {
	if c == Music {
		if !v.MusicEnabled {
			return 0
		}
		return v.Music
	}
	if !v.EffectsEnabled {
		return 0
	}
	return v.Effects
}

// volumeSettings is read once per mixing pass, so the audio goroutine holds
// its lock only for the copy.
type volumeSettings struct {
	mu sync.RWMutex
	v  Volumes
}

func (s *volumeSettings) snapshot() Volumes {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v
}

func (s *volumeSettings) set(k VolumeKind, level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch k {
	case VolumeMaster:
		s.v.Master = level
	case VolumeMusic:
		s.v.Music = level
	case VolumeEffects:
		s.v.Effects = level
	}
}

func (s *volumeSettings) enable(c Category, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == Music {
		s.v.MusicEnabled = on
	} else {
		s.v.EffectsEnabled = on
	}
}
