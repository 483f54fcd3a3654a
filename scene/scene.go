// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audmix/mixer"
)

// Scene is a YAML description of an engine and the sounds loaded into it.
type Scene struct {
	Format   Format  `yaml:"format"`
	Volumes  Volumes `yaml:"volumes"`
	RingSize *int    `yaml:"ring_size"`
	Sounds   []Sound `yaml:"sounds"`

	// Dir resolves relative sample paths. LoadFile sets it to the
	// directory of the scene file.
	Dir string `yaml:"-"`
}

// Format overrides the engine output format. Zero fields keep the default.
type Format struct {
	SampleRate int `yaml:"sample_rate"`
	Bits       int `yaml:"bits"`
	Channels   int `yaml:"channels"`
}

// Volumes overrides the initial global levels. Missing keys keep the
// defaults.
type Volumes struct {
	Master         *float64 `yaml:"master"`
	Music          *float64 `yaml:"music"`
	Effects        *float64 `yaml:"effects"`
	MusicEnabled   *bool    `yaml:"music_enabled"`
	EffectsEnabled *bool    `yaml:"effects_enabled"`
}

// Envelope is one attack or falloff phase. A phase with a time but no
// curve is linear.
type Envelope struct {
	Time  time.Duration `yaml:"time"`
	Curve string        `yaml:"curve"`
}

type Sound struct {
	Name string `yaml:"name"`
	// Wave is sine, square, saw or sample. It defaults to sample when File
	// is set.
	Wave      string        `yaml:"wave"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	File      string        `yaml:"file"`
	// Volume defaults to 1.
	Volume    *float64 `yaml:"volume"`
	Category  string   `yaml:"category"`
	Repeat    bool     `yaml:"repeat"`
	Loops     int      `yaml:"loops"`
	Attack    Envelope `yaml:"attack"`
	Falloff   Envelope `yaml:"falloff"`
	Align     int      `yaml:"align"`
	Next      string   `yaml:"next"`
	Autostart bool     `yaml:"autostart"`
	Slot      *int     `yaml:"slot"`
}

// Load parses a scene. Unknown keys are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// LoadFile reads and parses the scene at path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Config builds the engine configuration the scene asks for.
func (s *Scene) Config() mixer.Config {
	cfg := mixer.DefaultConfig()

	if s.Format.SampleRate != 0 {
		cfg.Format.SampleRate = s.Format.SampleRate
	}
	if s.Format.Bits != 0 {
		cfg.Format.BitsPerSample = s.Format.Bits
	}
	if s.Format.Channels != 0 {
		cfg.Format.Channels = s.Format.Channels
	}
	if s.RingSize != nil {
		cfg.RingSize = *s.RingSize
	}

	v := &cfg.Volumes
	setIf(&v.Master, s.Volumes.Master)
	setIf(&v.Music, s.Volumes.Music)
	setIf(&v.Effects, s.Volumes.Effects)
	setIf(&v.MusicEnabled, s.Volumes.MusicEnabled)
	setIf(&v.EffectsEnabled, s.Volumes.EffectsEnabled)

	return cfg
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (snd *Sound) waveform() (mixer.Waveform, error) {
	if strings.TrimSpace(snd.Wave) == "" && snd.File != "" {
		return mixer.WaveSampled, nil
	}
	return mixer.ParseWaveform(snd.Wave)
}

func envelopeCurve(e Envelope) (mixer.Curve, error) {
	if e.Time > 0 && strings.TrimSpace(e.Curve) == "" {
		return mixer.CurveLinear, nil
	}
	return mixer.ParseCurve(e.Curve)
}

// params converts snd to engine parameters. The sample is filled in by
// the caller for sampled sounds.
func (snd *Sound) params() (mixer.Params, error) {
	wave, err := snd.waveform()
	if err != nil {
		return mixer.Params{}, err
	}
	category, err := mixer.ParseCategory(snd.Category)
	if err != nil {
		return mixer.Params{}, err
	}
	attack, err := envelopeCurve(snd.Attack)
	if err != nil {
		return mixer.Params{}, fmt.Errorf("attack: %w", err)
	}
	falloff, err := envelopeCurve(snd.Falloff)
	if err != nil {
		return mixer.Params{}, fmt.Errorf("falloff: %w", err)
	}

	volume := 1.0
	if snd.Volume != nil {
		volume = *snd.Volume
	}

	return mixer.Params{
		Name:         snd.Name,
		Waveform:     wave,
		Frequency:    snd.Frequency,
		Duration:     snd.Duration,
		Volume:       volume,
		Category:     category,
		Repeat:       snd.Repeat,
		Loops:        snd.Loops,
		Attack:       snd.Attack.Time,
		AttackCurve:  attack,
		Falloff:      snd.Falloff.Time,
		FalloffCurve: falloff,
		Align:        snd.Align,
	}, nil
}

// Validate checks the scene without touching any file. Every problem is
// reported, joined into one error.
func (s *Scene) Validate() error {
	var errs []error

	if err := s.Config().Format.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if len(s.Sounds) > mixer.MaxInstances {
		errs = append(errs, fmt.Errorf("%d sounds: %w", len(s.Sounds), ErrTooManySounds))
	}

	names := make(map[string]bool, len(s.Sounds))
	slots := make(map[int]string)

	for i := range s.Sounds {
		snd := &s.Sounds[i]
		label := fmt.Sprintf("sound %d", i)
		if snd.Name != "" {
			label = fmt.Sprintf("sound %q", snd.Name)
		}

		switch {
		case snd.Name == "":
			errs = append(errs, fmt.Errorf("%s: %w", label, ErrMissingName))
		case names[snd.Name]:
			errs = append(errs, fmt.Errorf("%s: %w", label, ErrDuplicateName))
		default:
			names[snd.Name] = true
		}

		p, err := snd.params()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
			continue
		}

		if p.Waveform == mixer.WaveSampled {
			if snd.File == "" {
				errs = append(errs, fmt.Errorf("%s: %w", label, ErrNoSource))
			}
		} else if snd.Frequency <= 0 || snd.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s: %w", label, ErrNoSource))
		}

		if p.Volume < 0 || p.Loops < 0 || p.Align < 0 || p.Attack < 0 || p.Falloff < 0 {
			errs = append(errs, fmt.Errorf("%s: negative value: %w", label, mixer.ErrInvalidParams))
		}

		if snd.Slot != nil {
			slot := *snd.Slot
			if slot < 0 || slot >= mixer.MaxInstances {
				errs = append(errs, fmt.Errorf("%s: slot %d: %w", label, slot, ErrSlotRange))
			} else if other, ok := slots[slot]; ok {
				errs = append(errs, fmt.Errorf("%s: slot %d also used by %q: %w", label, slot, other, ErrSlotTaken))
			} else {
				slots[slot] = snd.Name
			}
		}
	}

	for _, snd := range s.Sounds {
		if snd.Next == "" {
			continue
		}
		if snd.Next == snd.Name {
			errs = append(errs, fmt.Errorf("sound %q: %w", snd.Name, mixer.ErrChainSelf))
		} else if !names[snd.Next] {
			errs = append(errs, fmt.Errorf("sound %q: next %q: %w", snd.Name, snd.Next, ErrUnknownSound))
		}
	}

	return errors.Join(errs...)
}
