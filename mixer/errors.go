// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidParams     = errors.New("invalid instance parameters")
	ErrSlotBusy          = errors.New("slot is playing")
	ErrNoWaveform        = errors.New("slot has no waveform")
	ErrChainSelf         = errors.New("instance cannot chain to itself")
	ErrInvalidVolume     = errors.New("volume level must be a non-negative number")
	ErrUnknownCurve      = errors.New("unknown curve")
	ErrUnknownWaveform   = errors.New("unknown waveform")
	ErrUnknownCategory   = errors.New("unknown category")
)
