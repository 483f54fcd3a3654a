// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrDuplicateName = errors.New("duplicate sound name")
	ErrMissingName   = errors.New("sound has no name")
	ErrUnknownSound  = errors.New("unknown sound")
	ErrSlotTaken     = errors.New("slot assigned twice")
	ErrSlotRange     = errors.New("slot out of range")
	ErrTooManySounds = errors.New("more sounds than engine slots")
	ErrNoSource      = errors.New("sound needs a frequency and duration or a file")
	ErrNoLoader      = errors.New("scene has sampled sounds but no loader")
)
