// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrNoExtension     = errors.New("path has no extension")
	ErrUnsupported     = errors.New("unsupported audio format")
	ErrInvalidChannels = errors.New("unsupported channel layout")
)

// UnsupportedFormatError reports a format key with no registered decoder.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no decoder registered for %q", e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupported }
