// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrUnsupportedDepth = errors.New("unsupported bit depth")
	ErrInvalidChannels  = errors.New("channel count must be positive")
	ErrInvalidRate      = errors.New("sample rate must be positive")
	ErrPartialFrame     = errors.New("sample count must be multiple of channels")
)
