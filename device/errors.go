// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrUnsupportedDeviceFormat is returned for engine formats the output
	// cannot play. oto has no 32-bit integer sample format.
	ErrUnsupportedDeviceFormat = errors.New("engine format not supported by the audio device")

	ErrClosed = errors.New("player closed")
)
