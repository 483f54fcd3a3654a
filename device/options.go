// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"time"

	"github.com/ik5/audmix/mixer"
)

// DefaultBufferSize is the device latency used when Options leaves it zero.
const DefaultBufferSize = 40 * time.Millisecond

// Options tune the output device.
type Options struct {
	// BufferSize is the device buffer length. Zero uses DefaultBufferSize.
	BufferSize time.Duration
}

func (o Options) bufferSize() time.Duration {
	if o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// checkFormat accepts the layouts both backends can play.
func checkFormat(f mixer.Format) error {
	if f.BitsPerSample != 16 {
		return fmt.Errorf("%s: %w", f, ErrUnsupportedDeviceFormat)
	}
	return nil
}
