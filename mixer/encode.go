// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/audmix/pcm"
)

// putSample writes the clipped sample x as little-endian signed PCM of the
// given width at byte offset off.
func putSample(dst []byte, off, bits int, x float64) {
	switch bits {
	case 16:
		binary.LittleEndian.PutUint16(dst[off:], uint16(pcm.FloatToInt16(x)))
	case 32:
		binary.LittleEndian.PutUint32(dst[off:], uint32(pcm.FloatToInt32(x)))
	default:
		panic(fmt.Sprintf("mixer: encode %d-bit sample", bits))
	}
}

// sampleOffset is the byte offset of channel within frame.
func sampleOffset(frame, channel int, f Format) int {
	bytes := f.BitsPerSample / 8
	return frame*f.Channels*bytes + channel*bytes
}
