// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// Int16At decodes the little-endian 16-bit sample of channel in frame.
func Int16At(buf []byte, frame, channel, channels int) int16 {
	off := (frame*channels + channel) * 2
	return int16(binary.LittleEndian.Uint16(buf[off:]))
}

// Int32At decodes the little-endian 32-bit sample of channel in frame.
func Int32At(buf []byte, frame, channel, channels int) int32 {
	off := (frame*channels + channel) * 4
	return int32(binary.LittleEndian.Uint32(buf[off:]))
}

// AllZero reports whether every byte of buf is zero.
func AllZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}
