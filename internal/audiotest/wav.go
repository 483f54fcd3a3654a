// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV builds a canonical 44-byte-header PCM WAV file in memory. samples are
// interleaved and written with bits width; 8-bit samples are stored
// unsigned as the format requires.
func WAV(sampleRate, channels, bits int, samples []int) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * bits / 8
	dataSize := len(samples) * bits / 8

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	for _, s := range samples {
		switch bits {
		case 8:
			buf.WriteByte(byte(s + 128))
		case 16:
			binary.Write(buf, binary.LittleEndian, int16(s))
		case 24:
			buf.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		case 32:
			binary.Write(buf, binary.LittleEndian, int32(s))
		}
	}

	return buf.Bytes()
}
