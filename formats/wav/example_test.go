// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audmix/formats/wav"
)

// Example_roundTrip writes mixer-style PCM bytes and decodes them back.
func Example_roundTrip() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	original := []int16{-1000, -500, 0, 500, 1000}
	pcm := make([]byte, 2*len(original))
	for i, s := range original {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}

	if err := wav.Encode(f, 8000, 1, 16, pcm); err != nil {
		fmt.Println(err)
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Println(err)
		return
	}

	source, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, len(original))
	n, _ := source.ReadSamples(buf)

	recovered := make([]int16, n)
	for i := range n {
		recovered[i] = int16(buf[i] * 32768.0)
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Sample rate: 8000 Hz
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_errorNotWAV shows handling of invalid input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	}
	// Output: Detected: Not a valid WAV file
}
