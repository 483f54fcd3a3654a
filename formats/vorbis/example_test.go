// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/vorbis"
)

// Example registers the Vorbis decoder and resolves it from a file name.
func Example() {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})

	dec, err := reg.Lookup("music/theme.ogg")
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open("testdata/theme.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d Hz x %d channels\n", src.SampleRate(), src.Channels())
}
