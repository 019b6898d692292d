// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavhdr/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

func ExampleDecoder_Sniff() {
	fmt.Println(aiff.Decoder{}.Sniff([]byte("FORM\x00\x00\x10\x00AIFFCOMM")))
	fmt.Println(aiff.Decoder{}.Sniff([]byte("RIFF\x00\x00\x10\x00WAVEfmt ")))
	// Output:
	// true
	// false
}
