// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavhdr/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels\n", src.SampleRate(), src.Channels())
}

func ExampleDecoder_Sniff() {
	fmt.Println(mp3.Decoder{}.Sniff([]byte("ID3\x03\x00\x00\x00\x00\x00\x00")))
	fmt.Println(mp3.Decoder{}.Sniff([]byte("OggS\x00\x02")))
	// Output:
	// true
	// false
}
