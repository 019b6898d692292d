// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavhdr/audio"
	"github.com/ik5/wavhdr/internal/audiotest"
)

// Example_processingChain downsamples stereo 44.1 kHz audio to 8 kHz mono.
func Example_processingChain() {
	src := audiotest.NewConstantSource(44100, 2, 44100, 0.25)

	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
	defer mono.Close()

	total := 0
	buf := make([]float32, 1024)
	for {
		n, err := mono.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Printf("%d samples at %d Hz, %d channel\n", total, mono.SampleRate(), mono.Channels())
	// Output: 8000 samples at 8000 Hz, 1 channel
}

type magicDecoder string

func (m magicDecoder) Sniff(head []byte) bool { return bytes.HasPrefix(head, []byte(m)) }

func (m magicDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 8), nil
}

// Example_registry picks a decoder from the leading bytes of a stream.
func Example_registry() {
	reg := audio.NewRegistry()
	reg.Register("ogg", magicDecoder("OggS"))
	reg.Register("wav", magicDecoder("RIFF"))

	_, format, err := reg.Open(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("detected", format)
	// Output: detected wav
}
