// SPDX-License-Identifier: EPL-2.0

package wavhdr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/wavhdr/audio"
	"github.com/ik5/wavhdr/formats/aiff"
	"github.com/ik5/wavhdr/formats/mp3"
	"github.com/ik5/wavhdr/formats/vorbis"
	"github.com/ik5/wavhdr/formats/wav"
	"github.com/ik5/wavhdr/header"
)

// NewRegistry returns a registry with every input format the converter
// understands. MP3 goes last because its frame sync check is the loosest.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.PCMDecoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})

	return reg
}

// Converter turns audio in any registered format into a canonical 8-bit
// mono WAV that the playback path accepts.
type Converter struct {
	// Registry detects and decodes the input; nil means NewRegistry().
	Registry *audio.Registry
	// Rate is the target sample rate, clamped with ClampRate.
	Rate int
	// BufferSize is handed to ToPlayback8.
	BufferSize int
	Log        logrus.FieldLogger
}

// Convert reads all of r and writes the converted WAV to w. The output is
// validated with the header parser before anything is written, and the
// fields it was validated with are returned.
func (c Converter) Convert(r io.Reader, w io.Writer) (header.Fields, error) {
	reg := c.Registry
	if reg == nil {
		reg = NewRegistry()
	}

	log := c.Log
	if log == nil {
		log = header.DiscardLogger()
	}

	src, format, err := reg.Open(r)
	if err != nil {
		return header.Fields{}, fmt.Errorf("%w", err)
	}
	defer src.Close()

	log.WithFields(logrus.Fields{
		"format":   format,
		"rate":     src.SampleRate(),
		"channels": src.Channels(),
	}).Debug("decoding input")

	pcm, rate, err := ToPlayback8(src, c.Rate, c.BufferSize)
	if err != nil {
		return header.Fields{}, fmt.Errorf("converting %s: %w", format, err)
	}

	var out bytes.Buffer
	out.Grow(header.HeaderLen + len(pcm) + 1)

	if err := wav.WriteWAV8(&out, rate, pcm); err != nil {
		return header.Fields{}, err
	}

	p := header.NewParser()
	copy(p.Buffer(), out.Bytes())

	if err := p.ParseBuffer(); err != nil {
		return header.Fields{}, fmt.Errorf("%w: %w", ErrRejectedOutput, err)
	}

	log.WithFields(logrus.Fields{
		"rate":    rate,
		"samples": len(pcm),
	}).Debug("converted")

	if _, err := out.WriteTo(w); err != nil {
		return header.Fields{}, fmt.Errorf("%w", err)
	}

	return p.Fields(), nil
}
