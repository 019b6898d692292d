// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavhdr/audio"
	"github.com/ik5/wavhdr/header"
	"github.com/ik5/wavhdr/utils"
)

// Source streams the samples of a validated 8-bit mono WAV. It is both an
// audio.Source and an io.Reader over the raw unsigned bytes, and never reads
// past the declared data size.
type Source struct {
	r   io.Reader
	hdr header.Fields
	buf []byte
}

func (s *Source) SampleRate() int { return int(s.hdr.SampleRate) }
func (s *Source) Channels() int   { return int(s.hdr.NumChannels) }
func (s *Source) Close() error    { return nil }

// Header returns the fields the stream was validated with.
func (s *Source) Header() header.Fields { return s.hdr }

// Read copies raw unsigned 8-bit samples into p.
func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf) < len(dst) {
		s.buf = make([]byte, len(dst))
	}

	n, err := io.ReadFull(s.r, s.buf[:len(dst)])
	for i, b := range s.buf[:n] {
		dst[i] = utils.Uint8ToFloat32(b)
	}

	short := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)

	switch {
	case n == 0 && short:
		return 0, io.EOF
	case short:
		return n, nil
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// Decoder opens WAV files for 8-bit mono playback. Options are handed to
// the header parser. Odd-sized chunks are assumed to carry a RIFF pad byte
// unless ExactChunkSizes is set.
type Decoder struct {
	Options         []header.Option
	ExactChunkSizes bool
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return d.Open(r)
}

// Open validates the header of r in streaming mode, skipping any chunks
// between "fmt " and "data", and returns a Source positioned on the first
// sample.
func (d Decoder) Open(r io.Reader) (*Source, error) {
	opts := d.Options
	if !d.ExactChunkSizes {
		opts = append([]header.Option{header.WithPadOddChunks()}, opts...)
	}

	p := header.NewParser(opts...)

	if err := p.ParseStream(r); err != nil {
		switch {
		case errors.Is(err, header.ErrStructuralMismatch):
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		case errors.Is(err, header.ErrUnsupportedCapability):
			return nil, fmt.Errorf("%w: %w", ErrOnlyPCM8bitMonoSupported, err)
		case errors.Is(err, header.ErrScanLimit):
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
		}

		return nil, err
	}

	hdr := p.Fields()

	return &Source{
		r:   io.LimitReader(r, int64(hdr.DataSize)),
		hdr: hdr,
	}, nil
}

func (Decoder) Sniff(head []byte) bool {
	return sniff(head)
}

func sniff(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WAVE"))
}
