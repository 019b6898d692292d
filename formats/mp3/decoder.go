// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavhdr/audio"
	"github.com/ik5/wavhdr/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels    = 2
	frameLength = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// ReadSamples returns whole stereo frames only; a partial frame at the very
// end of the stream is dropped.
func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) / channels * frameLength
	if need == 0 {
		return 0, nil
	}

	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.dec, s.buf[:need])
	n -= n % frameLength

	for i := range n / 2 {
		dst[i] = utils.Int16LEToFloat32(s.buf[2*i], s.buf[2*i+1])
	}

	short := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)

	switch {
	case n == 0 && short:
		return 0, io.EOF
	case short:
		return n / 2, nil
	case err != nil:
		return n / 2, fmt.Errorf("%w", err)
	}

	return n / 2, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}

// Sniff accepts an ID3v2 tag or an MPEG audio frame sync at the start.
func (Decoder) Sniff(head []byte) bool {
	if bytes.HasPrefix(head, []byte("ID3")) {
		return true
	}

	return len(head) >= 2 && head[0] == 0xff && head[1]&0xe0 == 0xe0
}
