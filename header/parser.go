// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Parser decodes WAVE headers into Fields using a fixed scratch buffer.
// The zero value is not usable; create one with NewParser.
type Parser struct {
	buf    [HeaderLen]byte
	fields Fields

	maxScan uint32
	padOdd  bool
	log     logrus.FieldLogger
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxScan: DefaultMaxScan,
		log:     DiscardLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Buffer exposes the 44-byte scratch buffer. Fill it before ParseBuffer.
// Its contents change on every parse.
func (p *Parser) Buffer() []byte { return p.buf[:] }

// Fields returns a copy of the fields decoded by the last parse.
func (p *Parser) Fields() Fields { return p.fields }

// Uint decodes n bytes (1 to 4) of the scratch buffer starting at pos as an
// unsigned little-endian integer.
func (p *Parser) Uint(pos, n int) uint32 {
	return Uint(p.buf[:], pos, n)
}

// Uint decodes b[pos:pos+n] as an unsigned little-endian integer, n being 1 to 4.
func Uint(b []byte, pos, n int) uint32 {
	var v uint32
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[pos+i])
	}

	return v
}

// ParseBuffer validates the canonical 44-byte header already in Buffer().
// DataPos is always HeaderLen; chunks between "fmt " and "data" are not
// supported in this mode.
func (p *Parser) ParseBuffer() error {
	p.decodePrefix()
	p.fields.DataSize = p.Uint(posSubchunk2Size, 4)
	p.fields.DataPos = HeaderLen

	if err := p.checkPrefix(); err != nil {
		return err
	}

	if p.Uint(posSubchunk2ID, 4) != markerData {
		return fmt.Errorf("%w: no %q chunk at offset %d", ErrStructuralMismatch, "data", posSubchunk2ID)
	}

	return p.checkCapability()
}

// decodePrefix fills every field that lives in the RIFF header and the fmt chunk.
func (p *Parser) decodePrefix() {
	p.fields = Fields{
		AudioFormat:   uint16(p.Uint(posAudioFormat, 2)),
		NumChannels:   uint16(p.Uint(posNumChannels, 2)),
		SampleRate:    p.Uint(posSampleRate, 4),
		ByteRate:      p.Uint(posByteRate, 4),
		BlockAlign:    uint16(p.Uint(posBlockAlign, 2)),
		BitsPerSample: uint16(p.Uint(posBitsPerSample, 2)),
		ChunkSize:     p.Uint(posChunkSize, 4),
	}
}

// checkPrefix validates the RIFF header and the fmt chunk, shared by both modes.
func (p *Parser) checkPrefix() error {
	markers := []struct {
		pos  int
		want uint32
		name string
	}{
		{posChunkID, markerRIFF, "RIFF"},
		{posFormat, markerWAVE, "WAVE"},
		{posSubchunk1ID, markerFmt, "fmt "},
	}

	for _, m := range markers {
		if p.Uint(m.pos, 4) != m.want {
			return fmt.Errorf("%w: no %q marker at offset %d", ErrStructuralMismatch, m.name, m.pos)
		}
	}

	if size := p.Uint(posSubchunk1Size, 4); size != PCMFmtChunkSize {
		return fmt.Errorf("%w: fmt chunk is %d bytes", ErrStructuralMismatch, size)
	}

	if p.fields.AudioFormat != FormatPCM {
		return fmt.Errorf("%w: audio format %d", ErrStructuralMismatch, p.fields.AudioFormat)
	}

	return nil
}

// checkCapability validates that the decoded format can be played.
func (p *Parser) checkCapability() error {
	f := p.fields

	switch {
	case f.BitsPerSample != SupportedBits:
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedCapability, f.BitsPerSample)
	case f.NumChannels != SupportedChannel:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedCapability, f.NumChannels)
	case f.SampleRate < MinSampleRate || f.SampleRate > MaxSampleRate:
		return fmt.Errorf("%w: sample rate %d Hz", ErrUnsupportedCapability, f.SampleRate)
	}

	return nil
}
