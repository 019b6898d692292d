// SPDX-License-Identifier: EPL-2.0

package header

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ReadFunc fills dst[:n] with the next n bytes of a stream and reports how
// many bytes it transferred. Fewer than n means the stream ended.
type ReadFunc func(dst []byte, n int) int

// Read implements io.Reader on top of the callback.
func (f ReadFunc) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	n := min(max(f(b, len(b)), 0), len(b))
	if n < len(b) {
		return n, io.EOF
	}

	return n, nil
}

// ParseFunc runs ParseStream over a read callback.
func (p *Parser) ParseFunc(read ReadFunc) error {
	return p.ParseStream(read)
}

// ParseStream reads a WAVE header from r, skipping every chunk between "fmt "
// and "data". On success r is positioned at the first sample byte and
// Fields().DataPos is the number of bytes consumed from r.
func (p *Parser) ParseStream(r io.Reader) error {
	if err := p.fill(r, PrefixLen); err != nil {
		return err
	}

	pos := uint64(PrefixLen)

	p.decodePrefix()
	if err := p.checkPrefix(); err != nil {
		return err
	}

	for {
		if pos+chunkHeaderLen > uint64(p.maxScan) {
			return fmt.Errorf("%w: no data chunk within %d bytes", ErrScanLimit, p.maxScan)
		}

		if err := p.fill(r, chunkHeaderLen); err != nil {
			return err
		}
		pos += chunkHeaderLen

		id := p.Uint(0, 4)
		size := p.Uint(4, 4)
		p.fields.DataSize = size

		entry := p.log.WithFields(logrus.Fields{
			"chunk": string(p.buf[:4]),
			"size":  size,
			"pos":   pos - chunkHeaderLen,
		})

		if id == markerData {
			entry.Debug("found data chunk")
			break
		}

		skip := uint64(size)
		if p.padOdd && size%2 == 1 {
			skip++
		}

		if pos+skip > uint64(p.maxScan) {
			return fmt.Errorf("%w: %q chunk of %d bytes at offset %d",
				ErrScanLimit, string(p.buf[:4]), size, pos-chunkHeaderLen)
		}

		entry.Debug("skipping chunk")

		for skip > 0 {
			n := min(skip, HeaderLen)
			if err := p.fill(r, int(n)); err != nil {
				return err
			}
			pos += n
			skip -= n
		}
	}

	p.fields.DataPos = uint32(pos)

	return p.checkCapability()
}

// fill reads exactly n bytes into the start of the scratch buffer.
func (p *Parser) fill(r io.Reader, n int) error {
	if _, err := io.ReadFull(r, p.buf[:n]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %w", ErrIncompleteRead, err)
		}

		return fmt.Errorf("reading WAVE header: %w", err)
	}

	return nil
}
