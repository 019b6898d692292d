// SPDX-License-Identifier: EPL-2.0

package header

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxScan is the default ceiling on the offset the streaming parser
// may reach while looking for the data chunk.
const DefaultMaxScan = 1 << 20

// Option configures a Parser.
type Option func(*Parser)

// WithMaxScan sets the highest stream offset the data chunk's sample bytes may
// start at. Values below HeaderLen are raised to HeaderLen.
func WithMaxScan(n uint32) Option {
	return func(p *Parser) {
		p.maxScan = max(n, HeaderLen)
	}
}

// WithPadOddChunks makes the streaming parser skip the RIFF pad byte that
// follows a chunk with an odd declared length.
func WithPadOddChunks() Option {
	return func(p *Parser) {
		p.padOdd = true
	}
}

// WithLogger sets where chunk scanning is traced at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// DiscardLogger returns a logger that drops every entry.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
