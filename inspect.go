// SPDX-License-Identifier: EPL-2.0

package wavhdr

import (
	"io"

	"github.com/ik5/wavhdr/header"
)

// Inspect parses the WAVE header at the start of r in streaming mode and
// leaves r on the first sample byte.
//
// When the error is header.ErrUnsupportedCapability the returned fields
// still describe the rejected format; after any other error they are
// unspecified.
func Inspect(r io.Reader, opts ...header.Option) (header.Fields, error) {
	p := header.NewParser(opts...)
	err := p.ParseStream(r)

	return p.Fields(), err
}
