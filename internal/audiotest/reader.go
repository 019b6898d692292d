// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// CountingReader counts the bytes read through it.
type CountingReader struct {
	R io.Reader
	N int64
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)

	return n, err
}

// OneByteReader returns at most one byte per Read, like a slow device.
type OneByteReader struct {
	R io.Reader
}

func (o OneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	return o.R.Read(p[:1])
}

// ErrReader fails every Read with Err.
type ErrReader struct {
	Err error
}

func (e ErrReader) Read([]byte) (int, error) { return 0, e.Err }
