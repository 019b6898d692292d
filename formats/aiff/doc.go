// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff so they
// can be converted into 8-bit mono WAV for playback.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // not 8, 16, 24 or 32 bits
//	}
//
// Samples come out as float32 in [-1, 1), interleaved by channel. Inputs
// that are not an io.ReadSeeker are read into memory first, since the
// underlying decoder seeks.
package aiff
