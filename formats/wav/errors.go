// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile               = errors.New("not a WAV file")
	ErrUnsupportedWavLayout     = errors.New("unsupported WAV layout")
	ErrOnlyPCM8bitMonoSupported = errors.New("only PCM 8-bit mono supported")
	ErrUnsupportedWavChunks     = errors.New("unsupported WAV chunks")
	ErrInvalidChunkID           = errors.New("chunk ID must be 4 bytes")
)
