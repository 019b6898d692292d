// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one RIFF subchunk.
type ChunkInfo struct {
	ID string
	// Size is the payload length rounded up to an even number of bytes.
	Size int
	// Offset is where the chunk's 8-byte header starts in the file.
	Offset int64
}

// riffHeaderLen covers "RIFF", the RIFF size and the form type.
const riffHeaderLen = 12

// ListChunks walks every subchunk of a RIFF/WAVE stream in file order,
// including "data" and anything after it.
func ListChunks(r io.Reader) ([]ChunkInfo, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: RIFF form %q", ErrNotWavFile, string(p.Format[:]))
	}

	var (
		chunks []ChunkInfo
		offset int64 = riffHeaderLen
	)

	for {
		c, err := p.NextChunk()
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("reading chunk at offset %d: %w", offset, err)
		}

		chunks = append(chunks, ChunkInfo{
			ID:     string(c.ID[:]),
			Size:   c.Size,
			Offset: offset,
		})

		// c.R is the whole remaining stream, not just this chunk.
		_, err = io.CopyN(io.Discard, c.R, int64(c.Size))
		if errors.Is(err, io.EOF) {
			// Truncated payload; the stream is exhausted.
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("skipping %q chunk: %w", c.ID[:], err)
		}

		offset += 8 + int64(c.Size)
	}
}
