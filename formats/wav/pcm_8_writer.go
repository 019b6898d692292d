// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Chunk is an extra RIFF chunk written between "fmt " and "data".
type Chunk struct {
	ID   string
	Data []byte
}

// WriteWAV8 writes a mono unsigned 8-bit PCM WAV at sampleRate with the
// canonical 44-byte header.
func WriteWAV8(w io.Writer, sampleRate int, samples []uint8) error {
	return WriteWAV8WithChunks(w, sampleRate, samples)
}

// WriteWAV8WithChunks is WriteWAV8 with extra chunks placed before the data
// chunk. Odd-sized chunks, and odd-sized data, are followed by a zero pad byte
// that their declared size does not count.
func WriteWAV8WithChunks(w io.Writer, sampleRate int, samples []uint8, chunks ...Chunk) error {
	extra := 0
	for _, c := range chunks {
		if len(c.ID) != 4 {
			return fmt.Errorf("%w: %q", ErrInvalidChunkID, c.ID)
		}
		extra += 8 + len(c.Data) + len(c.Data)%2
	}

	dataSize := uint32(len(samples))
	riffSize := 36 + uint32(extra) + dataSize + dataSize%2

	head := make([]byte, 36, 36+extra+8)

	copy(head[0:4], "RIFF")
	binary.LittleEndian.PutUint32(head[4:8], riffSize)
	copy(head[8:12], "WAVE")

	copy(head[12:16], "fmt ")
	binary.LittleEndian.PutUint32(head[16:20], 16)
	binary.LittleEndian.PutUint16(head[20:22], 1)
	binary.LittleEndian.PutUint16(head[22:24], 1)
	binary.LittleEndian.PutUint32(head[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(head[28:32], uint32(sampleRate))
	binary.LittleEndian.PutUint16(head[32:34], 1)
	binary.LittleEndian.PutUint16(head[34:36], 8)

	for _, c := range chunks {
		head = append(head, c.ID...)
		head = binary.LittleEndian.AppendUint32(head, uint32(len(c.Data)))
		head = append(head, c.Data...)
		if len(c.Data)%2 == 1 {
			head = append(head, 0)
		}
	}

	head = append(head, "data"...)
	head = binary.LittleEndian.AppendUint32(head, dataSize)

	if _, err := w.Write(head); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Large payloads go out in slices so a slow writer sees steady progress.
	const chunkSize = 8192
	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		if _, err := w.Write(samples[i:end]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if len(samples)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
