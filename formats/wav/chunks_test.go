// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"testing"

	"github.com/ik5/wavhdr/internal/audiotest"
	"github.com/stretchr/testify/require"
)

func TestListChunks(t *testing.T) {
	t.Parallel()

	f := audiotest.PCM8(8000, make([]byte, 100))
	f.Extra = []audiotest.Chunk{
		{ID: "LIST", Data: []byte("INFO")},
		{ID: "junk", Data: []byte{1, 2, 3}},
	}
	f.PadOdd = true

	chunks, err := ListChunks(bytes.NewReader(f.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []ChunkInfo{
		{ID: "fmt ", Size: 16, Offset: 12},
		{ID: "LIST", Size: 4, Offset: 36},
		{ID: "junk", Size: 4, Offset: 48},
		{ID: "data", Size: 100, Offset: 60},
	}, chunks)
}

func TestListChunks_WriterOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteWAV8WithChunks(&buf, 8000, []uint8{1, 2, 3}, Chunk{ID: "cue ", Data: make([]byte, 24)}))

	chunks, err := ListChunks(&buf)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	require.Equal(t, "cue ", chunks[1].ID)
	require.Equal(t, ChunkInfo{ID: "data", Size: 4, Offset: 68}, chunks[2])
}

func TestListChunks_SkipsExactlyEachChunk(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteWAV8WithChunks(&buf, 8000, []uint8{1, 2, 3},
		Chunk{ID: "LIST", Data: []byte("abc")},
		Chunk{ID: "fact", Data: []byte{3, 0, 0, 0}},
	))

	want := []ChunkInfo{
		{ID: "fmt ", Size: 16, Offset: 12},
		{ID: "LIST", Size: 4, Offset: 36},
		{ID: "fact", Size: 4, Offset: 48},
		{ID: "data", Size: 4, Offset: 60},
	}

	chunks, err := ListChunks(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, want, chunks)

	chunks, err = ListChunks(audiotest.OneByteReader{R: bytes.NewReader(buf.Bytes())})
	require.NoError(t, err)
	require.Equal(t, want, chunks)
}

func TestListChunks_TruncatedData(t *testing.T) {
	t.Parallel()

	f := audiotest.PCM8(8000, make([]byte, 10))
	f.DataSize = 1000

	chunks, err := ListChunks(bytes.NewReader(f.Bytes()))
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, 1000, chunks[1].Size)
}

func TestListChunks_NotWAV(t *testing.T) {
	t.Parallel()

	_, err := ListChunks(bytes.NewReader([]byte("RIFF\x04\x00\x00\x00AVI ")))
	require.ErrorIs(t, err, ErrNotWavFile)

	_, err = ListChunks(bytes.NewReader([]byte("MThd")))
	require.ErrorIs(t, err, ErrNotWavFile)
}
