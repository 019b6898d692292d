// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/wavhdr/header"
)

type failWriter struct {
	after int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--

	return len(p), nil
}

func TestWriteWAV8_Canonical(t *testing.T) {
	t.Parallel()

	samples := []uint8{0x80, 0x81, 0x7f, 0x00}

	var buf bytes.Buffer
	if err := WriteWAV8(&buf, 11025, samples); err != nil {
		t.Fatalf("WriteWAV8() error = %v", err)
	}

	if buf.Len() != header.HeaderLen+len(samples) {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), header.HeaderLen+len(samples))
	}

	p := header.NewParser()
	copy(p.Buffer(), buf.Bytes())

	if err := p.ParseBuffer(); err != nil {
		t.Fatalf("ParseBuffer() error = %v", err)
	}

	want := header.Fields{
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    11025,
		ByteRate:      11025,
		BlockAlign:    1,
		BitsPerSample: 8,
		ChunkSize:     40,
		DataSize:      4,
		DataPos:       44,
	}
	if got := p.Fields(); got != want {
		t.Errorf("Fields() = %+v, want %+v", got, want)
	}

	if !bytes.Equal(buf.Bytes()[header.HeaderLen:], samples) {
		t.Errorf("payload = %x, want %x", buf.Bytes()[header.HeaderLen:], samples)
	}
}

func TestWriteWAV8_OddPayloadIsPadded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV8(&buf, 8000, []uint8{1, 2, 3}); err != nil {
		t.Fatalf("WriteWAV8() error = %v", err)
	}

	if buf.Len() != 48 {
		t.Errorf("wrote %d bytes, want 48", buf.Len())
	}

	if got := header.Uint(buf.Bytes(), 40, 4); got != 3 {
		t.Errorf("data size = %d, want 3", got)
	}
}

func TestWriteWAV8WithChunks_StreamRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chunks  []Chunk
		opts    []header.Option
		wantPos uint32
	}{
		{"none", nil, nil, 44},
		{"list", []Chunk{{ID: "LIST", Data: make([]byte, 26)}}, nil, 78},
		{"two", []Chunk{{ID: "fact", Data: make([]byte, 4)}, {ID: "cue ", Data: make([]byte, 24)}}, nil, 88},
		{"odd", []Chunk{{ID: "junk", Data: []byte{9}}}, []header.Option{header.WithPadOddChunks()}, 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteWAV8WithChunks(&buf, 8000, []uint8{5, 6}, tt.chunks...); err != nil {
				t.Fatalf("WriteWAV8WithChunks() error = %v", err)
			}

			p := header.NewParser(tt.opts...)
			if err := p.ParseStream(&buf); err != nil {
				t.Fatalf("ParseStream() error = %v", err)
			}

			if got := p.Fields().DataPos; got != tt.wantPos {
				t.Errorf("DataPos = %d, want %d", got, tt.wantPos)
			}

			if rest := buf.Bytes(); !bytes.Equal(rest, []byte{5, 6}) {
				t.Errorf("remaining = %v, want [5 6]", rest)
			}
		})
	}
}

func TestWriteWAV8WithChunks_InvalidID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := WriteWAV8WithChunks(&buf, 8000, nil, Chunk{ID: "LISTX"})
	if !errors.Is(err, ErrInvalidChunkID) {
		t.Errorf("WriteWAV8WithChunks() error = %v, want %v", err, ErrInvalidChunkID)
	}

	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes before failing, want 0", buf.Len())
	}
}

func TestWriteWAV8_WriterErrors(t *testing.T) {
	t.Parallel()

	samples := make([]uint8, 20000)

	for after := range 4 {
		if err := WriteWAV8(&failWriter{after: after}, 8000, samples); err == nil {
			t.Errorf("WriteWAV8() with writer failing after %d writes: error = nil", after)
		}
	}
}

func BenchmarkWriteWAV8(b *testing.B) {
	samples := make([]uint8, 8000)

	var buf bytes.Buffer
	for b.Loop() {
		buf.Reset()
		if err := WriteWAV8(&buf, 8000, samples); err != nil {
			b.Fatal(err)
		}
	}
}
