// SPDX-License-Identifier: EPL-2.0

package wavhdr

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavhdr/header"
	"github.com/ik5/wavhdr/internal/audiotest"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	withList := audiotest.PCM8(11025, []byte{1, 2})
	withList.Extra = []audiotest.Chunk{{ID: "LIST", Data: make([]byte, 30)}}

	tests := []struct {
		name     string
		file     audiotest.WAVFile
		wantRate uint32
		wantPos  uint32
	}{
		{"canonical", audiotest.PCM8(8000, []byte{1, 2}), 8000, 44},
		{"list chunk", withList, 11025, 82},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bytes.NewReader(tt.file.Bytes())

			f, err := Inspect(r)
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}

			if f.SampleRate != tt.wantRate || f.DataPos != tt.wantPos {
				t.Errorf("Inspect() = %v, want rate %d at %d", f, tt.wantRate, tt.wantPos)
			}

			rest, _ := io.ReadAll(r)
			if !bytes.Equal(rest, []byte{1, 2}) {
				t.Errorf("reader left at %v, want [1 2]", rest)
			}
		})
	}
}

func TestInspect_Rejected(t *testing.T) {
	t.Parallel()

	f := audiotest.PCM8(44100, make([]byte, 4))
	f.BitsPerSample = 16
	f.NumChannels = 2

	got, err := Inspect(bytes.NewReader(f.Bytes()))
	if !errors.Is(err, header.ErrUnsupportedCapability) {
		t.Fatalf("Inspect() error = %v, want %v", err, header.ErrUnsupportedCapability)
	}

	if got.BitsPerSample != 16 || got.NumChannels != 2 || got.SampleRate != 44100 {
		t.Errorf("Inspect() = %v, want the rejected 16-bit stereo format", got)
	}
}

func TestInspect_Options(t *testing.T) {
	t.Parallel()

	f := audiotest.PCM8(8000, nil)
	f.Extra = []audiotest.Chunk{{ID: "junk", Data: make([]byte, 4096)}}

	if _, err := Inspect(bytes.NewReader(f.Bytes()), header.WithMaxScan(1024)); !errors.Is(err, header.ErrScanLimit) {
		t.Errorf("Inspect() error = %v, want %v", err, header.ErrScanLimit)
	}

	if _, err := Inspect(bytes.NewReader(f.Bytes())); err != nil {
		t.Errorf("Inspect() with default ceiling error = %v", err)
	}
}
