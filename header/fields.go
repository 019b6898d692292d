// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"time"
)

// Fields is the metadata decoded from a WAVE header. It is only meaningful
// after a parse that returned nil.
//
// ChunkSize and DataSize are copied from the file as declared and never
// checked against each other or against the real stream length.
type Fields struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// ChunkSize is the RIFF size, i.e. the file length minus 8.
	ChunkSize uint32
	// DataSize is the declared payload length of the data chunk.
	DataSize uint32
	// DataPos is the absolute offset of the first sample byte.
	DataPos uint32
}

// Duration returns the playing time DataSize describes.
func (f Fields) Duration() time.Duration {
	frame := uint64(f.NumChannels) * uint64((f.BitsPerSample+7)/8)
	if frame == 0 || f.SampleRate == 0 {
		return 0
	}

	frames := uint64(f.DataSize) / frame

	return time.Duration(frames * uint64(time.Second) / uint64(f.SampleRate))
}

func (f Fields) String() string {
	return fmt.Sprintf("format=%d channels=%d rate=%dHz bits=%d data=%d bytes at %d",
		f.AudioFormat, f.NumChannels, f.SampleRate, f.BitsPerSample, f.DataSize, f.DataPos)
}
