// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// Chunk is a RIFF chunk placed between the "fmt " and "data" chunks.
type Chunk struct {
	ID   string
	Data []byte
}

// WAVFile describes a WAVE file to assemble byte by byte, including layouts a
// well behaved encoder would never produce.
type WAVFile struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16

	// FmtSize is the declared "fmt " chunk size; 0 means 16. Bytes past the
	// first 16 are written as zeros.
	FmtSize uint32

	// Extra chunks go between "fmt " and "data".
	Extra []Chunk
	// PadOdd writes a zero pad byte after odd-sized extra chunks.
	PadOdd bool

	// DataSize overrides the declared data size when non-zero.
	DataSize uint32
	Payload  []byte
}

// PCM8 describes a mono 8-bit PCM file, the only layout the header parser
// accepts for playback.
func PCM8(sampleRate uint32, payload []byte) WAVFile {
	return WAVFile{
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    sampleRate,
		BitsPerSample: 8,
		Payload:       payload,
	}
}

// HeaderLen returns the offset of the first payload byte in Bytes().
func (w WAVFile) HeaderLen() int {
	n := 12 + 8 + int(w.fmtSize())
	for _, c := range w.Extra {
		n += 8 + w.paddedLen(c)
	}

	return n + 8
}

// Bytes assembles the file.
func (w WAVFile) Bytes() []byte {
	fmtSize := w.fmtSize()
	blockAlign := w.NumChannels * ((w.BitsPerSample + 7) / 8)
	byteRate := w.SampleRate * uint32(blockAlign)

	dataSize := w.DataSize
	if dataSize == 0 {
		dataSize = uint32(len(w.Payload))
	}

	buf := make([]byte, 0, w.HeaderLen()+len(w.Payload))

	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(w.HeaderLen()-8+len(w.Payload)))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, fmtSize)
	buf = binary.LittleEndian.AppendUint16(buf, w.AudioFormat)
	buf = binary.LittleEndian.AppendUint16(buf, w.NumChannels)
	buf = binary.LittleEndian.AppendUint32(buf, w.SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, byteRate)
	buf = binary.LittleEndian.AppendUint16(buf, blockAlign)
	buf = binary.LittleEndian.AppendUint16(buf, w.BitsPerSample)
	buf = append(buf, make([]byte, fmtSize-16)...)

	for _, c := range w.Extra {
		buf = append(buf, c.ID...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Data)))
		buf = append(buf, c.Data...)
		buf = append(buf, make([]byte, w.paddedLen(c)-len(c.Data))...)
	}

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, dataSize)

	return append(buf, w.Payload...)
}

func (w WAVFile) fmtSize() uint32 {
	if w.FmtSize < 16 {
		return 16
	}

	return w.FmtSize
}

func (w WAVFile) paddedLen(c Chunk) int {
	if w.PadOdd && len(c.Data)%2 == 1 {
		return len(c.Data) + 1
	}

	return len(c.Data)
}
