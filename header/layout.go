// SPDX-License-Identifier: EPL-2.0

package header

import "encoding/binary"

const (
	// HeaderLen is the size of the canonical header and of the scratch buffer.
	HeaderLen = 44

	// PrefixLen is the size of the RIFF header plus a 16-byte "fmt " chunk,
	// i.e. everything the streaming parser reads before scanning chunks.
	PrefixLen = 36

	chunkHeaderLen = 8
)

// Byte offsets of the canonical header fields.
const (
	posChunkID       = 0
	posChunkSize     = 4
	posFormat        = 8
	posSubchunk1ID   = 12
	posSubchunk1Size = 16
	posAudioFormat   = 20
	posNumChannels   = 22
	posSampleRate    = 24
	posByteRate      = 28
	posBlockAlign    = 32
	posBitsPerSample = 34
	posSubchunk2ID   = 36
	posSubchunk2Size = 40
)

// Accepted playback format.
const (
	FormatPCM        = 1
	PCMFmtChunkSize  = 16
	SupportedBits    = 8
	SupportedChannel = 1
	MinSampleRate    = 8000
	MaxSampleRate    = 48000
)

var (
	markerRIFF = fourCC("RIFF")
	markerWAVE = fourCC("WAVE")
	markerFmt  = fourCC("fmt ")
	markerData = fourCC("data")
)

// fourCC returns the little-endian value a four character code decodes to.
func fourCC(id string) uint32 {
	return binary.LittleEndian.Uint32([]byte(id))
}
