// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels, since go-mp3 duplicates mono
// streams, and yields float32 samples in [-1, 1). Feed the source to the
// converter to get 8-bit mono playback data:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	pcm, rate, err := wavhdr.ToPlayback8(src, 8000, 4096)
package mp3
