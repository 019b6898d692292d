// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoder is the playback path: it validates the header with the
// [header.Parser] in streaming mode, so LIST, fact or any other chunks
// between "fmt " and "data" are skipped, and returns a [Source] of unsigned
// 8-bit mono samples that stops at the declared data size. Odd-sized chunks
// are expected to be followed by a RIFF pad byte, as WriteWAV8WithChunks
// writes them; set ExactChunkSizes for files that omit it.
//
//	src, err := wav.Decoder{}.Open(file)
//	if errors.Is(err, wav.ErrOnlyPCM8bitMonoSupported) {
//	    // valid WAV, wrong format for playback
//	}
//	io.Copy(dac, src)
//
// PCMDecoder handles any uncompressed WAV (8 to 32 bits, any channel count)
// through github.com/go-audio/wav and is what the converter reads from.
//
// WriteWAV8 writes the canonical 44-byte header followed by the samples;
// WriteWAV8WithChunks inserts extra chunks before the data.
//
// ListChunks reports every RIFF subchunk with its offset, which helps to
// see why a file is rejected.
package wav
