// SPDX-License-Identifier: EPL-2.0

// Package wavhdr validates RIFF/WAVE headers for a constrained playback path
// and prepares audio that passes them.
//
// The playback path accepts exactly one format: uncompressed PCM, mono,
// 8 bits per sample, 8000 to 48000 Hz. The header package does the parsing,
// either over a buffered 44-byte canonical header or over a stream that may
// carry any number of chunks between "fmt " and "data":
//
//	fields, err := wavhdr.Inspect(file)
//	switch {
//	case errors.Is(err, header.ErrStructuralMismatch):
//	    // not a canonical PCM WAVE file
//	case errors.Is(err, header.ErrUnsupportedCapability):
//	    // valid, but fields describe a format that cannot be played
//	}
//
// Everything else prepares input for that path. ToPlayback8 runs any
// audio.Source through a resampler and a mono mixer and quantizes the result
// to unsigned 8 bits; Converter does the same from WAV, AIFF, MP3 or Ogg
// Vorbis bytes and writes a canonical WAV:
//
//	c := wavhdr.Converter{Rate: 16000}
//	fields, err := c.Convert(in, out)
//
// # Packages
//
//   - header: the parser, its options and error kinds
//   - audio: Source, Registry, Resampler and MonoMixer
//   - formats/wav: playback decoder, PCM decoder, writer, chunk lister
//   - formats/aiff, formats/mp3, formats/vorbis: converter inputs
//   - cmd/wavhdr: command line front end
package wavhdr
