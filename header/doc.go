// SPDX-License-Identifier: EPL-2.0

// Package header parses and validates the canonical RIFF/WAVE header of PCM
// audio for a constrained playback pipeline.
//
// A Parser owns a fixed 44-byte scratch buffer and the Fields extracted by the
// last parse. It offers two ways in:
//
//   - Buffered: the caller copies the first 44 bytes of a file into Buffer()
//     and calls ParseBuffer. Only the canonical layout is accepted: RIFF,
//     WAVE, a 16-byte "fmt " chunk and the "data" chunk header at offset 36.
//   - Streaming: ParseStream (or ParseFunc for a read callback) pulls bytes on
//     demand, validates the RIFF and "fmt " prefix and then skips any number of
//     chunks until it reaches "data". The reader is left positioned at the
//     first sample byte and Fields.DataPos holds that absolute offset.
//
// # Accepted Format
//
// Only uncompressed PCM, mono, 8 bits per sample, 8000 to 48000 Hz is
// accepted for playback. A header that is well formed but outside that range
// fails with ErrUnsupportedCapability; a header that is not canonical PCM WAVE
// fails with ErrStructuralMismatch.
//
//	p := header.NewParser()
//	if err := p.ParseStream(file); err != nil {
//	    if errors.Is(err, header.ErrUnsupportedCapability) {
//	        // valid WAV, cannot be played
//	    }
//	    return err
//	}
//	f := p.Fields()
//	fmt.Println(f.SampleRate, f.DataPos, f.DataSize)
//
// # Scan Limit
//
// The streaming scanner never trusts declared chunk lengths. It refuses to
// move past a position ceiling (DefaultMaxScan unless WithMaxScan says
// otherwise) and reports ErrScanLimit instead of skipping a bogus chunk.
// A stream that ends before the data chunk fails with ErrIncompleteRead.
//
// # Concurrency
//
// A Parser is not safe for concurrent use. The scratch buffer and field set are
// overwritten by every parse; use one Parser per goroutine.
package header
