// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	// ErrStructuralMismatch means the input is not a canonical PCM WAVE header:
	// a marker ("RIFF", "WAVE", "fmt ", "data") is wrong, the format chunk is
	// not 16 bytes or the audio format is not PCM.
	ErrStructuralMismatch = errors.New("not a canonical PCM WAVE header")

	// ErrUnsupportedCapability means the header is valid but the audio is not
	// 8-bit mono PCM between 8000 and 48000 Hz.
	ErrUnsupportedCapability = errors.New("unsupported WAVE format")

	// ErrIncompleteRead means the stream ended before the header did.
	ErrIncompleteRead = errors.New("incomplete WAVE header read")

	// ErrScanLimit means the data chunk was not found within the scan ceiling.
	ErrScanLimit = errors.New("WAVE chunk scan limit exceeded")
)
