// SPDX-License-Identifier: EPL-2.0

package wavhdr

import "errors"

var (
	// ErrInvalidSource indicates a source without a positive sample rate or channel count.
	ErrInvalidSource = errors.New("source has no usable sample rate or channel count")

	// ErrRejectedOutput indicates converted audio that the header parser would not accept.
	ErrRejectedOutput = errors.New("converted audio rejected by header parser")
)
