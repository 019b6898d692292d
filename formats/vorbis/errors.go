// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream indicates a Vorbis stream whose headers decode to an unusable format.
var ErrInvalidStream = errors.New("invalid Vorbis stream")
