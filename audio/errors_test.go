// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrUnknownFormat, "unknown audio format"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}

	if errors.Is(ErrInvalidDstSize, ErrUnknownFormat) {
		t.Error("errors.Is(ErrInvalidDstSize, ErrUnknownFormat) = true, want false")
	}
}
