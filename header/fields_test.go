// SPDX-License-Identifier: EPL-2.0

package header

import (
	"testing"
	"time"
)

func TestFields_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields Fields
		want   time.Duration
	}{
		{"one second at 8 kHz", Fields{NumChannels: 1, BitsPerSample: 8, SampleRate: 8000, DataSize: 8000}, time.Second},
		{"half second at 48 kHz", Fields{NumChannels: 1, BitsPerSample: 8, SampleRate: 48000, DataSize: 24000}, 500 * time.Millisecond},
		{"stereo 16-bit", Fields{NumChannels: 2, BitsPerSample: 16, SampleRate: 44100, DataSize: 176400}, time.Second},
		{"no sample rate", Fields{NumChannels: 1, BitsPerSample: 8, DataSize: 100}, 0},
		{"no channels", Fields{BitsPerSample: 8, SampleRate: 8000, DataSize: 100}, 0},
		{"largest data chunk", Fields{NumChannels: 1, BitsPerSample: 8, SampleRate: 8000, DataSize: 0xffffffff}, 536870911875 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fields.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFields_String(t *testing.T) {
	t.Parallel()

	f := Fields{AudioFormat: 1, NumChannels: 1, SampleRate: 8000, BitsPerSample: 8, DataSize: 100, DataPos: 44}

	want := "format=1 channels=1 rate=8000Hz bits=8 data=100 bytes at 44"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
