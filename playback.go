// SPDX-License-Identifier: EPL-2.0

package wavhdr

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavhdr/audio"
	"github.com/ik5/wavhdr/header"
	"github.com/ik5/wavhdr/utils"
)

// DefaultBufferSize is the read size ToPlayback8 uses when given none.
const DefaultBufferSize = 4096

// ClampRate limits rate to the range the header parser accepts for playback.
func ClampRate(rate int) int {
	return min(max(rate, header.MinSampleRate), header.MaxSampleRate)
}

// ToPlayback8 resamples src to targetRate, averages it down to mono and
// quantizes it to unsigned 8-bit PCM, the only format the playback path
// accepts. targetRate is clamped with ClampRate and the rate actually used
// is returned. src is drained but not closed.
//
// For finer control build the pipeline with audio.NewResampler and
// audio.NewMonoMixer directly.
func ToPlayback8(src audio.Source, targetRate, bufferSize int) ([]uint8, int, error) {
	rate := ClampRate(targetRate)

	if src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, rate, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidSource, src.SampleRate(), src.Channels())
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, rate))

	// Room for about a second; append grows it from there.
	pcm := make([]uint8, 0, rate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, utils.Float32ToUint8(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm, rate, nil
}
