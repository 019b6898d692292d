// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavhdr/utils"
)

const (
	// resamplerBlock is how many frames are pulled from the source at once.
	resamplerBlock = 1024
	// maxEmptyReads bounds consecutive (0, nil) reads from a source.
	maxEmptyReads = 100
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and keeps the channel count.
// When downsampling, input frames go through a one-pole low-pass filter first.
type Resampler struct {
	src      Source
	srcRate  int64
	rate     int64
	channels int

	// frames holds source frames starting at absolute frame index base.
	frames []float32
	base   int
	in     []float32
	eof    bool

	// out counts the frames produced; output frame k sits at source
	// position k*srcRate/rate.
	out int64

	alpha  float32
	filter []float32
	primed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		rate:     int64(dstRate),
		channels: channels,
		in:       make([]float32, resamplerBlock*channels),
		filter:   make([]float32, channels),
	}

	if r.srcRate > r.rate {
		r.alpha = float32(r.rate) / float32(r.srcRate)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.rate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		pos := r.out * r.srcRate
		i := int(pos / r.rate)

		for !r.eof && r.base+r.count() <= i+2 {
			if err := r.pull(); err != nil {
				return n, err
			}
		}

		if i >= r.base+r.count() {
			return n, io.EOF
		}

		x := float32(pos%r.rate) / float32(r.rate)
		for c := range r.channels {
			dst[n+c] = utils.CubicInterpolate(r.at(i-1, c), r.at(i, c), r.at(i+1, c), r.at(i+2, c), x)
		}

		n += r.channels
		r.out++
		r.compact(int(r.out*r.srcRate/r.rate) - 1)
	}

	return n, nil
}

func (r *Resampler) count() int { return len(r.frames) / r.channels }

// at returns channel c of an absolute frame, clamped to the buffered frames.
func (r *Resampler) at(frame, c int) float32 {
	frame = min(max(frame, r.base), r.base+r.count()-1)
	return r.frames[(frame-r.base)*r.channels+c]
}

// pull appends the next block of whole source frames.
func (r *Resampler) pull() error {
	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.in)
		n -= n % r.channels

		r.smooth(r.in[:n])
		r.frames = append(r.frames, r.in[:n]...)

		if errors.Is(err, io.EOF) {
			r.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n > 0 {
			return nil
		}
	}

	return io.ErrNoProgress
}

// smooth low-passes samples in place when downsampling.
func (r *Resampler) smooth(samples []float32) {
	if r.alpha == 0 || len(samples) == 0 {
		return
	}

	if !r.primed {
		copy(r.filter, samples[:r.channels])
		r.primed = true
	}

	for i, v := range samples {
		c := i % r.channels
		r.filter[c] += r.alpha * (v - r.filter[c])
		samples[i] = r.filter[c]
	}
}

// compact drops buffered frames before keep once enough have piled up.
// The newest buffered frame is always kept.
func (r *Resampler) compact(keep int) {
	keep = min(keep, r.base+r.count()-1)
	drop := keep - r.base
	if drop < resamplerBlock {
		return
	}

	n := copy(r.frames, r.frames[drop*r.channels:])
	r.frames = r.frames[:n]
	r.base = keep
}
