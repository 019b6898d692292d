// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample pipeline used to turn arbitrary input
// into audio the 8-bit mono WAV player accepts.
//
// # Source Interface
//
// Every decoder and processor is a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. A read that returns
// io.EOF may still carry samples; n == 0 with io.EOF ends the stream.
//
// # Resampling
//
// Resampler converts the sample rate with Catmull-Rom cubic interpolation.
// Positions are kept as exact integer ratios so the output length is always
// ceil(frames * dstRate / srcRate). Downsampling runs a one-pole low-pass
// filter ahead of the interpolator.
//
//	r := audio.NewResampler(src, 16000)
//
// # Channel Mixing
//
// MonoMixer averages all channels of each frame:
//
//	mono := audio.NewMonoMixer(r)
//
// # Format Registry
//
// A Registry maps format names to decoders. Decoders that implement Sniffer
// can be picked by content instead of file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.PCMDecoder{})
//	reg.Register("ogg", vorbis.Decoder{})
//	src, format, err := reg.Open(file)
//
// Detection follows registration order, so register the most specific
// formats first.
package audio
