// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to canonicalize
// arbitrary audio input: a Source interface, a sample-rate converter, a
// channel mixer and a decoder registry.
//
// # Source
//
// All decoders and processors implement Source, so they chain into
// pipelines:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]; io.EOF with a zero count
// marks the end of the stream.
//
// # Canonicalization pipeline
//
// The usual arrangement converts any decoded input to mono at a fixed
// rate:
//
//	res := audio.NewResampler(src, 44100)
//	mono := audio.NewMonoMixer(res)
//
// The resampler uses Catmull-Rom cubic interpolation and applies a simple
// low-pass when reducing the rate. The mixer averages all channels of a
// frame into one.
//
// # Registry
//
// Format decoders register under their file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// The registry is safe for concurrent use.
package audio
