// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// The decoder is built on github.com/jfreymuth/oggvorbis and exposes Ogg
// Vorbis streams as audio.Source values. Vorbis decodes natively to
// float32, so samples pass through without conversion. Channel count and
// sample rate come from the stream itself.
//
// # Decoding
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples only ever returns whole frames, so the count is always a
// multiple of the channel count. To fold a stream down to mono:
//
//	vorbisSource, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(vorbisSource)
//
// # Limitations
//
// Vorbis encoding is not supported (decoding only).
package vorbis
