// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and accepts PCM 16-bit
// files, mono or multi-channel, at any sample rate. Encoding writes mono
// 16-bit PCM, which is the shape the transcoder produces.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32 values
// in the range [-1.0, 1.0]. Non-seekable readers are buffered in memory
// first, because the underlying parser needs to seek.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 44100, samples)
//
// The function writes a complete file, 44-byte header included.
//
// # Error Handling
//
// Decode reports malformed or unsupported input through sentinel errors:
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: the format is not 16-bit PCM
//   - ErrUnsupportedWavLayout: the fmt chunk declares a degenerate layout
//   - ErrUnsupportedWavChunks: no data chunk could be located
package wav
