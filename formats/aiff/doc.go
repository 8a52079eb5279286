// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// The decoder is built on github.com/go-audio/aiff and exposes AIFF files
// as audio.Source values producing float32 samples normalized to the
// range [-1.0, 1.0]. Only 16-bit PCM is supported; other bit depths are
// rejected with ErrOnlyPCM16bitSupported.
//
// # Decoding
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decode needs to seek; readers that are not io.ReadSeeker are buffered
// in memory first.
//
// # Error Handling
//
// The package defines sentinel errors for the common failure modes:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: the channel count or sample rate is invalid
//   - ErrUnsupportedAiffChunks: the sound data chunk is missing or malformed
//
// Check them with errors.Is:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF stores PCM big-endian and the sample rate as an 80-bit float,
// where WAV is little-endian throughout. The decoder handles the format
// differences, so both produce identical audio.Source streams.
//
// # Limitations
//
// AIFF writing is not supported (decoding only), and AIFF-C compressed
// files (.aifc) are not handled.
package aiff
