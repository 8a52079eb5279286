// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// The decoder is built on github.com/hajimehoshi/go-mp3 and exposes MP3
// streams as audio.Source values producing float32 samples normalized to
// the range [-1.0, 1.0]. Output is always two channels; the sample rate
// comes from the stream itself (typically 44.1kHz or 48kHz).
//
// # Decoding
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// To bring a stream to the mono 44.1kHz form the image encoders expect,
// feed it through the audio package:
//
//	resampled := audio.NewResampler(source, 44100)
//	mono := audio.NewMonoMixer(resampled)
//
// # Limitations
//
// MP3 writing is not supported (decoding only), and output is always
// stereo; use MonoMixer to fold it down.
package mp3
