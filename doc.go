// SPDX-License-Identifier: EPL-2.0

// Package omnigraph transcodes audio files into square RGB images and back.
//
// Any supported audio input is first brought to a canonical form, mono
// 16-bit PCM at 44100 Hz, and then rendered into a raster by one of three
// codec methods. The reverse direction reads a raster and reconstructs a
// playable PCM stream. Both directions are lossy in controlled ways; see
// the codec package for the exact guarantees per method.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Rasters are written as PNG and read back from PNG, JPEG or GIF. Only PNG
// preserves the encoded samples exactly.
//
// # Quick Start
//
// The simplest way to transcode is through a Session, which picks the
// decoder by file extension and holds the result:
//
//	sess := omnigraph.NewSession(codec.PixelInterleave)
//
//	// Audio to image
//	img, _ := sess.EncodeFile("track.mp3")
//	sess.SaveOutput("track.png")
//
//	// Image back to audio
//	sess.DecodeFile("track.png")
//	sess.SaveOutput("restored.wav")
//
// Switching the method re-runs the last operation on the same input:
//
//	sess.SetMethod(codec.SpectralBands)
//	sess.SaveOutput("track_spectral.png")
//
// # Canonical Pipeline
//
// For more control, drive the pipeline directly. CanonicalPCM accepts any
// audio.Source and produces the canonical stream:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	pcm, _ := omnigraph.CanonicalPCM(src)
//
//	// pcm is now []int16, mono at 44100 Hz
//
// EncodeSource and DecodeImage wrap the pipeline and a codec in one call:
//
//	img, _ := omnigraph.EncodeSource(src, codec.ChannelMultiplex)
//	pcm, _ := omnigraph.DecodeImage(img, codec.ChannelMultiplex)
//
// # Codec Methods
//
// Three methods are available, selected by a codec.Method value:
//   - ChannelMultiplex (A): contiguous stream segments per color plane
//   - PixelInterleave (B): consecutive sample triples share a pixel
//   - SpectralBands (C): FFT low/mid/high bands per color plane
//
// A and B reconstruct every sample within one quantization step; C decodes
// to a weighted blend of the bands rather than an inverse transform.
//
// # Audio Processing Blocks
//
// The audio subpackage holds the building blocks the pipeline is made of:
//
//	// Create a resampler
//	resampler := audio.NewResampler(source, 44100)
//
//	// Convert to mono
//	mono := audio.NewMonoMixer(resampler)
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// All decoders return an audio.Source, so they compose with the resampler
// and mixer in any order.
//
// See the individual subpackages for more detailed documentation.
package omnigraph
