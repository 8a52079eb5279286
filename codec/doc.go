// SPDX-License-Identifier: EPL-2.0

// Package codec transcodes mono 16-bit PCM audio into square RGB rasters
// and back.
//
// Three strategies are available, selected by a Method value:
//
//   - ChannelMultiplex (A): the sample stream is cut into three contiguous
//     segments, one per color plane.
//   - PixelInterleave (B): consecutive sample triples share a pixel, with
//     a fixed channel permutation.
//   - SpectralBands (C): the signal is split into low/mid/high frequency
//     bands over a single full-length FFT, one band per color plane.
//
// # Quantization
//
// Every method stores samples as one byte per channel value, mapping the
// 16-bit domain onto 0..255 in equal 257-wide steps. Methods A and B are
// exact up to that quantization: decoding recovers every sample within one
// step, plus any trailing padding introduced by the square raster.
//
// # Lossy decode for SpectralBands
//
// Method C is asymmetric. Encoding isolates frequency bands; decoding does
// not resum them but blends the three planes with fixed weights
// (0.6 red + 0.3 green + 0.1 blue). The result is an audible approximation
// with a deliberate spectral tilt, not a reconstruction.
//
// # Geometry
//
// A raster side is always the ceiling square root of the values carried per
// plane, padded with zero bytes. Decoding therefore returns more samples
// than were encoded whenever the input did not fill the square exactly;
// callers that need the original length must track it themselves.
//
// # Usage
//
//	c, err := codec.New(codec.PixelInterleave)
//	if err != nil {
//	    return err
//	}
//
//	img, err := c.Encode(samples)
//	if err != nil {
//	    return err
//	}
//
//	restored, err := c.Decode(img)
//
// All operations are pure functions and safe for concurrent use; the codec
// values carry no state.
package codec
