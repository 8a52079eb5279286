// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"image"
	"strings"
)

// SampleRate is the PCM rate in Hz the codecs assume. Inputs must be
// canonical mono 16-bit PCM at this rate; the root package provides the
// pipeline that produces it from arbitrary audio sources.
const SampleRate = 44100

// Method selects one of the three encoding strategies.
type Method int

const (
	// ChannelMultiplex cuts the quantized stream into three contiguous
	// segments carried by the red, green and blue planes.
	ChannelMultiplex Method = iota

	// PixelInterleave spreads each run of three consecutive samples across
	// the channels of a single pixel.
	PixelInterleave

	// SpectralBands splits the signal into low, mid and high frequency
	// bands, one per channel. Its decode direction is a weighted remix,
	// not an inverse transform.
	SpectralBands
)

// String returns the short method tag ("A", "B" or "C").
func (m Method) String() string {
	switch m {
	case ChannelMultiplex:
		return "A"
	case PixelInterleave:
		return "B"
	case SpectralBands:
		return "C"
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a method tag or name to a Method. Short tags "a"/"b"/"c"
// are accepted in any case, as are the long names "multiplex", "interleave"
// and "spectral".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "multiplex", "channel-multiplex":
		return ChannelMultiplex, nil
	case "b", "interleave", "pixel-interleave":
		return PixelInterleave, nil
	case "c", "spectral", "spectral-bands":
		return SpectralBands, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Codec converts mono 16-bit PCM into a square RGB raster and back.
// Implementations are pure: no I/O, no shared state, explicit errors.
type Codec interface {
	// Method reports the strategy this codec implements.
	Method() Method

	// Encode renders samples into a square raster. Zero samples are legal
	// and produce an empty raster.
	Encode(samples []int16) (*image.RGBA, error)

	// Decode recovers PCM from a raster produced by Encode. The output
	// length follows the raster geometry, not the original sample count;
	// trailing padding values are part of the output.
	Decode(img image.Image) ([]int16, error)
}

// New returns the codec implementing m.
func New(m Method) (Codec, error) {
	switch m {
	case ChannelMultiplex:
		return channelMultiplex{}, nil
	case PixelInterleave:
		return pixelInterleave{}, nil
	case SpectralBands:
		return spectralBands{}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
}
