// SPDX-License-Identifier: EPL-2.0

package codec

import "image"

// channelMultiplex implements method A. The quantized stream is cut at n/3
// and 2n/3 (integer division); red carries the first segment, green the
// second, blue the rest, which may run up to two bytes longer. The raster
// side is sized for the longest segment and every plane is zero-padded to
// it, so no segment is ever truncated.
type channelMultiplex struct{}

func (channelMultiplex) Method() Method { return ChannelMultiplex }

func (channelMultiplex) Encode(samples []int16) (*image.RGBA, error) {
	q := quantize(samples)
	third := len(q) / 3

	red := q[:third]
	green := q[third : 2*third]
	blue := q[2*third:]

	// blue is never shorter than the other two segments.
	return packPlanes(sideFor(len(blue)), red, green, blue)
}

func (channelMultiplex) Decode(img image.Image) ([]int16, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	red, green, blue := flattenPlanes(img)

	joined := make([]uint8, 0, len(red)+len(green)+len(blue))
	joined = append(joined, red...)
	joined = append(joined, green...)
	joined = append(joined, blue...)

	return dequantize(joined), nil
}
