// SPDX-License-Identifier: EPL-2.0

package codec

import "image"

// pixelInterleave implements method B. Each run of three consecutive
// quantized samples lands in one pixel under a fixed channel permutation:
// the first sample goes to red, the second to blue, the third to green.
// Decode walks red, blue, green per pixel, which restores stream order
// exactly. A tail of one or two samples that cannot form a full triple is
// dropped before packing.
type pixelInterleave struct{}

func (pixelInterleave) Method() Method { return PixelInterleave }

func (pixelInterleave) Encode(samples []int16) (*image.RGBA, error) {
	q := quantize(samples)
	q = q[:len(q)-len(q)%3]
	triples := len(q) / 3

	red := make([]uint8, triples)
	green := make([]uint8, triples)
	blue := make([]uint8, triples)
	for i := range triples {
		red[i] = q[3*i]
		blue[i] = q[3*i+1]
		green[i] = q[3*i+2]
	}

	return packPlanes(sideFor(triples), red, green, blue)
}

func (pixelInterleave) Decode(img image.Image) ([]int16, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	red, green, blue := flattenPlanes(img)

	q := make([]uint8, 0, 3*len(red))
	for i := range red {
		q = append(q, red[i], blue[i], green[i])
	}

	return dequantize(q), nil
}
