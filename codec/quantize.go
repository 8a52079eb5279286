// SPDX-License-Identifier: EPL-2.0

package codec

// The 16-bit to 8-bit mapping is byte = floor((s+32768)/65535*255), with
// the inverse round(b/255*65535-32768). Since 65535 = 255*257, both
// directions collapse to exact integer arithmetic: divide by 257 going
// down, multiply by 257 going up. Quantizing a dequantized byte is the
// identity, and a full round trip lands within one 257-wide step.

func quantizeSample(s int16) uint8 {
	return uint8((int32(s) + 32768) / 257)
}

func dequantizeSample(b uint8) int16 {
	return int16(int32(b)*257 - 32768)
}

// quantize maps samples to bytes, one byte per sample.
func quantize(samples []int16) []uint8 {
	out := make([]uint8, len(samples))
	for i, s := range samples {
		out[i] = quantizeSample(s)
	}

	return out
}

// dequantize maps bytes back into the 16-bit sample domain.
func dequantize(values []uint8) []int16 {
	out := make([]int16, len(values))
	for i, b := range values {
		out[i] = dequantizeSample(b)
	}

	return out
}
