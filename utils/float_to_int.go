package utils

// Float32ToInt16 converts a [-1, 1] float sample to a 16-bit PCM value.
// Out-of-range input saturates instead of wrapping.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1 stays inside int16.
	return int16(x * 32767.0)
}
