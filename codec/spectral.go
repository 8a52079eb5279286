// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"image"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Band edges in Hz. At the fixed 44100 Hz rate the low band covers
// everything below 1 kHz, the mid band 1-4 kHz and the high band the rest
// up to Nyquist.
const (
	lowCutoffHz = 1000
	midCutoffHz = 4000
)

// Remix weights applied on decode, favoring the low band where most of the
// audible energy lives. The weights sum to one.
const (
	redWeight   = 0.6
	greenWeight = 0.3
	blueWeight  = 0.1
)

// spectralBands implements method C. The whole signal goes through one
// full-length real FFT; each band keeps its bin range, is brought back to
// the time domain and quantized into one color plane (low=red, mid=green,
// high=blue). Decode blends the dequantized planes with the fixed weights
// above rather than resumming spectra, so a decode is an audible
// approximation of the input, not a reconstruction.
type spectralBands struct{}

func (spectralBands) Method() Method { return SpectralBands }

// cutoffBins maps the band edges to FFT bin indices for an n-sample signal.
func cutoffBins(n int) (low, mid int) {
	low = lowCutoffHz * n / SampleRate
	mid = midCutoffHz * n / SampleRate

	return low, mid
}

func (spectralBands) Encode(samples []int16) (*image.RGBA, error) {
	n := len(samples)
	if n == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	signal := make([]float64, n)
	for i, s := range samples {
		signal[i] = float64(s) / 32768.0
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, signal)
	kLow, kMid := cutoffBins(n)

	low, err := bandPlane(fft, bandSpectrum(coeffs, 0, kLow), n)
	if err != nil {
		return nil, err
	}

	mid, err := bandPlane(fft, bandSpectrum(coeffs, kLow, kMid), n)
	if err != nil {
		return nil, err
	}

	high, err := bandPlane(fft, bandSpectrum(coeffs, kMid, len(coeffs)), n)
	if err != nil {
		return nil, err
	}

	return packPlanes(sideFor(n), low, mid, high)
}

func (spectralBands) Decode(img image.Image) ([]int16, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	red, green, blue := flattenPlanes(img)

	out := make([]int16, len(red))
	for i := range out {
		out[i] = remix(dequantizeSample(red[i]), dequantizeSample(green[i]), dequantizeSample(blue[i]))
	}

	return out, nil
}

// bandSpectrum copies bins [from, to) of coeffs into an otherwise zeroed
// spectrum of the same length.
func bandSpectrum(coeffs []complex128, from, to int) []complex128 {
	band := make([]complex128, len(coeffs))
	copy(band[from:to], coeffs[from:to])

	return band
}

// bandPlane brings one band spectrum back to the time domain and quantizes
// it. The inverse transform is unnormalized, so the sequence is scaled by
// 1/n before returning to the 16-bit domain.
func bandPlane(fft *fourier.FFT, band []complex128, n int) ([]uint8, error) {
	seq := fft.Sequence(nil, band)
	scale := 32768.0 / float64(n)

	plane := make([]uint8, n)
	for i, v := range seq {
		x := v * scale
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNonFiniteSignal
		}
		plane[i] = quantizeSample(clampInt16(math.Round(x)))
	}

	return plane, nil
}

// remix blends three band samples back into one output sample.
func remix(r, g, b int16) int16 {
	mixed := redWeight*float64(r) + greenWeight*float64(g) + blueWeight*float64(b)

	return clampInt16(math.Round(mixed))
}

func clampInt16(x float64) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
