// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/orkatoons/omnigraph/utils"
)

// Resampler converts src to a target rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. Channel count is
// preserved and samples stay interleaved. When reducing the rate, a
// one-pole low-pass runs ahead of the interpolation.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the interpolation point; window[0]
	// and window[3] are the outer support frames.
	window  [4][]float32
	haveWin [4]bool

	// pos is the fractional position between window[1] and window[2].
	pos float64

	readBuf []float32
	eof     bool

	// one-pole low-pass state, active only when downsampling
	lowpass     []float32
	useLowpass  bool
	lowpassGain float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		readBuf:  make([]float32, 4096),
		lowpass:  make([]float32, channels),
	}

	if r.ratio > 1.0 {
		r.useLowpass = true
		r.lowpassGain = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// filterFrame applies the low-pass in place to one frame.
func (r *Resampler) filterFrame(frame []float32) {
	for c := range r.channels {
		frame[c] = r.lowpassGain*frame[c] + (1-r.lowpassGain)*r.lowpass[c]
		r.lowpass[c] = frame[c]
	}
}

// prime fills the four-frame window before the first interpolation. The
// filter state starts from the first frame so there is no warm-up
// transient.
func (r *Resampler) prime() error {
	for i := range 4 {
		n, err := r.src.ReadSamples(r.readBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.haveWin[i] = true

			if i == 0 && r.useLowpass {
				copy(r.lowpass, r.readBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			// Duplicate the last valid frame into the remaining slots.
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.haveWin[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.haveWin[0] = r.haveWin[1]
	r.haveWin[1] = r.haveWin[2]
	r.haveWin[2] = r.haveWin[3]

	n, err := r.src.ReadSamples(r.readBuf[:r.channels])
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.haveWin[3] = true

		if r.useLowpass {
			r.filterFrame(r.window[3])
		}
	} else {
		r.haveWin[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.haveWin[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate. The dst length must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.haveWin[1] {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.haveWin[1] || !r.haveWin[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			// Duplicate edge frames when the window is short.
			y0 := y1
			if r.haveWin[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.haveWin[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
