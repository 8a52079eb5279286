// SPDX-License-Identifier: EPL-2.0

package omnigraph

import (
	"fmt"
	"io"

	"github.com/orkatoons/omnigraph/audio"
	"github.com/orkatoons/omnigraph/codec"
	"github.com/orkatoons/omnigraph/utils"
)

// CanonicalPCM drains src through the canonical pipeline and returns mono
// 16-bit PCM at codec.SampleRate, the only form the image codecs accept.
//
// The pipeline:
//  1. Resamples the source to 44100 Hz using cubic interpolation
//  2. Averages interleaved channels down to mono
//  3. Converts float32 samples to int16 via utils.Float32ToInt16
//
// The source is read to the end but not closed; the caller owns it.
func CanonicalPCM(src audio.Source) ([]int16, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, codec.SampleRate))

	size := mono.BufSize()
	if size <= 0 {
		size = 4096
	}

	// Assume a couple of seconds up front and let append grow the rest.
	pcm := make([]int16, 0, 2*codec.SampleRate)
	buf := make([]float32, size)

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm, nil
}
