package audio

import "fmt"

// MonoMixer folds a multi-channel source down to mono by averaging each
// frame's channels. Mono sources pass through untouched.
type MonoMixer struct {
	src      Source
	frameBuf []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:      src,
		frameBuf: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with mono frames. One output frame consumes one
// full input frame, whatever the source channel count.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.frameBuf) < needed {
		m.frameBuf = make([]float32, needed)
	}

	n, err := m.src.ReadSamples(m.frameBuf[:needed])
	if n == 0 {
		return 0, err
	}

	frames := n / channels

	// Stereo is the common case for the supported formats.
	if channels == 2 {
		for f := range frames {
			dst[f] = (m.frameBuf[2*f] + m.frameBuf[2*f+1]) * 0.5
		}

		return frames, err
	}

	inv := 1.0 / float32(channels)
	for f := range frames {
		sum := float32(0)
		base := f * channels
		for c := range channels {
			sum += m.frameBuf[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
