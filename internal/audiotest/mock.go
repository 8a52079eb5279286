// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests. The
// sources implement the audio.Source interface without importing it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates samples from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate, per channel
	generated    int
	waveform     func(sample, channel int) float32
}

// NewMockSource creates a source producing totalSamples frames whose values
// come from waveform(frameIndex, channel).
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource generates totalSamples frames of silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0
	})
}

// NewSineSource generates a sine wave at the given frequency in Hz.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates frames holding a single value on every
// channel.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if avail := m.totalSamples - m.generated; frames > avail {
		frames = avail
	}

	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalSamples {
		return written, io.EOF
	}

	return written, nil
}
