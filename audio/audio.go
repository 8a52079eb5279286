// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// Decoders produce Sources; the resampler and mixer wrap them so a pipeline
// can bring any input to the canonical rate and channel count.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of float32 values written (not frames). When n == 0 with err ==
	// io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the source's preferred read size in samples.
	BufSize() int
	// Close releases any resources held by the source.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (lowercase file extensions such as "wav" or
// "ogg") to decoders. Safe for concurrent use.
type Registry struct {
	mtx      sync.Mutex
	decoders map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds or replaces the decoder for a format key.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[format]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
