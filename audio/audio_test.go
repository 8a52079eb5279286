package audio

import (
	"fmt"
	"io"
	"testing"
)

type stubDecoder struct {
	id int
}

func (stubDecoder) Decode(io.Reader) (Source, error) {
	return nil, io.ErrUnexpectedEOF
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if registry == nil {
		t.Fatal("NewRegistry returned nil")
	}

	if registry.decoders == nil {
		t.Error("decoder map not initialized")
	}

	if got := registry.Formats(); len(got) != 0 {
		t.Errorf("fresh registry reports formats %v", got)
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", stubDecoder{id: 1})

	d, ok := registry.Get("wav")
	if !ok {
		t.Fatal("registered format not found")
	}

	if d != (stubDecoder{id: 1}) {
		t.Errorf("Get returned %v, want stubDecoder{id: 1}", d)
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	d, ok := registry.Get("flac")
	if ok {
		t.Error("Get reported ok for unregistered format")
	}
	if d != nil {
		t.Errorf("Get returned %v for unregistered format, want nil", d)
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	formats := []string{"wav", "mp3", "ogg", "oga", "aiff", "aif"}

	registry := NewRegistry()
	for i, format := range formats {
		registry.Register(format, stubDecoder{id: i})
	}

	for i, format := range formats {
		t.Run(format, func(t *testing.T) {
			d, ok := registry.Get(format)
			if !ok {
				t.Fatalf("format %q not found", format)
			}
			if d != (stubDecoder{id: i}) {
				t.Errorf("format %q resolved to %v, want id %d", format, d, i)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", stubDecoder{id: 1})
	registry.Register("wav", stubDecoder{id: 2})

	d, _ := registry.Get("wav")
	if d != (stubDecoder{id: 2}) {
		t.Errorf("Get returned %v after overwrite, want id 2", d)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", stubDecoder{})
	registry.Register("aiff", stubDecoder{})
	registry.Register("mp3", stubDecoder{})

	got := registry.Formats()
	want := []string{"aiff", "mp3", "wav"}

	if len(got) != len(want) {
		t.Fatalf("Formats returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_EmptyFormatName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("", stubDecoder{id: 9})

	d, ok := registry.Get("")
	if !ok {
		t.Fatal("empty format key not found")
	}
	if d != (stubDecoder{id: 9}) {
		t.Errorf("Get returned %v, want id 9", d)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan bool)

	for i := range 10 {
		go func(id int) {
			format := fmt.Sprintf("fmt%d", id)
			registry.Register(format, stubDecoder{id: id})
			done <- true
		}(i)
	}

	for range 10 {
		go func() {
			registry.Get("fmt0")
			registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	if got := len(registry.Formats()); got != 10 {
		t.Errorf("registry holds %d formats after concurrent writes, want 10", got)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", stubDecoder{})

	b.ReportAllocs()
	for b.Loop() {
		registry.Get("wav")
	}
}

func BenchmarkRegistry_Formats(b *testing.B) {
	registry := NewRegistry()
	for i := range 8 {
		registry.Register(fmt.Sprintf("fmt%d", i), stubDecoder{id: i})
	}

	b.ReportAllocs()
	for b.Loop() {
		registry.Formats()
	}
}
