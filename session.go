// SPDX-License-Identifier: EPL-2.0

package omnigraph

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// DecodeFile accepts any raster format registered with image.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/orkatoons/omnigraph/audio"
	"github.com/orkatoons/omnigraph/codec"
	"github.com/orkatoons/omnigraph/formats/aiff"
	"github.com/orkatoons/omnigraph/formats/mp3"
	"github.com/orkatoons/omnigraph/formats/vorbis"
	"github.com/orkatoons/omnigraph/formats/wav"
)

type operation int

const (
	opNone operation = iota
	opEncode
	opDecode
)

// Session drives the file-to-file transcoding workflow. It remembers the
// last input so a method switch can repeat the previous operation, and it
// holds the latest result until SaveOutput persists it.
//
// A Session is not safe for concurrent use.
type Session struct {
	registry *audio.Registry
	method   codec.Method

	lastPath string
	lastOp   operation

	// Image holds the raster from the most recent encode; PCM holds the
	// samples from the most recent decode. A successful operation sets one
	// and clears the other.
	Image *image.RGBA
	PCM   []int16
}

// NewSession returns a session using method m, with decoders registered
// for WAV, MP3, Ogg Vorbis and AIFF inputs.
func NewSession(m codec.Method) *Session {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return &Session{registry: reg, method: m}
}

// Method reports the active codec method.
func (s *Session) Method() codec.Method { return s.method }

// Formats returns the input format keys the session can decode.
func (s *Session) Formats() []string { return s.registry.Formats() }

// EncodeFile decodes the audio file at path, canonicalizes it and encodes
// it into a raster, which is held in s.Image and returned.
func (s *Session) EncodeFile(path string) (*image.RGBA, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := s.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	c, err := codec.New(s.method)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	pcm, err := CanonicalPCM(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(pcm) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyStream)
	}

	img, err := c.Encode(pcm)
	if err != nil {
		return nil, err
	}

	s.Image, s.PCM = img, nil
	s.lastPath, s.lastOp = path, opEncode

	return img, nil
}

// DecodeFile reads the raster at path (PNG, JPEG or GIF) and decodes it
// back into PCM samples, which are held in s.PCM and returned.
func (s *Session) DecodeFile(path string) ([]int16, error) {
	c, err := codec.New(s.method)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pcm, err := c.Decode(img)
	if err != nil {
		return nil, err
	}

	s.PCM, s.Image = pcm, nil
	s.lastPath, s.lastOp = path, opDecode

	return pcm, nil
}

// SetMethod switches the codec method. A session that has already run an
// operation repeats it with the new method against the remembered file,
// refreshing the held result; a fresh session just switches.
func (s *Session) SetMethod(m codec.Method) error {
	if _, err := codec.New(m); err != nil {
		return err
	}

	s.method = m
	if s.lastOp == opNone {
		return nil
	}

	return s.Rerun()
}

// Rerun repeats the last operation against the remembered file with the
// active method.
func (s *Session) Rerun() error {
	switch s.lastOp {
	case opEncode:
		_, err := s.EncodeFile(s.lastPath)
		return err
	case opDecode:
		_, err := s.DecodeFile(s.lastPath)
		return err
	}

	return ErrNothingToRepeat
}

// SaveOutput persists the held result: a PNG raster after an encode, a
// 16-bit WAV at the canonical rate after a decode.
func (s *Session) SaveOutput(path string) error {
	if s.lastOp == opNone {
		return ErrNothingToSave
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	var werr error
	switch s.lastOp {
	case opEncode:
		werr = png.Encode(f, s.Image)
	case opDecode:
		werr = wav.WriteWAV16(f, codec.SampleRate, s.PCM)
	}

	if werr != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, werr)
	}

	return f.Close()
}
