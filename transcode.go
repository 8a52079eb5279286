// SPDX-License-Identifier: EPL-2.0

package omnigraph

import (
	"image"

	"github.com/orkatoons/omnigraph/audio"
	"github.com/orkatoons/omnigraph/codec"
)

// EncodeSource canonicalizes src and renders it as a square raster using
// method m.
func EncodeSource(src audio.Source, m codec.Method) (*image.RGBA, error) {
	c, err := codec.New(m)
	if err != nil {
		return nil, err
	}

	pcm, err := CanonicalPCM(src)
	if err != nil {
		return nil, err
	}

	return c.Encode(pcm)
}

// DecodeImage recovers mono 16-bit PCM at codec.SampleRate from a raster
// produced with the same method. The sample count follows the raster
// geometry, so trailing padding from the encode comes back as part of the
// stream.
func DecodeImage(img image.Image, m codec.Method) ([]int16, error) {
	c, err := codec.New(m)
	if err != nil {
		return nil, err
	}

	return c.Decode(img)
}
