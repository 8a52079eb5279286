// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"image"
	"image/draw"
	"math"
)

// sideFor returns the side of the smallest square raster holding n values.
// Zero values need no raster at all.
func sideFor(n int) int {
	if n <= 0 {
		return 0
	}

	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}

	return side
}

// packPlanes renders three byte planes into a side-by-side RGBA image.
// Each plane is laid out row-major and zero-padded to side*side; a plane
// longer than that is ErrShapeMismatch. Alpha is fully opaque.
func packPlanes(side int, red, green, blue []uint8) (*image.RGBA, error) {
	area := side * side
	if len(red) > area || len(green) > area || len(blue) > area {
		return nil, ErrShapeMismatch
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for i := range area {
		o := i * 4
		if i < len(red) {
			img.Pix[o] = red[i]
		}
		if i < len(green) {
			img.Pix[o+1] = green[i]
		}
		if i < len(blue) {
			img.Pix[o+2] = blue[i]
		}
		img.Pix[o+3] = 0xff
	}

	return img, nil
}

// flattenPlanes reads an image back into row-major red, green and blue
// planes. Images that are not already tightly packed RGBA are converted
// first; alpha is ignored.
func flattenPlanes(img image.Image) (red, green, blue []uint8) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*rgba.Rect.Dx() || !rgba.Rect.Min.Eq(image.Point{}) {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	n := rgba.Rect.Dx() * rgba.Rect.Dy()
	red = make([]uint8, n)
	green = make([]uint8, n)
	blue = make([]uint8, n)
	for i := range n {
		o := i * 4
		red[i] = rgba.Pix[o]
		green[i] = rgba.Pix[o+1]
		blue[i] = rgba.Pix[o+2]
	}

	return red, green, blue
}
