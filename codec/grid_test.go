// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"image"
	"testing"
)

func TestSideFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{17, 5},
		{44100, 210},
		{44101, 211},
	}

	for _, tt := range tests {
		if got := sideFor(tt.n); got != tt.want {
			t.Errorf("sideFor(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// testPlane fills n bytes with a recognizable pattern.
func testPlane(n int, seed uint8) []uint8 {
	p := make([]uint8, n)
	for i := range p {
		p[i] = uint8(i)*7 + seed
	}
	return p
}

func TestPackPlanes_RoundTrip(t *testing.T) {
	t.Parallel()

	lengths := []int{0, 1, 2, 3, 4, 5, 8, 9, 10, 100, 101}

	for _, n := range lengths {
		side := sideFor(n)
		red := testPlane(n, 1)
		green := testPlane(n, 2)
		blue := testPlane(n, 3)

		img, err := packPlanes(side, red, green, blue)
		if err != nil {
			t.Fatalf("packPlanes(%d values) error = %v", n, err)
		}

		if img.Bounds().Dx() != side || img.Bounds().Dy() != side {
			t.Fatalf("packPlanes(%d values) bounds = %v, want %dx%d", n, img.Bounds(), side, side)
		}

		gotRed, gotGreen, gotBlue := flattenPlanes(img)
		area := side * side
		if len(gotRed) != area {
			t.Fatalf("flattenPlanes returned %d values, want %d", len(gotRed), area)
		}

		for i := range area {
			wantR, wantG, wantB := uint8(0), uint8(0), uint8(0)
			if i < n {
				wantR, wantG, wantB = red[i], green[i], blue[i]
			}
			if gotRed[i] != wantR || gotGreen[i] != wantG || gotBlue[i] != wantB {
				t.Fatalf("n=%d value %d = (%d,%d,%d), want (%d,%d,%d)",
					n, i, gotRed[i], gotGreen[i], gotBlue[i], wantR, wantG, wantB)
			}
		}
	}
}

func TestPackPlanes_UnevenLengths(t *testing.T) {
	t.Parallel()

	// Planes of different lengths pad independently to the same square.
	img, err := packPlanes(2, []uint8{10, 11, 12}, []uint8{20}, []uint8{30, 31, 32, 33})
	if err != nil {
		t.Fatalf("packPlanes() error = %v", err)
	}

	red, green, blue := flattenPlanes(img)

	wantRed := []uint8{10, 11, 12, 0}
	wantGreen := []uint8{20, 0, 0, 0}
	wantBlue := []uint8{30, 31, 32, 33}

	for i := range 4 {
		if red[i] != wantRed[i] || green[i] != wantGreen[i] || blue[i] != wantBlue[i] {
			t.Errorf("value %d = (%d,%d,%d), want (%d,%d,%d)",
				i, red[i], green[i], blue[i], wantRed[i], wantGreen[i], wantBlue[i])
		}
	}
}

func TestPackPlanes_TooLong(t *testing.T) {
	t.Parallel()

	_, err := packPlanes(2, testPlane(5, 0), nil, nil)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("packPlanes() error = %v, want ErrShapeMismatch", err)
	}
}

func TestPackPlanes_Opaque(t *testing.T) {
	t.Parallel()

	img, err := packPlanes(3, testPlane(9, 0), testPlane(9, 1), testPlane(9, 2))
	if err != nil {
		t.Fatalf("packPlanes() error = %v", err)
	}

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			t.Fatalf("alpha at %d = %d, want 255", i, img.Pix[i])
		}
	}
}

func TestPackPlanes_Empty(t *testing.T) {
	t.Parallel()

	img, err := packPlanes(0, nil, nil, nil)
	if err != nil {
		t.Fatalf("packPlanes(0) error = %v", err)
	}

	if img.Bounds().Dx() != 0 || img.Bounds().Dy() != 0 {
		t.Errorf("packPlanes(0) bounds = %v, want empty", img.Bounds())
	}

	red, green, blue := flattenPlanes(img)
	if len(red) != 0 || len(green) != 0 || len(blue) != 0 {
		t.Errorf("flattenPlanes(empty) = %d/%d/%d values, want 0", len(red), len(green), len(blue))
	}
}

// TestFlattenPlanes_GenericImage covers the conversion path for images that
// are not tightly packed RGBA, the common case when loading from disk.
func TestFlattenPlanes_GenericImage(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	values := []uint8{10, 20, 30, 40}
	for i := range 4 {
		o := i * 4
		src.Pix[o] = values[i]
		src.Pix[o+1] = values[i] + 1
		src.Pix[o+2] = values[i] + 2
		src.Pix[o+3] = 0xff
	}

	red, green, blue := flattenPlanes(src)
	for i := range 4 {
		if red[i] != values[i] || green[i] != values[i]+1 || blue[i] != values[i]+2 {
			t.Errorf("value %d = (%d,%d,%d), want (%d,%d,%d)",
				i, red[i], green[i], blue[i], values[i], values[i]+1, values[i]+2)
		}
	}
}

// TestFlattenPlanes_SubImage covers RGBA views whose stride or origin does
// not match their bounds.
func TestFlattenPlanes_SubImage(t *testing.T) {
	t.Parallel()

	base, err := packPlanes(4, testPlane(16, 5), testPlane(16, 6), testPlane(16, 7))
	if err != nil {
		t.Fatalf("packPlanes() error = %v", err)
	}

	sub, ok := base.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	if !ok {
		t.Fatal("SubImage did not return *image.RGBA")
	}

	red, _, _ := flattenPlanes(sub)
	if len(red) != 4 {
		t.Fatalf("flattenPlanes(sub) returned %d values, want 4", len(red))
	}

	// Row-major walk of the 2x2 window starting at (1,1) of a 4-wide base.
	want := []uint8{base.Pix[(1*4+1)*4], base.Pix[(1*4+2)*4], base.Pix[(2*4+1)*4], base.Pix[(2*4+2)*4]}
	for i := range want {
		if red[i] != want[i] {
			t.Errorf("sub red[%d] = %d, want %d", i, red[i], want[i])
		}
	}
}

func BenchmarkPackPlanes(b *testing.B) {
	n := 44100
	side := sideFor(n)
	red := testPlane(n, 1)
	green := testPlane(n, 2)
	blue := testPlane(n, 3)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = packPlanes(side, red, green, blue)
	}
}

func BenchmarkFlattenPlanes(b *testing.B) {
	n := 44100
	img, _ := packPlanes(sideFor(n), testPlane(n, 1), testPlane(n, 2), testPlane(n, 3))

	b.ReportAllocs()

	for b.Loop() {
		_, _, _ = flattenPlanes(img)
	}
}
