package raster

import (
	"image"
	"image/color"
	"math/rand"
	"slices"
	"testing"

	"chosenoffset.com/wallcaster/internal/core/geom"
)

const wall = Color(0x00ff00)

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Fatalf("Expected 0x123456, got %#x", uint32(c))
	}

	got := color.RGBAModel.Convert(c).(color.RGBA)
	want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLineEndpointsInclusive(t *testing.T) {
	tests := []struct {
		name       string
		start, end geom.Vector2
		want       []image.Point
	}{
		{"point", geom.Vec(3, 3), geom.Vec(3.9, 3.2), []image.Point{{3, 3}}},
		{"horizontal", geom.Vec(0, 0), geom.Vec(3, 0), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", geom.Vec(1, 2), geom.Vec(1, 0), []image.Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", geom.Vec(0, 0), geom.Vec(2, 2), []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", geom.Vec(0, 0), geom.Vec(4, 2), []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Line(tt.start, tt.end))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLineIsLazy(t *testing.T) {
	n := 0
	for range Line(geom.Vec(0, 0), geom.Vec(1e6, 3)) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("Expected to stop after 5 points, got %d", n)
	}
}

func TestDrawLineStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := NewBuffer(24, 16)

	for i := 0; i < 2000; i++ {
		start := geom.Vec(rng.Float64()*80-30, rng.Float64()*60-20)
		end := geom.Vec(rng.Float64()*80-30, rng.Float64()*60-20)
		for p := range buf.Line(start, end) {
			if !buf.InBounds(p.X, p.Y) {
				t.Fatalf("Line(%v, %v) yielded %v outside the buffer", start, end, p)
			}
		}
		buf.DrawLine(start, end, wall)
	}
}

func TestDrawLineWithin(t *testing.T) {
	buf := NewBuffer(20, 20)
	r := image.Rect(5, 5, 10, 10)

	buf.DrawLineWithin(r, geom.Vec(0, 7), geom.Vec(19, 7), wall)

	if n := buf.Count(wall); n != 5 {
		t.Errorf("Expected 5 pixels inside the rectangle, got %d", n)
	}
	if buf.Get(4, 7) == wall || buf.Get(10, 7) == wall {
		t.Error("Expected pixels outside the rectangle to be untouched")
	}
	if buf.Get(5, 7) != wall || buf.Get(9, 7) != wall {
		t.Error("Expected pixels inside the rectangle to be drawn")
	}
}

func TestFillSpan(t *testing.T) {
	buf := NewBuffer(4, 10)

	buf.FillSpan(1, 7, 3, wall)
	for y := 0; y < 10; y++ {
		want := y >= 3 && y <= 7
		if got := buf.Get(1, y) == wall; got != want {
			t.Errorf("y=%d: expected filled=%v", y, want)
		}
	}

	buf.Clear(0)
	buf.FillSpan(2, -50, 50, wall)
	if n := buf.Count(wall); n != 10 {
		t.Errorf("Expected clamped span of 10 pixels, got %d", n)
	}

	buf.Clear(0)
	buf.FillSpan(-1, 0, 9, wall)
	buf.FillSpan(4, 0, 9, wall)
	if n := buf.Count(wall); n != 0 {
		t.Errorf("Expected no pixels for columns outside the buffer, got %d", n)
	}
}

func TestDrawRectAndClear(t *testing.T) {
	buf := NewBuffer(8, 6)
	buf.Clear(0x0000ff)
	buf.DrawRect(1, 2, 3, 2, 0)

	if n := buf.Count(0); n != 6 {
		t.Errorf("Expected 6 rect pixels, got %d", n)
	}
	if n := buf.Count(0x0000ff); n != 42 {
		t.Errorf("Expected 42 background pixels, got %d", n)
	}
	if buf.Get(1, 2) != 0 || buf.Get(3, 3) != 0 || buf.Get(4, 3) != 0x0000ff {
		t.Error("Rectangle drawn at the wrong place")
	}
}

func TestBufferImage(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.Set(2, 1, RGB(1, 2, 3))
	buf.Set(5, 5, wall)

	var img image.Image = buf
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	if img.At(2, 1) != RGB(1, 2, 3) {
		t.Errorf("Unexpected pixel %v", img.At(2, 1))
	}

	pix := buf.AppendRGBA(nil)
	if len(pix) != 3*2*4 {
		t.Fatalf("Expected %d bytes, got %d", 24, len(pix))
	}
	if !slices.Equal(pix[20:], []byte{1, 2, 3, 0xff}) {
		t.Errorf("Unexpected last pixel %v", pix[20:])
	}
}
