// Package raster draws into a flat, row-major software frame buffer.
//
// Every write goes through a bounds check or is issued with coordinates
// that the caller has already clipped, so the buffer never panics on an
// out-of-range index.
package raster

import (
	"image"
	"image/color"
)

// Color is a packed 0xRRGGBB value. It is always opaque.
type Color uint32

// RGB packs three 8-bit channels
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels unpacks the color
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// Buffer is the per-frame pixel buffer
type Buffer struct {
	Width, Height int
	Pix           []Color
}

// NewBuffer allocates a width x height buffer filled with black
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// InBounds reports whether (x, y) addresses a pixel of the buffer
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes one pixel, ignoring coordinates outside the buffer
func (b *Buffer) Set(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// Get returns the pixel at (x, y), or 0 outside the buffer
func (b *Buffer) Get(x, y int) Color {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Clear fills the whole buffer with c
func (b *Buffer) Clear(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// Count returns how many pixels hold c
func (b *Buffer) Count(c Color) int {
	n := 0
	for _, p := range b.Pix {
		if p == c {
			n++
		}
	}
	return n
}

// AppendRGBA appends the buffer as 8-bit RGBA quadruplets, the layout
// expected by WritePixels style presentation APIs.
func (b *Buffer) AppendRGBA(dst []byte) []byte {
	for _, p := range b.Pix {
		r, g, bl := p.Channels()
		dst = append(dst, r, g, bl, 0xff)
	}
	return dst
}

// ColorModel implements image.Image
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image
func (b *Buffer) At(x, y int) color.Color {
	return b.Get(x, y)
}
