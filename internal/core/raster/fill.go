package raster

// DrawRect fills the w x h rectangle whose top-left corner is (x, y). The
// caller guarantees the rectangle lies inside the buffer.
func (b *Buffer) DrawRect(x, y, w, h int, c Color) {
	for row := y; row < y+h; row++ {
		start := row*b.Width + x
		span := b.Pix[start : start+w]
		for i := range span {
			span[i] = c
		}
	}
}

// FillSpan fills column x from min(y1, y2) to max(y1, y2) inclusive. The
// span is clamped to the buffer; a column outside the buffer is a no-op.
func (b *Buffer) FillSpan(x, y1, y2 int, c Color) {
	if x < 0 || x >= b.Width {
		return
	}
	top := max(min(y1, y2), 0)
	bottom := min(max(y1, y2), b.Height-1)
	for y := top; y <= bottom; y++ {
		b.Pix[y*b.Width+x] = c
	}
}
