package core

// Every glyph cell of a sprite frame covers GlyphW x GlyphH world units.
// Terminal cells are roughly twice as tall as they are wide.
const (
	GlyphW = 12.0
	GlyphH = 24.0
)

// Frame is one animation image made of terminal runes. Spaces are transparent
// and the remaining cells form the frame's collision mask.
type Frame struct {
	Rows []string
}

// Cols returns the width of the widest row in glyphs.
func (f Frame) Cols() int {
	cols := 0
	for _, row := range f.Rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols
}

// Size returns the frame size in world units at scale 1.
func (f Frame) Size() (w, h float64) {
	return float64(f.Cols()) * GlyphW, float64(len(f.Rows)) * GlyphH
}

// At returns the rune at the given glyph cell, or a space outside the frame.
func (f Frame) At(col, row int) rune {
	if row < 0 || row >= len(f.Rows) || col < 0 {
		return ' '
	}
	runes := []rune(f.Rows[row])
	if col >= len(runes) {
		return ' '
	}
	return runes[col]
}

// Opaque reports whether the glyph cell belongs to the mask.
func (f Frame) Opaque(col, row int) bool {
	return f.At(col, row) != ' '
}

// Animation is an ordered list of frames.
type Animation []Frame

// Frame returns frame i wrapped to the animation length.
func (a Animation) Frame(i int) Frame {
	if len(a) == 0 {
		return Frame{}
	}
	if i < 0 {
		i = -i
	}
	return a[i%len(a)]
}

// Body is a frame placed in the world: centered on Center, scaled and
// optionally mirrored horizontally.
type Body struct {
	Frame  Frame
	Center Vec2
	Scale  float64
	Mirror bool
}

func (b Body) scale() float64 {
	if b.Scale <= 0 {
		return 1
	}
	return b.Scale
}

// Rect returns the bounding box of the body. The box is always centered on
// Center, so frames of different sizes keep the same center.
func (b Body) Rect() Rect {
	w, h := b.Frame.Size()
	s := b.scale()
	return CenteredRect(b.Center, w*s, h*s)
}

// cellRect returns the world rectangle covered by a glyph cell.
func (b Body) cellRect(col, row int) Rect {
	r := b.Rect()
	s := b.scale()
	return Rect{
		X: r.X + float64(col)*GlyphW*s,
		Y: r.Y + float64(row)*GlyphH*s,
		W: GlyphW * s,
		H: GlyphH * s,
	}
}

func (b Body) opaque(col, row int) bool {
	if b.Mirror {
		col = b.Frame.Cols() - 1 - col
	}
	return b.Frame.Opaque(col, row)
}

// Overlaps reports bounding-box overlap.
func (b Body) Overlaps(o Body) bool {
	return b.Rect().Intersects(o.Rect())
}

// MaskOverlaps reports whether any opaque cell of b overlaps an opaque cell
// of o.
func (b Body) MaskOverlaps(o Body) bool {
	shared := b.Rect().Intersection(o.Rect())
	if shared.Empty() {
		return false
	}
	cols, rows := b.Frame.Cols(), len(b.Frame.Rows)
	ocols, orows := o.Frame.Cols(), len(o.Frame.Rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !b.opaque(col, row) {
				continue
			}
			cell := b.cellRect(col, row)
			if !cell.Intersects(shared) {
				continue
			}
			for orow := 0; orow < orows; orow++ {
				for ocol := 0; ocol < ocols; ocol++ {
					if o.opaque(ocol, orow) && cell.Intersects(o.cellRect(ocol, orow)) {
						return true
					}
				}
			}
		}
	}
	return false
}
