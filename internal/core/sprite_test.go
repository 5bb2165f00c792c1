package core

import "testing"

func TestFrameSize(t *testing.T) {
	f := Frame{Rows: []string{" o ", "/|\\", "/ \\"}}
	w, h := f.Size()
	if w != 3*GlyphW || h != 3*GlyphH {
		t.Errorf("Size() = (%v, %v), expected (%v, %v)", w, h, 3*GlyphW, 3*GlyphH)
	}
	if f.Opaque(0, 0) {
		t.Error("space should be transparent")
	}
	if !f.Opaque(1, 0) {
		t.Error("'o' should be opaque")
	}
	if f.Opaque(9, 9) {
		t.Error("cells outside the frame are transparent")
	}
}

func TestAnimationFrameWraps(t *testing.T) {
	a := Animation{{Rows: []string{"a"}}, {Rows: []string{"b"}}}
	if a.Frame(3).Rows[0] != "b" {
		t.Errorf("Frame(3) = %q, expected b", a.Frame(3).Rows[0])
	}
	if len(Animation{}.Frame(2).Rows) != 0 {
		t.Error("empty animation should yield an empty frame")
	}
}

func TestBodyRectKeepsCenterAcrossFrames(t *testing.T) {
	small := Body{Frame: Frame{Rows: []string{"x"}}, Center: V(100, 100)}
	large := Body{Frame: Frame{Rows: []string{"xxx", "xxx"}}, Center: V(100, 100), Scale: 2}

	if small.Rect().Center() != large.Rect().Center() {
		t.Errorf("centers differ: %+v vs %+v", small.Rect().Center(), large.Rect().Center())
	}
	if large.Rect().W != 3*GlyphW*2 {
		t.Errorf("scaled width = %v, expected %v", large.Rect().W, 3*GlyphW*2)
	}
}

func TestBodyMaskOverlaps(t *testing.T) {
	// Hollow ring: bounding boxes overlap a dot in the middle, masks do not.
	ring := Body{Frame: Frame{Rows: []string{"###", "# #", "###"}}, Center: V(0, 0)}
	dot := Body{Frame: Frame{Rows: []string{"."}}, Center: V(0, 0), Scale: 0.5}

	if !ring.Overlaps(dot) {
		t.Fatal("bounding boxes should overlap")
	}
	if ring.MaskOverlaps(dot) {
		t.Error("dot inside the hole should not overlap the ring mask")
	}

	dot.Center = V(GlyphW, 0)
	if !ring.MaskOverlaps(dot) {
		t.Error("dot on the ring's right column should overlap")
	}
}

func TestBodyMaskMirror(t *testing.T) {
	// Only the left column is opaque; mirrored it becomes the right column.
	flag := Body{Frame: Frame{Rows: []string{"#  "}}, Center: V(0, 0)}
	probe := Body{Frame: Frame{Rows: []string{"#"}}, Center: V(GlyphW, 0), Scale: 0.5}

	if flag.MaskOverlaps(probe) {
		t.Error("unmirrored flag should not reach the right column")
	}
	flag.Mirror = true
	if !flag.MaskOverlaps(probe) {
		t.Error("mirrored flag should cover the right column")
	}
}
