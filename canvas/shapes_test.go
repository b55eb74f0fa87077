// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDefaults(t *testing.T) {
	r := NewRecorder()
	Line{From: Pt(1, 2), To: Pt(3, 4)}.Draw(r)
	assert.Equal(t, []OpKind{
		OpStrokeStyle, OpLineWidth, OpBeginPath, OpMoveTo, OpLineTo, OpStroke, OpClosePath,
	}, r.Kinds())
	stroke := r.Ops[5]
	assert.Equal(t, DefaultColor, stroke.Paint)
	assert.Equal(t, DefaultLineWidth, stroke.Width)
	require.Len(t, stroke.Contours, 1)
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, stroke.Contours[0].Points)
}

func TestLineStyle(t *testing.T) {
	r := NewRecorder()
	Line{From: Pt(0, 0), To: Pt(1, 0), Paint: Color("red"), Width: 4}.Draw(r)
	assert.Equal(t, Color("red"), r.StrokeStyle())
	assert.Equal(t, 4.0, r.LineWidth())
}

func TestRectangle(t *testing.T) {
	r := NewRecorder()
	Rectangle{Min: Pt(1, 1), Max: Pt(5, 3)}.Stroke(r)
	assert.Equal(t, []OpKind{OpStrokeStyle, OpLineWidth, OpBeginPath, OpStrokeRect, OpClosePath}, r.Kinds())
	assert.Equal(t, Rect{Min: Pt(1, 1), Max: Pt(5, 3)}, r.Ops[3].Rect)

	r.Reset()
	Rectangle{Min: Pt(1, 1), Max: Pt(5, 3), Paint: Color("#0f0"), Width: 9}.Fill(r)
	assert.Equal(t, []OpKind{OpFillStyle, OpBeginPath, OpFillRect, OpClosePath}, r.Kinds())
	assert.Equal(t, Color("#0f0"), r.Ops[2].Paint)
}

func TestRoundedRectSequence(t *testing.T) {
	r := NewRecorder()
	RoundedRect{Min: Pt(10, 20), Max: Pt(110, 70), Radius: 8, Paint: Color("blue"), Width: 2}.Draw(r)
	assert.Equal(t, []OpKind{
		OpLineWidth, OpStrokeStyle, OpBeginPath, OpMoveTo,
		OpArc, OpArc, OpArc, OpArc, OpClosePath, OpStroke,
	}, r.Kinds())
	assert.Equal(t, Pt(10, 28), r.Ops[3].Point)
	for _, op := range r.Ops[4:8] {
		assert.True(t, op.CCW)
		assert.Equal(t, 8.0, op.Radius)
	}

	stroke := r.Ops[9]
	assert.Equal(t, 2.0, stroke.Width)
	require.Len(t, stroke.Contours, 1)
	c := stroke.Contours[0]
	assert.True(t, c.Closed)
	for _, p := range c.Points {
		assert.True(t, p.X >= 10-1e-9 && p.X <= 110+1e-9, "x out of bounds: %v", p)
		assert.True(t, p.Y >= 20-1e-9 && p.Y <= 70+1e-9, "y out of bounds: %v", p)
	}
}

type edge struct{ a, b Point }

// edges returns the undirected edges of a closed contour with zero length
// edges dropped.
func edges(c Contour) map[edge]bool {
	round := func(p Point) Point {
		return Pt(math.Round(p.X*1e6)/1e6, math.Round(p.Y*1e6)/1e6)
	}
	set := make(map[edge]bool)
	n := len(c.Points)
	for i := range n {
		a, b := round(c.Points[i]), round(c.Points[(i+1)%n])
		if a == b {
			continue
		}
		if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
			a, b = b, a
		}
		set[edge{a, b}] = true
	}
	return set
}

func TestRoundedRectZeroRadiusIsRectangle(t *testing.T) {
	lo, hi := Pt(4, 6), Pt(40, 30)

	rounded := NewRecorder()
	RoundedRect{Min: lo, Max: hi, Paint: Color("red"), Width: 3}.Draw(rounded)
	plain := NewRecorder()
	Rectangle{Min: lo, Max: hi, Paint: Color("red"), Width: 3}.Stroke(plain)

	var rs, ps Op
	for _, op := range rounded.Ops {
		if op.Kind == OpStroke {
			rs = op
		}
	}
	for _, op := range plain.Ops {
		if op.Kind == OpStrokeRect {
			ps = op
		}
	}
	require.Len(t, rs.Contours, 1)
	require.Len(t, ps.Contours, 1)
	assert.Equal(t, ps.Paint, rs.Paint)
	assert.Equal(t, ps.Width, rs.Width)
	assert.True(t, rs.Contours[0].Closed)
	assert.Equal(t, edges(ps.Contours[0]), edges(rs.Contours[0]))
	assert.Len(t, edges(rs.Contours[0]), 4)
}

func TestTextRotatesBack(t *testing.T) {
	r := NewRecorder()
	Text{Text: "hi", Pos: Pt(5, 6), Rotate: 0.5}.Draw(r)
	assert.Equal(t, []OpKind{OpRotate, OpFont, OpFillStyle, OpFillText, OpRotate}, r.Kinds())
	assert.Equal(t, 0.5, r.Ops[0].Angle)
	assert.Equal(t, -0.5, r.Ops[4].Angle)
	assert.Equal(t, 0.0, r.Rotation())

	txt := r.Ops[3]
	assert.Equal(t, "hi", txt.Text)
	assert.Equal(t, Pt(5, 6), txt.Point)
	assert.Equal(t, DefaultFont, txt.Font)
	assert.Equal(t, DefaultColor, txt.Paint)
	assert.Equal(t, 0.5, txt.Angle)
}

func TestImageDraw(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.NRGBA{R: 0xff, A: 0xff})

	r := NewRecorder()
	Image{Src: img, Dst: XYWH(0, 0, 16, 8), Rotate: math.Pi}.Draw(r)
	assert.Equal(t, []OpKind{OpRotate, OpDrawImage, OpRotate}, r.Kinds())
	assert.Equal(t, img.Bounds(), r.Ops[1].Src)
	assert.Equal(t, 0.0, r.Rotation())

	r.Reset()
	Image{Src: img, Trim: image.Rect(2, 0, 4, 2), Dst: XYWH(0, 0, 2, 2)}.Draw(r)
	assert.Equal(t, image.Rect(2, 0, 4, 2), r.Ops[1].Src)

	r.Reset()
	Image{Dst: XYWH(0, 0, 1, 1)}.Draw(r)
	assert.Empty(t, r.Ops)
}

func TestCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 3, color.NRGBA{G: 0xff, A: 0xff})

	assert.Same(t, img, Crop(img, image.Rectangle{}).(*image.NRGBA))

	c := Crop(img, image.Rect(2, 2, 4, 4))
	assert.Equal(t, image.Rect(0, 0, 2, 2), c.Bounds())
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, c.At(0, 1))

	c = Crop(img, image.Rect(3, 3, 10, 10))
	assert.Equal(t, image.Rect(0, 0, 1, 1), c.Bounds())
}

func TestRecorderIgnoresInvalidState(t *testing.T) {
	r := NewRecorder()
	r.SetStrokeStyle(Color("bogus"))
	r.SetLineWidth(-2)
	assert.Equal(t, DefaultColor, r.StrokeStyle())
	assert.Equal(t, 1.0, r.LineWidth())
	assert.Len(t, r.Ops, 2)
	assert.Equal(t, "strokeStyle", r.Ops[0].Kind.String())
}
