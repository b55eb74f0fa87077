// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image"
	"math"
)

// DefaultLineWidth is the stroke width used when a shape leaves Width unset.
const DefaultLineWidth = 1.0

// Line is a straight line segment.
type Line struct {
	From, To Point
	Paint    Paint
	Width    float64
}

// Rectangle is an axis aligned rectangle given by two opposite corners.
type Rectangle struct {
	// Min is the top left corner and Max the bottom right one.
	Min, Max Point
	Paint    Paint
	Width    float64
}

// RoundedRect is a rectangle whose corners are quarter circles of the
// same radius.
type RoundedRect struct {
	Min, Max Point
	Radius   float64
	Paint    Paint
	Width    float64
}

// Text is a string drawn in a rotated coordinate system.
type Text struct {
	Text string
	// Pos is the start of the alphabetic baseline, in the rotated system.
	Pos    Point
	Font   Font
	Paint  Paint
	Rotate float64
}

// Image is an image, or a trimmed part of one, drawn scaled into Dst in
// a rotated coordinate system.
type Image struct {
	Src image.Image
	// Trim selects the part of Src to draw. The zero Trim draws all of Src.
	Trim   image.Rectangle
	Dst    Rect
	Rotate float64
}

func lineWidth(w float64) float64 {
	if w <= 0 || math.IsNaN(w) {
		return DefaultLineWidth
	}
	return w
}

// Draw strokes the line.
func (l Line) Draw(c Context) {
	c.SetStrokeStyle(paintOr(l.Paint))
	c.SetLineWidth(lineWidth(l.Width))
	c.BeginPath()
	c.MoveTo(l.From)
	c.LineTo(l.To)
	c.Stroke()
	c.ClosePath()
}

// Stroke strokes the outline of the rectangle.
func (r Rectangle) Stroke(c Context) {
	c.SetStrokeStyle(paintOr(r.Paint))
	c.SetLineWidth(lineWidth(r.Width))
	c.BeginPath()
	c.StrokeRect(Rect{Min: r.Min, Max: r.Max})
	c.ClosePath()
}

// Fill fills the rectangle. Width is ignored.
func (r Rectangle) Fill(c Context) {
	c.SetFillStyle(paintOr(r.Paint))
	c.BeginPath()
	c.FillRect(Rect{Min: r.Min, Max: r.Max})
	c.ClosePath()
}

// Draw strokes the outline. The path starts on the left edge and runs
// counter clockwise through the bottom left, bottom right, top right and
// top left corners.
func (rr RoundedRect) Draw(c Context) {
	x, y := rr.Min.X, rr.Min.Y
	w, h := rr.Max.X-x, rr.Max.Y-y
	r := rr.Radius
	c.SetLineWidth(lineWidth(rr.Width))
	c.SetStrokeStyle(paintOr(rr.Paint))
	c.BeginPath()
	c.MoveTo(Pt(x, y+r))
	c.Arc(Pt(x+r, y+h-r), r, math.Pi, math.Pi*0.5, true)
	c.Arc(Pt(x+w-r, y+h-r), r, math.Pi*0.5, 0, true)
	c.Arc(Pt(x+w-r, y+r), r, 0, math.Pi*1.5, true)
	c.Arc(Pt(x+r, y+r), r, math.Pi*1.5, math.Pi, true)
	c.ClosePath()
	c.Stroke()
}

// Draw fills the text. The rotation is undone by rotating back, not by
// restoring a saved transform.
func (t Text) Draw(c Context) {
	c.Rotate(t.Rotate)
	c.SetFont(t.Font.OrDefault())
	c.SetFillStyle(paintOr(t.Paint))
	c.FillText(t.Text, t.Pos)
	c.Rotate(-t.Rotate)
}

// Draw draws the image. A nil Src draws nothing.
func (im Image) Draw(c Context) {
	if im.Src == nil {
		return
	}
	src := im.Trim
	if src.Empty() {
		src = im.Src.Bounds()
	}
	c.Rotate(im.Rotate)
	c.DrawImage(im.Src, src, im.Dst)
	c.Rotate(-im.Rotate)
}
