// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image"
	"image/draw"
)

// A Point is a two dimensional point in user space. The origin is the
// top left corner with the axes extending right and down.
type Point struct {
	X, Y float64
}

// A Rect is the area between Min and Max. Unlike image.Rectangle, a Rect
// is not canonicalized: Max may lie above or to the left of Min, which
// mirrors a canvas rectangle with a negative width or height.
type Rect struct {
	Min, Max Point
}

// Context is a 2D drawing surface. Its methods mirror the subset of the
// HTML canvas 2D context used by the helpers in this package.
type Context interface {
	// SetStrokeStyle sets the paint for Stroke and StrokeRect. Paints
	// that cannot be resolved are ignored.
	SetStrokeStyle(p Paint)
	// SetFillStyle sets the paint for Fill, FillRect and FillText.
	SetFillStyle(p Paint)
	// SetLineWidth sets the stroke width. Non-positive widths are ignored.
	SetLineWidth(w float64)
	SetFont(f Font)

	BeginPath()
	MoveTo(p Point)
	LineTo(p Point)
	// Arc adds a circular arc around center from the start angle to the end
	// angle, in radians. The arc runs clockwise on screen unless ccw is set.
	Arc(center Point, r, start, end float64, ccw bool)
	ClosePath()
	Stroke()
	Fill()

	// StrokeRect and FillRect draw r without touching the current path.
	StrokeRect(r Rect)
	FillRect(r Rect)
	// FillText draws txt with its alphabetic baseline at p.
	FillText(txt string, p Point)
	// DrawImage draws the src rectangle of img scaled into dst.
	DrawImage(img image.Image, src image.Rectangle, dst Rect)
	// Rotate rotates the coordinate system clockwise by angle radians.
	Rotate(angle float64)
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// XYWH returns the rectangle with its corner at (x, y) and the given
// width and height.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Dx returns r's width. It is negative if Max lies left of Min.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height. It is negative if Max lies above Min.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Dx() == 0 || r.Dy() == 0
}

// Crop returns the r portion of img as an image whose bounds start at the
// origin. An empty r selects the whole image. Images that already satisfy
// this are returned unchanged.
func Crop(img image.Image, r image.Rectangle) image.Image {
	b := img.Bounds()
	if r.Empty() {
		r = b
	}
	r = r.Intersect(b)
	if r == b && b.Min == (image.Point{}) {
		return img
	}
	dst := image.NewNRGBA(image.Rectangle{Max: r.Size()})
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
