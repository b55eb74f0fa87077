// SPDX-License-Identifier: Unlicense OR MIT

// Package raster implements a canvas.Context that draws into an image
// in memory.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"gioui.org/canvaskit/canvas"
)

// Canvas is a software drawing surface. Paths are transformed when they
// are stroked or filled, not when they are built, so rotations should
// bracket complete draw calls the way the canvas helpers do.
type Canvas struct {
	canvas.Path

	dc   *gg.Context
	font canvas.Font
	// fill is the resolved fill color used for text.
	fill color.NRGBA
}

var _ canvas.Context = (*Canvas)(nil)

// New returns a transparent canvas of the given size. Negative sizes are
// treated as zero.
func New(w, h int) *Canvas {
	return newCanvas(gg.NewContext(max(w, 0), max(h, 0)))
}

// FromImage returns a canvas initialized with a copy of img.
func FromImage(img image.Image) *Canvas {
	return newCanvas(gg.NewContextForImage(canvas.Crop(img, image.Rectangle{})))
}

func newCanvas(dc *gg.Context) *Canvas {
	c := &Canvas{
		dc:   dc,
		font: canvas.Font{Family: "sans-serif", Size: 10},
		fill: color.NRGBA{A: 0xff},
	}
	dc.SetColor(c.fill)
	dc.SetLineWidth(1)
	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() image.Point {
	return image.Pt(c.dc.Width(), c.dc.Height())
}

// Image returns the canvas pixels. The image is shared with the canvas.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Clear fills the whole canvas with col, ignoring the current transform.
func (c *Canvas) Clear(col color.Color) {
	c.dc.Push()
	c.dc.SetColor(col)
	c.dc.Clear()
	c.dc.Pop()
}

func (c *Canvas) pattern(p canvas.Paint) (gg.Pattern, bool) {
	switch p := p.(type) {
	case canvas.Color:
		col, ok := p.NRGBA()
		if !ok {
			return nil, false
		}
		return gg.NewSolidPattern(col), true
	case canvas.LinearGradient:
		if !canvas.Valid(p) {
			return nil, false
		}
		g := gg.NewLinearGradient(p.From.X, p.From.Y, p.To.X, p.To.Y)
		for _, s := range p.Stops {
			col, _ := s.Color.NRGBA()
			g.AddColorStop(s.Offset, col)
		}
		return g, true
	}
	return nil, false
}

func (c *Canvas) SetStrokeStyle(p canvas.Paint) {
	if pat, ok := c.pattern(p); ok {
		c.dc.SetStrokeStyle(pat)
	}
}

func (c *Canvas) SetFillStyle(p canvas.Paint) {
	pat, ok := c.pattern(p)
	if !ok {
		return
	}
	c.dc.SetFillStyle(pat)
	switch p := p.(type) {
	case canvas.Color:
		c.fill, _ = p.NRGBA()
	case canvas.LinearGradient:
		c.fill, _ = p.Stops[0].Color.NRGBA()
	}
}

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.dc.SetLineWidth(w)
	}
}

func (c *Canvas) SetFont(f canvas.Font) {
	c.font = f.OrDefault()
}

// replay rebuilds the current path in the gg context. Zero length lines
// are skipped.
func (c *Canvas) replay() {
	c.dc.ClearPath()
	var pen canvas.Point
	for _, s := range c.Segments() {
		switch s.Kind {
		case canvas.MoveSeg:
			c.dc.MoveTo(s.To.X, s.To.Y)
		case canvas.LineSeg:
			if s.To == pen {
				continue
			}
			c.dc.LineTo(s.To.X, s.To.Y)
		case canvas.ArcSeg:
			c.dc.DrawArc(s.Center.X, s.Center.Y, s.Radius, s.Start, s.Start+s.Sweep)
		case canvas.CloseSeg:
			c.dc.ClosePath()
		}
		pen = s.To
	}
}

func (c *Canvas) Stroke() {
	c.replay()
	c.dc.Stroke()
}

func (c *Canvas) Fill() {
	c.replay()
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(r canvas.Rect) {
	c.dc.ClearPath()
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	c.dc.Stroke()
}

func (c *Canvas) FillRect(r canvas.Rect) {
	c.dc.ClearPath()
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	c.dc.Fill()
}

func (c *Canvas) FillText(txt string, p canvas.Point) {
	face, err := faceFor(c.font)
	if err != nil {
		return
	}
	c.dc.Push()
	c.dc.SetFontFace(face)
	c.dc.SetColor(c.fill)
	c.dc.DrawString(txt, p.X, p.Y)
	c.dc.Pop()
}

func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst canvas.Rect) {
	img = canvas.Crop(img, src)
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 || dst.Empty() {
		return
	}
	c.dc.Push()
	c.dc.Translate(dst.Min.X, dst.Min.Y)
	c.dc.Scale(dst.Dx()/float64(sz.X), dst.Dy()/float64(sz.Y))
	c.dc.DrawImage(img, 0, 0)
	c.dc.Pop()
}

func (c *Canvas) Rotate(angle float64) {
	c.dc.Rotate(angle)
}
