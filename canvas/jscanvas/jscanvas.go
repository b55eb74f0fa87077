// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package jscanvas

import (
	"image"
	"image/draw"
	"syscall/js"

	"gioui.org/canvaskit/canvas"
)

// Canvas forwards drawing calls to a 2D rendering context.
type Canvas struct {
	ctx js.Value
}

var _ canvas.Context = (*Canvas)(nil)

// New wraps a CanvasRenderingContext2D.
func New(ctx js.Value) *Canvas {
	return &Canvas{ctx: ctx}
}

// FromElement wraps the 2D context of a canvas element.
func FromElement(el js.Value) *Canvas {
	return New(el.Call("getContext", "2d"))
}

// Value returns the wrapped rendering context.
func (c *Canvas) Value() js.Value {
	return c.ctx
}

// Resize returns a new w×h canvas element with src scaled to cover it.
func Resize(src js.Value, w, h int) js.Value {
	el := newElement(w, h)
	el.Call("getContext", "2d").Call("drawImage", src, 0, 0, w, h)
	return el
}

func newElement(w, h int) js.Value {
	el := js.Global().Get("document").Call("createElement", "canvas")
	el.Set("width", w)
	el.Set("height", h)
	return el
}

func (c *Canvas) style(p canvas.Paint) (any, bool) {
	if !canvas.Valid(p) {
		return nil, false
	}
	switch p := p.(type) {
	case canvas.Color:
		return string(p), true
	case canvas.LinearGradient:
		g := c.ctx.Call("createLinearGradient", p.From.X, p.From.Y, p.To.X, p.To.Y)
		for _, s := range p.Stops {
			g.Call("addColorStop", s.Offset, string(s.Color))
		}
		return g, true
	}
	return nil, false
}

func (c *Canvas) SetStrokeStyle(p canvas.Paint) {
	if s, ok := c.style(p); ok {
		c.ctx.Set("strokeStyle", s)
	}
}

func (c *Canvas) SetFillStyle(p canvas.Paint) {
	if s, ok := c.style(p); ok {
		c.ctx.Set("fillStyle", s)
	}
}

func (c *Canvas) SetLineWidth(w float64) {
	c.ctx.Set("lineWidth", w)
}

func (c *Canvas) SetFont(f canvas.Font) {
	c.ctx.Set("font", f.String())
}

func (c *Canvas) BeginPath() {
	c.ctx.Call("beginPath")
}

func (c *Canvas) MoveTo(p canvas.Point) {
	c.ctx.Call("moveTo", p.X, p.Y)
}

func (c *Canvas) LineTo(p canvas.Point) {
	c.ctx.Call("lineTo", p.X, p.Y)
}

func (c *Canvas) Arc(center canvas.Point, r, start, end float64, ccw bool) {
	if r < 0 {
		return
	}
	c.ctx.Call("arc", center.X, center.Y, r, start, end, ccw)
}

func (c *Canvas) ClosePath() {
	c.ctx.Call("closePath")
}

func (c *Canvas) Stroke() {
	c.ctx.Call("stroke")
}

func (c *Canvas) Fill() {
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeRect(r canvas.Rect) {
	c.ctx.Call("strokeRect", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (c *Canvas) FillRect(r canvas.Rect) {
	c.ctx.Call("fillRect", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (c *Canvas) FillText(txt string, p canvas.Point) {
	c.ctx.Call("fillText", txt, p.X, p.Y)
}

func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst canvas.Rect) {
	img = canvas.Crop(img, src)
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	c.ctx.Call("drawImage", element(img), 0, 0, sz.X, sz.Y, dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy())
}

func (c *Canvas) Rotate(angle float64) {
	c.ctx.Call("rotate", angle)
}

// element copies img into an offscreen canvas element.
func element(img image.Image) js.Value {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rectangle{Max: b.Size()})
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	el := newElement(b.Dx(), b.Dy())
	ctx := el.Call("getContext", "2d")
	data := ctx.Call("createImageData", b.Dx(), b.Dy())
	js.CopyBytesToJS(data.Get("data"), nrgba.Pix)
	ctx.Call("putImageData", data, 0, 0)
	return el
}
