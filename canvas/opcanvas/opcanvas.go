// SPDX-License-Identifier: Unlicense OR MIT

// Package opcanvas implements a canvas.Context that records Gio clip,
// paint and transform operations into a layout context.
package opcanvas

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"gioui.org/canvaskit/canvas"
)

// Canvas draws into the operation list of a layout context. A Canvas is
// meant to live for a single frame; keep an ImageOps across frames to
// avoid re-uploading images.
type Canvas struct {
	canvas.Path

	// Images, if set, caches image operations between frames.
	Images *ImageOps

	gtx       layout.Context
	shaper    *text.Shaper
	transform f32.Affine2D

	stroke, fill canvas.Paint
	width        float32
	font         canvas.Font
}

var _ canvas.Context = (*Canvas)(nil)

// maxTextSize bounds the space text is laid out in.
const maxTextSize = 1 << 20

// New returns a Canvas drawing into gtx.Ops with the origin at the
// current offset. Text is shaped with sh.
func New(gtx layout.Context, sh *text.Shaper) *Canvas {
	return &Canvas{
		gtx:    gtx,
		shaper: sh,
		stroke: canvas.DefaultColor,
		fill:   canvas.DefaultColor,
		width:  1,
		font:   canvas.Font{Family: "sans-serif", Size: 10},
	}
}

func (c *Canvas) SetStrokeStyle(p canvas.Paint) {
	if canvas.Valid(p) {
		c.stroke = p
	}
}

func (c *Canvas) SetFillStyle(p canvas.Paint) {
	if canvas.Valid(p) {
		c.fill = p
	}
}

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.width = float32(w)
	}
}

func (c *Canvas) SetFont(f canvas.Font) {
	c.font = f.OrDefault()
}

func (c *Canvas) Rotate(angle float64) {
	c.transform = c.transform.Mul(f32.Affine2D{}.Rotate(f32.Point{}, float32(angle)))
}

func pt(p canvas.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

// pathSpec converts the current path. It reports false for paths without
// any drawn segment.
func (c *Canvas) pathSpec() (clip.PathSpec, bool) {
	var p clip.Path
	p.Begin(c.gtx.Ops)
	drawn := false
	for _, s := range c.Segments() {
		switch s.Kind {
		case canvas.MoveSeg:
			p.MoveTo(pt(s.To))
		case canvas.LineSeg:
			p.LineTo(pt(s.To))
			drawn = true
		case canvas.ArcSeg:
			center := pt(s.Center)
			p.ArcTo(center, center, float32(s.Sweep))
			drawn = true
		case canvas.CloseSeg:
			p.Close()
		}
	}
	return p.End(), drawn
}

func (c *Canvas) rectSpec(r canvas.Rect) clip.PathSpec {
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(pt(r.Min))
	p.LineTo(f32.Pt(float32(r.Max.X), float32(r.Min.Y)))
	p.LineTo(pt(r.Max))
	p.LineTo(f32.Pt(float32(r.Min.X), float32(r.Max.Y)))
	p.Close()
	return p.End()
}

// paint fills the current clip area with p.
func (c *Canvas) paint(p canvas.Paint) {
	ops := c.gtx.Ops
	switch p := p.(type) {
	case canvas.Color:
		col, _ := p.NRGBA()
		paint.ColorOp{Color: col}.Add(ops)
	case canvas.LinearGradient:
		first, _ := p.Stops[0].Color.NRGBA()
		last, _ := p.Stops[len(p.Stops)-1].Color.NRGBA()
		paint.LinearGradientOp{
			Stop1:  pt(p.From),
			Stop2:  pt(p.To),
			Color1: first,
			Color2: last,
		}.Add(ops)
	default:
		return
	}
	paint.PaintOp{}.Add(ops)
}

func (c *Canvas) Stroke() {
	defer op.Affine(c.transform).Push(c.gtx.Ops).Pop()
	spec, ok := c.pathSpec()
	if !ok {
		return
	}
	defer clip.Stroke{Path: spec, Width: c.width}.Op().Push(c.gtx.Ops).Pop()
	c.paint(c.stroke)
}

func (c *Canvas) Fill() {
	defer op.Affine(c.transform).Push(c.gtx.Ops).Pop()
	spec, ok := c.pathSpec()
	if !ok {
		return
	}
	defer clip.Outline{Path: spec}.Op().Push(c.gtx.Ops).Pop()
	c.paint(c.fill)
}

func (c *Canvas) StrokeRect(r canvas.Rect) {
	defer op.Affine(c.transform).Push(c.gtx.Ops).Pop()
	defer clip.Stroke{Path: c.rectSpec(r), Width: c.width}.Op().Push(c.gtx.Ops).Pop()
	c.paint(c.stroke)
}

func (c *Canvas) FillRect(r canvas.Rect) {
	if r.Empty() {
		return
	}
	defer op.Affine(c.transform).Push(c.gtx.Ops).Pop()
	defer clip.Outline{Path: c.rectSpec(r)}.Op().Push(c.gtx.Ops).Pop()
	c.paint(c.fill)
}

func (c *Canvas) FillText(txt string, p canvas.Point) {
	if c.shaper == nil || txt == "" {
		return
	}
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxTextSize, maxTextSize)}

	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: textColor(c.fill)}.Add(gtx.Ops)
	material := m.Stop()

	m = op.Record(gtx.Ops)
	dims := widget.Label{MaxLines: 1}.Layout(gtx, c.shaper, fontFor(c.font), c.textSize(), txt, material)
	call := m.Stop()

	// Label lays out from the top of the line; move its baseline to p.
	top := p.Sub(canvas.Pt(0, float64(dims.Size.Y-dims.Baseline)))
	defer op.Affine(c.transform.Mul(f32.Affine2D{}.Offset(pt(top)))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func (c *Canvas) textSize() unit.Sp {
	pxPerSp := c.gtx.Metric.PxPerSp
	if pxPerSp == 0 {
		pxPerSp = 1
	}
	return unit.Sp(float32(c.font.Size) / pxPerSp)
}

func textColor(p canvas.Paint) color.NRGBA {
	switch p := p.(type) {
	case canvas.Color:
		col, _ := p.NRGBA()
		return col
	case canvas.LinearGradient:
		col, _ := p.Stops[0].Color.NRGBA()
		return col
	}
	return color.NRGBA{A: 0xff}
}

// fontFor maps a CSS font to the Go fonts: monospace families select Go
// Mono, everything else the proportional Go typeface.
func fontFor(f canvas.Font) font.Font {
	var gf font.Font
	family := strings.ToLower(f.Family)
	if family == "monospace" || strings.Contains(family, "mono") {
		gf.Typeface = "Go Mono"
	}
	if f.Italic {
		gf.Style = font.Italic
	}
	if f.Weight != 0 {
		gf.Weight = font.Weight(f.Weight - 400)
	}
	return gf
}

func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst canvas.Rect) {
	if src.Empty() {
		src = img.Bounds()
	}
	src = src.Intersect(img.Bounds())
	sz := src.Size()
	if sz.X == 0 || sz.Y == 0 || dst.Empty() {
		return
	}
	ops := c.gtx.Ops
	scale := f32.Pt(float32(dst.Dx()/float64(sz.X)), float32(dst.Dy()/float64(sz.Y)))
	local := f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(pt(dst.Min))
	defer op.Affine(c.transform.Mul(local)).Push(ops).Pop()
	defer clip.Rect{Max: sz}.Push(ops).Pop()
	c.Images.op(img, src).Add(ops)
	paint.PaintOp{}.Add(ops)
}
