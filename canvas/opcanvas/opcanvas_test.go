// SPDX-License-Identifier: Unlicense OR MIT

package opcanvas

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"

	"gioui.org/canvaskit/canvas"
)

func newContext() layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 200)),
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
	}
}

func TestDrawHelpers(t *testing.T) {
	gtx := newContext()
	sh := text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	c := New(gtx, sh)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	assert.NotPanics(t, func() {
		canvas.Line{From: canvas.Pt(0, 0), To: canvas.Pt(50, 50)}.Draw(c)
		canvas.Rectangle{Min: canvas.Pt(10, 10), Max: canvas.Pt(40, 30), Paint: canvas.Color("red")}.Stroke(c)
		canvas.Rectangle{Min: canvas.Pt(40, 30), Max: canvas.Pt(10, 10), Paint: canvas.Color("#0f08")}.Fill(c)
		canvas.RoundedRect{Min: canvas.Pt(5, 5), Max: canvas.Pt(95, 45), Radius: 10, Width: 3}.Draw(c)
		canvas.RoundedRect{Min: canvas.Pt(5, 5), Max: canvas.Pt(95, 45)}.Draw(c)
		canvas.Text{Text: "canvas", Pos: canvas.Pt(20, 80), Rotate: math.Pi / 8}.Draw(c)
		canvas.Text{Text: "", Pos: canvas.Pt(20, 80)}.Draw(c)
		canvas.Image{Src: img, Dst: canvas.XYWH(100, 100, 32, 32), Rotate: 0.3}.Draw(c)
		canvas.Image{Src: img, Trim: image.Rect(2, 2, 6, 6), Dst: canvas.XYWH(0, 100, 16, 16)}.Draw(c)
	})
	p := c.transform.Transform(f32.Pt(10, 20))
	assert.InDelta(t, 10, p.X, 1e-4)
	assert.InDelta(t, 20, p.Y, 1e-4)
}

func TestGradientPaths(t *testing.T) {
	gtx := newContext()
	c := New(gtx, nil)
	grad := canvas.LinearGradient{
		From:  canvas.Pt(0, 0),
		To:    canvas.Pt(100, 0),
		Stops: []canvas.GradientStop{{Offset: 0, Color: "red"}, {Offset: 1, Color: "blue"}},
	}
	assert.NotPanics(t, func() {
		c.SetFillStyle(grad)
		c.BeginPath()
		c.Arc(canvas.Pt(50, 50), 20, 0, 2*math.Pi, false)
		c.Fill()
		c.SetStrokeStyle(grad)
		c.Stroke()
		c.BeginPath()
		c.Stroke()
		c.Fill()
		c.FillText("no shaper", canvas.Pt(0, 0))
	})
	assert.Equal(t, grad, c.fill)
	c.SetFillStyle(canvas.Color("not a color"))
	assert.Equal(t, grad, c.fill)
}

func TestImageOpsCache(t *testing.T) {
	gtx := newContext()
	c := New(gtx, nil)
	c.Images = NewImageOps(2)
	a := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	b := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	d := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	dst := canvas.XYWH(0, 0, 4, 4)

	c.DrawImage(a, a.Bounds(), dst)
	c.DrawImage(a, a.Bounds(), dst)
	assert.Equal(t, 1, c.Images.Len())
	c.DrawImage(a, image.Rect(0, 0, 2, 2), dst)
	assert.Equal(t, 2, c.Images.Len())
	c.DrawImage(b, b.Bounds(), dst)
	c.DrawImage(d, d.Bounds(), dst)
	assert.Equal(t, 2, c.Images.Len())

	var nilOps *ImageOps
	assert.Equal(t, 0, nilOps.Len())
}

func TestFontFor(t *testing.T) {
	assert.Equal(t, font.Font{}, fontFor(canvas.Font{Family: "serif", Size: 18}))
	f := fontFor(canvas.Font{Family: "monospace", Size: 12, Weight: 700, Italic: true})
	assert.Equal(t, font.Typeface("Go Mono"), f.Typeface)
	assert.Equal(t, font.Italic, f.Style)
	assert.Equal(t, font.Bold, f.Weight)
}

func TestTextSize(t *testing.T) {
	c := New(newContext(), nil)
	c.SetFont(canvas.Font{Family: "serif", Size: 18})
	assert.Equal(t, unit.Sp(9), c.textSize())

	c = New(layout.Context{Ops: new(op.Ops)}, nil)
	c.SetFont(canvas.Font{Size: 12})
	assert.Equal(t, unit.Sp(12), c.textSize())
}
