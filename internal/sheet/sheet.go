// SPDX-License-Identifier: Unlicense OR MIT

// Package sheet draws a sample sheet exercising every canvas helper. The
// command line tool renders it to PNG and the demo window draws it live.
package sheet

import (
	"image"
	"math"

	"gioui.org/canvaskit/canvas"
)

// Options customize the sheet.
type Options struct {
	// Size is the sheet size in pixels.
	Size canvas.Point
	// Background fills the sheet. Nil means a light gray.
	Background canvas.Paint
	// Stroke is the outline color. Nil means black.
	Stroke canvas.Paint
	Title  string
	// Image, if set, is drawn in the image slot.
	Image image.Image
}

// ImageSlot returns the rectangle the sheet reserves for an image.
func ImageSlot(size canvas.Point) canvas.Rect {
	w, h := size.X, size.Y
	return canvas.XYWH(w*0.55, h*0.3, w*0.4, h*0.5)
}

// Draw draws the sheet.
func Draw(c canvas.Context, o Options) {
	w, h := o.Size.X, o.Size.Y
	if w <= 0 || h <= 0 {
		return
	}
	bg := o.Background
	if bg == nil {
		bg = canvas.Color("#fafafa")
	}
	canvas.Rectangle{Max: o.Size, Paint: bg}.Fill(c)

	// Grid.
	const step = 40.0
	for x := step; x < w; x += step {
		canvas.Line{From: canvas.Pt(x, 0), To: canvas.Pt(x, h), Paint: canvas.Color("#e0e0e0")}.Draw(c)
	}
	for y := step; y < h; y += step {
		canvas.Line{From: canvas.Pt(0, y), To: canvas.Pt(w, y), Paint: canvas.Color("#e0e0e0")}.Draw(c)
	}

	canvas.Rectangle{
		Min: canvas.Pt(w*0.05, h*0.3),
		Max: canvas.Pt(w*0.45, h*0.55),
		Paint: canvas.LinearGradient{
			From: canvas.Pt(w*0.05, 0),
			To:   canvas.Pt(w*0.45, 0),
			Stops: []canvas.GradientStop{
				{Offset: 0, Color: "#3f51b5"},
				{Offset: 1, Color: "#e91e63"},
			},
		},
	}.Fill(c)
	canvas.RoundedRect{
		Min:    canvas.Pt(w*0.05, h*0.6),
		Max:    canvas.Pt(w*0.45, h*0.8),
		Radius: math.Min(w, h) * 0.04,
		Paint:  o.Stroke,
		Width:  3,
	}.Draw(c)
	canvas.Rectangle{
		Min:   canvas.Pt(w*0.05, h*0.85),
		Max:   canvas.Pt(w*0.45, h*0.95),
		Paint: o.Stroke,
		Width: 2,
	}.Stroke(c)

	// Filled circle through the path methods.
	c.SetFillStyle(canvas.Color("#ff9800"))
	c.BeginPath()
	c.Arc(canvas.Pt(w*0.85, h*0.15), math.Min(w, h)*0.08, 0, 2*math.Pi, false)
	c.Fill()

	title := o.Title
	if title == "" {
		title = "canvaskit"
	}
	canvas.Text{
		Text:  title,
		Pos:   canvas.Pt(w*0.05, h*0.15),
		Font:  canvas.Font{Family: "sans-serif", Size: math.Max(12, h*0.08), Weight: 700},
		Paint: o.Stroke,
	}.Draw(c)
	canvas.Text{
		Text:   "rotated",
		Pos:    canvas.Pt(w*0.3, h*0.05),
		Font:   canvas.Font{Family: "monospace", Size: 14, Italic: true},
		Rotate: math.Pi / 12,
	}.Draw(c)

	slot := ImageSlot(o.Size)
	canvas.Rectangle{Min: slot.Min, Max: slot.Max, Paint: canvas.Color("#9e9e9e")}.Stroke(c)
	if o.Image != nil {
		canvas.Image{Src: o.Image, Dst: slot}.Draw(c)
	}
}
