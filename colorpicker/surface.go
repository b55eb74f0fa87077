// SPDX-License-Identifier: Unlicense OR MIT

package colorpicker

import (
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/canvaskit/canvas"
)

// HSVSurface edits a color through a saturation and value area, a hue
// slider and a hex field.
type HSVSurface struct {
	// Width and Height are the size of the saturation and value area.
	Width, Height unit.Dp

	h, s, v float64
	changed bool

	area     int
	areaSize image.Point
	hue      widget.Float
	hex      widget.Editor
}

var _ Surface = (*HSVSurface)(nil)

// NewHSVSurface returns a surface editing black.
func NewHSVSurface() *HSVSurface {
	s := &HSVSurface{Width: 220, Height: 140}
	s.hex.SingleLine = true
	s.hex.Submit = true
	s.hex.MaxLen = len("#rrggbb")
	s.SetHex("#000000")
	return s
}

// Hex returns the edited color as #rrggbb.
func (s *HSVSurface) Hex() string {
	return colorful.Hsv(s.h, s.s, s.v).Clamped().Hex()
}

// SetHex replaces the edited color. Unparseable colors are ignored.
func (s *HSVSurface) SetHex(hex string) {
	col, err := canvas.ParseColor(hex)
	if err != nil {
		return
	}
	c, _ := colorful.MakeColor(color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
	s.h, s.s, s.v = c.Hsv()
	s.hue.Value = float32(s.h / 360)
	s.hex.SetText(s.Hex())
	s.changed = false
}

// Update processes drags in the area, hue changes and hex edits.
func (s *HSVSurface) Update(gtx layout.Context) (string, bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &s.area,
			Kinds:  pointer.Press | pointer.Drag,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			s.pick(e.Position)
		}
	}
	if s.hue.Update(gtx) {
		s.h = float64(s.hue.Value) * 360
		s.changed = true
		s.hex.SetText(s.Hex())
	}
	for {
		ev, ok := s.hex.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent, widget.SubmitEvent:
			s.parseHex()
		}
	}
	if !s.changed {
		return "", false
	}
	s.changed = false
	return s.Hex(), true
}

// pick selects saturation and value from a position in the area.
func (s *HSVSurface) pick(p f32.Point) {
	if s.areaSize.X <= 0 || s.areaSize.Y <= 0 {
		return
	}
	s.s = clamp01(float64(p.X) / float64(s.areaSize.X))
	s.v = 1 - clamp01(float64(p.Y)/float64(s.areaSize.Y))
	s.changed = true
	s.hex.SetText(s.Hex())
}

// parseHex takes a complete hex color from the editor.
func (s *HSVSurface) parseHex() {
	txt := strings.TrimSpace(s.hex.Text())
	if len(txt) != len("#rrggbb") && len(txt) != len("#rgb") {
		return
	}
	col, err := canvas.ParseColor(txt)
	if err != nil {
		return
	}
	c, _ := colorful.MakeColor(col)
	h, sat, v := c.Hsv()
	if sat == 0 || v == 0 {
		// Gray has no hue; keep the slider where it is.
		h = s.h
	}
	s.h, s.s, s.v = h, sat, v
	s.hue.Value = float32(h / 360)
	s.changed = true
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func (s *HSVSurface) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(s.layoutArea),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Max.X = gtx.Dp(s.Width)
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return material.Slider(th, &s.hue).Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return swatch(gtx, th, gtx.Dp(24), s.Hex())
				}),
				layout.Rigid(layout.Spacer{Width: 8}.Layout),
				layout.Flexed(1, material.Editor(th, &s.hex, "#rrggbb").Layout),
			)
		}),
	)
}

func (s *HSVSurface) layoutArea(gtx layout.Context) layout.Dimensions {
	sz := image.Pt(gtx.Dp(s.Width), gtx.Dp(s.Height))
	s.areaSize = sz
	ops := gtx.Ops
	r := image.Rectangle{Max: sz}

	defer clip.Rect(r).Push(ops).Pop()
	event.Op(ops, &s.area)

	hue := colorful.Hsv(s.h, 1, 1)
	paint.ColorOp{Color: nrgba(hue, 0xff)}.Add(ops)
	paint.PaintOp{}.Add(ops)

	// White to transparent left to right, then transparent to black top
	// to bottom.
	paint.LinearGradientOp{
		Stop1:  f32.Pt(0, 0),
		Stop2:  f32.Pt(float32(sz.X), 0),
		Color1: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Color2: color.NRGBA{R: 0xff, G: 0xff, B: 0xff},
	}.Add(ops)
	paint.PaintOp{}.Add(ops)
	paint.LinearGradientOp{
		Stop1:  f32.Pt(0, 0),
		Stop2:  f32.Pt(0, float32(sz.Y)),
		Color1: color.NRGBA{},
		Color2: color.NRGBA{A: 0xff},
	}.Add(ops)
	paint.PaintOp{}.Add(ops)

	// Marker.
	c := image.Pt(int(s.s*float64(sz.X)), int((1-s.v)*float64(sz.Y)))
	rad := gtx.Dp(6)
	marker := image.Rectangle{Min: c.Sub(image.Pt(rad, rad)), Max: c.Add(image.Pt(rad, rad))}
	paint.FillShape(ops, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, clip.Stroke{
		Path:  clip.Ellipse(marker).Path(ops),
		Width: float32(gtx.Dp(2)),
	}.Op())
	return layout.Dimensions{Size: sz}
}

func nrgba(c colorful.Color, a uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
