// SPDX-License-Identifier: Unlicense OR MIT

package colorpicker

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/canvaskit/canvas"
)

// PickerStyle draws a State as a round swatch and its dialog.
type PickerStyle struct {
	State *State
	Theme *material.Theme
	// Size is the swatch diameter.
	Size   unit.Dp
	OK     string
	Cancel string
}

// Picker returns the style of a 24dp swatch.
func Picker(th *material.Theme, s *State) PickerStyle {
	return PickerStyle{
		State:  s,
		Theme:  th,
		Size:   24,
		OK:     "OK",
		Cancel: "Cancel",
	}
}

func (p PickerStyle) Layout(gtx layout.Context) layout.Dimensions {
	s := p.State
	s.update(gtx)
	dims := s.swatch.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return swatch(gtx, p.Theme, gtx.Dp(p.Size), s.value)
	})
	s.dialogs.Layout(gtx, p.Theme, s.ModalName(), p.layoutDialog)
	return dims
}

func (p PickerStyle) layoutDialog(gtx layout.Context) layout.Dimensions {
	s := p.State
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if s.surface == nil {
				return layout.Dimensions{}
			}
			return s.surface.Layout(gtx, p.Theme)
		}),
		layout.Rigid(layout.Spacer{Height: 12}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Spacing: layout.SpaceStart}.Layout(gtx,
				layout.Rigid(material.Button(p.Theme, &s.ok, p.OK).Layout),
				layout.Rigid(layout.Spacer{Width: 8}.Layout),
				layout.Rigid(material.Button(p.Theme, &s.cancel, p.Cancel).Layout),
			)
		}),
	)
}

// swatch draws a circle of diameter size filled with hex, outlined in
// the theme foreground.
func swatch(gtx layout.Context, th *material.Theme, size int, hex string) layout.Dimensions {
	col, _ := canvas.Color(hex).NRGBA()
	r := image.Rectangle{Max: image.Pt(size, size)}
	paint.FillShape(gtx.Ops, col, clip.Ellipse(r).Op(gtx.Ops))
	border := color.NRGBA{A: 0x60}
	if th != nil {
		border = th.Fg
		border.A = 0x60
	}
	paint.FillShape(gtx.Ops, border, clip.Stroke{
		Path:  clip.Ellipse(r).Path(gtx.Ops),
		Width: float32(gtx.Dp(1)),
	}.Op())
	return layout.Dimensions{Size: r.Max}
}
