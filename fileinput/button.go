// SPDX-License-Identifier: Unlicense OR MIT

package fileinput

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// ButtonStyle draws a State as a button followed by the name of the last
// chosen file.
type ButtonStyle struct {
	State *State
	Theme *material.Theme
	Text  string
	// Empty is shown while no file has been chosen.
	Empty string
}

func Button(th *material.Theme, s *State) ButtonStyle {
	return ButtonStyle{
		State: s,
		Theme: th,
		Text:  "Choose file",
		Empty: "No file chosen",
	}
}

func (b ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	b.State.update(gtx)
	name := b.State.Name()
	if name == "" {
		name = b.Empty
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.Button(b.Theme, &b.State.button, b.Text).Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(material.Body2(b.Theme, name).Layout),
	)
}
