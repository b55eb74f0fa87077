// SPDX-License-Identifier: Unlicense OR MIT

// Package colorpicker implements a color swatch that opens a dialog for
// choosing a new color.
//
// The swatch shows the bound value. Opening the dialog lets the user edit
// a working color; OK reports the working color as an input event and
// closes the dialog, Cancel discards it and closes the dialog without an
// event.
package colorpicker

import (
	"github.com/google/uuid"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/canvaskit/modal"
)

const modalPrefix = "color-picker-modal-"

// Surface is the color editing area shown in the dialog.
type Surface interface {
	// SetHex replaces the color being edited.
	SetHex(hex string)
	// Update processes events and reports the new color if the user
	// changed it.
	Update(gtx layout.Context) (string, bool)
	Layout(gtx layout.Context, th *material.Theme) layout.Dimensions
}

// Color is the color edited in the dialog. The picker edits opaque
// colors only, so A is always 1.
type Color struct {
	Hex string
	A   float32
}

func opaque(hex string) Color {
	return Color{Hex: hex, A: 1}
}

// State is the state of a color picker.
type State struct {
	name    string
	dialogs modal.Dialogs
	surface Surface

	value   string
	working Color
	events  []string

	swatch widget.Clickable
	ok     widget.Clickable
	cancel widget.Clickable
}

// New returns a picker bound to value. An empty name is replaced by a
// random one so that pickers never share a dialog.
func New(name, value string, d modal.Dialogs, s Surface) *State {
	if name == "" {
		name = uuid.NewString()
	}
	st := &State{
		name:    name,
		dialogs: d,
		surface: s,
		value:   value,
		working: opaque(value),
	}
	if s != nil {
		s.SetHex(value)
	}
	return st
}

// Name returns the picker name.
func (s *State) Name() string {
	return s.name
}

// ModalName returns the name of the picker's dialog.
func (s *State) ModalName() string {
	return modalPrefix + s.name
}

// Value returns the bound value.
func (s *State) Value() string {
	return s.value
}

// Working returns the color being edited in the dialog.
func (s *State) Working() Color {
	return s.working
}

// SetValue binds a new value. If the dialog is closed the working color
// follows it.
func (s *State) SetValue(v string) {
	s.value = v
	if !s.dialogs.Visible(s.ModalName()) {
		s.setWorking(v)
	}
}

func (s *State) setWorking(hex string) {
	s.working = opaque(hex)
	if s.surface != nil {
		s.surface.SetHex(hex)
	}
}

// Show opens the dialog.
func (s *State) Show() {
	s.dialogs.Show(s.ModalName())
}

// Confirm reports the working color as an input event, binds it and
// closes the dialog.
func (s *State) Confirm() string {
	s.events = append(s.events, s.working.Hex)
	s.value = s.working.Hex
	s.dialogs.Hide(s.ModalName())
	return s.working.Hex
}

// Cancel resets the working color to the bound value and closes the
// dialog.
func (s *State) Cancel() {
	s.setWorking(s.value)
	s.dialogs.Hide(s.ModalName())
}

// Update processes clicks and color edits. It reports the color of the
// next input event, if any.
func (s *State) Update(gtx layout.Context) (string, bool) {
	s.update(gtx)
	if len(s.events) == 0 {
		return "", false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *State) update(gtx layout.Context) {
	if s.swatch.Clicked(gtx) {
		s.Show()
	}
	if s.surface != nil {
		for {
			hex, ok := s.surface.Update(gtx)
			if !ok {
				break
			}
			s.working = opaque(hex)
		}
	}
	if s.ok.Clicked(gtx) {
		s.Confirm()
	}
	if s.cancel.Clicked(gtx) {
		s.Cancel()
	}
}
