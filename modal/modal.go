// SPDX-License-Identifier: Unlicense OR MIT

// Package modal provides named dialogs drawn above the rest of a window.
package modal

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Dialogs shows and hides dialogs by name.
type Dialogs interface {
	Show(name string)
	Hide(name string)
	Visible(name string) bool
	// Layout arranges for w to be drawn as the content of the named
	// dialog if it is visible. It takes no space in the caller's layout.
	Layout(gtx layout.Context, th *material.Theme, name string, w layout.Widget) layout.Dimensions
}

// Controller implements Dialogs. Visible dialogs are drawn by Overlay,
// which must be called last in a frame, centered on a scrim covering the
// whole window. Clicking the scrim hides the dialog.
//
// The zero Controller is ready to use.
type Controller struct {
	// Scrim is the color behind visible dialogs. The zero value is a
	// translucent black.
	Scrim color.NRGBA

	visible map[string]bool
	dialogs map[string]*dialog
	pending []pending
}

var _ Dialogs = (*Controller)(nil)

type dialog struct {
	scrim widget.Clickable
	// card is the event tag that stops clicks on the content from
	// reaching the scrim.
	card int
}

type pending struct {
	name string
	th   *material.Theme
	w    layout.Widget
}

// Show makes the named dialog visible.
func (c *Controller) Show(name string) {
	if c.visible == nil {
		c.visible = make(map[string]bool)
	}
	c.visible[name] = true
}

// Hide hides the named dialog. Hiding a hidden dialog does nothing.
func (c *Controller) Hide(name string) {
	delete(c.visible, name)
}

// Visible reports whether the named dialog is shown.
func (c *Controller) Visible(name string) bool {
	return c.visible[name]
}

// Layout queues the dialog content for Overlay.
func (c *Controller) Layout(gtx layout.Context, th *material.Theme, name string, w layout.Widget) layout.Dimensions {
	if c.Visible(name) {
		c.pending = append(c.pending, pending{name: name, th: th, w: w})
	}
	return layout.Dimensions{}
}

func (c *Controller) dialog(name string) *dialog {
	if c.dialogs == nil {
		c.dialogs = make(map[string]*dialog)
	}
	d, ok := c.dialogs[name]
	if !ok {
		d = new(dialog)
		c.dialogs[name] = d
	}
	return d
}

// Overlay draws the dialogs queued by Layout since the last Overlay, in
// the order they were queued. gtx should cover the whole window.
func (c *Controller) Overlay(gtx layout.Context) layout.Dimensions {
	queued := c.pending
	c.pending = nil
	for _, p := range queued {
		d := c.dialog(p.name)
		if d.scrim.Clicked(gtx) {
			c.Hide(p.name)
		}
		if !c.Visible(p.name) {
			continue
		}
		c.layoutDialog(gtx, d, p)
	}
	// Forget the state of dialogs that are gone.
	for name := range c.dialogs {
		if !c.Visible(name) {
			delete(c.dialogs, name)
		}
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (c *Controller) layoutDialog(gtx layout.Context, d *dialog, p pending) {
	scrim := c.Scrim
	if scrim == (color.NRGBA{}) {
		scrim = color.NRGBA{A: 0x80}
	}
	gtx.Constraints.Min = gtx.Constraints.Max
	d.scrim.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		paint.FillShape(gtx.Ops, scrim, clip.Rect{Max: gtx.Constraints.Max}.Op())
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	for {
		_, ok := gtx.Event(pointer.Filter{Target: &d.card, Kinds: pointer.Press | pointer.Release})
		if !ok {
			break
		}
	}
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Point{}
		return card(gtx, p.th, &d.card, p.w)
	})
}

// card draws w on a rounded background that absorbs clicks.
func card(gtx layout.Context, th *material.Theme, tag event.Tag, w layout.Widget) layout.Dimensions {
	m := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, w)
	content := m.Stop()

	bg := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if th != nil {
		bg = th.Bg
	}
	rr := gtx.Dp(unit.Dp(8))
	defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, rr).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, tag)
	paint.ColorOp{Color: bg}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	content.Add(gtx.Ops)
	return dims
}
