// SPDX-License-Identifier: Unlicense OR MIT

package modal

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
)

func TestShowHide(t *testing.T) {
	var c Controller
	assert.False(t, c.Visible("a"))
	c.Hide("a")
	c.Show("a")
	c.Show("b")
	assert.True(t, c.Visible("a"))
	assert.True(t, c.Visible("b"))
	c.Hide("a")
	assert.False(t, c.Visible("a"))
	assert.True(t, c.Visible("b"))
}

func TestLayoutOnlyVisible(t *testing.T) {
	var c Controller
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(400, 400)),
	}
	drawn := 0
	content := func(gtx layout.Context) layout.Dimensions {
		drawn++
		return layout.Dimensions{Size: image.Pt(50, 50)}
	}

	dims := c.Layout(gtx, nil, "a", content)
	assert.Equal(t, layout.Dimensions{}, dims)
	c.Overlay(gtx)
	assert.Equal(t, 0, drawn)

	c.Show("a")
	dims = c.Layout(gtx, nil, "a", content)
	assert.Equal(t, layout.Dimensions{}, dims)
	assert.Equal(t, 0, drawn, "content drawn before Overlay")
	c.Overlay(gtx)
	assert.Equal(t, 1, drawn)

	// Overlay consumes the queue.
	c.Overlay(gtx)
	assert.Equal(t, 1, drawn)
}

func click(r *input.Router, pos f32.Point) {
	r.Queue(
		pointer.Event{
			Source:   pointer.Touch,
			Kind:     pointer.Press,
			Position: pos,
		},
		pointer.Event{
			Source:   pointer.Touch,
			Kind:     pointer.Release,
			Position: pos,
		},
	)
}

func TestScrimClickHides(t *testing.T) {
	var (
		r input.Router
		c Controller
	)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(400, 400)),
	}
	content := func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(100, 100)}
	}
	frame := func() {
		gtx.Reset()
		c.Layout(gtx, nil, "dlg", content)
		c.Overlay(gtx)
		r.Frame(gtx.Ops)
	}

	c.Show("dlg")
	frame()

	// A click on the dialog content keeps it open.
	click(&r, f32.Pt(200, 200))
	frame()
	frame()
	assert.True(t, c.Visible("dlg"))

	// A click outside hides it.
	click(&r, f32.Pt(10, 10))
	frame()
	assert.False(t, c.Visible("dlg"))
}
