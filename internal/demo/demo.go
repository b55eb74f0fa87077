// SPDX-License-Identifier: Unlicense OR MIT

// Package demo implements the interactive window of the canvaskit
// command: two color pickers, a file input and a live canvas preview.
package demo

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/canvaskit/canvas"
	"gioui.org/canvaskit/canvas/opcanvas"
	"gioui.org/canvaskit/colorpicker"
	"gioui.org/canvaskit/fileinput"
	"gioui.org/canvaskit/internal/config"
	"gioui.org/canvaskit/internal/sheet"
	"gioui.org/canvaskit/modal"
)

// Run opens the demo window and blocks until it is closed or ctx is
// cancelled.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	w := new(app.Window)
	w.Option(
		app.Title(cfg.Window.Title),
		app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
	)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			w.Perform(system.ActionClose)
		case <-done:
		}
	}()
	return loop(w, NewUI(ctx, cfg, log, w.Invalidate))
}

func loop(w *app.Window, u *UI) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// UI is the demo window content.
type UI struct {
	ctx   context.Context
	log   *slog.Logger
	theme *material.Theme

	dialogs modal.Controller
	stroke  *colorpicker.State
	fill    *colorpicker.State
	upload  fileinput.State
	path    widget.Editor

	loader *canvas.Loader
	drawer canvas.Drawer
	images *opcanvas.ImageOps
	image  image.Image
	// decoded holds the latest upload decoded off the frame goroutine.
	decoded chan image.Image

	invalidate func()

	mu       sync.Mutex
	pathText string
	status   string
}

// NewUI returns the window content. invalidate requests a redraw and may
// be called from any goroutine.
func NewUI(ctx context.Context, cfg config.Config, log *slog.Logger, invalidate func()) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	loader := &canvas.Loader{Cache: canvas.NewImageCache(8)}
	u := &UI{
		ctx:    ctx,
		log:    log,
		theme:  th,
		loader: loader,
		drawer: canvas.Drawer{Loader: loader},
		images: opcanvas.NewImageOps(8),

		decoded:    make(chan image.Image, 1),
		invalidate: invalidate,
	}
	u.stroke = colorpicker.New("stroke", cfg.Picker.Default, &u.dialogs, colorpicker.NewHSVSurface())
	u.fill = colorpicker.New("fill", "#fafafa", &u.dialogs, colorpicker.NewHSVSurface())
	u.path.SingleLine = true
	u.path.Submit = true
	u.upload = fileinput.State{
		Chooser:    fileinput.ChooserFunc(u.chooseFile),
		Rules:      cfg.Rules(),
		Invalidate: invalidate,
		Context:    ctx,
		Rejected: func(err error) {
			log.Warn("file rejected", "err", err)
			u.setStatus(err.Error())
			u.redraw()
		},
	}
	return u
}

// chooseFile opens the file named in the path editor. It runs outside
// the frame goroutine.
func (u *UI) chooseFile(context.Context) (*fileinput.File, error) {
	u.mu.Lock()
	path := u.pathText
	u.mu.Unlock()
	if path == "" {
		return nil, nil
	}
	return fileinput.OpenFile(path)
}

func (u *UI) setStatus(s string) {
	u.mu.Lock()
	u.status = s
	u.mu.Unlock()
}

// Status returns the last status message.
func (u *UI) Status() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

func (u *UI) update(gtx layout.Context) {
	for {
		ev, ok := u.path.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			u.mu.Lock()
			u.pathText = u.path.Text()
			u.mu.Unlock()
		case widget.SubmitEvent:
			u.upload.Choose()
		}
	}
	if v, ok := u.stroke.Update(gtx); ok {
		u.log.Info("stroke color", "value", v)
	}
	if v, ok := u.fill.Update(gtx); ok {
		u.log.Info("fill color", "value", v)
	}
	if data, ok := u.upload.Update(gtx); ok {
		go u.decode(u.upload.Name(), data)
	}
	select {
	case img := <-u.decoded:
		u.image = img
	default:
	}
}

func (u *UI) redraw() {
	if u.invalidate != nil {
		u.invalidate()
	}
}

// decode decodes an uploaded data URL for the preview and hands the
// image to the frame goroutine. Only the latest image is kept.
func (u *UI) decode(name, data string) {
	img, err := u.loader.Load(u.ctx, data)
	if err != nil {
		u.log.Warn("decode upload", "name", name, "err", err)
		u.setStatus(err.Error())
		u.redraw()
		return
	}
	sz := img.Bounds().Size()
	if s, err := u.drawer.ImageSize(u.ctx, data); err == nil {
		sz = s
	}
	u.log.Info("file uploaded", "name", name, "width", sz.X, "height", sz.Y)
	u.setStatus(fmt.Sprintf("%s (%dx%d)", name, sz.X, sz.Y))
	for {
		select {
		case u.decoded <- img:
			u.redraw()
			return
		default:
		}
		select {
		case <-u.decoded:
		default:
		}
	}
}

// Layout draws the window content, then any visible dialog on top.
func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	u.update(gtx)
	paint.Fill(gtx.Ops, u.theme.Bg)

	th := u.theme
	inset := layout.UniformInset(unit.Dp(8))
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body1(th, "Stroke").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(colorpicker.Picker(th, u.stroke).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(24)}.Layout),
					layout.Rigid(material.Body1(th, "Fill").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(colorpicker.Picker(th, u.fill).Layout),
				)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, material.Editor(th, &u.path, "Image path").Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, fileinput.Button(th, &u.upload).Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, material.Caption(th, u.Status()).Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, u.preview)
		}),
	)
	u.dialogs.Overlay(gtx)
	return dims
}

// preview draws the sample sheet with the picked colors and the
// uploaded image.
func (u *UI) preview(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	c := opcanvas.New(gtx, u.theme.Shaper)
	c.Images = u.images
	sz := canvas.Pt(float64(size.X), float64(size.Y))
	sheet.Draw(c, sheet.Options{
		Size:       sz,
		Background: canvas.Color(u.fill.Value()),
		Stroke:     canvas.Color(u.stroke.Value()),
		Title:      u.upload.Name(),
		Image:      u.image,
	})
	return layout.Dimensions{Size: size}
}
