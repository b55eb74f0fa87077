// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/draw"

	"go.trai.ch/zerr"
	xdraw "golang.org/x/image/draw"
)

// ErrUnknownFilter is returned by ScalerByName for unknown filter names.
var ErrUnknownFilter = zerr.New("unknown resize filter")

// Resize returns a new w×h canvas with src scaled to cover all of it.
// The result always reports exactly (w, h), whatever the size of src.
func Resize(src image.Image, w, h int) *Canvas {
	return ResizeWith(src, w, h, xdraw.ApproxBiLinear)
}

// ResizeWith is like Resize but scales with s.
func ResizeWith(src image.Image, w, h int, s xdraw.Scaler) *Canvas {
	c := New(w, h)
	if src == nil || src.Bounds().Empty() || w <= 0 || h <= 0 {
		return c
	}
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		return c
	}
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return c
}

// Resize returns a copy of c scaled to w×h.
func (c *Canvas) Resize(w, h int) *Canvas {
	return Resize(c.Image(), w, h)
}

// ScalerByName returns the scaler for a filter name: nearest,
// approxbilinear, bilinear or catmullrom.
func ScalerByName(name string) (xdraw.Scaler, error) {
	switch name {
	case "nearest":
		return xdraw.NearestNeighbor, nil
	case "approxbilinear", "":
		return xdraw.ApproxBiLinear, nil
	case "bilinear":
		return xdraw.BiLinear, nil
	case "catmullrom":
		return xdraw.CatmullRom, nil
	}
	return nil, zerr.With(zerr.Wrap(ErrUnknownFilter, "select scaler"), "filter", name)
}
