// SPDX-License-Identifier: Unlicense OR MIT

package opcanvas

import (
	"image"
	"reflect"

	"gioui.org/op/paint"

	"gioui.org/canvaskit/canvas"
)

// ImageOps keeps the image operations of recently drawn images so that
// drawing the same image every frame does not upload it again. Images
// are identified by pointer; an image must not be modified after it has
// been drawn.
type ImageOps struct {
	max   int
	ops   map[imageKey]paint.ImageOp
	order []imageKey
}

type imageKey struct {
	img image.Image
	src image.Rectangle
}

// NewImageOps returns a cache holding at most max image operations.
func NewImageOps(max int) *ImageOps {
	if max < 1 {
		max = 1
	}
	return &ImageOps{max: max, ops: make(map[imageKey]paint.ImageOp)}
}

// Len returns the number of cached operations.
func (c *ImageOps) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ops)
}

// op returns the image operation for the src part of img, with the part
// moved to the origin. A nil cache creates a new operation every time.
func (c *ImageOps) op(img image.Image, src image.Rectangle) paint.ImageOp {
	if c == nil || reflect.ValueOf(img).Kind() != reflect.Pointer {
		return paint.NewImageOp(canvas.Crop(img, src))
	}
	k := imageKey{img: img, src: src}
	if iop, ok := c.ops[k]; ok {
		return iop
	}
	iop := paint.NewImageOp(canvas.Crop(img, src))
	if len(c.order) >= c.max {
		delete(c.ops, c.order[0])
		c.order = c.order[1:]
	}
	c.ops[k] = iop
	c.order = append(c.order, k)
	return iop
}
