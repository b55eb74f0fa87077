// SPDX-License-Identifier: Unlicense OR MIT

// Package jscanvas implements canvas.Context on top of a browser
// CanvasRenderingContext2D. It is only available when GOOS=js.
package jscanvas
