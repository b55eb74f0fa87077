// SPDX-License-Identifier: Unlicense OR MIT

/*
Package canvas implements stateless drawing helpers on top of a 2D
drawing surface.

A surface is anything that implements Context: the raster package draws
into an image, opcanvas records Gio operations and jscanvas forwards to a
browser CanvasRenderingContext2D.

Shapes are described by plain values whose zero fields select defaults: a
black paint, a line width of 1 and an 18px serif font. Drawing a shape
issues the same sequence of calls a browser canvas would receive, so a
Recorder can be used to inspect exactly what a helper does.

Rotated text and images rotate the context, draw, and rotate back by the
negated angle. The sequence is not atomic; a Context must not be shared
by concurrent callers.
*/
package canvas
