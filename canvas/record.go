// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import "image"

// OpKind identifies a recorded Context call.
type OpKind uint8

const (
	OpStrokeStyle OpKind = iota
	OpFillStyle
	OpLineWidth
	OpFont
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpStroke
	OpFill
	OpStrokeRect
	OpFillRect
	OpFillText
	OpDrawImage
	OpRotate
)

// Op is a recorded Context call. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	Paint Paint
	Width float64
	Font  Font
	Point Point
	Rect  Rect
	// Radius, Start, End and CCW are the Arc arguments.
	Radius     float64
	Start, End float64
	CCW        bool
	Text       string
	Image      image.Image
	Src        image.Rectangle
	Angle      float64
	// Contours is the flattened current path at a Stroke or Fill.
	Contours []Contour
}

// Recorder is a Context that records every call instead of drawing.
type Recorder struct {
	Path
	Ops []Op

	stroke, fill Paint
	width        float64
	font         Font
	angle        float64
}

// NewRecorder returns a Recorder in the initial state of a canvas
// context: black paints, a line width of 1 and a 10px sans-serif font.
func NewRecorder() *Recorder {
	return &Recorder{
		stroke: DefaultColor,
		fill:   DefaultColor,
		width:  1,
		font:   Font{Family: "sans-serif", Size: 10},
	}
}

func (r *Recorder) add(op Op) {
	r.Ops = append(r.Ops, op)
}

// Kinds returns the kinds of the recorded calls in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset discards the recorded calls, keeping the current state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// StrokeStyle returns the current stroke paint.
func (r *Recorder) StrokeStyle() Paint { return r.stroke }

// FillStyle returns the current fill paint.
func (r *Recorder) FillStyle() Paint { return r.fill }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.width }

// Font returns the current font.
func (r *Recorder) Font() Font { return r.font }

// Rotation returns the sum of all rotations applied so far.
func (r *Recorder) Rotation() float64 { return r.angle }

func (r *Recorder) SetStrokeStyle(p Paint) {
	r.add(Op{Kind: OpStrokeStyle, Paint: p})
	if Valid(p) {
		r.stroke = p
	}
}

func (r *Recorder) SetFillStyle(p Paint) {
	r.add(Op{Kind: OpFillStyle, Paint: p})
	if Valid(p) {
		r.fill = p
	}
}

func (r *Recorder) SetLineWidth(w float64) {
	r.add(Op{Kind: OpLineWidth, Width: w})
	if w > 0 {
		r.width = w
	}
}

func (r *Recorder) SetFont(f Font) {
	r.add(Op{Kind: OpFont, Font: f})
	r.font = f
}

func (r *Recorder) BeginPath() {
	r.add(Op{Kind: OpBeginPath})
	r.Path.BeginPath()
}

func (r *Recorder) MoveTo(p Point) {
	r.add(Op{Kind: OpMoveTo, Point: p})
	r.Path.MoveTo(p)
}

func (r *Recorder) LineTo(p Point) {
	r.add(Op{Kind: OpLineTo, Point: p})
	r.Path.LineTo(p)
}

func (r *Recorder) Arc(c Point, radius, start, end float64, ccw bool) {
	r.add(Op{Kind: OpArc, Point: c, Radius: radius, Start: start, End: end, CCW: ccw})
	r.Path.Arc(c, radius, start, end, ccw)
}

func (r *Recorder) ClosePath() {
	r.add(Op{Kind: OpClosePath})
	r.Path.ClosePath()
}

func (r *Recorder) Stroke() {
	r.add(Op{Kind: OpStroke, Paint: r.stroke, Width: r.width, Contours: r.Flatten()})
}

func (r *Recorder) Fill() {
	r.add(Op{Kind: OpFill, Paint: r.fill, Contours: r.Flatten()})
}

func (r *Recorder) StrokeRect(rect Rect) {
	r.add(Op{Kind: OpStrokeRect, Rect: rect, Paint: r.stroke, Width: r.width, Contours: []Contour{rectContour(rect)}})
}

func (r *Recorder) FillRect(rect Rect) {
	r.add(Op{Kind: OpFillRect, Rect: rect, Paint: r.fill, Contours: []Contour{rectContour(rect)}})
}

func (r *Recorder) FillText(txt string, p Point) {
	r.add(Op{Kind: OpFillText, Text: txt, Point: p, Paint: r.fill, Font: r.font, Angle: r.angle})
}

func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, dst Rect) {
	r.add(Op{Kind: OpDrawImage, Image: img, Src: src, Rect: dst, Angle: r.angle})
}

func (r *Recorder) Rotate(angle float64) {
	r.add(Op{Kind: OpRotate, Angle: angle})
	r.angle += angle
}

// rectContour returns the closed contour a canvas traces for a rectangle:
// the corner at Min, then along the x axis.
func rectContour(r Rect) Contour {
	return Contour{
		Points: []Point{
			r.Min,
			{X: r.Max.X, Y: r.Min.Y},
			r.Max,
			{X: r.Min.X, Y: r.Max.Y},
		},
		Closed: true,
	}
}

func (k OpKind) String() string {
	switch k {
	case OpStrokeStyle:
		return "strokeStyle"
	case OpFillStyle:
		return "fillStyle"
	case OpLineWidth:
		return "lineWidth"
	case OpFont:
		return "font"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpArc:
		return "arc"
	case OpClosePath:
		return "closePath"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpStrokeRect:
		return "strokeRect"
	case OpFillRect:
		return "fillRect"
	case OpFillText:
		return "fillText"
	case OpDrawImage:
		return "drawImage"
	case OpRotate:
		return "rotate"
	default:
		panic("invalid OpKind")
	}
}
