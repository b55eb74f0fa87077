// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import "math"

// SegmentKind identifies the kind of a path Segment.
type SegmentKind uint8

const (
	MoveSeg SegmentKind = iota
	LineSeg
	// ArcSeg is a circular arc that starts at the pen position.
	ArcSeg
	CloseSeg
)

// Segment is a single path command.
type Segment struct {
	Kind SegmentKind
	// To is the pen position after the segment.
	To Point
	// Center, Radius, Start and Sweep describe an ArcSeg. Sweep is
	// signed; positive sweeps run clockwise on screen.
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Path accumulates path segments with the semantics of a canvas context:
// a line without a current point starts a subpath, an arc is joined to
// the current point by a straight line, and closing a subpath returns the
// pen to its start.
//
// Surfaces embed Path to implement the path methods of Context and replay
// the segments when stroking or filling.
type Path struct {
	segs   []Segment
	pen    Point
	start  Point
	hasPen bool
}

// BeginPath discards all segments.
func (p *Path) BeginPath() {
	p.segs = p.segs[:0]
	p.hasPen = false
}

// MoveTo starts a new subpath at to.
func (p *Path) MoveTo(to Point) {
	p.segs = append(p.segs, Segment{Kind: MoveSeg, To: to})
	p.pen = to
	p.start = to
	p.hasPen = true
}

// LineTo adds a line from the pen to to.
func (p *Path) LineTo(to Point) {
	if !p.hasPen {
		p.MoveTo(to)
		return
	}
	p.segs = append(p.segs, Segment{Kind: LineSeg, To: to})
	p.pen = to
}

// Arc adds a circular arc. A zero radius degenerates to a line to the
// center; a negative radius is ignored.
func (p *Path) Arc(center Point, r, start, end float64, ccw bool) {
	if r < 0 || math.IsNaN(r) {
		return
	}
	from := onCircle(center, r, start)
	if p.hasPen {
		p.LineTo(from)
	} else {
		p.MoveTo(from)
	}
	sweep := ArcSweep(start, end, ccw)
	if r == 0 || sweep == 0 {
		return
	}
	to := onCircle(center, r, start+sweep)
	p.segs = append(p.segs, Segment{
		Kind:   ArcSeg,
		To:     to,
		Center: center,
		Radius: r,
		Start:  start,
		Sweep:  sweep,
	})
	p.pen = to
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	if !p.hasPen {
		return
	}
	p.segs = append(p.segs, Segment{Kind: CloseSeg, To: p.start})
	p.pen = p.start
}

// Segments returns the segments added since the last BeginPath. The
// slice is only valid until the next path method call.
func (p *Path) Segments() []Segment {
	return p.segs
}

func onCircle(c Point, r, angle float64) Point {
	s, co := math.Sincos(angle)
	return Point{X: c.X + r*co, Y: c.Y + r*s}
}

// ArcSweep returns the signed angle an arc from start to end covers,
// following the canvas rules: clockwise sweeps are in [0, 2π), counter
// clockwise sweeps in (-2π, 0], and a difference of a full turn or more
// in the drawing direction yields a full circle.
func ArcSweep(start, end float64, ccw bool) float64 {
	const tau = 2 * math.Pi
	switch {
	case !ccw && end-start >= tau:
		return tau
	case ccw && start-end >= tau:
		return -tau
	case ccw:
		return -posMod(start-end, tau)
	default:
		return posMod(end-start, tau)
	}
}

func posMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// Contour is a flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten approximates the path by polygonal contours, with arcs split
// into segments of at most π/32 radians.
func (p *Path) Flatten() []Contour {
	var (
		out []Contour
		cur *Contour
	)
	start := Point{}
	for _, s := range p.segs {
		switch s.Kind {
		case MoveSeg:
			out = append(out, Contour{Points: []Point{s.To}})
			cur = &out[len(out)-1]
			start = s.To
		case LineSeg:
			if cur == nil {
				out = append(out, Contour{Points: []Point{start}})
				cur = &out[len(out)-1]
			}
			cur.Points = append(cur.Points, s.To)
		case ArcSeg:
			if cur == nil {
				out = append(out, Contour{Points: []Point{start}})
				cur = &out[len(out)-1]
			}
			n := int(math.Ceil(math.Abs(s.Sweep) / (math.Pi / 32)))
			for i := 1; i < n; i++ {
				a := s.Start + s.Sweep*float64(i)/float64(n)
				cur.Points = append(cur.Points, onCircle(s.Center, s.Radius, a))
			}
			cur.Points = append(cur.Points, s.To)
		case CloseSeg:
			if cur != nil {
				cur.Closed = true
			}
			cur = nil
		}
	}
	return out
}
