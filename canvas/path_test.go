// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcSweep(t *testing.T) {
	tests := []struct {
		start, end float64
		ccw        bool
		want       float64
	}{
		{0, math.Pi, false, math.Pi},
		{0, math.Pi, true, -math.Pi},
		{0, 2 * math.Pi, false, 2 * math.Pi},
		{0, 3 * math.Pi, false, 2 * math.Pi},
		{0, -2 * math.Pi, true, -2 * math.Pi},
		{math.Pi, math.Pi / 2, true, -math.Pi / 2},
		{0, 1.5 * math.Pi, true, -math.Pi / 2},
		{math.Pi / 2, 0, false, 1.5 * math.Pi},
		{1, 1, false, 0},
		{1, 1, true, 0},
	}
	for _, tt := range tests {
		got := ArcSweep(tt.start, tt.end, tt.ccw)
		assert.InDelta(t, tt.want, got, 1e-9, "ArcSweep(%v, %v, %v)", tt.start, tt.end, tt.ccw)
	}
}

func TestPathLineWithoutPenStartsSubpath(t *testing.T) {
	var p Path
	p.LineTo(Pt(3, 4))
	p.LineTo(Pt(5, 6))
	segs := p.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, MoveSeg, segs[0].Kind)
	assert.Equal(t, Pt(3, 4), segs[0].To)
	assert.Equal(t, LineSeg, segs[1].Kind)
}

func TestPathArcJoinsPen(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.Arc(Pt(10, 0), 5, math.Pi, 0, false)
	segs := p.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, LineSeg, segs[1].Kind)
	assert.InDelta(t, 5, segs[1].To.X, 1e-9)
	assert.Equal(t, ArcSeg, segs[2].Kind)
	assert.InDelta(t, math.Pi, segs[2].Sweep, 1e-9)
	assert.InDelta(t, 15, segs[2].To.X, 1e-9)
	assert.InDelta(t, 0, segs[2].To.Y, 1e-9)
}

func TestPathDegenerateArcs(t *testing.T) {
	var p Path
	p.MoveTo(Pt(1, 1))
	p.Arc(Pt(7, 7), 0, 0, math.Pi, false)
	p.Arc(Pt(9, 9), -1, 0, math.Pi, false)
	p.Arc(Pt(9, 9), math.NaN(), 0, math.Pi, false)
	segs := p.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, LineSeg, segs[1].Kind)
	assert.Equal(t, Pt(7, 7), segs[1].To)
}

func TestPathCloseReturnsToStart(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.ClosePath()
	p.LineTo(Pt(0, 10))
	c := p.Flatten()
	require.Len(t, c, 2)
	assert.True(t, c[0].Closed)
	assert.Equal(t, []Point{{0, 0}, {10, 0}}, c[0].Points)
	assert.False(t, c[1].Closed)
	assert.Equal(t, []Point{{0, 0}, {0, 10}}, c[1].Points)
}

func TestPathBeginPathDiscards(t *testing.T) {
	var p Path
	p.MoveTo(Pt(1, 2))
	p.LineTo(Pt(3, 4))
	p.BeginPath()
	assert.Empty(t, p.Segments())
	p.ClosePath()
	assert.Empty(t, p.Segments())
}

func TestFlattenCircle(t *testing.T) {
	var p Path
	center := Pt(20, 20)
	p.Arc(center, 10, 0, 2*math.Pi, false)
	c := p.Flatten()
	require.Len(t, c, 1)
	pts := c[0].Points
	assert.GreaterOrEqual(t, len(pts), 65)
	for _, pt := range pts {
		d := pt.Sub(center)
		assert.InDelta(t, 10, math.Hypot(d.X, d.Y), 1e-9)
	}
	assert.InDelta(t, pts[0].X, pts[len(pts)-1].X, 1e-9)
	assert.InDelta(t, pts[0].Y, pts[len(pts)-1].Y, 1e-9)
	// Clockwise on screen: the second point lies below the first.
	assert.Greater(t, pts[1].Y, pts[0].Y)
}
