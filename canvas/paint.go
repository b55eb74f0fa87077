// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
	"golang.org/x/image/colornames"
)

// Paint is a stroke or fill style: a Color or a LinearGradient.
type Paint interface {
	isPaint()
}

// Color is a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa or a color name.
type Color string

// DefaultColor is the paint used when a shape leaves its Paint unset.
const DefaultColor Color = "#000"

// LinearGradient paints a gradient along the line from From to To.
type LinearGradient struct {
	From, To Point
	Stops    []GradientStop
}

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// ErrInvalidColor is returned for colors ParseColor does not understand.
var ErrInvalidColor = zerr.New("invalid color")

func (Color) isPaint()          {}
func (LinearGradient) isPaint() {}

// NRGBA parses c, reporting false if it is not a valid color.
func (c Color) NRGBA() (color.NRGBA, bool) {
	col, err := ParseColor(string(c))
	return col, err == nil
}

// ParseColor parses a CSS hex color or color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, zerr.With(zerr.Wrap(ErrInvalidColor, "parse color"), "color", s)
	}
	alpha := uint8(0xff)
	switch len(s) {
	case 5:
		a, err := strconv.ParseUint(s[4:], 16, 8)
		if err != nil {
			return color.NRGBA{}, zerr.With(zerr.Wrap(ErrInvalidColor, "parse color"), "color", s)
		}
		alpha = uint8(a * 0x11)
		s = s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, zerr.With(zerr.Wrap(ErrInvalidColor, "parse color"), "color", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, zerr.With(zerr.Wrap(ErrInvalidColor, "parse color"), "color", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
	}.Hex()
}

// Valid reports whether p can be resolved to a color or gradient.
func Valid(p Paint) bool {
	switch p := p.(type) {
	case Color:
		_, ok := p.NRGBA()
		return ok
	case LinearGradient:
		for _, s := range p.Stops {
			if _, ok := s.Color.NRGBA(); !ok {
				return false
			}
		}
		return len(p.Stops) > 0
	}
	return false
}

func paintOr(p Paint) Paint {
	if p == nil {
		return DefaultColor
	}
	return p
}
