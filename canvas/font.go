// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Font describes a typeface in CSS terms.
type Font struct {
	// Family is the first family of the font list, such as "serif".
	Family string
	// Size is the font size in pixels.
	Size float64
	// Weight is the CSS weight; zero means 400.
	Weight int
	Italic bool
}

// DefaultFont is the font used when a Text leaves its Font unset.
var DefaultFont = Font{Family: "serif", Size: 18}

// ErrInvalidFont is returned by ParseFont for unparseable font strings.
var ErrInvalidFont = zerr.New("invalid font")

// ParseFont parses the subset of the CSS font shorthand used by canvas
// contexts: optional style and weight keywords, a size in px, pt or em,
// an optional line height, then a family list.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	var f Font
	for i, tok := range fields {
		switch tok {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		case "bold", "bolder":
			f.Weight = 700
			continue
		case "lighter":
			f.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(tok); err == nil && w >= 1 && w <= 1000 {
			f.Weight = w
			continue
		}
		size, ok := parseSize(tok)
		if !ok {
			return Font{}, zerr.With(zerr.Wrap(ErrInvalidFont, "parse font"), "font", s)
		}
		f.Size = size
		family := strings.Join(fields[i+1:], " ")
		if j := strings.IndexByte(family, ','); j >= 0 {
			family = family[:j]
		}
		f.Family = strings.Trim(strings.TrimSpace(family), `"'`)
		if f.Family == "" {
			return Font{}, zerr.With(zerr.Wrap(ErrInvalidFont, "parse font"), "font", s)
		}
		return f, nil
	}
	return Font{}, zerr.With(zerr.Wrap(ErrInvalidFont, "parse font"), "font", s)
}

func parseSize(tok string) (float64, bool) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	// px per unit as mul/div.
	mul, div := 1.0, 1.0
	switch {
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		tok = strings.TrimSuffix(tok, "pt")
		mul, div = 96, 72
	case strings.HasSuffix(tok, "em"):
		tok = strings.TrimSuffix(tok, "em")
		mul = 16
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * mul / div, true
}

// String formats f as a CSS font shorthand.
func (f Font) String() string {
	f = f.OrDefault()
	var b strings.Builder
	if f.Italic {
		b.WriteString("italic ")
	}
	if f.Weight != 0 && f.Weight != 400 {
		b.WriteString(strconv.Itoa(f.Weight))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// Bold reports whether f is at least semi-bold.
func (f Font) Bold() bool {
	return f.Weight >= 600
}

// OrDefault returns f with its unset size and family taken from DefaultFont.
func (f Font) OrDefault() Font {
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	if f.Family == "" {
		f.Family = DefaultFont.Family
	}
	return f
}
