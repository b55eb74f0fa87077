// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"gioui.org/canvaskit/canvas"
)

type faceKey struct {
	mono, bold, italic bool
	size               float64
}

var faces struct {
	mu    sync.Mutex
	fonts map[faceKey]*opentype.Font
	faces map[faceKey]font.Face
}

// faceFor returns a Go font face for f. Monospace families map to Go
// Mono, every other family to the proportional Go fonts.
func faceFor(f canvas.Font) (font.Face, error) {
	f = f.OrDefault()
	k := faceKey{
		mono:   isMono(f.Family),
		bold:   f.Bold(),
		italic: f.Italic,
		size:   f.Size,
	}
	faces.mu.Lock()
	defer faces.mu.Unlock()
	if face, ok := faces.faces[k]; ok {
		return face, nil
	}
	fk := k
	fk.size = 0
	otf, ok := faces.fonts[fk]
	if !ok {
		var err error
		otf, err = opentype.Parse(ttf(fk))
		if err != nil {
			return nil, zerr.Wrap(err, "parse font")
		}
		if faces.fonts == nil {
			faces.fonts = make(map[faceKey]*opentype.Font)
			faces.faces = make(map[faceKey]font.Face)
		}
		faces.fonts[fk] = otf
	}
	// DPI 72 makes the point size equal to the pixel size.
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "create font face"), "font", f.String())
	}
	faces.faces[k] = face
	return face, nil
}

func isMono(family string) bool {
	family = strings.ToLower(family)
	return family == "monospace" || strings.Contains(family, "mono") || strings.Contains(family, "courier")
}

func ttf(k faceKey) []byte {
	switch {
	case k.mono && k.bold && k.italic:
		return gomonobolditalic.TTF
	case k.mono && k.bold:
		return gomonobold.TTF
	case k.mono && k.italic:
		return gomonoitalic.TTF
	case k.mono:
		return gomono.TTF
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
