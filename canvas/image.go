// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	// Register the decoders a browser image element understands.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gioui.org/canvaskit/blob"
	"go.trai.ch/zerr"
)

var (
	// ErrFetch is returned when a remote image source does not answer 200 OK.
	ErrFetch = zerr.New("fetch image")
	// ErrDecode is returned for image data no registered decoder accepts.
	ErrDecode = zerr.New("decode image")
)

// Loader loads images from source references: data URLs, http and https
// URLs, file URLs and file paths. The zero Loader is ready to use.
type Loader struct {
	// Client fetches remote sources. Nil means http.DefaultClient.
	Client *http.Client
	// Cache, if set, keeps decoded images by source.
	Cache *ImageCache
}

// Load loads and decodes the image referenced by src.
func (l *Loader) Load(ctx context.Context, src string) (image.Image, error) {
	if l.Cache != nil {
		if img, ok := l.Cache.Get(src); ok {
			return img, nil
		}
	}
	r, err := l.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", ErrDecode, err), "src", shorten(src))
	}
	if l.Cache != nil {
		l.Cache.Put(src, img)
	}
	return img, nil
}

// Config decodes only the dimensions and color model of src.
func (l *Loader) Config(ctx context.Context, src string) (image.Config, error) {
	if l.Cache != nil {
		if img, ok := l.Cache.Get(src); ok {
			b := img.Bounds()
			return image.Config{ColorModel: img.ColorModel(), Width: b.Dx(), Height: b.Dy()}, nil
		}
	}
	r, err := l.open(ctx, src)
	if err != nil {
		return image.Config{}, err
	}
	defer r.Close()
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return image.Config{}, zerr.With(fmt.Errorf("%w: %w", ErrDecode, err), "src", shorten(src))
	}
	return cfg, nil
}

func (l *Loader) open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case blob.IsDataURL(src):
		b, err := blob.FromDataURL(src, "")
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(b.Data)), nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return l.fetch(ctx, src)
	default:
		f, err := os.Open(strings.TrimPrefix(src, "file://"))
		if err != nil {
			return nil, zerr.Wrap(err, "open image")
		}
		return f, nil
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, zerr.With(zerr.With(zerr.Wrap(ErrFetch, "http get"), "url", url), "status", resp.StatusCode)
	}
	return resp.Body, nil
}

func shorten(src string) string {
	const max = 48
	if len(src) > max {
		return src[:max] + "..."
	}
	return src
}

// Drawer draws images referenced by source instead of by value. Where a
// browser would decode in the background and draw on load, Drawer
// decodes synchronously and returns the load error; callers wanting fire
// and forget behavior run it in a goroutine and drop the error.
type Drawer struct {
	// Loader resolves sources. Nil means a zero Loader.
	Loader *Loader
}

func (d *Drawer) loader() *Loader {
	if d == nil || d.Loader == nil {
		return new(Loader)
	}
	return d.Loader
}

// DrawImage loads src and draws all of it scaled into dst, rotated by
// rotate radians.
func (d *Drawer) DrawImage(ctx context.Context, c Context, src string, dst Rect, rotate float64) error {
	return d.DrawImageTrim(ctx, c, src, image.Rectangle{}, dst, rotate)
}

// DrawImageTrim loads src and draws its trim rectangle scaled into dst.
func (d *Drawer) DrawImageTrim(ctx context.Context, c Context, src string, trim image.Rectangle, dst Rect, rotate float64) error {
	img, err := d.loader().Load(ctx, src)
	if err != nil {
		return err
	}
	Image{Src: img, Trim: trim, Dst: dst, Rotate: rotate}.Draw(c)
	return nil
}

// DrawUploadImage draws an uploaded image, given as the data URL a file
// input produced.
func (d *Drawer) DrawUploadImage(ctx context.Context, c Context, data string, dst Rect, rotate float64) error {
	return d.DrawUploadImageTrim(ctx, c, data, image.Rectangle{}, dst, rotate)
}

// DrawUploadImageTrim draws the trim rectangle of an uploaded image.
func (d *Drawer) DrawUploadImageTrim(ctx context.Context, c Context, data string, trim image.Rectangle, dst Rect, rotate float64) error {
	src, err := uploadSource(data)
	if err != nil {
		return err
	}
	return d.DrawImageTrim(ctx, c, src, trim, dst, rotate)
}

// ImageSize reports the natural size of an uploaded image.
func (d *Drawer) ImageSize(ctx context.Context, data string) (image.Point, error) {
	src, err := uploadSource(data)
	if err != nil {
		return image.Point{}, err
	}
	cfg, err := d.loader().Config(ctx, src)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

// uploadSource converts upload data to a Blob and back to the data URL
// an image loads from.
func uploadSource(data string) (string, error) {
	b, err := blob.FromDataURL(data, "")
	if err != nil {
		return "", err
	}
	return b.DataURL(), nil
}
