// SPDX-License-Identifier: Unlicense OR MIT

package fileinput

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"gioui.org/canvaskit/blob"
)

// File is a file selected by the user.
type File struct {
	Name string
	// Type is the MIME type, such as image/png.
	Type string
	Size int64
	Body io.ReadCloser
}

// Chooser asks the user for a file. A nil file and nil error means the
// user cancelled.
type Chooser interface {
	ChooseFile(ctx context.Context) (*File, error)
}

// ChooserFunc adapts a function to a Chooser.
type ChooserFunc func(ctx context.Context) (*File, error)

func (f ChooserFunc) ChooseFile(ctx context.Context) (*File, error) {
	return f(ctx)
}

// OpenFile opens the file at path. Its type is derived from the file
// name extension.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.Wrap(err, "open file")
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, zerr.Wrap(err, "stat file")
	}
	return &File{
		Name: filepath.Base(path),
		Type: typeByName(path),
		Size: fi.Size(),
		Body: f,
	}, nil
}

func typeByName(name string) string {
	typ := mime.TypeByExtension(filepath.Ext(name))
	if typ == "" {
		return ""
	}
	base, _, err := mime.ParseMediaType(typ)
	if err != nil {
		return typ
	}
	return base
}

// Encode reads the file body and returns it as a data URL. The body is
// closed.
func Encode(f *File) (string, error) {
	return EncodeLimit(f, -1)
}

// EncodeLimit is like Encode but fails with ErrTooLarge once the body
// holds more than max bytes, whatever f.Size reports. A negative max
// means no limit.
func EncodeLimit(f *File, max int64) (string, error) {
	if f == nil || f.Body == nil {
		return "", ErrNoFile
	}
	defer f.Body.Close()
	var r io.Reader = f.Body
	if max >= 0 {
		r = io.LimitReader(f.Body, max+1)
	}
	b, err := blob.Read(r, f.Type)
	if err != nil {
		return "", zerr.With(err, "file", f.Name)
	}
	if max >= 0 && b.Size() > max {
		return "", zerr.With(zerr.With(zerr.Wrap(ErrTooLarge, "read file"), "file", f.Name), "max", max)
	}
	return b.DataURL(), nil
}
