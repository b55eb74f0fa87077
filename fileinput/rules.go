// SPDX-License-Identifier: Unlicense OR MIT

package fileinput

import (
	"slices"

	"go.trai.ch/zerr"
)

var (
	// ErrNoFile is returned when no file was selected.
	ErrNoFile = zerr.New("no file selected")
	// ErrUnsupportedType is returned for files of a type not in the rules.
	ErrUnsupportedType = zerr.New("unsupported file type")
	// ErrTooLarge is returned for files above the size limit.
	ErrTooLarge = zerr.New("file too large")
)

// Rules restrict the files a file input accepts.
type Rules struct {
	// MaxSize is the largest accepted size in bytes.
	MaxSize int64
	// Types lists the accepted MIME types.
	Types []string
}

// DefaultRules accept JPEG and PNG images up to 5 MB.
var DefaultRules = Rules{
	MaxSize: 5_000_000,
	Types:   []string{"image/jpeg", "image/png"},
}

// Check reports why f is not accepted, or nil if it is.
func (r Rules) Check(f *File) error {
	if f == nil {
		return ErrNoFile
	}
	if !slices.Contains(r.Types, f.Type) {
		return zerr.With(zerr.Wrap(ErrUnsupportedType, "check file"), "type", f.Type)
	}
	if f.Size > r.MaxSize {
		return zerr.With(zerr.With(zerr.Wrap(ErrTooLarge, "check file"), "size", f.Size), "max", r.MaxSize)
	}
	return nil
}
