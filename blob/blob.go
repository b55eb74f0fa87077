// SPDX-License-Identifier: Unlicense OR MIT

// Package blob converts between binary content and data URLs of the form
// data:<mime>;base64,<payload>.
package blob

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vincent-petithory/dataurl"
	"go.trai.ch/zerr"
)

// DefaultType is the MIME type of a Blob decoded from a data URL that
// does not declare one.
const DefaultType = "image/png"

// unknownType is the type FileReader reports for content without a type.
const unknownType = "application/octet-stream"

// ErrMalformed is returned for strings that are not data URLs.
var ErrMalformed = zerr.New("malformed data URL")

// Blob is binary content tagged with a MIME type.
type Blob struct {
	Type string
	Data []byte
}

// Read reads all of r into a Blob of the given type.
func Read(r io.Reader, typ string) (Blob, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Blob{}, zerr.Wrap(err, "read blob")
	}
	return Blob{Type: typ, Data: buf.Bytes()}, nil
}

// Size returns the length of the content in bytes.
func (b Blob) Size() int64 {
	return int64(len(b.Data))
}

// Reader returns a reader over the content.
func (b Blob) Reader() io.Reader {
	return bytes.NewReader(b.Data)
}

// DataURL encodes b as a base64 data URL.
func (b Blob) DataURL() string {
	typ := b.Type
	if typ == "" {
		typ = unknownType
	}
	return dataurl.New(b.Data, typ).String()
}

// FromDataURL decodes the payload of a data URL. The type of the result
// is typ if set, otherwise the type the data URL declares, otherwise
// DefaultType.
func FromDataURL(s, typ string) (Blob, error) {
	du, err := dataurl.DecodeString(s)
	if err != nil {
		return Blob{}, zerr.With(fmt.Errorf("%w: %w", ErrMalformed, err), "prefix", prefix(s))
	}
	if typ == "" && declaresType(s) {
		typ = du.MediaType.ContentType()
	}
	if typ == "" {
		typ = DefaultType
	}
	return Blob{Type: typ, Data: du.Data}, nil
}

// IsDataURL reports whether s looks like a data URL.
func IsDataURL(s string) bool {
	return len(s) >= 5 && strings.EqualFold(s[:5], "data:")
}

// declaresType reports whether the header of s names a media type. Data
// URLs without one default to text/plain, which is not useful for images.
func declaresType(s string) bool {
	if !IsDataURL(s) {
		return false
	}
	s = s[len("data:"):]
	return s != "" && s[0] != ';' && s[0] != ','
}

func prefix(s string) string {
	const max = 32
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
