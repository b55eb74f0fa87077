// SPDX-License-Identifier: Unlicense OR MIT

package blob

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10, 0x7f}
	b := Blob{Type: "image/png", Data: data}

	url := b.DataURL()
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)

	got, err := FromDataURL(url, "")
	require.NoError(t, err)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "image/png", got.Type)
}

func TestFromDataURLExplicitType(t *testing.T) {
	b := Blob{Type: "image/jpeg", Data: []byte("jpeg bytes")}
	got, err := FromDataURL(b.DataURL(), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", got.Type)
	assert.Equal(t, b.Data, got.Data)
}

func TestFromDataURLDefaultType(t *testing.T) {
	got, err := FromDataURL("data:,A%20brief%20note", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultType, got.Type)
	assert.Equal(t, []byte("A brief note"), got.Data)
}

func TestFromDataURLMalformed(t *testing.T) {
	for _, s := range []string{"", "not a url", "data:image/png;base64"} {
		_, err := FromDataURL(s, "")
		assert.ErrorIs(t, err, ErrMalformed, "input %q", s)
	}
}

func TestRead(t *testing.T) {
	b, err := Read(bytes.NewReader([]byte("hello")), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(5), b.Size())
	assert.Equal(t, "text/plain", b.Type)
}

func TestEmptyTypeEncodesOctetStream(t *testing.T) {
	url := Blob{Data: []byte{1}}.DataURL()
	assert.True(t, strings.HasPrefix(url, "data:application/octet-stream;base64,"), url)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/png;base64,AA=="))
	assert.True(t, IsDataURL("DATA:,x"))
	assert.False(t, IsDataURL("image.png"))
	assert.False(t, IsDataURL("data"))
}
