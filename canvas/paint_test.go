// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#ff8000", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{"#FF8000", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{"#f008", color.NRGBA{R: 0xff, A: 0x88}},
		{"#00ff0080", color.NRGBA{G: 0xff, A: 0x80}},
		{"red", color.NRGBA{R: 0xff, A: 0xff}},
		{" Blue ", color.NRGBA{B: 0xff, A: 0xff}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "#", "#12", "#ggg", "rgb(1,2,3)", "notacolor"} {
		_, err := ParseColor(s)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", s)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Hex(color.NRGBA{R: 0xff, G: 0x80, A: 0x10}))
	assert.Equal(t, "#000000", Hex(color.NRGBA{}))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Color("#abc")))
	assert.False(t, Valid(Color("nope")))
	assert.False(t, Valid(nil))
	assert.False(t, Valid(LinearGradient{}))
	assert.True(t, Valid(LinearGradient{Stops: []GradientStop{{0, "red"}, {1, "blue"}}}))
	assert.False(t, Valid(LinearGradient{Stops: []GradientStop{{0, "red"}, {1, "bad"}}}))
}
