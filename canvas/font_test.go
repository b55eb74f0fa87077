// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"18px serif", Font{Family: "serif", Size: 18}},
		{"bold 12px Arial, sans-serif", Font{Family: "Arial", Size: 12, Weight: 700}},
		{"italic 600 24px/30px 'Go Mono'", Font{Family: "Go Mono", Size: 24, Weight: 600, Italic: true}},
		{"12pt monospace", Font{Family: "monospace", Size: 16}},
		{"2em sans-serif", Font{Family: "sans-serif", Size: 32}},
	}
	for _, tt := range tests {
		got, err := ParseFont(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFontInvalid(t *testing.T) {
	for _, s := range []string{"", "serif", "bold", "12px", "-3px serif", "twelve px serif"} {
		_, err := ParseFont(s)
		assert.ErrorIs(t, err, ErrInvalidFont, "input %q", s)
	}
}

func TestFontString(t *testing.T) {
	assert.Equal(t, "18px serif", Font{}.String())
	assert.Equal(t, "italic 700 12.5px monospace", Font{Family: "monospace", Size: 12.5, Weight: 700, Italic: true}.String())

	f, err := ParseFont(Font{Family: "sans-serif", Size: 9, Weight: 300}.String())
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "sans-serif", Size: 9, Weight: 300}, f)
}

func TestFontBold(t *testing.T) {
	assert.False(t, Font{}.Bold())
	assert.False(t, Font{Weight: 500}.Bold())
	assert.True(t, Font{Weight: 600}.Bold())
}
