// SPDX-License-Identifier: Unlicense OR MIT

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "file", "a.png")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "file=a.png")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{JSON: true})
	require.NoError(t, err)
	l.Info("resized", "width", 10)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "resized", rec["msg"])
	assert.Equal(t, float64(10), rec["width"])
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(nil, Options{Level: "chatty"})
	assert.Error(t, err)
}
