package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	assert.Equal(t, OutputModePlain, DetectOutputMode(&buf, false), "buffers are never interactive")
	assert.Equal(t, OutputModePlain, DetectOutputMode(&buf, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(os.Stdout, true), "forced plain wins")

	t.Setenv("TERM", "dumb")
	assert.Equal(t, OutputModePlain, DetectOutputMode(os.Stdout, false))
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		assert.False(t, IsTerminal(f))
	}
}

func TestTerminalSize_Fallback(t *testing.T) {
	w, h := TerminalSize(&bytes.Buffer{})
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		w, h = TerminalSize(f)
		assert.Equal(t, DefaultWidth, w)
		assert.Equal(t, DefaultHeight, h)
	}
}
