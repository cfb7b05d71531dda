package main

import (
	"testing"

	"calc/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideMarkdown(t *testing.T) {
	md := guideMarkdown()

	assert.Contains(t, md, "| 1 | Add |")
	assert.Contains(t, md, "| 7 | Square root |")
	assert.Contains(t, md, "| 0 | Exit |")
	assert.Contains(t, md, "## Number format")
}

func TestGuideCommand(t *testing.T) {
	inTempDir(t)

	out, err := executeCommand(rootCmd, "guide", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Modulus")
	assert.Contains(t, out, "Power")
	assert.Contains(t, out, "Square root")
	assert.NotContains(t, out, "Menu:\n 1)", "guide does not start a session")
}

func TestNewGuideRenderer(t *testing.T) {
	for _, mode := range []string{config.ColorAuto, config.ColorAlways, config.ColorNever} {
		r, err := newGuideRenderer(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, r)
	}
}
