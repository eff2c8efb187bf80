package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMode tests parsing of format strings.
func TestMode(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputMode
	}{
		{"text", ModeText},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"bogus", ModeAuto},
		{"  json  ", ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mode(tt.input))
		})
	}
}

// TestEffectiveMode tests auto mode resolution against TTY state.
func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	t.Run("auto on tty is text", func(t *testing.T) {
		r := NewRendererWithTTY(&buf, &buf, true, ModeAuto)
		assert.Equal(t, ModeText, r.EffectiveMode())
	})

	t.Run("auto off tty is markdown", func(t *testing.T) {
		r := NewRendererWithTTY(&buf, &buf, false, ModeAuto)
		assert.Equal(t, ModeMarkdown, r.EffectiveMode())
	})

	t.Run("explicit json preserved", func(t *testing.T) {
		r := NewRendererWithTTY(&buf, &buf, true, ModeJSON)
		assert.Equal(t, ModeJSON, r.EffectiveMode())
	})

	t.Run("explicit text off tty preserved", func(t *testing.T) {
		r := NewRendererWithTTY(&buf, &buf, false, ModeText)
		assert.Equal(t, ModeText, r.EffectiveMode())
	})
}

// TestHeaderMarkdown tests markdown header rendering.
func TestHeaderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithTTY(&buf, &buf, false, ModeMarkdown)

	r.Header(1, "Catalog")
	r.Header(2, "Tiers")

	out := buf.String()
	assert.Contains(t, out, "# Catalog")
	assert.Contains(t, out, "## Tiers")
	assert.NotContains(t, out, "\x1b[", "markdown output must not contain ANSI escapes")
}

// TestTextModeWithoutTTYHasNoANSI verifies that forcing text mode in a
// pipe still produces clean output.
func TestTextModeWithoutTTYHasNoANSI(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithTTY(&buf, &buf, false, ModeText)

	r.Header(1, "Catalog")
	r.Success("registry built")
	r.StatusLine("Raja Yoga", "success", "tier major_positive")
	r.Muted("5 variants")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "non-TTY text output must not contain ANSI escapes")
	assert.Contains(t, out, "Catalog")
	assert.Contains(t, out, "✓ registry built")
	assert.Contains(t, out, "Raja Yoga")
}

// TestStatusLine tests status line rendering in both modes.
func TestStatusLine(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRendererWithTTY(&buf, &buf, false, ModeMarkdown)

		r.StatusLine("jioastro.yaml", "success", "")
		r.StatusLine("state store", "failed", "connection refused")

		out := buf.String()
		assert.Contains(t, out, "- jioastro.yaml: success")
		assert.Contains(t, out, "- state store: failed (connection refused)")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRendererWithTTY(&buf, &buf, false, ModeText)

		r.StatusLine("jioastro.yaml", "success", "")
		r.StatusLine("state store", "failed", "connection refused")
		r.StatusLine("cache", "skipped", "")

		out := buf.String()
		assert.Contains(t, out, "✓ jioastro.yaml")
		assert.Contains(t, out, "✗ state store")
		assert.Contains(t, out, "• cache")
	})
}

// TestWarningGoesToErrWriter verifies warnings are written to stderr.
func TestWarningGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Println("normal line")
	r.Warning("deprecated flag")

	assert.Contains(t, out.String(), "normal line")
	assert.NotContains(t, out.String(), "deprecated")
	assert.Contains(t, errOut.String(), "⚠ deprecated flag")
}

// TestJSON tests JSON encoding through the renderer.
func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithTTY(&buf, &buf, false, ModeJSON)

	payload := map[string]interface{}{
		"name": "Gajakesari Yoga",
		"tier": "major_positive",
	}
	require.NoError(t, r.JSON(payload))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Gajakesari Yoga", decoded["name"])
	assert.Equal(t, "major_positive", decoded["tier"])

	// Indented output
	assert.True(t, strings.Contains(buf.String(), "\n  "), "JSON should be indented")
}

// TestFormatHelpers tests the markdown format helpers.
func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "## Section", FormatHeader(2, "Section"))
	assert.Equal(t, "# Clamped", FormatHeader(0, "Clamped"))
	assert.Equal(t, "###### Deep", FormatHeader(9, "Deep"))

	assert.Equal(t, "**Tier:** standard", FormatKeyValue("Tier", "standard"))

	block := FormatCodeBlock("jioastro lookup \"Raja Yoga\"\n", "bash")
	assert.Equal(t, "```bash\njioastro lookup \"Raja Yoga\"\n```", block)
}

// TestStylesPlainHaveNoAttributes verifies uncolored styles render
// input unchanged.
func TestStylesPlainHaveNoAttributes(t *testing.T) {
	styles := NewStyles(false)

	assert.Equal(t, "hello", styles.Header1.Render("hello"))
	assert.Equal(t, "hello", styles.Muted.Render("hello"))
	assert.Equal(t, "✓", styles.StatusSuccess.String())
	assert.Equal(t, "✗", styles.StatusFailed.String())
}
