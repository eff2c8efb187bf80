// Package output provides rendering for CLI command results.
//
// The renderer adapts to the environment: styled text for interactive
// terminals, markdown for pipes and scripts, and JSON for machine
// consumption. Mode auto picks text or markdown based on TTY detection.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how command results are rendered.
type OutputMode string

const (
	// ModeAuto picks ModeText on a TTY and ModeMarkdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText renders styled terminal output.
	ModeText OutputMode = "text"
	// ModeMarkdown renders plain markdown without ANSI codes.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON OutputMode = "json"
)

// Mode parses a format string into an OutputMode.
// Unknown values fall back to ModeAuto.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer

	requested OutputMode
	effective OutputMode
	isTTY     bool

	styles *Styles
}

// NewRenderer creates a renderer, detecting TTY from the output writer.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY flag.
// Used by tests to control mode resolution deterministically.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	effective := mode
	if effective == "" || effective == ModeAuto {
		if isTTY {
			effective = ModeText
		} else {
			effective = ModeMarkdown
		}
	}

	// Colors only for styled text on a real terminal. Markdown and JSON
	// output must stay free of ANSI escapes.
	colored := effective == ModeText && isTTY

	return &Renderer{
		out:       out,
		errOut:    errOut,
		requested: mode,
		effective: effective,
		isTTY:     isTTY,
		styles:    NewStyles(colored),
	}
}

// EffectiveMode returns the resolved output mode (never ModeAuto).
func (r *Renderer) EffectiveMode() OutputMode {
	return r.effective
}

// IsTTY reports whether the output writer is an interactive terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the underlying error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Styles returns the style set for the active mode.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(r.out, format, a...)
}

// Header writes a section header at the given level.
func (r *Renderer) Header(level int, text string) {
	switch r.effective {
	case ModeMarkdown:
		fmt.Fprintln(r.out, FormatHeader(level, text))
		fmt.Fprintln(r.out)
	default:
		style := r.styles.Header2
		if level <= 1 {
			style = r.styles.Header1
		}
		fmt.Fprintln(r.out, style.Render(text))
	}
}

// Success writes a success message with a check mark.
func (r *Renderer) Success(msg string) {
	if r.effective == ModeMarkdown {
		fmt.Fprintln(r.out, "✓ "+msg)
		return
	}
	fmt.Fprintln(r.out, r.styles.Success.Render("✓ "+msg))
}

// Warning writes a warning message to the error writer.
func (r *Renderer) Warning(msg string) {
	if r.effective == ModeMarkdown {
		fmt.Fprintln(r.errOut, "⚠ "+msg)
		return
	}
	fmt.Fprintln(r.errOut, r.styles.Warning.Render("⚠ "+msg))
}

// Error writes an error message to the error writer.
func (r *Renderer) Error(msg string) {
	if r.effective == ModeMarkdown {
		fmt.Fprintln(r.errOut, "✗ "+msg)
		return
	}
	fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// Muted writes a de-emphasized message.
func (r *Renderer) Muted(msg string) {
	if r.effective == ModeMarkdown {
		fmt.Fprintln(r.out, msg)
		return
	}
	fmt.Fprintln(r.out, r.styles.Muted.Render(msg))
}

// StatusLine writes a name with a status icon and optional detail.
// Status is one of "success", "failed", or anything else for neutral.
func (r *Renderer) StatusLine(name, status, detail string) {
	if r.effective == ModeMarkdown {
		line := "- " + name + ": " + status
		if detail != "" {
			line += " (" + detail + ")"
		}
		fmt.Fprintln(r.out, line)
		return
	}

	var icon string
	switch status {
	case "success":
		icon = r.styles.StatusSuccess.String()
	case "failed":
		icon = r.styles.StatusFailed.String()
	default:
		icon = "•"
	}

	line := "  " + icon + " " + name
	if detail != "" {
		line += " " + r.styles.Muted.Render(detail)
	}
	fmt.Fprintln(r.out, line)
}

// YogaLine writes one numbered catalog entry with its tier and an
// optional detail suffix.
func (r *Renderer) YogaLine(index int, name, tier, detail string) {
	line := fmt.Sprintf("%3d. %s %s",
		index,
		r.styles.YogaName.Render(name),
		r.styles.Muted.Render("["+tier+"]"))
	if detail != "" {
		line += " " + r.styles.Muted.Render(detail)
	}
	fmt.Fprintln(r.out, line)
}

// JSON writes v as indented JSON to the output writer.
func (r *Renderer) JSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
