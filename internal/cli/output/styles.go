package output

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan, headers and accents
	colorSuccess = lipgloss.Color("#00E676") // Green, completed
	colorWarning = lipgloss.Color("#FFD700") // Gold, attention
	colorDanger  = lipgloss.Color("#FF5252") // Red, errors
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray, de-emphasized
	colorInfo    = lipgloss.Color("#5B8DEF") // Blue, informational
	colorName    = lipgloss.Color("#D7AFFF") // Violet, yoga names
)

// Styles holds the lipgloss styles used by the renderer.
// When colors are disabled every style is a no-op and Render returns
// its input unchanged.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style

	Bold  lipgloss.Style
	Muted lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// YogaName styles canonical yoga names in listings and lookups.
	YogaName lipgloss.Style

	// Status icons carry their glyph via SetString so call sites can
	// use String() directly.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// NewStyles returns the style set. With colored false the styles carry
// no attributes, so rendered output contains no ANSI escapes.
func NewStyles(colored bool) *Styles {
	if !colored {
		return &Styles{
			Header1:       lipgloss.NewStyle(),
			Header2:       lipgloss.NewStyle(),
			Bold:          lipgloss.NewStyle(),
			Muted:         lipgloss.NewStyle(),
			Success:       lipgloss.NewStyle(),
			Warning:       lipgloss.NewStyle(),
			Error:         lipgloss.NewStyle(),
			Info:          lipgloss.NewStyle(),
			YogaName:      lipgloss.NewStyle(),
			StatusSuccess: lipgloss.NewStyle().SetString("✓"),
			StatusFailed:  lipgloss.NewStyle().SetString("✗"),
		}
	}

	return &Styles{
		Header1: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true),
		Header2: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),
		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),
		Warning: lipgloss.NewStyle().
			Foreground(colorWarning),
		Error: lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(colorInfo),
		YogaName: lipgloss.NewStyle().
			Foreground(colorName).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(colorSuccess).
			SetString("✓"),
		StatusFailed: lipgloss.NewStyle().
			Foreground(colorDanger).
			SetString("✗"),
	}
}
