package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/armview/internal/format"
	"github.com/five82/armview/internal/prefs"
)

// ColorScheme is a named palette. ForceDark schemes ignore light mode.
type ColorScheme struct {
	ID        string
	Label     string
	ForceDark bool
	Tokens    SchemeTokens
}

// SchemeTokens holds a scheme's hex colors for both modes.
type SchemeTokens struct {
	Primary            string
	PrimaryHover       string
	PrimaryDark        string
	PrimaryLightBg     string
	PrimaryLightBgDark string
	PrimaryText        string
	PrimaryTextDark    string
	PrimaryBorder      string
	OnPrimary          string
	Page               string
	PageDark           string
	Surface            string
	SurfaceDark        string
}

// neutral holds the mode-dependent colors shared by every scheme.
type neutral struct {
	text        string
	muted       string
	faint       string
	success     string
	warning     string
	danger      string
	info        string
	transcoding string
}

var (
	darkNeutral = neutral{
		text:        "#e5e7eb",
		muted:       "#9ca3af",
		faint:       "#6b7280",
		success:     "#22c55e",
		warning:     "#f59e0b",
		danger:      "#ef4444",
		info:        "#06b6d4",
		transcoding: "#a855f7",
	}
	lightNeutral = neutral{
		text:        "#111827",
		muted:       "#4b5563",
		faint:       "#9ca3af",
		success:     "#16a34a",
		warning:     "#d97706",
		danger:      "#dc2626",
		info:        "#0891b2",
		transcoding: "#9333ea",
	}
)

// Theme is a scheme resolved for one mode.
type Theme struct {
	SchemeID string
	Label    string
	Mode     string

	Background string // Page
	Surface    string // Header and panels
	SurfaceAlt string // Highlighted rows and badges

	SelectionBg   string
	SelectionText string

	Border string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	StatusColors map[format.Category]string
}

// Dark reports whether the theme renders with the dark palette.
func (t Theme) Dark() bool {
	return t.Mode == prefs.ModeDark
}

// ResolveTheme combines a scheme with a mode. Unknown schemes fall back to the
// default; ForceDark schemes always resolve dark.
func ResolveTheme(schemeID, mode string) Theme {
	scheme := GetScheme(schemeID)
	if scheme.ForceDark || mode != prefs.ModeLight {
		mode = prefs.ModeDark
	}
	tk := scheme.Tokens

	t := Theme{
		SchemeID:      scheme.ID,
		Label:         scheme.Label,
		Mode:          mode,
		SelectionBg:   tk.Primary,
		SelectionText: tk.OnPrimary,
		Border:        tk.PrimaryBorder,
	}

	n := lightNeutral
	if mode == prefs.ModeDark {
		n = darkNeutral
		t.Background = tk.PageDark
		t.Surface = tk.SurfaceDark
		t.SurfaceAlt = tk.PrimaryLightBgDark
		t.Accent = tk.PrimaryTextDark
	} else {
		t.Background = tk.Page
		t.Surface = tk.Surface
		t.SurfaceAlt = tk.PrimaryLightBg
		t.Accent = tk.PrimaryText
	}
	t.Text, t.Muted, t.Faint = n.text, n.muted, n.faint
	t.Success, t.Warning, t.Danger, t.Info = n.success, n.warning, n.danger, n.info

	t.StatusColors = map[format.Category]string{
		format.CategoryActive:      t.Accent,
		format.CategoryTranscoding: n.transcoding,
		format.CategorySuccess:     n.success,
		format.CategoryFailed:      n.danger,
		format.CategoryWaiting:     n.warning,
		format.CategoryUnknown:     n.faint,
	}
	return t
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		TabActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		statusColors: t.StatusColors,
		onStatus:     t.SelectionText,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header      lipgloss.Style
	Logo        lipgloss.Style
	Selected    lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Banner      lipgloss.Style
	Panel       lipgloss.Style

	statusColors map[format.Category]string
	onStatus     string
	muted        string
}

// StatusStyle returns a badge style for a job or transcode status.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	color := s.statusColors[format.StatusCategory(status)]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.onStatus)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles whose text styles carry bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Logo = s.Logo.Background(bg)
	out.TabInactive = s.TabInactive.Background(bg)
	return out
}

// GetScheme returns a scheme by ID, or the default scheme.
func GetScheme(id string) ColorScheme {
	for _, s := range colorSchemes {
		if s.ID == id {
			return s
		}
	}
	return colorSchemes[0]
}

// NextScheme returns the scheme ID after current in the cycle.
func NextScheme(current string) string {
	for i, s := range colorSchemes {
		if s.ID == current {
			return colorSchemes[(i+1)%len(colorSchemes)].ID
		}
	}
	return colorSchemes[0].ID
}

// SchemeIDs returns the selectable scheme IDs in cycle order.
func SchemeIDs() []string {
	ids := make([]string, len(colorSchemes))
	for i, s := range colorSchemes {
		ids[i] = s.ID
	}
	return ids
}

// ToggleMode flips between light and dark.
func ToggleMode(mode string) string {
	if mode == prefs.ModeLight {
		return prefs.ModeDark
	}
	return prefs.ModeLight
}
