// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"
	"sync"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toastboard/internal/core/notify"
)

var mu sync.RWMutex

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
	ColorInfo       color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Dashboard styles.
	TitleStyle       lipgloss.Style
	PanelStyle       lipgloss.Style
	SelectedRowStyle lipgloss.Style
	NormalRowStyle   lipgloss.Style
	MutedStyle       lipgloss.Style
	HelpStyle        lipgloss.Style

	// Toast styles, one per severity.
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastTimerStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorInfo = p.Info

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	NormalRowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	ToastSuccessStyle = toastStyle(ColorSuccess)
	ToastErrorStyle = toastStyle(ColorError)
	ToastWarningStyle = toastStyle(ColorWarning)
	ToastInfoStyle = toastStyle(ColorInfo)
	ToastTimerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

func toastStyle(accent color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(ColorForeground).
		Padding(0, 1)
}

// UseTheme activates the named theme. It reports false and leaves the
// current theme untouched when name is unknown.
func UseTheme(name string) bool {
	p, ok := GetPalette(name)
	if !ok {
		return false
	}
	SetTheme(p)
	return true
}

// ToastStyle returns the toast style and accent color for a severity.
// Unknown severities render as info.
func ToastStyle(sev notify.Severity) (lipgloss.Style, color.Color) {
	mu.RLock()
	defer mu.RUnlock()

	switch sev {
	case notify.SeveritySuccess:
		return ToastSuccessStyle, ColorSuccess
	case notify.SeverityError:
		return ToastErrorStyle, ColorError
	case notify.SeverityWarning:
		return ToastWarningStyle, ColorWarning
	default:
		return ToastInfoStyle, ColorInfo
	}
}

// SeverityIcon returns the icon for a severity. When plain is set an ASCII
// friendly glyph is returned instead of the nerd font icon.
func SeverityIcon(sev notify.Severity, plain bool) string {
	switch sev {
	case notify.SeveritySuccess:
		if plain {
			return PlainIconSuccess
		}
		return IconSuccess
	case notify.SeverityError:
		if plain {
			return PlainIconError
		}
		return IconError
	case notify.SeverityWarning:
		if plain {
			return PlainIconWarning
		}
		return IconWarning
	default:
		if plain {
			return PlainIconInfo
		}
		return IconInfo
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
