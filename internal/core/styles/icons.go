package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Severity icons used by toasts.
var (
	IconSuccess = "" // nf-fa-check_circle
	IconError   = "" // nf-fa-times_circle
	IconWarning = "" // nf-fa-warning
	IconInfo    = "" // nf-fa-info_circle
)

// Plain fallbacks for terminals without a nerd font.
var (
	PlainIconSuccess = "✓"
	PlainIconError   = "✗"
	PlainIconWarning = "!"
	PlainIconInfo    = "i"
)

var (
	IconBell  = "" // nf-fa-bell
	IconClock = "" // nf-fa-clock_o
)
