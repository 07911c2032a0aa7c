// Package notify holds the set of currently visible notifications.
package notify

import (
	"fmt"
	"time"
)

// Severity classifies a notification. It drives the default display
// duration and the styling chosen by renderers.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Severities lists every supported severity.
func Severities() []Severity {
	return []Severity{SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo}
}

// IsValid reports whether s is one of the supported severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Notification is a single visible notification.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	// Lifetime is how long the notification stays visible. Zero means it
	// never expires on its own and must be dismissed.
	Lifetime  time.Duration
	CreatedAt time.Time
}

// Sticky reports whether the notification never auto-expires.
func (n Notification) Sticky() bool {
	return n.Lifetime == 0
}

// ExpiresAt returns the instant the notification is due to expire, or the
// zero time for sticky notifications.
func (n Notification) ExpiresAt() time.Time {
	if n.Sticky() {
		return time.Time{}
	}
	return n.CreatedAt.Add(n.Lifetime)
}

// Remaining returns the time left before expiry at now. Sticky
// notifications report zero.
func (n Notification) Remaining(now time.Time) time.Duration {
	if n.Sticky() {
		return 0
	}
	return max(n.ExpiresAt().Sub(now), 0)
}
