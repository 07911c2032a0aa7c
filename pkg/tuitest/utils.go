// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// KeyPress creates a key press message for a printable key such as "n" or
// "X". Named keys like "ctrl+c" keep their name as the text so key.Matches
// sees the same string a terminal would produce.
func KeyPress(s string) tea.KeyPressMsg {
	if s == "" {
		return tea.KeyPressMsg{}
	}
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
