package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toastboard/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderProducts(),
		styles.HelpStyle.Render(m.help.View(m.keys)),
	)

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderHeader() string {
	status := styles.MutedStyle.Render("logged out")
	if user, err := m.app.Accounts.Authenticate(m.token); err == nil {
		status = styles.MutedStyle.Render("logged in as " + user.Name)
	}
	return styles.TitleStyle.Render(styles.IconBell+" toastboard") + "  " + status
}

func (m Model) renderProducts() string {
	if len(m.products) == 0 {
		return styles.PanelStyle.Render(styles.MutedStyle.Render("No products yet. Press n to add one."))
	}

	nameW := len("Product")
	for _, p := range m.products {
		nameW = max(nameW, lipgloss.Width(p.Name))
	}

	rows := make([]string, 0, len(m.products)+1)
	rows = append(rows, styles.MutedStyle.Render(fmt.Sprintf("  %-*s  %10s  %s", nameW, "Product", "Price", "Category")))
	for i, p := range m.products {
		line := fmt.Sprintf("%-*s  %10s  %s", nameW, p.Name, fmt.Sprintf("$%.2f", p.Price), p.Category)
		if i == m.cursor {
			rows = append(rows, styles.SelectedRowStyle.Render("> "+line))
			continue
		}
		rows = append(rows, styles.NormalRowStyle.Render("  "+line))
	}
	return styles.PanelStyle.Render(strings.Join(rows, "\n"))
}
