// Package components provides reusable Bubbletea UI building blocks for
// the rsregions TUI. These are render-only helpers (not tea.Model) used by
// the browser model to compose views.
package components

import (
	"strings"

	"hbasekit/rsregions/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────┐
//	│  rsregions > servers          3 servers  │
//	└──────────────────────────────────────────┘
func Header(width int, breadcrumb string, right string) string {
	if width < 10 {
		return ""
	}

	leftStyle := styles.Title.Foreground(styles.Blue)
	left := leftStyle.Render("rsregions")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	rendered := ""
	if right != "" {
		rendered = styles.Subtitle.Render(right)
	}

	// Calculate spacing between left and right.
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(rendered)
	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-leftLen-rightLen, 1)

	content := left + strings.Repeat(" ", gap) + rendered

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(content)
}
