// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(18)
)

// statusStyle colours an item status so broken connections stand out.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "active":
		return cellStyle.Foreground(lipgloss.Color("10"))
	case "requires_reauth", "error":
		return cellStyle.Foreground(lipgloss.Color("11"))
	case "pending_removal":
		return cellStyle.Faint(true)
	default:
		return cellStyle
	}
}
