package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	shelfStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	promptStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func line(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("> " + text)
	}
	return "  " + text
}

func quantity(n int, unit string) string {
	return fmt.Sprintf("%d %s", n, unit)
}
