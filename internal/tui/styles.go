package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typist/internal/model"
)

type styles struct {
	correct   lipgloss.Style
	incorrect lipgloss.Style
	pending   lipgloss.Style
	cursor    lipgloss.Style
	stats     lipgloss.Style
	accent    lipgloss.Style
	result    lipgloss.Style
	resultBox lipgloss.Style
	errorText lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	accent := lipgloss.Color(theme.Accent)
	return styles{
		correct:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Correct)),
		incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Incorrect)),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Pending)),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current)).Underline(true),
		stats:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Stats)),
		accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		result:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Correct)),
		resultBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Incorrect)),
	}
}
