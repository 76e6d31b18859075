package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// watchStyles are the lipgloss styles of the watch screen
type watchStyles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Bar      lipgloss.Style
	BarEmpty lipgloss.Style

	priority map[int]lipgloss.Style
}

func newWatchStyles(colors config.ColorScheme) watchStyles {
	colors.ApplyDefaults()

	return watchStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(colors.Done)),
		Overdue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Overdue)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Success)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Error)),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Success)),
		BarEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		priority: map[int]lipgloss.Style{
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Low)),
			models.PriorityNormal: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Normal)),
			models.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.High)),
		},
	}
}

// Priority returns the style of a priority level
func (s watchStyles) Priority(p int) lipgloss.Style {
	if style, ok := s.priority[p]; ok {
		return style
	}
	return s.priority[models.PriorityNormal]
}
