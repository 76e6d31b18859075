package styles

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Task state styles
	DoneStyle    lipgloss.Style
	OverdueStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme config.ColorScheme
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Text))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Done))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// PriorityColor returns the scheme color for a priority level
func PriorityColor(priority int) string {
	switch priority {
	case models.PriorityHigh:
		return scheme.High
	case models.PriorityLow:
		return scheme.Low
	default:
		return scheme.Normal
	}
}

// RenderPriority renders a priority name in its color
func RenderPriority(priority int) string {
	return BoldColoredText(models.PriorityByID(priority).Description, PriorityColor(priority))
}

// Overdue reports whether an open task was due before today
func Overdue(task models.Task, now time.Time) bool {
	if task.IsDone || !task.HasDueDate() {
		return false
	}
	start, _ := pipeline.DayBounds(now)
	return *task.DueDate < start
}

// RenderTaskLine renders one list row
// Format: "[x] #12 Title  high  2026-03-01"
func RenderTaskLine(task models.Task, now time.Time) string {
	check := "[ ]"
	title := ValueStyle.Render(task.Title)
	if task.IsDone {
		check = "[x]"
		title = DoneStyle.Render(task.Title)
	}

	due := models.NoDueDateLabel
	if task.HasDueDate() {
		due = task.Due(now.Location()).Format(models.DateLayout)
	}
	dueText := SubtitleStyle.Render(due)
	if Overdue(task, now) {
		dueText = OverdueStyle.Render(due)
	}

	return fmt.Sprintf("%s %s %s  %s  %s",
		check,
		SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)),
		title,
		RenderPriority(task.Priority),
		dueText)
}

// RenderProgress renders "done/total (pct%)" with a bar of the given width
func RenderProgress(p pipeline.Progress, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := p.Percent * width / 100
	bar := ColoredText(strings.Repeat("█", filled), scheme.Success) +
		ColoredText(strings.Repeat("░", width-filled), scheme.Subtle)
	return fmt.Sprintf("%s %d/%d (%d%%)", bar, p.Done, p.Total, p.Percent)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
