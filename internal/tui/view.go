package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
)

const progressWidth = 24

// View renders the current state of the watch screen
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer
	view.Content = m.content()
	return view
}

func (m Model) content() string {
	var b strings.Builder

	rows := m.rows()
	now := m.deps.Now()

	if m.today {
		b.WriteString(m.styles.Title.Render("Today " + now.Format(models.DateLayout)))
	} else {
		b.WriteString(m.styles.Title.Render("Tasks"))
		b.WriteString("  ")
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("filter: %s  sort: %s",
			m.deps.Pipeline.Filter(), m.deps.Pipeline.Sort())))
	}
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(m.styles.Subtle.Render("No tasks"))
		b.WriteString("\n")
	}
	for i, t := range rows {
		b.WriteString(m.renderRow(t, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderProgress(pipeline.ProgressOf(rows)))
	b.WriteString("\n")

	if m.notice.text != "" {
		style := m.styles.Info
		if m.notice.level == levelError {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.notice.text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderRow renders "> [x] Title  high  2026-03-01"
func (m Model) renderRow(t models.Task, selected bool) string {
	marker := "  "
	title := m.styles.Row.Render(t.Title)
	if selected {
		marker = m.styles.Selected.Render("> ")
		title = m.styles.Selected.Render(t.Title)
	}

	check := "[ ]"
	if t.IsDone {
		check = "[x]"
		title = m.styles.Done.Render(t.Title)
	}

	due := models.NoDueDateLabel
	dueStyle := m.styles.Subtle
	if t.HasDueDate() {
		now := m.deps.Now()
		due = t.Due(now.Location()).Format(models.DateLayout)
		// Overdue means due before today began
		if start, _ := pipeline.DayBounds(now); !t.IsDone && *t.DueDate < start {
			dueStyle = m.styles.Overdue
		}
	}

	priority := m.styles.Priority(t.Priority).Render(models.PriorityByID(t.Priority).Description)
	return fmt.Sprintf("%s%s %s  %s  %s", marker, check, title, priority, dueStyle.Render(due))
}

// renderProgress renders a completion bar with counts
func (m Model) renderProgress(p pipeline.Progress) string {
	filled := p.Percent * progressWidth / 100
	bar := m.styles.Bar.Render(strings.Repeat("█", filled)) +
		m.styles.BarEmpty.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s %d/%d done (%d%%)", bar, p.Done, p.Total, p.Percent)
}
