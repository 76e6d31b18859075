package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// filterCycle and sortCycle are the orders the cycle keys step through
var (
	filterCycle = []models.FilterSelection{models.FilterAll, models.FilterActiveOnly, models.FilterDoneOnly}
	sortCycle   = []models.SortSelection{models.SortByDueDate, models.SortByPriority}
)

// Update handles all messages and updates the model
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case tasksMsg:
		m.tasks = msg
		m.clampCursor()
		return m, waitForTasks(m.ctx, m.updates)

	case mutationMsg:
		return m.handleMutation(msg), nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = notice{}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTask):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevTask):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.CycleFilter):
		m.deps.Pipeline.SetFilter(nextFilter(m.deps.Pipeline.Filter()))
		m.selectionChanged()
	case key.Matches(msg, m.keys.CycleSort):
		m.deps.Pipeline.SetSort(nextSort(m.deps.Pipeline.Sort()))
		m.selectionChanged()
	case key.Matches(msg, m.keys.ToggleToday):
		m.today = !m.today
		m.cursor = 0
	case key.Matches(msg, m.keys.ToggleDone):
		if t, ok := m.selected(); ok {
			return m, m.setDone(t, !t.IsDone)
		}
	case key.Matches(msg, m.keys.DeleteTask):
		if t, ok := m.selected(); ok {
			return m, m.deleteTask(t)
		}
	case key.Matches(msg, m.keys.Undo):
		if m.receipt == nil {
			m.notice = notice{text: "Nothing to undo", level: levelInfo}
			return m, nil
		}
		return m, m.undo(*m.receipt)
	}
	return m, nil
}

// selectionChanged picks up the recomputed list and reports the selection
func (m *Model) selectionChanged() {
	m.tasks = m.deps.Pipeline.Visible().Get()
	m.cursor = 0
	if m.deps.OnSelection != nil {
		m.deps.OnSelection(m.deps.Pipeline.Filter(), m.deps.Pipeline.Sort())
	}
}

func (m Model) handleMutation(msg mutationMsg) Model {
	if msg.used {
		m.receipt = nil
	}
	if msg.err != nil {
		if task.Detached(msg.err) {
			return m
		}
		// Another process deleted the task first; the list catches up on its own
		if errors.Is(msg.err, task.ErrTaskNotFound) {
			m.notice = notice{text: "Task no longer exists", level: levelInfo}
			return m
		}
		slog.Error("watch mutation failed", "error", msg.err)
		text := msg.err.Error()
		if errors.Is(msg.err, task.ErrUndoExpired) {
			text = "Too late to undo that deletion"
		}
		m.notice = notice{text: text, level: levelError}
		return m
	}
	if msg.receipt != nil {
		m.receipt = msg.receipt
	}
	m.notice = notice{text: msg.notice, level: levelInfo}
	return m
}

// Store writes run as commands, off the update loop. The store notifies the
// pipeline synchronously, which must not happen while Update holds the model.

func (m Model) setDone(t models.Task, done bool) tea.Cmd {
	ctx, svc := m.ctx, m.deps.Service
	return func() tea.Msg {
		updated, err := svc.SetDone(ctx, t, done)
		if err != nil {
			return mutationMsg{err: err}
		}
		state := "not done"
		if updated.IsDone {
			state = "done"
		}
		return mutationMsg{notice: fmt.Sprintf("'%s' marked %s", updated.Title, state)}
	}
}

func (m Model) deleteTask(t models.Task) tea.Cmd {
	ctx, svc, onDeletion := m.ctx, m.deps.Service, m.deps.OnDeletion
	undoKey := m.keys.Undo.Help().Key
	return func() tea.Msg {
		receipt, err := svc.DeleteTask(ctx, t)
		if err != nil {
			return mutationMsg{err: err}
		}
		if onDeletion != nil {
			onDeletion(receipt)
		}
		return mutationMsg{
			notice:  fmt.Sprintf("'%s' deleted (%s to undo)", t.Title, undoKey),
			receipt: receipt,
		}
	}
}

func (m Model) undo(receipt task.DeletionReceipt) tea.Cmd {
	ctx, svc, onDeletion := m.ctx, m.deps.Service, m.deps.OnDeletion
	return func() tea.Msg {
		restored, err := svc.Undo(ctx, receipt)
		if err != nil && !errors.Is(err, task.ErrUndoExpired) {
			return mutationMsg{err: err}
		}
		if onDeletion != nil {
			onDeletion(nil)
		}
		if err != nil {
			return mutationMsg{err: err, used: true}
		}
		return mutationMsg{notice: fmt.Sprintf("'%s' restored", restored.Title), used: true}
	}
}

func nextFilter(f models.FilterSelection) models.FilterSelection {
	for i, sel := range filterCycle {
		if sel == f {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return filterCycle[0]
}

func nextSort(s models.SortSelection) models.SortSelection {
	for i, sel := range sortCycle {
		if sel == s {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}
