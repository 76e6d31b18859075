// Package tui implements the live watch screen: the filtered and sorted task
// list, kept current by the pipeline while tasks change in this or another
// process.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/observable"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// Deps are the collaborators of the watch screen
type Deps struct {
	Service  task.Service
	Pipeline *pipeline.Pipeline
	Keys     config.KeyMappings
	Colors   config.ColorScheme
	Now      func() time.Time

	// OnSelection is called after the filter or sort changes
	OnSelection func(models.FilterSelection, models.SortSelection)
	// OnDeletion is called with every receipt, and with nil once it is used
	OnDeletion func(*task.DeletionReceipt)
}

// Model represents the state of the watch screen
type Model struct {
	ctx     context.Context
	deps    Deps
	updates <-chan []models.Task
	keys    keyMap
	help    help.Model
	styles  watchStyles

	tasks   []models.Task // latest visible list
	cursor  int
	today   bool
	receipt *task.DeletionReceipt
	notice  notice
	width   int
	height  int
}

// noticeLevel is the severity of the status line
type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelError
)

type notice struct {
	text  string
	level noticeLevel
}

// tasksMsg carries a new visible list from the pipeline
type tasksMsg []models.Task

// mutationMsg reports the outcome of a store write started from a key press
type mutationMsg struct {
	notice  string
	receipt *task.DeletionReceipt
	// used is set when the current receipt was consumed or expired
	used bool
	err  error
}

// New creates a watch screen over deps.Pipeline. Updates stop when ctx is done.
func New(ctx context.Context, deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return Model{
		ctx:     ctx,
		deps:    deps,
		updates: observable.Channel(ctx, deps.Pipeline.Visible()),
		keys:    newKeyMap(deps.Keys),
		help:    help.New(),
		styles:  newWatchStyles(deps.Colors),
		tasks:   deps.Pipeline.Visible().Get(),
	}
}

// Init starts listening for pipeline updates
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForTasks(m.ctx, m.updates)
}

// waitForTasks returns a command that delivers the next visible list
func waitForTasks(ctx context.Context, updates <-chan []models.Task) tea.Cmd {
	return func() tea.Msg {
		select {
		case tasks := <-updates:
			return tasksMsg(tasks)
		case <-ctx.Done():
			return nil
		}
	}
}

// rows returns the tasks currently on screen
func (m Model) rows() []models.Task {
	if m.today {
		return m.deps.Pipeline.Today(m.deps.Now())
	}
	return m.tasks
}

// selected returns the task under the cursor
func (m Model) selected() (models.Task, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return models.Task{}, false
	}
	return rows[m.cursor], true
}

// clampCursor keeps the cursor on a row after the list changes
func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
