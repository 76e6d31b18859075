// Package pipeline turns the live task set into the list a screen shows.
//
// The visible list is a pure function of three observables: the latest task
// set from the store, the filter selection and the sort selection. Changing
// any of them recomputes the list synchronously, so a reader always sees a
// result consistent with the most recent values of all three.
package pipeline

import (
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/observable"
)

// Option configures a Pipeline
type Option func(*Pipeline)

// WithFilter sets the initial filter selection
func WithFilter(f models.FilterSelection) Option {
	return func(p *Pipeline) { p.filter.Set(f) }
}

// WithSort sets the initial sort selection
func WithSort(s models.SortSelection) Option {
	return func(p *Pipeline) { p.sort.Set(s) }
}

// WithClock replaces time.Now for the today view
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline holds the selection state of one screen
type Pipeline struct {
	tasks  observable.Observable[[]models.Task]
	filter *observable.Value[models.FilterSelection]
	sort   *observable.Value[models.SortSelection]
	now    func() time.Time

	visible  *observable.Derived[[]models.Task]
	progress *observable.Derived[Progress]
}

// New builds a pipeline over tasks, usually a database.LiveQuery
func New(tasks observable.Observable[[]models.Task], opts ...Option) *Pipeline {
	p := &Pipeline{
		tasks:  tasks,
		filter: observable.NewValue(models.DefaultFilter),
		sort:   observable.NewValue(models.DefaultSort),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.visible = observable.Combine3(tasks, p.filter, p.sort, Recompute)
	p.progress = observable.Map[[]models.Task](p.visible, ProgressOf)
	return p
}

// SetFilter replaces the filter selection
func (p *Pipeline) SetFilter(f models.FilterSelection) {
	p.filter.Set(f)
}

// SetSort replaces the sort selection
func (p *Pipeline) SetSort(s models.SortSelection) {
	p.sort.Set(s)
}

// Filter returns the current filter selection
func (p *Pipeline) Filter() models.FilterSelection { return p.filter.Get() }

// Sort returns the current sort selection
func (p *Pipeline) Sort() models.SortSelection { return p.sort.Get() }

// Visible is the filtered, sorted task list
func (p *Pipeline) Visible() observable.Observable[[]models.Task] {
	return p.visible
}

// Progress tracks completion of the visible list
func (p *Pipeline) Progress() observable.Observable[Progress] {
	return p.progress
}

// Today returns the tasks due on now's calendar day, open tasks first and
// then by due date. It ignores the current filter and sort selection.
func (p *Pipeline) Today(now time.Time) []models.Task {
	ordered := Recompute(p.tasks.Get(), models.FilterAll, models.SortByDueDate)
	return TodayFilter(ordered, now)
}

// TodayNow is Today evaluated with the pipeline's clock
func (p *Pipeline) TodayNow() []models.Task {
	return p.Today(p.now())
}

// Close detaches the pipeline from the task source
func (p *Pipeline) Close() {
	p.progress.Close()
	p.visible.Close()
}
