package pipeline

import (
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// DayBounds returns the first and last millisecond of now's calendar day
// in now's location.
func DayBounds(now time.Time) (start, end int64) {
	y, m, d := now.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	last := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
	return first.UnixMilli(), last.UnixMilli()
}

// TodayFilter keeps the tasks due on now's calendar day, both bounds inclusive.
// Order is preserved.
func TodayFilter(tasks []models.Task, now time.Time) []models.Task {
	start, end := DayBounds(now)
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		if due := *task.DueDate; due >= start && due <= end {
			out = append(out, task)
		}
	}
	return out
}

// Progress summarizes completion of a task list
type Progress struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// ProgressOf counts the completed tasks. Percent is truncated and 0 for
// an empty list.
func ProgressOf(tasks []models.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, task := range tasks {
		if task.IsDone {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Done * 100 / p.Total
	}
	return p
}
