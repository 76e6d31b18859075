package pipeline

import (
	"cmp"
	"math"
	"slices"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// noDueDate sorts tasks without a due date after every dated task
const noDueDate = int64(math.MaxInt64)

// Recompute filters and sorts tasks.
// The result is a fresh slice; tasks is never modified. Sorting is stable, so
// tasks that compare equal keep their input order.
func Recompute(tasks []models.Task, filter models.FilterSelection, sort models.SortSelection) []models.Task {
	out := Filter(tasks, filter)
	Sort(out, sort)
	return out
}

// Filter returns the tasks matching filter in their original order.
// Unknown selections keep every task.
func Filter(tasks []models.Task, filter models.FilterSelection) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		switch filter {
		case models.FilterActiveOnly:
			if task.IsDone {
				continue
			}
		case models.FilterDoneOnly:
			if !task.IsDone {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}

// Sort orders tasks in place: open tasks first, then by the selected key.
// Unknown selections order by completion only.
func Sort(tasks []models.Task, sort models.SortSelection) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		if c := compareDone(a, b); c != 0 {
			return c
		}
		switch sort {
		case models.SortByDueDate:
			return cmp.Compare(dueKey(a), dueKey(b))
		case models.SortByPriority:
			return cmp.Compare(b.Priority, a.Priority)
		default:
			return 0
		}
	})
}

func compareDone(a, b models.Task) int {
	switch {
	case a.IsDone == b.IsDone:
		return 0
	case a.IsDone:
		return 1
	default:
		return -1
	}
}

func dueKey(task models.Task) int64 {
	if task.DueDate == nil {
		return noDueDate
	}
	return *task.DueDate
}
