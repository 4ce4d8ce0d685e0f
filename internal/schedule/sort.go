package schedule

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// TaskSortMode selects how task listings are ordered.
type TaskSortMode string

const (
	// SortAdded keeps collection order.
	SortAdded TaskSortMode = "added"
	// SortPriority puts high priority first, then earlier due dates.
	SortPriority TaskSortMode = "priority"
	// SortDueDate orders by due date ascending.
	SortDueDate TaskSortMode = "due"
)

// ParseTaskSortMode accepts the mode names used on the command line and in config.
func ParseTaskSortMode(s string) (TaskSortMode, error) {
	switch TaskSortMode(s) {
	case SortAdded, SortPriority, SortDueDate:
		return TaskSortMode(s), nil
	case "":
		return SortAdded, nil
	default:
		return "", fmt.Errorf("unknown task sort mode %q (want added, priority or due)", s)
	}
}

// SortTasks returns a sorted copy of tasks. The input is left untouched.
func SortTasks(tasks []domain.Task, mode TaskSortMode) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	switch mode {
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
				return ra > rb
			}
			return a.Date.Before(b.Date)
		})
	case SortDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}

// SplitByCompletion separates open tasks from completed ones, preserving order.
func SplitByCompletion(tasks []domain.Task) (open, done []domain.Task) {
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}
	return open, done
}

// SortEvents orders events for a day listing: all-day first, then by start time.
func SortEvents(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AllDay != b.AllDay {
			return a.AllDay
		}
		if a.AllDay {
			return false
		}
		return a.StartTime.Before(b.StartTime)
	})
	return out
}

// SortShifts orders shifts by start time.
func SortShifts(shifts []domain.Shift) []domain.Shift {
	out := make([]domain.Shift, len(shifts))
	copy(out, shifts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}
