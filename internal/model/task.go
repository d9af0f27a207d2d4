package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFilter = errors.New("model: invalid filter")

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	return nil
}

// NewTaskID derives an id from the creation time in Unix milliseconds. When
// taken reports a collision the millisecond value is bumped until it is free.
func NewTaskID(now time.Time, taken func(id string) bool) string {
	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for taken != nil && taken(id) {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the tasks matching f in list order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Summary describes the whole list, regardless of any active filter.
func Summary(tasks []Task) string {
	total := len(tasks)
	if total == 0 {
		return "No tasks yet."
	}
	word := "tasks"
	if total == 1 {
		word = "task"
	}
	return fmt.Sprintf("%d %s, %d completed", total, word, CountCompleted(tasks))
}

func CountCompleted(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
