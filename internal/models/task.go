package models

import "time"

// Task is a single user task.
// ID is assigned by the store on insert and is zero until then.
type Task struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	IsDone      bool    `json:"is_done" yaml:"is_done"`
	ImageURI    *string `json:"image_uri,omitempty" yaml:"image_uri,omitempty"`
	Priority    int     `json:"priority" yaml:"priority"`
	DueDate     *int64  `json:"due_date,omitempty" yaml:"due_date,omitempty"` // milliseconds since epoch
}

// GetID returns the task ID (used by quiet output mode)
func (t Task) GetID() int {
	return t.ID
}

// HasDueDate reports whether a due date is set
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// Due returns the due date in the given location, or the zero time when unset
func (t Task) Due(loc *time.Location) time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return time.UnixMilli(*t.DueDate).In(loc)
}

// Image returns the image reference, or an empty string when unset
func (t Task) Image() string {
	if t.ImageURI == nil {
		return ""
	}
	return *t.ImageURI
}

// Fields returns a copy of the task with the ID cleared.
// Two tasks with equal Fields() differ at most by their store-assigned ID.
func (t Task) Fields() Task {
	c := t.Clone()
	c.ID = 0
	return c
}

// Clone returns a deep copy of the task, including pointer fields
func (t Task) Clone() Task {
	c := t
	if t.ImageURI != nil {
		uri := *t.ImageURI
		c.ImageURI = &uri
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return c
}

// DueAt converts a time to the millisecond representation stored on a task
func DueAt(ts time.Time) *int64 {
	ms := ts.UnixMilli()
	return &ms
}

// StringPtr returns nil for an empty string, otherwise a pointer to s
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
