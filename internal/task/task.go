// Package task defines the core domain types for gantt.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyLabel  = errors.New("label cannot be empty")
	ErrEmptyDate   = errors.New("date cannot be empty")
	ErrEmptyStatus = errors.New("status cannot be empty")
)

// Task is one unit of displayable work.
type Task struct {
	Label   string `json:"label" yaml:"label" toml:"label"`
	Date    string `json:"date" yaml:"date" toml:"date"`       // categorical time bucket, e.g. "03/01/2022"
	Status  string `json:"status" yaml:"status" toml:"status"` // drives color grouping
	Type    string `json:"type" yaml:"type" toml:"type"`
	Meeting string `json:"meeting" yaml:"meeting" toml:"meeting"`
}

// New creates a new Task with validation.
// label, date and status are required; type and meeting are display-only.
func New(label, date, status, typ, meeting string) (Task, error) {
	t := Task{
		Label:   strings.TrimSpace(label),
		Date:    strings.TrimSpace(date),
		Status:  strings.TrimSpace(status),
		Type:    strings.TrimSpace(typ),
		Meeting: strings.TrimSpace(meeting),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks the required fields.
func (t Task) Validate() error {
	switch {
	case t.Label == "":
		return ErrEmptyLabel
	case t.Date == "":
		return ErrEmptyDate
	case t.Status == "":
		return ErrEmptyStatus
	}
	return nil
}

// Summary returns the tooltip text for the task.
func (t Task) Summary() string {
	return strings.Join([]string{t.Label, t.Date, t.Type, t.Meeting, t.Status}, "/")
}

// Dataset is a fixed-order sequence of tasks. The index of a task is its row.
type Dataset struct {
	Name  string
	tasks []Task
}

// NewDataset validates every record and returns an immutable dataset.
func NewDataset(name string, tasks []Task) (*Dataset, error) {
	copied := make([]Task, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		copied[i] = t
	}
	return &Dataset{Name: name, tasks: copied}, nil
}

// Len returns the number of tasks.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.tasks)
}

// At returns the task at row i.
func (d *Dataset) At(i int) (Task, bool) {
	if d == nil || i < 0 || i >= len(d.tasks) {
		return Task{}, false
	}
	return d.tasks[i], true
}

// Tasks returns a copy of the tasks in row order.
func (d *Dataset) Tasks() []Task {
	if d == nil {
		return nil
	}
	out := make([]Task, len(d.tasks))
	copy(out, d.tasks)
	return out
}
