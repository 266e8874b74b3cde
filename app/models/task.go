package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of a task or subtask.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Done reports whether the status counts as completed.
func (s Status) Done() bool {
	return s == StatusDone
}

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ID identifies a task or subtask. Task files may hold ids as JSON strings
// or numbers; both decode to the string form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Subtask is a child unit of work contributing to its parent's progress.
type Subtask struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Status       Status `json:"status"`
	Details      string `json:"details,omitempty"`
	TestStrategy string `json:"testStrategy,omitempty"`
	Dependencies []ID   `json:"dependencies,omitempty"`
}

// Task is a unit of work with optional subtasks.
type Task struct {
	ID           ID        `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       Status    `json:"status"`
	Priority     Priority  `json:"priority,omitempty"`
	Details      string    `json:"details,omitempty"`
	TestStrategy string    `json:"testStrategy,omitempty"`
	Dependencies []ID      `json:"dependencies,omitempty"`
	Subtasks     []Subtask `json:"subtasks,omitempty"`
}

// TaskCollection is the ordered set of tasks loaded from a task source.
type TaskCollection []Task

// TaskProgress is a task enriched with its computed completion percentage.
type TaskProgress struct {
	Task
	Progress int `json:"progress"`
}

// AggregateResult is the body served for the task list.
type AggregateResult struct {
	Tasks          []TaskProgress `json:"tasks"`
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	TotalSubtasks  int            `json:"totalSubtasks"`
}
