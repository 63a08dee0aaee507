package domain

import "time"

// Task statuses recognized by analytics; the column itself is an open string.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// TaskPriorityDefault is applied when a new task omits a priority.
const TaskPriorityDefault = "medium"

// Task is a planning to-do owned by exactly one organizer.
type Task struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Category    string `json:"category,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`

	DueDate       *Date      `json:"due_date,omitempty"`
	EstimatedCost *float64   `json:"estimated_cost,omitempty"`
	ActualCost    *float64   `json:"actual_cost,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
