package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("model: task title is required")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Completed      bool       `json:"completed"`
	Priority       Priority   `json:"priority"`
	DueDate        string     `json:"dueDate,omitempty"`
	DueTime        string     `json:"dueTime,omitempty"`
	Category       string     `json:"category,omitempty"`
	CompletionTime string     `json:"completionTime,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CompletionTime != "" && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when completion time is set")
	}
	return nil
}

// TaskDraft is the shape the add-task form hands to the task store. Everything
// except the title is optional; a zero Priority becomes medium on insert.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	DueTime     string
	Category    string
}

func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	return nil
}
