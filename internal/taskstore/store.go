// Package taskstore holds the ordered in-memory task list of the active
// planner session. Mutations by unknown id are silent no-ops: callers never
// distinguish "not found" from "nothing to do".
package taskstore

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"myplanner/internal/model"
)

type Store struct {
	tasks []model.Task
}

func New() *Store {
	return &Store{}
}

// NewWithTasks seeds the store with an existing sequence, preserving order.
func NewWithTasks(tasks []model.Task) *Store {
	s := &Store{tasks: make([]model.Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

// Add validates the draft, mints an id and prepends the new task so the most
// recently added task iterates first. The store is unchanged on invalid drafts.
func (s *Store) Add(draft model.TaskDraft) (model.Task, error) {
	if err := draft.Validate(); err != nil {
		return model.Task{}, err
	}
	priority := draft.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	task := model.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Priority:    priority,
		DueDate:     draft.DueDate,
		DueTime:     draft.DueTime,
		Category:    draft.Category,
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	return task, nil
}

// Toggle flips the completed flag of the matching task.
func (s *Store) Toggle(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return
		}
	}
}

// Delete removes the matching task from the sequence.
func (s *Store) Delete(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// SetCompletionTime records the captured time-of-day and stamps completedAt.
// It does not touch the completed flag; the view sequences Toggle separately.
func (s *Store) SetCompletionTime(id string, hhmm string, now time.Time) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].CompletionTime = hhmm
			completedAt := now
			s.tasks[i].CompletedAt = &completedAt
			return
		}
	}
}

// Get returns the matching task by id.
func (s *Store) Get(id string) (model.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// Tasks returns a snapshot of the sequence in iteration order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}
