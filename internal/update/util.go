package update

import (
	"context"
	"strconv"
	"strings"

	"myplanner/internal/taskstore"
)

func contextBackground() context.Context {
	return context.Background()
}

func newEmptyTaskStore() *taskstore.Store {
	return taskstore.New()
}

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

// resolveTaskTarget maps a palette task reference to an id: a number is a
// 1-based position in the visible list, anything else an id prefix.
func (m Model) resolveTaskTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	tasks := m.Tasks.Tasks()
	if index, err := strconv.Atoi(target); err == nil {
		if index < 1 || index > len(tasks) {
			return "", false
		}
		return tasks[index-1].ID, true
	}
	for _, task := range tasks {
		if strings.HasPrefix(task.ID, target) {
			return task.ID, true
		}
	}
	return "", false
}
