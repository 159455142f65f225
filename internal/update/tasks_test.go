package update

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"myplanner/internal/model"
	"myplanner/internal/planner"
	"myplanner/internal/storage"
)

// newPlannerModel returns a model already on the planner view with an active
// planner and no tasks, so each test controls the list it works against.
func newPlannerModel(t *testing.T) Model {
	t.Helper()
	planners := planner.NewStoreWithClock(storage.NewMemoryStore(), fixedClock)
	if err := planners.Load(context.Background()); err != nil {
		t.Fatalf("load planners: %v", err)
	}
	cfg := RuntimeConfig{SeedSampleTasks: false, CaptureCompletionTime: true}
	m := NewModelWithConfig(planners, cfg)
	m.clock = fixedClock
	updated, _ := m.Update(CreatePlannerMsg{Name: "Test Plan", Background: model.BackgroundDefault})
	return updated.(Model)
}

func addTask(t *testing.T, m Model, title string) Model {
	t.Helper()
	updated, _ := m.Update(AddTaskMsg{Draft: model.TaskDraft{Title: title}})
	return updated.(Model)
}

func TestAddTaskMsgPrependsAndSelects(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "first")
	m = addTask(t, m, "second")

	tasks := m.Tasks.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "second" || tasks[1].Title != "first" {
		t.Fatalf("expected most recent first, got %q then %q", tasks[0].Title, tasks[1].Title)
	}
	if m.SelectedTaskID != tasks[0].ID {
		t.Fatalf("expected new task selected, got %q", m.SelectedTaskID)
	}
	if m.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", m.Cursor)
	}
}

func TestTaskFormSubmitRejectsBlankTitle(t *testing.T) {
	m := newPlannerModel(t)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if !next.Form.Active || next.Form.Focus != FieldTitle {
		t.Fatalf("expected form open on title, got %+v", next.Form)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	if !next.Form.Active {
		t.Fatal("expected form to stay open")
	}
	if next.Form.Err != "title is required" {
		t.Fatalf("unexpected form error: %q", next.Form.Err)
	}
	if next.Tasks.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", next.Tasks.Len())
	}
}

func TestTaskFormSubmitAddsTask(t *testing.T) {
	m := newPlannerModel(t)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("Ship the release"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Form.Active {
		t.Fatal("expected form closed after submit")
	}
	if next.Tasks.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", next.Tasks.Len())
	}
	task := next.Tasks.Tasks()[0]
	if task.Title != "Ship the release" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("expected default medium priority, got %q", task.Priority)
	}
}

func TestTaskFormEscCancels(t *testing.T) {
	m := newPlannerModel(t)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("half-typed"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEscape})
	next = updated.(Model)

	if next.Form.Active {
		t.Fatal("expected form closed")
	}
	if next.Tasks.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", next.Tasks.Len())
	}
}

func TestCursorNavigationTracksSelection(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "oldest")
	m = addTask(t, m, "middle")
	m = addTask(t, m, "newest")

	updated, _ := m.Update(keyRunes("j"))
	next := updated.(Model)
	if next.Cursor != 1 || next.SelectedTaskID != next.Tasks.Tasks()[1].ID {
		t.Fatalf("expected cursor 1 on middle, got cursor %d selected %q", next.Cursor, next.SelectedTaskID)
	}

	updated, _ = next.Update(keyRunes("k"))
	next = updated.(Model)
	if next.Cursor != 0 {
		t.Fatalf("expected cursor back to 0, got %d", next.Cursor)
	}

	// Moving above the first task stays put.
	updated, _ = next.Update(keyRunes("k"))
	next = updated.(Model)
	if next.Cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", next.Cursor)
	}
}

func TestToggleOpensCaptureForIncompleteTask(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)

	if !next.Capture.Active {
		t.Fatal("expected capture prompt open")
	}
	if next.Capture.TaskTitle != "write tests" {
		t.Fatalf("unexpected capture title %q", next.Capture.TaskTitle)
	}
	task, _ := next.Tasks.Get(next.Capture.TaskID)
	if task.Completed {
		t.Fatal("task must stay incomplete until the capture is submitted")
	}
}

func TestCaptureSubmitWithTimeCompletesTask(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("14:30"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Capture.Active {
		t.Fatal("expected capture closed")
	}
	task, _ := next.Tasks.Get(id)
	if !task.Completed {
		t.Fatal("expected task completed")
	}
	if task.CompletionTime != "14:30" {
		t.Fatalf("expected completion time 14:30, got %q", task.CompletionTime)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(fixedClock().UTC()) {
		t.Fatalf("expected completedAt stamped with the clock, got %v", task.CompletedAt)
	}
}

func TestCaptureSubmitBlankSkipsTime(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	task, _ := next.Tasks.Get(id)
	if !task.Completed {
		t.Fatal("expected task completed")
	}
	if task.CompletionTime != "" || task.CompletedAt != nil {
		t.Fatalf("expected no completion time recorded, got %q %v", task.CompletionTime, task.CompletedAt)
	}
}

func TestCaptureEscAbandonsWithoutMutation(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("14:3"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEscape})
	next = updated.(Model)

	if next.Capture.Active {
		t.Fatal("expected capture closed")
	}
	task, _ := next.Tasks.Get(id)
	if task.Completed || task.CompletionTime != "" {
		t.Fatalf("expected task untouched, got %+v", task)
	}
}

func TestCaptureRejectsMalformedTime(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("99:99"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Capture.Active {
		t.Fatal("expected capture to stay open on invalid input")
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
	task, _ := next.Tasks.Get(id)
	if task.Completed {
		t.Fatal("expected task still incomplete")
	}
}

func TestToggleCompletedTaskReopensDirectly(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	// Complete through the capture first.
	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	// A second toggle reopens without asking for a time.
	updated, _ = next.Update(keyRunes(" "))
	next = updated.(Model)
	if next.Capture.Active {
		t.Fatal("expected no capture when un-completing")
	}
	task, _ := next.Tasks.Get(id)
	if task.Completed {
		t.Fatal("expected task reopened")
	}
}

func TestDeleteTaskAdjustsCursor(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "oldest")
	m = addTask(t, m, "newest")

	// Move to the last task, then delete it.
	updated, _ := m.Update(keyRunes("j"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("d"))
	next = updated.(Model)

	if next.Tasks.Len() != 1 {
		t.Fatalf("expected 1 task left, got %d", next.Tasks.Len())
	}
	if next.Cursor != 0 {
		t.Fatalf("expected cursor pulled back to 0, got %d", next.Cursor)
	}
	if next.SelectedTaskID != next.Tasks.Tasks()[0].ID {
		t.Fatalf("expected selection on the survivor, got %q", next.SelectedTaskID)
	}
}

func TestDeleteTaskMsgUnknownIDIsNoOp(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "keeper")

	updated, _ := m.Update(DeleteTaskMsg{ID: "missing"})
	next := updated.(Model)
	if next.Tasks.Len() != 1 {
		t.Fatalf("expected task untouched, got %d tasks", next.Tasks.Len())
	}
}

func TestRecordCompletionMsg(t *testing.T) {
	m := newPlannerModel(t)
	m = addTask(t, m, "write tests")
	id := m.SelectedTaskID

	updated, _ := m.Update(ToggleTaskMsg{ID: id})
	next := updated.(Model)
	updated, _ = next.Update(RecordCompletionMsg{ID: id, Time: "09:15"})
	next = updated.(Model)

	task, _ := next.Tasks.Get(id)
	if !task.Completed || task.CompletionTime != "09:15" {
		t.Fatalf("unexpected task state: %+v", task)
	}
}

func TestTasksSurviveReloadThroughStore(t *testing.T) {
	kv := storage.NewMemoryStore()
	planners := planner.NewStoreWithClock(kv, fixedClock)
	if err := planners.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := RuntimeConfig{SeedSampleTasks: false, CaptureCompletionTime: true}
	m := NewModelWithConfig(planners, cfg)
	m.clock = fixedClock

	updated, _ := m.Update(CreatePlannerMsg{Name: "Persistent", Background: model.BackgroundOcean})
	next := updated.(Model)
	next = addTask(t, next, "survives restart")

	reloaded := planner.NewStoreWithClock(kv, fixedClock)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := NewModelWithConfig(reloaded, cfg)
	if second.CurrentView != ViewPlanner {
		t.Fatalf("expected planner view after reload, got %q", second.CurrentView)
	}
	if second.Tasks.Len() != 1 || second.Tasks.Tasks()[0].Title != "survives restart" {
		t.Fatalf("expected persisted task, got %+v", second.Tasks.Tasks())
	}
}

func TestSeedingHappensOnlyOnce(t *testing.T) {
	kv := storage.NewMemoryStore()
	planners := planner.NewStoreWithClock(kv, fixedClock)
	if err := planners.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := NewModelWithStore(planners)
	m.clock = fixedClock

	updated, _ := m.Update(CreatePlannerMsg{Name: "Seeded", Background: model.BackgroundDefault})
	next := updated.(Model)
	if next.Tasks.Len() != 3 {
		t.Fatalf("expected 3 sample tasks, got %d", next.Tasks.Len())
	}
	id := next.Tasks.Tasks()[0].ID
	updated, _ = next.Update(DeleteTaskMsg{ID: id})
	next = updated.(Model)

	reloaded := planner.NewStoreWithClock(kv, fixedClock)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := NewModelWithStore(reloaded)
	if second.Tasks.Len() != 2 {
		t.Fatalf("expected the pruned list back, not a reseed; got %d tasks", second.Tasks.Len())
	}
}
