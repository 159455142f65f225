package update

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"myplanner/internal/model"
	"myplanner/internal/planner"
	"myplanner/internal/storage"
)

func fixedClock() time.Time {
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) // a Tuesday
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	planners := planner.NewStoreWithClock(storage.NewMemoryStore(), fixedClock)
	if err := planners.Load(context.Background()); err != nil {
		t.Fatalf("load planners: %v", err)
	}
	m := NewModelWithStore(planners)
	m.clock = fixedClock
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewLanding {
		t.Fatalf("expected landing view, got %q", m.CurrentView)
	}
	if m.Landing.Focus != FieldName {
		t.Fatalf("expected name focus, got %q", m.Landing.Focus)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestActivePlannerGatesInitialView(t *testing.T) {
	kv := storage.NewMemoryStore()
	planners := planner.NewStoreWithClock(kv, fixedClock)
	if err := planners.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := planners.Create(context.Background(), "Resumed", model.BackgroundOcean, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	m := NewModelWithStore(planners)
	if m.CurrentView != ViewPlanner {
		t.Fatalf("expected planner view when an active planner exists, got %q", m.CurrentView)
	}
	if m.Tasks.Len() == 0 {
		t.Fatal("expected sample tasks to be seeded on first open")
	}
}

func TestCreatePlannerMsgScenario(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "My Plan", Background: model.BackgroundOcean})
	next := updated.(Model)

	if next.CurrentView != ViewPlanner {
		t.Fatalf("expected planner view after create, got %q", next.CurrentView)
	}
	active, ok := next.Planners.Active()
	if !ok {
		t.Fatal("expected active planner")
	}
	if active.Name != "My Plan" || active.Background != model.BackgroundOcean || active.GoalDate != "" {
		t.Fatalf("unexpected active planner: %#v", active)
	}
	if active.ID == "" || active.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp: %#v", active)
	}
	saved := next.Planners.Saved()
	if len(saved) != 1 || saved[0].ID != active.ID {
		t.Fatalf("unexpected saved planners: %#v", saved)
	}
}

func TestCreatePlannerMsgRejectsBlankName(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "   ", Background: model.BackgroundDefault})
	next := updated.(Model)

	if next.CurrentView != ViewLanding {
		t.Fatalf("expected to stay on landing, got %q", next.CurrentView)
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
	if len(next.Planners.Saved()) != 0 {
		t.Fatal("expected no saved planners")
	}
}

func TestNewPlannerMsgClearsActive(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "Temp", Background: model.BackgroundSunset})
	next := updated.(Model)

	updated, _ = next.Update(NewPlannerMsg{})
	next = updated.(Model)
	if next.CurrentView != ViewLanding {
		t.Fatalf("expected landing view, got %q", next.CurrentView)
	}
	if _, ok := next.Planners.Active(); ok {
		t.Fatal("expected active planner cleared")
	}
	// The saved list is untouched.
	if len(next.Planners.Saved()) != 1 {
		t.Fatalf("expected 1 saved planner, got %d", len(next.Planners.Saved()))
	}
}

func TestStatusAndErrorMessages(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", next.Status)
	}
}

func TestQuitKeyOnPlannerView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "P", Background: model.BackgroundDefault})
	next := updated.(Model)

	updated, cmd := next.Update(keyRunes("q"))
	next = updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewShowsPlannerHeaderAndStats(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "Work Plan", Background: model.BackgroundForest, GoalDate: "2026-12-31"})
	next := updated.(Model)

	out := next.View()
	if !strings.Contains(out, "Work Plan") {
		t.Fatalf("expected planner name in view: %q", out)
	}
	if !strings.Contains(out, "goal: 2026-12-31") {
		t.Fatalf("expected goal date in view: %q", out)
	}
	if !strings.Contains(out, "total: 3") {
		t.Fatalf("expected seeded stats in view: %q", out)
	}
	if !strings.Contains(out, "weekly plan") {
		t.Fatalf("expected weekly calendar in view: %q", out)
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "P", Background: model.BackgroundDefault})
	next := updated.(Model)
	before := next.Tasks.Len()

	updated, _ = next.Update(keyRunes("/"))
	next = updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add walk the dog"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	if next.Tasks.Len() != before+1 {
		t.Fatalf("expected %d tasks, got %d", before+1, next.Tasks.Len())
	}
	if next.Tasks.Tasks()[0].Title != "walk the dog" {
		t.Fatalf("expected new task first, got %q", next.Tasks.Tasks()[0].Title)
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "P", Background: model.BackgroundDefault})
	next := updated.(Model)

	updated, _ = next.Update(keyRunes("/"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestPaletteBackgroundCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(CreatePlannerMsg{Name: "P", Background: model.BackgroundDefault})
	next := updated.(Model)

	updated, _ = next.Update(keyRunes("/"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("background purple"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	active, _ := next.Planners.Active()
	if active.Background != model.BackgroundPurple {
		t.Fatalf("expected purple background, got %q", active.Background)
	}
}
