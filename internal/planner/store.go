// Package planner maintains the active planner pointer and the saved planner
// list, persisting both through the storage gateway under the fixed keys the
// original web build used.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"myplanner/internal/model"
	"myplanner/internal/storage"
)

// legacySettings is the superseded plannerSettings payload: a planner without
// identity. Promoted to a full record once on load.
type legacySettings struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	GoalDate   string `json:"goalDate"`
}

type Store struct {
	kv     storage.Store
	active *model.Planner
	saved  []model.Planner
	now    func() time.Time
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv, now: time.Now}
}

// NewStoreWithClock fixes the creation timestamp source for tests.
func NewStoreWithClock(kv storage.Store, now func() time.Time) *Store {
	return &Store{kv: kv, now: now}
}

// Load reads the persisted state. Absent keys mean empty state, never an
// error. A legacy plannerSettings payload is promoted to a full planner record
// and the legacy key dropped.
func (s *Store) Load(ctx context.Context) error {
	saved, err := s.loadSaved(ctx)
	if err != nil {
		return err
	}
	s.saved = saved

	active, found, err := s.loadActive(ctx)
	if err != nil {
		return err
	}
	if found {
		s.active = &active
		return nil
	}
	return s.promoteLegacy(ctx)
}

// Create builds a planner from the entry form fields, appends it to the saved
// list and makes it active.
func (s *Store) Create(ctx context.Context, name string, background model.Background, goalDate string) (model.Planner, error) {
	if strings.TrimSpace(name) == "" {
		return model.Planner{}, model.ErrEmptyName
	}
	if !background.IsValid() {
		return model.Planner{}, fmt.Errorf("%w: %q", model.ErrInvalidBackground, background)
	}
	planner := model.Planner{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		Background: background,
		GoalDate:   goalDate,
		CreatedAt:  s.now().UTC(),
	}
	s.saved = append(s.saved, planner)
	if err := s.persistSaved(ctx); err != nil {
		return model.Planner{}, err
	}
	if err := s.setActive(ctx, planner); err != nil {
		return model.Planner{}, err
	}
	return planner, nil
}

// Select makes the matching saved planner active. Unknown ids are a silent
// no-op, mirroring the rest of the by-id operations.
func (s *Store) Select(ctx context.Context, id string) error {
	for _, planner := range s.saved {
		if planner.ID == id {
			return s.setActive(ctx, planner)
		}
	}
	return nil
}

// Delete removes the planner from the saved list. The active pointer is left
// alone even when it references the deleted planner; it stays resolvable until
// explicitly cleared.
func (s *Store) Delete(ctx context.Context, id string) error {
	for i, planner := range s.saved {
		if planner.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return s.persistSaved(ctx)
		}
	}
	return nil
}

// UpdateActiveBackground changes the active planner's theme, keeping the
// saved list entry in step when one still exists. No-op without an active
// planner.
func (s *Store) UpdateActiveBackground(ctx context.Context, background model.Background) error {
	if s.active == nil {
		return nil
	}
	if !background.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidBackground, background)
	}
	updated := *s.active
	updated.Background = background
	for i := range s.saved {
		if s.saved[i].ID == updated.ID {
			s.saved[i].Background = background
			if err := s.persistSaved(ctx); err != nil {
				return err
			}
			break
		}
	}
	return s.setActive(ctx, updated)
}

// ClearActive drops the active pointer; the saved list is untouched.
func (s *Store) ClearActive(ctx context.Context) error {
	s.active = nil
	return s.kv.Remove(ctx, storage.KeyCurrentPlanner)
}

func (s *Store) Active() (model.Planner, bool) {
	if s.active == nil {
		return model.Planner{}, false
	}
	return *s.active, true
}

func (s *Store) Saved() []model.Planner {
	out := make([]model.Planner, len(s.saved))
	copy(out, s.saved)
	return out
}

// SaveTasks persists a planner's task list under its own key.
func (s *Store) SaveTasks(ctx context.Context, plannerID string, tasks []model.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return s.kv.Set(ctx, storage.TaskKey(plannerID), payload)
}

// LoadTasks returns the persisted task list, or found=false when the planner
// has never saved one.
func (s *Store) LoadTasks(ctx context.Context, plannerID string) ([]model.Task, bool, error) {
	raw, err := s.kv.Get(ctx, storage.TaskKey(plannerID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return tasks, true, nil
}

func (s *Store) loadSaved(ctx context.Context) ([]model.Planner, error) {
	raw, err := s.kv.Get(ctx, storage.KeySavedPlanners)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var saved []model.Planner
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, fmt.Errorf("unmarshal saved planners: %w", err)
	}
	return saved, nil
}

func (s *Store) loadActive(ctx context.Context) (model.Planner, bool, error) {
	raw, err := s.kv.Get(ctx, storage.KeyCurrentPlanner)
	if errors.Is(err, storage.ErrNotFound) {
		return model.Planner{}, false, nil
	}
	if err != nil {
		return model.Planner{}, false, err
	}
	var active model.Planner
	if err := json.Unmarshal(raw, &active); err != nil {
		return model.Planner{}, false, fmt.Errorf("unmarshal current planner: %w", err)
	}
	return active, true, nil
}

func (s *Store) promoteLegacy(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, storage.KeyPlannerSettings)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	var legacy legacySettings
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return fmt.Errorf("unmarshal legacy settings: %w", err)
	}
	if strings.TrimSpace(legacy.Name) == "" {
		return s.kv.Remove(ctx, storage.KeyPlannerSettings)
	}
	background := model.Background(legacy.Background)
	if !background.IsValid() {
		background = model.BackgroundDefault
	}
	if _, err := s.Create(ctx, legacy.Name, background, legacy.GoalDate); err != nil {
		return err
	}
	return s.kv.Remove(ctx, storage.KeyPlannerSettings)
}

func (s *Store) setActive(ctx context.Context, planner model.Planner) error {
	payload, err := json.Marshal(planner)
	if err != nil {
		return fmt.Errorf("marshal current planner: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyCurrentPlanner, payload); err != nil {
		return err
	}
	s.active = &planner
	return nil
}

func (s *Store) persistSaved(ctx context.Context) error {
	saved := s.saved
	if saved == nil {
		saved = []model.Planner{}
	}
	payload, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("marshal saved planners: %w", err)
	}
	return s.kv.Set(ctx, storage.KeySavedPlanners, payload)
}
