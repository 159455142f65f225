package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Fixed keys shared by the planner store and the legacy web build of the app.
const (
	KeyCurrentPlanner  = "currentPlanner"
	KeySavedPlanners   = "savedPlanners"
	KeyPlannerSettings = "plannerSettings"
	TaskKeyPrefix      = "tasks:"
)

// Store is a key-value gateway over JSON payloads. Get returns ErrNotFound for
// absent keys; Set overwrites unconditionally (last write wins); Remove of an
// absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// TaskKey names the persisted task list of one planner.
func TaskKey(plannerID string) string {
	return TaskKeyPrefix + plannerID
}
