package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyName         = errors.New("model: planner name is required")
	ErrInvalidBackground = errors.New("model: invalid planner background")
)

type Background string

const (
	BackgroundDefault Background = "default"
	BackgroundSunset  Background = "sunset"
	BackgroundOcean   Background = "ocean"
	BackgroundForest  Background = "forest"
	BackgroundPurple  Background = "purple"
)

func (b Background) IsValid() bool {
	switch b {
	case BackgroundDefault, BackgroundSunset, BackgroundOcean, BackgroundForest, BackgroundPurple:
		return true
	default:
		return false
	}
}

// Backgrounds lists every variant in presentation order.
func Backgrounds() []Background {
	return []Background{BackgroundDefault, BackgroundSunset, BackgroundOcean, BackgroundForest, BackgroundPurple}
}

type Planner struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Background Background `json:"background"`
	GoalDate   string     `json:"goalDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (p Planner) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: planner id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !p.Background.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidBackground, p.Background)
	}
	if p.CreatedAt.IsZero() {
		return errors.New("model: planner created_at is required")
	}
	return nil
}
