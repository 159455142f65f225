package taskstore

import (
	"math"
	"time"
)

const dueDateLayout = "2006-01-02"

type Stats struct {
	Total          int
	Completed      int
	DueToday       int
	CompletionRate int
}

// Stats derives the displayed aggregates from the current sequence. DueToday
// is a literal string comparison against today's date, matching how due dates
// are stored.
func (s *Store) Stats(today time.Time) Stats {
	out := Stats{Total: len(s.tasks)}
	todayStr := today.Format(dueDateLayout)
	for _, task := range s.tasks {
		if task.Completed {
			out.Completed++
		}
		if task.DueDate == todayStr {
			out.DueToday++
		}
	}
	if out.Total > 0 {
		out.CompletionRate = int(math.Round(float64(out.Completed) / float64(out.Total) * 100))
	}
	return out
}
