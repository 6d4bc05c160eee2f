package journal

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/lixenwraith/touchplay/event"
)

// Memory keeps attempts for the lifetime of the process
type Memory struct {
	mu       sync.Mutex
	attempts []Attempt
	nextID   uint
}

// NewMemory creates an empty in-process journal
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) Record(a *Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.nextID
	m.nextID++
	m.attempts = append(m.attempts, *a)
	return nil
}

func (m *Memory) Recent(limit int) ([]Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.attempts)
	slices.Reverse(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Stats(play string) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mine := lo.Filter(m.attempts, func(a Attempt, _ int) bool { return a.Play == play })
	st := Stats{
		Play:      play,
		Attempts:  len(mine),
		Completed: lo.CountBy(mine, func(a Attempt) bool { return a.Outcome == string(event.AttemptCompleted) }),
		Failed:    lo.CountBy(mine, func(a Attempt) bool { return a.Outcome == string(event.AttemptFailed) }),
	}
	if len(mine) > 0 {
		st.BestScore = lo.MaxBy(mine, func(a, b Attempt) bool { return a.Score > b.Score }).Score
	}
	return st, nil
}

func (m *Memory) Close() error { return nil }
