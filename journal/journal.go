package journal

import (
	"time"

	"github.com/lixenwraith/touchplay/event"
)

// Attempt is one finished playback attempt
type Attempt struct {
	ID               uint      `gorm:"primarykey"`
	Play             string    `gorm:"index;not null"`
	Outcome          string    `gorm:"not null"`
	StartedAt        time.Time `gorm:"not null"`
	FinishedAt       time.Time `gorm:"index;not null"`
	DecisionsSeen    int
	DecisionsCorrect int
	Score            int
}

// Stats aggregates the attempts of one play
type Stats struct {
	Play      string
	Attempts  int
	Completed int
	Failed    int
	BestScore int
}

// Recorder persists attempts
type Recorder interface {
	Record(a *Attempt) error
	// Recent returns up to limit attempts, newest first
	Recent(limit int) ([]Attempt, error)
	Stats(play string) (Stats, error)
	Close() error
}

// FromPayload converts a session notification into a storable attempt
func FromPayload(p *event.AttemptFinishedPayload) *Attempt {
	return &Attempt{
		Play:             p.Play,
		Outcome:          string(p.Outcome),
		StartedAt:        p.StartedAt,
		FinishedAt:       p.FinishedAt,
		DecisionsSeen:    p.DecisionsSeen,
		DecisionsCorrect: p.DecisionsCorrect,
		Score:            p.Score,
	}
}
