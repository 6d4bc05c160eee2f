package journal

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/touchplay/event"
)

// Handler records every finished attempt delivered by the session
type Handler struct {
	rec Recorder
	log zerolog.Logger
}

// NewHandler wraps rec as a session event handler
func NewHandler(rec Recorder, log zerolog.Logger) *Handler {
	return &Handler{rec: rec, log: log}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventAttemptFinished}
}

// HandleEvent stores the attempt; failures are logged, playback never stops for the journal
func (h *Handler) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.AttemptFinishedPayload)
	if !ok {
		return
	}
	a := FromPayload(p)
	if err := h.rec.Record(a); err != nil {
		h.log.Error().Err(err).Str("play", p.Play).Msg("journal write failed")
		return
	}
	h.log.Debug().Uint("id", a.ID).Str("outcome", a.Outcome).Msg("attempt recorded")
}
