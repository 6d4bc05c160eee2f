package audio

import (
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/parameter"
)

// CuePlayer turns session notifications into sounds
type CuePlayer struct {
	out     Output
	rate    beep.SampleRate
	log     zerolog.Logger
	enabled bool
}

// NewCuePlayer plays cues on out
func NewCuePlayer(out Output, log zerolog.Logger) *CuePlayer {
	return &CuePlayer{
		out:     out,
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		log:     log,
		enabled: true,
	}
}

// SetEnabled mutes or unmutes cues
func (c *CuePlayer) SetEnabled(on bool) {
	c.enabled = on
}

// Enabled reports whether cues are audible
func (c *CuePlayer) Enabled() bool {
	return c.enabled
}

// Play emits one cue
func (c *CuePlayer) Play(cue Cue) {
	if !c.enabled {
		return
	}
	c.log.Debug().Stringer("cue", cue).Msg("audio cue")
	c.out.Play(cue.Streamer(c.rate))
}

// EventTypes implements event.Handler
func (c *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDecisionOutcome,
		event.EventBallTransferred,
	}
}

// HandleEvent implements event.Handler
func (c *CuePlayer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDecisionOutcome:
		if p, ok := ev.Payload.(*event.DecisionOutcomePayload); ok {
			if p.Correct {
				c.Play(CueCorrect)
			} else {
				c.Play(CueWrong)
			}
		}
	case event.EventBallTransferred:
		c.Play(CueTransfer)
	}
}
