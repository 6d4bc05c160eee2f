package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain reads s to the end and returns the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestCue_StreamersAreFiniteAndAudible(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueCorrect, parameter.CueCorrectDuration},
		{CueWrong, parameter.CueWrongDuration},
		{CueTransfer, parameter.CueTransferDuration},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(t, tt.cue.Streamer(testRate))
			assert.InDelta(t, testRate.N(tt.want), n, 2)
			assert.Greater(t, peak, 0.01)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	s := newEnvelope(newTone(440, 100*time.Millisecond, WaveSquare, testRate),
		100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0, buf[n-1][0], 0.01)
	assert.InDelta(t, 1, math.Abs(buf[n/2][0]), 1e-9)
}

func TestNewVolume_Silent(t *testing.T) {
	n, peak := drain(t, newVolume(newTone(440, 10*time.Millisecond, WaveSine, testRate), 0))
	assert.Equal(t, testRate.N(10*time.Millisecond), n)
	assert.Zero(t, peak)
}

type recordingOutput struct {
	played []beep.Streamer
	closed bool
}

func (r *recordingOutput) Play(s beep.Streamer) { r.played = append(r.played, s) }
func (r *recordingOutput) Close()               { r.closed = true }

func TestCuePlayer_HandlesOutcomes(t *testing.T) {
	out := &recordingOutput{}
	c := NewCuePlayer(out, zerolog.Nop())

	c.HandleEvent(event.GameEvent{Type: event.EventDecisionOutcome, Payload: &event.DecisionOutcomePayload{Correct: true}})
	c.HandleEvent(event.GameEvent{Type: event.EventDecisionOutcome, Payload: &event.DecisionOutcomePayload{Correct: false}})
	c.HandleEvent(event.GameEvent{Type: event.EventBallTransferred, Payload: &event.BallTransferredPayload{}})
	require.Len(t, out.played, 3)

	n, _ := drain(t, out.played[1])
	assert.InDelta(t, testRate.N(parameter.CueWrongDuration), n, 2, "second cue is the wrong-answer buzz")

	c.SetEnabled(false)
	assert.False(t, c.Enabled())
	c.HandleEvent(event.GameEvent{Type: event.EventBallTransferred})
	assert.Len(t, out.played, 3)
}

func TestCuePlayer_EventTypes(t *testing.T) {
	c := NewCuePlayer(&recordingOutput{}, zerolog.Nop())
	assert.ElementsMatch(t, []event.EventType{event.EventDecisionOutcome, event.EventBallTransferred}, c.EventTypes())
}
