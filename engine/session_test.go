package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/play"
	"github.com/lixenwraith/touchplay/system"
)

const tick = 100 * time.Millisecond

type eventLog struct {
	events []event.GameEvent
}

func (l *eventLog) HandleEvent(ev event.GameEvent) { l.events = append(l.events, ev) }

func (l *eventLog) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventDecisionPresented,
		event.EventDecisionOutcome,
		event.EventBallTransferred,
		event.EventPathComplete,
		event.EventAttemptFinished,
	}
}

func (l *eventLog) of(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range l.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func newTestSession(t *testing.T, p *play.Play) (*Session, *eventLog, *mockClock) {
	t.Helper()
	clock := newMockClock(epoch)
	s, err := NewSession(SessionConfig{Play: p, Clock: clock})
	require.NoError(t, err)
	log := &eventLog{}
	s.Register(log)
	return s, log, clock
}

// runToDecision starts the example play and steps until the middle halts on the decision
func runToDecision(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.StartPractice())
	require.Equal(t, StatePlayingMove, s.State())
	require.True(t, StepUntil(s, tick, 200, InState(StateDecisionPoint)), "never reached the decision")
}

func TestNewSession_KickoffFormation(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	assert.Equal(t, StateMainMenu, s.State())
	assert.Equal(t, "mainMenu", s.StateName())

	dummy := s.Player("home-6")
	assert.Equal(t, 0.0, dummy.Position[0])
	assert.Equal(t, 13.0, dummy.Position[1])
	assert.True(t, dummy.CarriesBall)
	assert.Same(t, dummy, s.Ball.Carrier)

	assert.Equal(t, -2.0, s.Player("home-3").Position[1])
	assert.Equal(t, -13.0, s.Player("away-6").Position[1], "away side mirrors home")
	assert.Equal(t, -5.0, s.Player("away-1").Position[1])
	assert.Equal(t, -15.0, s.Player("away-1").Position[0])

	carriers := 0
	for _, p := range s.Players() {
		if p.CarriesBall {
			carriers++
		}
		assert.Empty(t, p.Path)
	}
	assert.Equal(t, 1, carriers)
}

func TestNewSession_RejectsInvalidPlay(t *testing.T) {
	p := play.Example()
	p.Players[1].Path[2].Options[0].Correct = true
	_, err := NewSession(SessionConfig{Play: p})
	assert.ErrorIs(t, err, play.ErrInvalidPlay)
}

func TestSession_TransferThenDecision(t *testing.T) {
	s, log, _ := newTestSession(t, nil)
	runToDecision(t, s)

	middle := s.Player("home-3")
	dummy := s.Player("home-6")
	assert.Same(t, middle, s.Ball.Carrier)
	assert.False(t, dummy.CarriesBall)
	assert.Equal(t, 2, middle.Cursor)
	assert.False(t, middle.Moving)
	assert.Equal(t, -20.0, middle.Position[1])

	transfers := log.of(event.EventBallTransferred)
	require.Len(t, transfers, 1)
	assert.Equal(t, &event.BallTransferredPayload{From: "home-6", To: "home-3"}, transfers[0].Payload)

	presented := log.of(event.EventDecisionPresented)
	require.Len(t, presented, 1)
	payload := presented[0].Payload.(*event.DecisionPresentedPayload)
	assert.Equal(t, component.PlayerID("home-3"), payload.Player)
	assert.Equal(t, 2, payload.Waypoint)
	require.Len(t, payload.Options, 3)

	snap := s.Snapshot()
	require.NotNil(t, snap.Prompt)
	assert.Equal(t, "Cut right", snap.Prompt.Options[1].Label)
	assert.Equal(t, component.PlayerID("home-3"), snap.Carrier)
}

func TestSession_CorrectDecisionResumes(t *testing.T) {
	s, log, _ := newTestSession(t, nil)
	runToDecision(t, s)

	out, err := s.Choose(component.Option{Label: "Cut right", Action: "cut_right", Correct: true})
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, StatePlayingMove, s.State())
	assert.Equal(t, system.Scoreboard{Score: 10, DecisionsSeen: 1, DecisionsCorrect: 1}, s.Scoreboard())

	middle := s.Player("home-3")
	assert.Equal(t, 3, middle.Cursor)
	assert.True(t, middle.Moving)

	s.Update(tick)
	assert.Greater(t, middle.Position[0], 0.0, "heading for (10, -30)")
	assert.Less(t, middle.Position[1], -20.0)

	outcomes := log.of(event.EventDecisionOutcome)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 10, outcomes[0].Payload.(*event.DecisionOutcomePayload).Score)
}

func TestSession_PlayRunsToCompletion(t *testing.T) {
	s, log, clock := newTestSession(t, nil)
	runToDecision(t, s)
	clock.Advance(4 * time.Second)
	_, err := s.ChooseIndex(1)
	require.NoError(t, err)

	require.True(t, StepUntil(s, tick, 200, InState(StateFeedback)))
	middle := s.Player("home-3")
	assert.True(t, middle.PathDone())
	assert.Equal(t, 15.0, middle.Position[0])
	assert.Equal(t, -40.0, middle.Position[1])

	snap := s.Snapshot()
	require.NotNil(t, snap.Feedback)
	assert.Equal(t, event.AttemptCompleted, snap.Feedback.Outcome)

	finished := log.of(event.EventAttemptFinished)
	require.Len(t, finished, 1)
	a := finished[0].Payload.(*event.AttemptFinishedPayload)
	assert.Equal(t, play.ExampleName, a.Play)
	assert.Equal(t, event.AttemptCompleted, a.Outcome)
	assert.Equal(t, 1, a.DecisionsSeen)
	assert.Equal(t, 1, a.DecisionsCorrect)
	assert.Equal(t, 10, a.Score)
	assert.Equal(t, epoch, a.StartedAt)
	assert.Equal(t, 4*time.Second, a.FinishedAt.Sub(a.StartedAt))

	assert.True(t, StepUntil(s, tick, 31, InState(StateMainMenu)))
	assert.Len(t, log.of(event.EventPathComplete), 2, "dummy half and middle")
}

func TestSession_WrongDecisionFeedbackThenMenu(t *testing.T) {
	s, log, _ := newTestSession(t, nil)
	runToDecision(t, s)

	out, err := s.ChooseIndex(0)
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, "cut_left", out.Option.Action)
	assert.Equal(t, StateFeedback, s.State())
	assert.Equal(t, system.Scoreboard{DecisionsSeen: 1}, s.Scoreboard())
	assert.Equal(t, 2, s.Player("home-3").Cursor)

	snap := s.Snapshot()
	require.NotNil(t, snap.Feedback)
	assert.Equal(t, event.AttemptFailed, snap.Feedback.Outcome)
	assert.Equal(t, "cut_left", snap.Feedback.Chosen.Action)
	assert.Equal(t, "cut_right", snap.Feedback.Answer.Action)
	assert.Equal(t, 3*time.Second, snap.Feedback.Remaining)

	Step(s, tick, 29)
	assert.Equal(t, StateFeedback, s.State())
	s.Update(tick)
	assert.Equal(t, StateMainMenu, s.State())

	finished := log.of(event.EventAttemptFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, event.AttemptFailed, finished[0].Payload.(*event.AttemptFinishedPayload).Outcome)

	var path []string
	for _, ev := range log.of(event.EventStateChanged) {
		path = append(path, ev.Payload.(*event.StateChangedPayload).To)
	}
	assert.Equal(t, []string{"playingMove", "decisionPoint", "feedback", "mainMenu"}, path)
}

func TestSession_ResetCancelsFeedbackTimer(t *testing.T) {
	s, log, _ := newTestSession(t, nil)
	runToDecision(t, s)
	_, err := s.ChooseIndex(2)
	require.NoError(t, err)
	Step(s, tick, 10)

	s.ResetGame()
	assert.Equal(t, StateMainMenu, s.State())
	assert.Equal(t, system.Scoreboard{}, s.Scoreboard())
	assert.False(t, s.feedback.Armed())
	assert.True(t, s.Player("home-6").CarriesBall)
	assert.Equal(t, 13.0, s.Player("home-6").Position[1])

	require.NoError(t, s.StartPractice())
	Step(s, tick, 25)
	assert.Equal(t, StatePlayingMove, s.State(), "stale timer must not yank playback back to the menu")

	assert.Len(t, log.of(event.EventAttemptFinished), 1, "reset after a finished attempt records nothing")
}

func TestSession_ResetDuringPlaybackAborts(t *testing.T) {
	s, log, _ := newTestSession(t, nil)
	require.NoError(t, s.StartPractice())
	Step(s, tick, 5)
	s.ResetGame()

	finished := log.of(event.EventAttemptFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, event.AttemptAborted, finished[0].Payload.(*event.AttemptFinishedPayload).Outcome)
	for _, p := range s.Players() {
		assert.False(t, p.Moving)
	}
}

func TestSession_ChoosePreconditions(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	_, err := s.ChooseIndex(0)
	assert.ErrorIs(t, err, system.ErrNotAwaiting)
	assert.ErrorIs(t, err, ErrWrongState)

	runToDecision(t, s)
	_, err = s.Choose(component.Option{Label: "Kick", Action: "kick", Correct: true})
	assert.ErrorIs(t, err, system.ErrUnknownOption)
	_, err = s.ChooseIndex(5)
	assert.ErrorIs(t, err, system.ErrUnknownOption)
	assert.Equal(t, StateDecisionPoint, s.State())
	assert.Zero(t, s.Scoreboard().DecisionsSeen)
}

func TestSession_IntentsCheckState(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.ErrorIs(t, s.ExitDesigner(), ErrWrongState)
	assert.ErrorIs(t, s.Preview(), ErrWrongState)

	require.NoError(t, s.StartPractice())
	assert.ErrorIs(t, s.StartPractice(), ErrWrongState)
	assert.ErrorIs(t, s.OpenDesigner(), ErrWrongState)
	assert.ErrorIs(t, s.SetPlay(play.Example()), ErrWrongState)
}

func TestSession_EmptyPlayCompletesImmediately(t *testing.T) {
	s, log, _ := newTestSession(t, &play.Play{Name: "stand still"})
	require.NoError(t, s.StartPractice())
	s.Update(tick)
	assert.Equal(t, StateFeedback, s.State())
	assert.Equal(t, event.AttemptCompleted, log.of(event.EventAttemptFinished)[0].Payload.(*event.AttemptFinishedPayload).Outcome)
}

func TestSession_TuningSpeed(t *testing.T) {
	fast, err := NewSession(SessionConfig{Tuning: Tuning{Speed: 10}})
	require.NoError(t, err)
	slow, err := NewSession(SessionConfig{})
	require.NoError(t, err)

	require.NoError(t, fast.StartPractice())
	require.NoError(t, slow.StartPractice())
	Step(fast, tick, 5)
	Step(slow, tick, 5)

	assert.InDelta(t, 13-5.0, fast.Player("home-6").Position[1], 1e-9)
	assert.InDelta(t, 13-2.5, slow.Player("home-6").Position[1], 1e-9)
}

func TestSession_PlaybackUsesSnapshotOfPlay(t *testing.T) {
	p := play.Example()
	s, _, _ := newTestSession(t, p)
	p.Players[1].Path[3].X = -99

	require.NoError(t, s.StartPractice())
	assert.Equal(t, 10.0, s.Player("home-3").Path[3].X)

	s.Play().Players[1].Path[3].X = -50
	assert.Equal(t, 10.0, s.Play().Players[1].Path[3].X)
}

func TestSession_Designer(t *testing.T) {
	s, log, _ := newTestSession(t, &play.Play{Name: "blank"})
	require.NoError(t, s.OpenDesigner())
	require.NotNil(t, s.Designer())
	assert.Equal(t, StatePlayDesigner, s.State())

	_, ok := s.SelectAt(30, 30)
	assert.False(t, ok)
	assert.ErrorIs(t, s.Preview(), play.ErrNoSelection)

	id, ok := s.SelectAt(0.5, -2.5)
	require.True(t, ok)
	assert.Equal(t, component.PlayerID("home-3"), id)

	d := s.Designer()
	_, err := d.AddWaypoint(0, -12, false)
	require.NoError(t, err)
	wp, err := d.AddWaypoint(5, -20, true)
	require.NoError(t, err)
	require.NoError(t, d.MarkCorrect(wp, 2))

	snap := s.Snapshot()
	assert.Equal(t, component.PlayerID("home-3"), snap.Selected)
	assert.Len(t, snap.Draft["home-3"], 2)

	require.NoError(t, s.Preview())
	Step(s, tick, 10)
	middle := s.Player("home-3")
	assert.InDelta(t, -7.0, middle.Position[1], 1e-9)
	assert.Empty(t, s.Play().Players, "preview does not touch the current play")

	saved, err := s.SaveDesign("middle run")
	require.NoError(t, err)
	assert.Equal(t, "middle run", saved.Name)
	assert.Equal(t, "middle run", s.Play().Name)

	require.NoError(t, s.ExitDesigner())
	assert.Nil(t, s.Designer())
	assert.Equal(t, -2.0, middle.Position[1], "kickoff restored")
	assert.Empty(t, middle.Path)
	assert.False(t, middle.Moving)

	var path []string
	for _, ev := range log.of(event.EventStateChanged) {
		path = append(path, ev.Payload.(*event.StateChangedPayload).To)
	}
	assert.Equal(t, []string{"playDesigner", "mainMenu"}, path)

	require.NoError(t, s.StartPractice())
	require.True(t, StepUntil(s, tick, 200, func(s *Session) bool { return s.Player("home-3").AtDecision() }))
	assert.Equal(t, StateFeedback, s.State(), "only the carrier is quizzed, so the play just ends")
}

func TestSession_SetPlay(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.ErrorIs(t, s.SetPlay(&play.Play{}), play.ErrInvalidPlay)

	require.NoError(t, s.SetPlay(&play.Play{Name: "other"}))
	assert.Equal(t, "other", s.Snapshot().PlayName)

	require.NoError(t, s.OpenDesigner())
	require.NoError(t, s.SetPlay(play.Example()))
	assert.Len(t, s.Designer().Draft().Players, 2)
}
