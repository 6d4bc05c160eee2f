package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/lixenwraith/touchplay/component"
	"github.com/lixenwraith/touchplay/engine/fsm"
	"github.com/lixenwraith/touchplay/event"
	"github.com/lixenwraith/touchplay/parameter"
	"github.com/lixenwraith/touchplay/physics"
	"github.com/lixenwraith/touchplay/play"
	"github.com/lixenwraith/touchplay/system"
)

// ErrWrongState is returned by intents that do not apply to the current session state
var ErrWrongState = errors.New("session: not allowed in current state")

// Tuning holds the gameplay constants that config may override
type Tuning struct {
	Speed            float64
	ArrivalThreshold float64
	Reward           int
	FeedbackDelay    time.Duration
}

// DefaultTuning returns the built-in gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		Speed:            parameter.PlayerSpeed,
		ArrivalThreshold: parameter.ArrivalThreshold,
		Reward:           parameter.DecisionReward,
		FeedbackDelay:    parameter.FeedbackDelay,
	}
}

// withDefaults replaces non-positive fields with their defaults
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.Speed <= 0 {
		t.Speed = d.Speed
	}
	if t.ArrivalThreshold <= 0 {
		t.ArrivalThreshold = d.ArrivalThreshold
	}
	if t.Reward <= 0 {
		t.Reward = d.Reward
	}
	if t.FeedbackDelay <= 0 {
		t.FeedbackDelay = d.FeedbackDelay
	}
	return t
}

// SessionConfig collects the session dependencies; zero fields take defaults
type SessionConfig struct {
	Tuning Tuning
	Play   *play.Play
	Logger *zerolog.Logger
	Clock  Clock
}

type attempt struct {
	active    bool
	play      string
	startedAt time.Time
	seen      int
	correct   int
}

// Session owns the pitch, the current play and the session state machine
// All methods must be called from one goroutine
type Session struct {
	tuning Tuning
	log    zerolog.Logger
	clock  Clock

	Home *component.Squad
	Away *component.Squad
	Ball *component.Ball

	traversal  physics.Traversal
	possession *system.Possession
	script     *system.Script
	resolver   *system.Resolver
	board      system.Scoreboard

	machine  *fsm.Machine[*Session]
	queue    *event.EventQueue
	router   *event.Router
	feedback Deferred

	play     *play.Play
	designer *play.Designer
	attempt  attempt
	outcome  event.AttemptOutcome
	frame    int64
	elapsed  time.Duration
}

// NewSession builds a session at kickoff in the main menu
func NewSession(cfg SessionConfig) (*Session, error) {
	p := cfg.Play
	if p == nil {
		p = play.Example()
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("session play: %w", err)
	}

	machine, err := buildMachine()
	if err != nil {
		return nil, err
	}

	s := &Session{
		tuning:     cfg.Tuning.withDefaults(),
		log:        zerolog.Nop(),
		clock:      cfg.Clock,
		Home:       component.NewSquad(component.TeamHome),
		Away:       component.NewSquad(component.TeamAway),
		Ball:       component.NewBall(parameter.BallRestHeight),
		possession: system.NewPossession(),
		machine:    machine,
		queue:      event.NewEventQueue(),
		play:       p.Clone(),
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "session").Logger()
	}
	if s.clock == nil {
		s.clock = WallClock{}
	}
	s.traversal = physics.Traversal{Speed: s.tuning.Speed, Threshold: s.tuning.ArrivalThreshold}
	s.resolver = system.NewResolver(&s.board, s.tuning.Reward)
	s.script = system.NewScript(s.possession, nil)
	s.router = event.NewRouter(s.queue)

	machine.Observe(s.onTransition)
	s.kickoff()

	if err := machine.Init(s, StateMainMenu); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	return s, nil
}

// Register adds a notification handler; handlers run synchronously after each update or intent
func (s *Session) Register(h event.Handler) {
	s.router.Register(h)
}

// Update advances the session by dt of game time
func (s *Session) Update(dt time.Duration) {
	s.frame++
	s.elapsed += dt

	if s.feedback.Tick(dt) {
		s.fire(event.EventFeedbackExpired)
	}

	for _, p := range s.Players() {
		if s.traversal.Advance(p, dt) == physics.ArrivalPathComplete {
			s.emit(event.EventPathComplete, &event.PathCompletePayload{Player: p.ID})
		}
	}
	s.possession.Tick(s.Ball)

	if s.machine.StateID() == StatePlayingMove {
		s.updatePlayback()
	}

	s.machine.Update(s, dt)
	s.dispatch()
}

func (s *Session) updatePlayback() {
	if t, ok := s.script.Resolve(s.Ball); ok {
		s.log.Debug().Str("from", string(t.From.ID)).Str("to", string(t.To.ID)).Msg("ball transferred")
		s.emit(event.EventBallTransferred, &event.BallTransferredPayload{From: t.From.ID, To: t.To.ID})
	}

	carrier := s.Ball.Carrier
	switch {
	case carrier != nil && carrier.AtDecision():
		s.fire(event.EventDecisionReached)
	case s.settled():
		s.finishAttempt(event.AttemptCompleted)
		s.fire(event.EventPlayComplete)
	}
}

// settled reports that nobody is running and no pass can still fire
func (s *Session) settled() bool {
	if lo.SomeBy(s.Players(), func(p *component.Player) bool { return p.Moving }) {
		return false
	}
	c := s.Ball.Carrier
	return c == nil || !s.script.PendingFrom(c)
}

// StartPractice runs the current play from kickoff
func (s *Session) StartPractice() error {
	if err := s.require(StateMainMenu, "start practice"); err != nil {
		return err
	}
	s.applyPlay()
	s.fire(event.EventStartPractice)
	s.dispatch()
	return nil
}

// applyPlay installs a deep copy of the current play on the pitch and starts the home runners
func (s *Session) applyPlay() {
	p := s.play.Clone()
	s.kickoff()

	for _, pp := range p.Players {
		if pl := s.Player(pp.ID); pl != nil {
			pl.SetPath(pp.Path)
		}
	}
	if c := s.Player(p.CarrierID()); c != nil {
		s.possession.Attach(s.Ball, c)
	}

	transfers := make([]system.Transfer, 0, len(p.Transfers))
	for _, t := range p.Transfers {
		transfers = append(transfers, system.Transfer{
			From:           s.Player(t.From),
			To:             s.Player(t.To),
			AfterPathIndex: t.After,
		})
	}
	s.script = system.NewScript(s.possession, transfers)
	s.resolver.Reset()

	for _, pl := range s.Home.Players {
		pl.StartMoving()
	}

	s.attempt = attempt{
		active:    true,
		play:      p.Name,
		startedAt: s.clock.Now(),
		seen:      s.board.DecisionsSeen,
		correct:   s.board.DecisionsCorrect,
	}
	s.outcome = ""
	s.log.Info().Str("play", p.Name).Int("transfers", len(transfers)).Msg("practice started")
}

// Choose resolves the pending decision with opt
func (s *Session) Choose(opt component.Option) (system.Outcome, error) {
	if err := s.require(StateDecisionPoint, "choose"); err != nil {
		return system.Outcome{}, fmt.Errorf("%w: %w", system.ErrNotAwaiting, err)
	}
	out, err := s.resolver.Choose(opt)
	if err != nil {
		s.log.Error().Err(err).Msg("decision rejected")
		return out, err
	}
	s.applyOutcome(out)
	return out, nil
}

// ChooseIndex resolves the pending decision with the i-th presented option
func (s *Session) ChooseIndex(i int) (system.Outcome, error) {
	if err := s.require(StateDecisionPoint, "choose"); err != nil {
		return system.Outcome{}, fmt.Errorf("%w: %w", system.ErrNotAwaiting, err)
	}
	out, err := s.resolver.ChooseIndex(i)
	if err != nil {
		s.log.Error().Err(err).Int("index", i).Msg("decision rejected")
		return out, err
	}
	s.applyOutcome(out)
	return out, nil
}

func (s *Session) applyOutcome(out system.Outcome) {
	s.log.Info().
		Str("player", string(out.Player.ID)).
		Str("action", out.Option.Action).
		Bool("correct", out.Correct).
		Int("score", s.board.Score).
		Msg("decision resolved")
	s.emit(event.EventDecisionOutcome, &event.DecisionOutcomePayload{
		Player:  out.Player.ID,
		Option:  out.Option,
		Correct: out.Correct,
		Score:   s.board.Score,
	})

	if out.Correct {
		s.fire(event.EventDecisionCorrect)
	} else {
		s.finishAttempt(event.AttemptFailed)
		s.fire(event.EventDecisionWrong)
	}
	s.dispatch()
}

// ResetGame zeroes the scoreboard, restores the kickoff formation and returns to the menu
func (s *Session) ResetGame() {
	s.finishAttempt(event.AttemptAborted)
	s.board.Reset()
	s.resolver.Reset()
	s.script = system.NewScript(s.possession, nil)
	s.outcome = ""
	s.kickoff()
	s.fire(event.EventGameReset)
	s.log.Info().Msg("game reset")
	s.dispatch()
}

// OpenDesigner enters the play designer with a draft of the current play
func (s *Session) OpenDesigner() error {
	if err := s.require(StateMainMenu, "open designer"); err != nil {
		return err
	}
	s.fire(event.EventOpenDesigner)
	s.dispatch()
	return nil
}

// ExitDesigner leaves the designer, discarding unsaved edits
func (s *Session) ExitDesigner() error {
	if err := s.require(StatePlayDesigner, "exit designer"); err != nil {
		return err
	}
	s.fire(event.EventExitDesigner)
	s.dispatch()
	return nil
}

// Designer returns the active designer, nil outside designer mode
func (s *Session) Designer() *play.Designer {
	return s.designer
}

// SelectAt selects the home player under (x, z) in the designer
func (s *Session) SelectAt(x, z float64) (component.PlayerID, bool) {
	if s.designer == nil {
		return "", false
	}
	p := play.PlayerAt(s.Home.Players, x, z, parameter.PlayerPickRadius)
	if p == nil {
		return "", false
	}
	if err := s.designer.Select(p.ID); err != nil {
		return "", false
	}
	return p.ID, true
}

// Preview runs the selected player's draft path from its kickoff slot
func (s *Session) Preview() error {
	if err := s.require(StatePlayDesigner, "preview"); err != nil {
		return err
	}
	id, ok := s.designer.Selected()
	if !ok {
		return play.ErrNoSelection
	}
	p := s.Player(id)
	x, z := component.KickoffPosition(p.Team, p.Number)
	p.SetPosition(x, z)
	p.SetPath(s.designer.Path(id))
	p.StartMoving()
	return nil
}

// SaveDesign validates the draft and makes it the current play
func (s *Session) SaveDesign(name string) (*play.Play, error) {
	if err := s.require(StatePlayDesigner, "save design"); err != nil {
		return nil, err
	}
	p, err := s.designer.Save(name)
	if err != nil {
		return nil, err
	}
	s.play = p.Clone()
	s.log.Info().Str("play", name).Msg("design saved")
	return p, nil
}

// SetPlay replaces the current play outside playback
func (s *Session) SetPlay(p *play.Play) error {
	switch s.machine.StateID() {
	case StateMainMenu, StatePlayDesigner:
	default:
		return fmt.Errorf("%w: set play in %s", ErrWrongState, s.machine.StateName())
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.play = p.Clone()
	if s.designer != nil {
		s.designer.Load(p)
	}
	return nil
}

// Play returns a copy of the current play
func (s *Session) Play() *play.Play {
	return s.play.Clone()
}

// State returns the active session state
func (s *Session) State() fsm.StateID {
	return s.machine.StateID()
}

// StateName returns the active session state name
func (s *Session) StateName() string {
	return s.machine.StateName()
}

// Scoreboard returns the current counters
func (s *Session) Scoreboard() system.Scoreboard {
	return s.board
}

// Players returns home then away players
func (s *Session) Players() []*component.Player {
	out := make([]*component.Player, 0, len(s.Home.Players)+len(s.Away.Players))
	out = append(out, s.Home.Players...)
	return append(out, s.Away.Players...)
}

// Player looks a player up by ID, nil when unknown
func (s *Session) Player(id component.PlayerID) *component.Player {
	team, n, err := id.Parse()
	if err != nil {
		return nil
	}
	if team == component.TeamAway {
		return s.Away.Player(n)
	}
	return s.Home.Player(n)
}

// kickoff lines both squads up, clears every path and gives the ball to the home dummy half
func (s *Session) kickoff() {
	for _, sq := range []*component.Squad{s.Home, s.Away} {
		sq.PositionForKickoff()
		for _, p := range sq.Players {
			p.ClearPath()
		}
	}
	s.possession.Attach(s.Ball, s.Home.Player(parameter.DummyHalfNumber))
}

func (s *Session) finishAttempt(outcome event.AttemptOutcome) {
	if !s.attempt.active {
		return
	}
	a := s.attempt
	s.attempt.active = false
	s.outcome = outcome

	s.log.Info().Str("play", a.play).Str("outcome", string(outcome)).Int("score", s.board.Score).Msg("attempt finished")
	s.emit(event.EventAttemptFinished, &event.AttemptFinishedPayload{
		Play:             a.play,
		Outcome:          outcome,
		StartedAt:        a.startedAt,
		FinishedAt:       s.clock.Now(),
		DecisionsSeen:    s.board.DecisionsSeen - a.seen,
		DecisionsCorrect: s.board.DecisionsCorrect - a.correct,
		Score:            s.board.Score,
	})
}

func (s *Session) require(state fsm.StateID, action string) error {
	if s.machine.StateID() != state {
		return fmt.Errorf("%w: %s in %s", ErrWrongState, action, s.machine.StateName())
	}
	return nil
}

func (s *Session) fire(t event.EventType) bool {
	ok := s.machine.HandleEvent(s, t)
	if !ok {
		s.log.Debug().Str("event", t.String()).Str("state", s.machine.StateName()).Msg("event ignored")
	}
	return ok
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Push(event.GameEvent{Type: t, Payload: payload, Frame: s.frame})
}

func (s *Session) dispatch() {
	s.router.DispatchAll()
}

// === State actions ===

func (s *Session) onTransition(from, to *fsm.Node[*Session]) {
	s.log.Debug().Str("from", from.Name).Str("to", to.Name).Msg("state changed")
	s.emit(event.EventStateChanged, &event.StateChangedPayload{From: from.Name, To: to.Name})
}

func (s *Session) enterMenu(_ any) {
	s.resolver.Reset()
	for _, p := range s.Players() {
		p.Moving = false
	}
}

func (s *Session) enterDesigner(_ any) {
	s.kickoff()
	s.designer = play.NewDesigner(s.play)
}

func (s *Session) exitDesigner(_ any) {
	s.designer = nil
	s.kickoff()
}

func (s *Session) enterDecision(_ any) {
	carrier := s.Ball.Carrier
	if err := s.resolver.Present(carrier); err != nil {
		s.log.Error().Err(err).Msg("decision not presentable")
		return
	}
	s.log.Info().Str("player", string(carrier.ID)).Int("waypoint", s.resolver.Waypoint()).Msg("decision reached")
	s.emit(event.EventDecisionPresented, &event.DecisionPresentedPayload{
		Player:   carrier.ID,
		Waypoint: s.resolver.Waypoint(),
		Options:  s.resolver.Options(),
	})
}

func (s *Session) enterFeedback(_ any) {
	s.feedback.Schedule(s.tuning.FeedbackDelay)
}

func (s *Session) exitFeedback(_ any) {
	s.feedback.Cancel()
}
