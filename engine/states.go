package engine

import (
	"fmt"

	"github.com/lixenwraith/touchplay/engine/fsm"
	"github.com/lixenwraith/touchplay/event"
)

// Session states, all children of fsm.StateRoot
const (
	StateMainMenu fsm.StateID = iota + 2
	StatePlayDesigner
	StatePlayingMove
	StateDecisionPoint
	StateFeedback
)

type edge struct {
	from, to fsm.StateID
	on       event.EventType
}

var sessionEdges = []edge{
	{StateMainMenu, StatePlayingMove, event.EventStartPractice},
	{StateMainMenu, StatePlayDesigner, event.EventOpenDesigner},
	{StatePlayDesigner, StateMainMenu, event.EventExitDesigner},
	{StatePlayingMove, StateDecisionPoint, event.EventDecisionReached},
	{StatePlayingMove, StateFeedback, event.EventPlayComplete},
	{StateDecisionPoint, StatePlayingMove, event.EventDecisionCorrect},
	{StateDecisionPoint, StateFeedback, event.EventDecisionWrong},
	{StateFeedback, StateMainMenu, event.EventFeedbackExpired},
	{fsm.StateRoot, StateMainMenu, event.EventGameReset},
}

// buildMachine wires the session graph and its enter/exit actions
func buildMachine() (*fsm.Machine[*Session], error) {
	m := fsm.NewMachine[*Session]()
	m.AddState(fsm.StateRoot, "root", fsm.StateNone)
	m.AddState(StateMainMenu, "mainMenu", fsm.StateRoot)
	m.AddState(StatePlayDesigner, "playDesigner", fsm.StateRoot)
	m.AddState(StatePlayingMove, "playingMove", fsm.StateRoot)
	m.AddState(StateDecisionPoint, "decisionPoint", fsm.StateRoot)
	m.AddState(StateFeedback, "feedback", fsm.StateRoot)

	for _, e := range sessionEdges {
		m.AddTransition(e.from, fsm.Transition[*Session]{TargetID: e.to, Event: e.on})
	}

	m.OnEnter(StateMainMenu, (*Session).enterMenu, nil)
	m.OnEnter(StatePlayDesigner, (*Session).enterDesigner, nil)
	m.OnExit(StatePlayDesigner, (*Session).exitDesigner, nil)
	m.OnEnter(StateDecisionPoint, (*Session).enterDecision, nil)
	m.OnEnter(StateFeedback, (*Session).enterFeedback, nil)
	m.OnExit(StateFeedback, (*Session).exitFeedback, nil)

	if err := m.CompilePaths(); err != nil {
		return nil, fmt.Errorf("compile session graph: %w", err)
	}
	return m, nil
}
