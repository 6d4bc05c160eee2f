package fsm

import (
	"time"

	"github.com/lixenwraith/touchplay/event"
)

// StateID names a node in the state graph
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// GuardFunc gates a transition; a nil guard always passes
type GuardFunc[T any] func(ctx T) bool

// ActionFunc runs on enter, exit or update with the args it was registered with
type ActionFunc[T any] func(ctx T, args any)

type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// Transition fires on Event, or on every Update when Event is EventTick
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType
	Guard    GuardFunc[T]
}

// Node is one state; Path runs from the root down to the node itself
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID
	Path     []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// first matching transition wins
	Transitions []Transition[T]
}

// Machine runs a hierarchy of nodes against a context of type T
// (the practice session in this program). The graph is fixed once
// CompilePaths has run; only the active path and its timer change.
type Machine[T any] struct {
	nodes          map[StateID]*Node[T]
	InitialStateID StateID

	activeStateID StateID
	activePath    []StateID
	timeInState   time.Duration

	observers []func(from, to *Node[T])
}
