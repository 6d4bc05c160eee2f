package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/touchplay/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters initialID, running OnEnter for the chain from Root to it
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if node.Path == nil {
		return fmt.Errorf("state %q has no compiled path, call CompilePaths first", node.Name)
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action.Func(ctx, action.Args)
		}
	}
	return nil
}

// Update advances the FSM by delta time, runs OnUpdate of the leaf,
// then evaluates tick transitions bubbling up from the leaf
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	for _, action := range leaf.OnUpdate {
		action.Func(ctx, action.Args)
	}

	m.fire(ctx, event.EventTick)
}

// HandleEvent routes an external event, bubbling Leaf -> Parent -> Root
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone {
		return false
	}
	return m.fire(ctx, eventType)
}

func (m *Machine[T]) fire(ctx T, eventType event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change through the lowest common ancestor
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}
	fromNode := m.nodes[m.activeStateID]

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action.Func(ctx, action.Args)
		}
	}

	// State is switched before enter actions so they observe the new leaf
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action.Func(ctx, action.Args)
		}
	}

	for _, obs := range m.observers {
		obs(fromNode, targetNode)
	}
}

// Reset exits the active chain and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action.Func(ctx, action.Args)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx, m.InitialStateID)
}

// StateID returns the active leaf state
func (m *Machine[T]) StateID() StateID {
	return m.activeStateID
}

// StateName returns the active leaf state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the current leaf state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Name returns the name of a state ID
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}
