package fsm

import "fmt"

// AddState registers a node under parentID, replacing any node with the same id
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{ID: id, Name: name, ParentID: parentID}
	m.nodes[id] = node
	return node
}

// AddTransition appends t to the source node; unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node := m.nodes[sourceID]; node != nil {
		node.Transitions = append(node.Transitions, t)
	}
}

func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T], args any) {
	m.hook(id, fn, args, func(n *Node[T]) *[]Action[T] { return &n.OnEnter })
}

func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T], args any) {
	m.hook(id, fn, args, func(n *Node[T]) *[]Action[T] { return &n.OnExit })
}

// OnUpdate runs fn every Update while id is the active leaf
func (m *Machine[T]) OnUpdate(id StateID, fn ActionFunc[T], args any) {
	m.hook(id, fn, args, func(n *Node[T]) *[]Action[T] { return &n.OnUpdate })
}

func (m *Machine[T]) hook(id StateID, fn ActionFunc[T], args any, list func(*Node[T]) *[]Action[T]) {
	node := m.nodes[id]
	if node == nil {
		return
	}
	actions := list(node)
	*actions = append(*actions, Action[T]{Func: fn, Args: args})
}

// Observe registers a callback run after every completed transition
func (m *Machine[T]) Observe(fn func(from, to *Node[T])) {
	m.observers = append(m.observers, fn)
}

// CompilePaths fills Node.Path for the whole graph
// It fails on a missing parent or a parent cycle and must run before Init
func (m *Machine[T]) CompilePaths() error {
	for _, node := range m.nodes {
		node.Path = nil
	}
	for _, node := range m.nodes {
		if _, err := m.pathOf(node, len(m.nodes)); err != nil {
			return err
		}
	}
	return nil
}

// pathOf resolves a node's root-first path, memoised in Node.Path
// budget bounds the recursion depth so a cycle cannot loop forever
func (m *Machine[T]) pathOf(node *Node[T], budget int) ([]StateID, error) {
	if node.Path != nil {
		return node.Path, nil
	}
	if budget < 0 {
		return nil, fmt.Errorf("state %q is part of a parent cycle", node.Name)
	}
	if node.ParentID == StateNone {
		node.Path = []StateID{node.ID}
		return node.Path, nil
	}
	parent := m.nodes[node.ParentID]
	if parent == nil {
		return nil, fmt.Errorf("state %q references missing parent %d", node.Name, node.ParentID)
	}
	up, err := m.pathOf(parent, budget-1)
	if err != nil {
		return nil, err
	}
	path := make([]StateID, len(up)+1)
	copy(path, up)
	path[len(up)] = node.ID
	node.Path = path
	return path, nil
}
