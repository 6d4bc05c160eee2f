package event

import (
	"github.com/lixenwraith/touchplay/parameter"
)

// EventQueue is a fixed-size FIFO ring of session notifications
// It is owned by the session goroutine and not safe for concurrent use
// When full, the oldest event is overwritten and counted as dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // next read
	tail    uint64 // next write
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when the ring is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed by handlers while the result is being dispatched wait for the next call
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
