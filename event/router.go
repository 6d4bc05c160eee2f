package event

// Handler receives the events whose types it lists, on the session goroutine
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Router drains its queue into handlers, in registration order per type
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll delivers every pending event and reports how many there were
// Events a handler pushes during delivery are left for the next call
func (r *Router) DispatchAll() int {
	pending := r.queue.Consume()
	for i := range pending {
		for _, h := range r.handlers[pending[i].Type] {
			h.HandleEvent(pending[i])
		}
	}
	return len(pending)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
