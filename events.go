package alder

// EventType identifies a named entity event.
type EventType uint8

const (
	EventClick      EventType = iota // pointer click resolved to this entity
	EventCloneStart                  // fired on a fresh clone, with the parent
	EventDelete                      // fired once when the entity is deleted
)

// Event carries the data for a named entity event.
type Event struct {
	Type   EventType
	Target *Entity // entity the event fired on
	Parent *Entity // EventCloneStart: the entity the clone was made from
	X, Y   float64 // EventClick: pointer position in stage coordinates
}

// EventFunc handles a named entity event.
type EventFunc func(Event)

type eventListener struct {
	id uint32
	fn EventFunc
}

// ListenerHandle allows removing a registered event listener.
type ListenerHandle struct {
	entity *Entity
	event  EventType
	id     uint32
}

// On registers a listener for the given event and returns a removal handle.
// Firing an event with no listeners is a no-op.
func (e *Entity) On(event EventType, fn EventFunc) ListenerHandle {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]eventListener)
	}
	e.nextLsnID++
	id := e.nextLsnID
	e.listeners[event] = append(e.listeners[event], eventListener{id: id, fn: fn})
	return ListenerHandle{entity: e, event: event, id: id}
}

// Remove unregisters the listener. Safe to call more than once.
func (h ListenerHandle) Remove() {
	if h.entity == nil {
		return
	}
	ls := h.entity.listeners[h.event]
	for i := range ls {
		if ls[i].id == h.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = eventListener{}
			h.entity.listeners[h.event] = ls[:len(ls)-1]
			return
		}
	}
}

// emit fires the entity's listeners for the event synchronously, in
// registration order. Listeners are snapshotted first so a callback may
// register or remove listeners (or delete the entity) without corrupting the
// iteration.
func (e *Entity) emit(ev Event) {
	ls := e.listeners[ev.Type]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]eventListener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(ev)
	}
}
