package ecs

import "reflect"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionBegin CollisionEventKind = "begin"
	CollisionEnd   CollisionEventKind = "end"
)

// CollisionEvent reports that two shapes started or stopped overlapping.
// The pair is unordered.
type CollisionEvent struct {
	Kind   CollisionEventKind
	A      Entity
	B      Entity
	Sensor bool
}

// LogMessage appends a line to the on-screen game log.
type LogMessage struct {
	Text string
}

type eventKey = reflect.Type

type eventBuffer interface {
	reset()
}

type eventQueue[T any] struct {
	items []T
}

func (q *eventQueue[T]) reset() {
	clear(q.items)
	q.items = q.items[:0]
}

func queueFor[T any](w *World, create bool) *eventQueue[T] {
	if w == nil {
		return nil
	}
	key := reflect.TypeFor[T]()
	if buf, ok := w.events[key]; ok {
		q, _ := buf.(*eventQueue[T])
		return q
	}
	if !create {
		return nil
	}
	if w.events == nil {
		w.events = make(map[eventKey]eventBuffer)
	}
	q := &eventQueue[T]{}
	w.events[key] = q
	return q
}

// Emit queues an event for the rest of the current frame.
func Emit[T any](w *World, evt T) {
	q := queueFor[T](w, true)
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the events of type T emitted so far this frame. The slice
// is only valid until EndFrame.
func Events[T any](w *World) []T {
	q := queueFor[T](w, false)
	if q == nil {
		return nil
	}
	return q.items
}

// EndFrame drops every queued event.
func EndFrame(w *World) {
	if w == nil {
		return
	}
	for _, buf := range w.events {
		buf.reset()
	}
}
