package carousel

import (
	game_log "github.com/mkoreman/slideworld/internal/log"
)

type EventType string

const (
	EventDrag         EventType = "drag"
	EventDragEnd      EventType = "dragEnd"
	EventSnapComplete EventType = "snapComplete"
)

// Source tells listeners what initiated a snap or drag event.
type Source string

const (
	SourceDrag         Source = "drag"
	SourceNavigation   Source = "navigation"
	SourceProgrammatic Source = "programmatic"
)

// Payload is delivered to every listener of a carousel event. Fields that
// don't apply to a given event are left at their zero value.
type Payload struct {
	Index     int
	SlideID   string
	Velocity  float64
	Translate float64
	Source    Source
}

type Handler func(Payload)

// Subscription identifies a registered handler so it can be removed with Off.
type Subscription struct {
	event EventType
	id    int
}

type handlerEntry struct {
	id int
	fn Handler
}

// emitter is a per-carousel observer registry. Handlers run in registration
// order; a panicking handler is logged and the remaining handlers still run.
type emitter struct {
	name     string
	logger   *game_log.Logger
	nextID   int
	handlers map[EventType][]handlerEntry
}

func newEmitter(name string, logger *game_log.Logger) *emitter {
	return &emitter{
		name:     name,
		logger:   logger,
		handlers: map[EventType][]handlerEntry{},
	}
}

func (e *emitter) On(event EventType, fn Handler) Subscription {
	e.nextID++
	sub := Subscription{event: event, id: e.nextID}
	e.handlers[event] = append(e.handlers[event], handlerEntry{id: sub.id, fn: fn})
	return sub
}

func (e *emitter) Off(sub Subscription) {
	entries := e.handlers[sub.event]
	for i, entry := range entries {
		if entry.id == sub.id {
			e.handlers[sub.event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

func (e *emitter) Emit(event EventType, p Payload) {
	// Snapshot so handlers can subscribe/unsubscribe while we iterate.
	entries := e.handlers[event]
	snapshot := make([]handlerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		e.invoke(event, entry, p)
	}
}

func (e *emitter) invoke(event EventType, entry handlerEntry, p Payload) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("[CAROUSEL %s] %s listener %d panicked: %v", e.name, event, entry.id, r)
		}
	}()
	entry.fn(p)
}
