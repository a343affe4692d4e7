package registry

import "github.com/TuboFmc/anvil/vk"

// Entry is the metadata held for one registered handle.
type Entry struct {
	Handle vk.Handle
	Type   vk.ObjectType
	Name   string
	TagID  uint64
	Tag    []byte
}

// Event types for object lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventNamed
	EventTagged
	EventReleased
)

// Event represents an object lifecycle event.
type Event struct {
	Type  EventType
	Entry Entry
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnObjectEvent(Event)
}
