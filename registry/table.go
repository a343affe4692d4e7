package registry

import (
	"sort"
	"sync"

	"github.com/TuboFmc/anvil/vk"
)

// Table maps Vulkan handles to their debug-marker metadata.
type Table struct {
	entries   map[vk.Handle]*Entry
	mu        sync.RWMutex
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty metadata table.
func NewTable() *Table {
	return &Table{
		entries: make(map[vk.Handle]*Entry),
	}
}

// Register adds a handle with its object type. Metadata starts empty; a
// handle registered twice keeps its existing entry.
func (t *Table) Register(handle vk.Handle, objType vk.ObjectType) {
	if handle == vk.NullHandle {
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if _, exists := t.entries[handle]; exists {
		t.mu.Unlock()
		return
	}
	e := &Entry{Handle: handle, Type: objType}
	t.entries[handle] = e
	snapshot := *e
	t.mu.Unlock()

	t.notify(Event{Type: EventRegistered, Entry: snapshot})
}

// SetName updates the name for a registered handle.
// Returns false if the handle is not registered.
func (t *Table) SetName(handle vk.Handle, name string) bool {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if !ok {
		t.mu.Unlock()
		return false
	}
	e.Name = name
	snapshot := copyEntry(e)
	t.mu.Unlock()

	t.notify(Event{Type: EventNamed, Entry: snapshot})
	return true
}

// SetTag updates the tag for a registered handle. The byte range is copied.
// Returns false if the handle is not registered.
func (t *Table) SetTag(handle vk.Handle, tagID uint64, data []byte) bool {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if !ok {
		t.mu.Unlock()
		return false
	}
	e.TagID = tagID
	e.Tag = append([]byte(nil), data...)
	snapshot := copyEntry(e)
	t.mu.Unlock()

	t.notify(Event{Type: EventTagged, Entry: snapshot})
	return true
}

// Release drops a handle and returns its final metadata.
func (t *Table) Release(handle vk.Handle) (Entry, bool) {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if !ok {
		t.mu.Unlock()
		return Entry{}, false
	}
	delete(t.entries, handle)
	snapshot := copyEntry(e)
	t.mu.Unlock()

	t.notify(Event{Type: EventReleased, Entry: snapshot})
	return snapshot, true
}

// Get retrieves the metadata for a handle.
func (t *Table) Get(handle vk.Handle) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[handle]
	if !ok {
		return Entry{}, false
	}
	return copyEntry(e), true
}

// Len returns the number of registered handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Each iterates over all entries. Return false to stop.
func (t *Table) Each(fn func(Entry) bool) {
	for _, e := range t.Snapshot() {
		if !fn(e) {
			return
		}
	}
}

// Snapshot returns all entries sorted by handle.
func (t *Table) Snapshot() []Entry {
	t.mu.RLock()
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, copyEntry(e))
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Clear releases all handles, notifying observers for each.
func (t *Table) Clear() {
	for _, e := range t.Snapshot() {
		t.Release(e.Handle)
	}
}

// Close clears the table and stops accepting registrations.
func (t *Table) Close() error {
	t.Clear()

	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnObjectEvent(e)
	}
}

func copyEntry(e *Entry) Entry {
	out := *e
	out.Tag = append([]byte(nil), e.Tag...)
	return out
}
