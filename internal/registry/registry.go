// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

// Package registry keeps track of the listeners attached to each element so
// they can be removed in bulk or when the element is torn down.
package registry

import "sort"

// Listener is anything that can be registered. Listeners are compared with
// ==, so implementations should be pointers.
type Listener interface {
	Invoke(args ...interface{})
}

// BindFunc attaches a listener to its native target and returns the function
// that detaches it again.
type BindFunc func() (unbind func())

type entry struct {
	listener Listener
	unbind   func()
}

// Registry maps an element id and an event name to the ordered list of
// listeners registered for it.
type Registry struct {
	elements map[int]map[string][]entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		elements: map[int]map[string][]entry{},
	}
}

// Add registers l for event on the element with the given id. If l is already
// registered for that event, Add does nothing and returns false. Otherwise
// bind is called and its unbind function is kept for later removal.
func (r *Registry) Add(id int, event string, l Listener, bind BindFunc) bool {
	events, found := r.elements[id]
	if !found {
		events = map[string][]entry{}
		r.elements[id] = events
	}
	for _, e := range events[event] {
		if e.listener == l {
			return false
		}
	}
	var unbind func()
	if bind != nil {
		unbind = bind()
	}
	events[event] = append(events[event], entry{listener: l, unbind: unbind})
	return true
}

// Remove unregisters a single listener and reports whether it was found.
func (r *Registry) Remove(id int, event string, l Listener) bool {
	events := r.elements[id]
	entries := events[event]
	for i, e := range entries {
		if e.listener != l {
			continue
		}
		e.detach()
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(events, event)
		} else {
			events[event] = entries
		}
		return true
	}
	return false
}

// RemoveEvent unregisters every listener for event and returns how many were
// removed.
func (r *Registry) RemoveEvent(id int, event string) int {
	events := r.elements[id]
	entries := events[event]
	for _, e := range entries {
		e.detach()
	}
	delete(events, event)
	return len(entries)
}

// RemoveAll unregisters every listener of the element and returns how many
// were removed. The element keeps an (empty) slot in the registry.
func (r *Registry) RemoveAll(id int) int {
	n := 0
	for event := range r.elements[id] {
		n += r.RemoveEvent(id, event)
	}
	return n
}

// Forget drops the element from the registry without detaching anything.
// Callers normally call RemoveAll first.
func (r *Registry) Forget(id int) {
	delete(r.elements, id)
}

// Listeners returns a copy of the listeners registered for event, in
// registration order.
func (r *Registry) Listeners(id int, event string) []Listener {
	entries := r.elements[id][event]
	if len(entries) == 0 {
		return nil
	}
	listeners := make([]Listener, len(entries))
	for i, e := range entries {
		listeners[i] = e.listener
	}
	return listeners
}

// Fire invokes every listener registered for event with args. Listeners added
// or removed while firing do not affect the current round.
func (r *Registry) Fire(id int, event string, args ...interface{}) int {
	listeners := r.Listeners(id, event)
	for _, l := range listeners {
		l.Invoke(args...)
	}
	return len(listeners)
}

// Events returns the sorted names of the events that have at least one
// listener on the element.
func (r *Registry) Events(id int) []string {
	events := r.elements[id]
	names := make([]string, 0, len(events))
	for name, entries := range events {
		if len(entries) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Has reports whether the element has a slot in the registry.
func (r *Registry) Has(id int) bool {
	_, found := r.elements[id]
	return found
}

func (e entry) detach() {
	if e.unbind != nil {
		e.unbind()
	}
}
