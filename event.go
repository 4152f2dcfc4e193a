// Copyright 2015 Alex Browne and Soroush Pour.
// Allrights reserved. Use of this source code is
// governed by the MIT license, which can be found
// in the LICENSE file.

package element

import (
	"github.com/go-humble/element/internal/registry"
	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"
)

var events = registry.New()

// Handler is the function behind a Listener. When the listener is triggered
// by the browser, ev is the native event and args is empty. When it is
// triggered by FireEvent or by the Call option, ev is nil and args holds
// whatever was passed along.
type Handler func(ev dom.Event, args ...interface{})

// Listener wraps a Handler so that it can be identified later on. Adding the
// same *Listener twice for the same event has no effect, and the same pointer
// is needed to remove it again.
type Listener struct {
	handle Handler
}

// NewListener returns a Listener which calls h. A nil h gives a listener
// that does nothing when triggered.
func NewListener(h Handler) *Listener {
	return &Listener{handle: h}
}

// Invoke calls the listener's handler with a nil event.
func (l *Listener) Invoke(args ...interface{}) {
	l.call(nil, args...)
}

func (l *Listener) call(ev dom.Event, args ...interface{}) {
	if l.handle == nil {
		return
	}
	l.handle(ev, args...)
}

// AddOption changes the behavior of AddEvent.
type AddOption func(*addConfig)

type addConfig struct {
	call bool
}

// Call makes AddEvent invoke the listener right away, once it is registered.
func Call() AddOption {
	return func(c *addConfig) {
		c.call = true
	}
}

// AddEvent adds listener to el for the given event type. Transition and
// animation events (e.g. "transitionend") are mapped to the name the browser
// actually dispatches. Adding a listener which is already registered for the
// event does nothing. Because of the way gopherjs works, the handler cannot
// be a blocking function. See https://github.com/gopherjs/gopherjs#goroutines
// for more information.
func AddEvent(el dom.Element, eventType string, listener *Listener, opts ...AddOption) {
	cfg := addConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	eventType = ResolveEvent(eventType)
	added := events.Add(UID(el), eventType, listener, func() func() {
		jsListener := el.AddEventListener(eventType, false, func(ev dom.Event) {
			listener.call(ev)
		})
		return func() {
			el.RemoveEventListener(eventType, false, jsListener)
		}
	})
	if added && cfg.call {
		listener.Invoke()
	}
}

// AddEvents adds every listener in listeners, keyed by event type, to el.
func AddEvents(el dom.Element, listeners map[string]*Listener) {
	for eventType, listener := range listeners {
		AddEvent(el, eventType, listener)
	}
}

// RemoveEvent removes listener from el for the given event type.
func RemoveEvent(el dom.Element, eventType string, listener *Listener) {
	events.Remove(UID(el), ResolveEvent(eventType), listener)
}

// RemoveEvents removes every listener registered on el for the given event
// type.
func RemoveEvents(el dom.Element, eventType string) {
	events.RemoveEvent(UID(el), ResolveEvent(eventType))
}

// RemoveAllEvents removes every listener registered on el.
func RemoveAllEvents(el dom.Element) {
	events.RemoveAll(UID(el))
}

// FireEvent calls every listener registered on el for the given event type,
// in the order they were added, passing args along. No native event is
// dispatched.
func FireEvent(el dom.Element, eventType string, args ...interface{}) {
	events.Fire(UID(el), ResolveEvent(eventType), args...)
}

// Events returns the sorted event types el has listeners for. Transition and
// animation events are reported under their native names.
func Events(el dom.Element) []string {
	return events.Events(UID(el))
}

// ResolveEvent returns the native name of eventType for the running browser.
// Only transition and animation events are changed.
func ResolveEvent(eventType string) string {
	return vendors.Event(eventType)
}

// compile-time check that *Listener can be stored in the registry.
var _ registry.Listener = (*Listener)(nil)

func isUndefined(o *js.Object) bool {
	return o == nil || o == js.Undefined
}
