// Package events delivers terminal encounter events to registered listeners.
// Dispatch is synchronous and single pass; listeners cannot emit events.
package events

import "github.com/nathoo/hookline/types"

// Listener receives captured and escaped events.
type Listener interface {
	OnEvent(types.Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(types.Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev types.Event) { f(ev) }

// Dispatch delivers each event to every listener in registration order.
// Returns the number of deliveries made.
func Dispatch(events []types.Event, listeners []Listener) int {
	n := 0
	for _, ev := range events {
		for _, l := range listeners {
			l.OnEvent(ev)
			n++
		}
	}
	return n
}
