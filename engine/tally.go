package engine

import (
	"github.com/nathoo/hookline/engine/effects"
	"github.com/nathoo/hookline/types"
)

// Tally counts the session's catches. It lives only as long as the process.
type Tally struct {
	Captured int
	Escaped  int
	Score    int            // sum of captured fish prices
	Catches  map[string]int // fish name -> captures
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{Catches: map[string]int{}}
}

// OnEvent records a captured or escaped event.
func (t *Tally) OnEvent(ev types.Event) {
	switch ev.Type {
	case effects.Captured:
		t.Captured++
		if ev.Target != nil {
			t.Score += ev.Target.Price
			t.Catches[ev.Target.Name]++
		}
	case effects.Escaped:
		t.Escaped++
	}
}
