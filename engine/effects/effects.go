// Package effects implements centralized target mutation via the Apply function.
// Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"fmt"

	"github.com/nathoo/hookline/engine/state"
	"github.com/nathoo/hookline/types"
)

// Effect types.
const (
	Damage = "damage" // reduce target health
	Tick   = "tick"   // reduce target countdown
)

// Event types.
const (
	Captured = "captured"
	Escaped  = "escaped"
)

// Apply applies effects to the encounter's target, mutating it.
// Returns events emitted and output text collected. A terminal event stops
// further effects in the batch.
func Apply(e *state.Encounter, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string
	t := e.Target

	for _, eff := range effects {
		switch eff.Type {
		case Damage:
			t.Health -= eff.Amount
			output = append(output, fmt.Sprintf("The %s takes %d damage. (HP %d)", t.Name, eff.Amount, max(t.Health, 0)))
			if state.Captured(e) {
				output = append(output, fmt.Sprintf("You landed the %s!", t.Name))
				events = append(events, types.Event{Type: Captured, Target: t, EncounterID: e.ID})
				return events, output
			}

		case Tick:
			t.Countdown -= eff.Amount
			e.Misses++
			output = append(output, fmt.Sprintf("The line slips. (%d left)", max(t.Countdown, 0)))
			if state.Escaped(e) {
				output = append(output, fmt.Sprintf("The %s got away.", t.Name))
				events = append(events, types.Event{Type: Escaped, Target: t, EncounterID: e.ID})
				return events, output
			}

		default:
			output = append(output, fmt.Sprintf("[unknown effect: %s]", eff.Type))
		}
	}

	return events, output
}
