// Package types defines the shared data structures for the hookline engine.
// This package holds plain data and no engine logic.
package types

// WordEntry is one typing prompt: the text shown to the player and the
// romanization they must type. Immutable once loaded.
type WordEntry struct {
	Level        int
	Display      string
	Romanization string
}

// FishDef is the immutable definition of a fish species.
type FishDef struct {
	ID        string
	Name      string
	Level     int // word bank level used for prompts
	Health    int
	Countdown int // mistakes allowed before the fish escapes
	Price     int // reward on capture
	Shadow    int // shadow size, 1..5
	Weight    int // relative cast probability
}

// Target is a hooked fish. Health and Countdown are mutated by effects only.
type Target struct {
	ID        string
	Name      string
	Level     int
	Health    int
	Countdown int
	Price     int
	Shadow    int
}

// Outcome is the per-keystroke result of the match automaton.
type Outcome int

const (
	Ignored Outcome = iota // input while no target is hooked or after the word is complete
	Hit
	Miss
	Complete
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Complete:
		return "complete"
	}
	return "ignored"
}

// Phase is the encounter state machine's state.
type Phase int

const (
	Idle Phase = iota
	Presenting
)

func (p Phase) String() string {
	if p == Presenting {
		return "presenting"
	}
	return "idle"
}

// Effect is a single atomic target mutation instruction.
type Effect struct {
	Type   string // "damage" or "tick"
	Amount int
}

// Event is emitted when an encounter reaches a terminal transition.
type Event struct {
	Type        string // "captured" or "escaped"
	Target      *Target
	EncounterID string
}

// Result is the output of a single Input call.
type Result struct {
	Outcome Outcome
	Effects []Effect
	Events  []Event
	Output  []string
	Word    *WordEntry // the word drawn after a non-fatal Complete, if any
}
