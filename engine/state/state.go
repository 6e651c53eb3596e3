// Package state holds the encounter aggregate: the hooked target, the word
// being typed, and the automaton tracking it.
package state

import (
	"github.com/nathoo/hookline/engine/matcher"
	"github.com/nathoo/hookline/types"
)

// Encounter exists only while a target is hooked.
type Encounter struct {
	ID         string
	Target     *types.Target
	Word       types.WordEntry
	Candidates []string
	Matcher    *matcher.Matcher
	Words      int // words presented so far, including the current one
	Misses     int
}

// NewEncounter creates an encounter for t with no word yet.
func NewEncounter(id string, t *types.Target) *Encounter {
	return &Encounter{ID: id, Target: t}
}

// SetWord replaces the current word and restarts the automaton.
func SetWord(e *Encounter, word types.WordEntry, candidates []string, policy matcher.MissPolicy) {
	e.Word = word
	e.Candidates = candidates
	e.Matcher = matcher.New(candidates, policy)
	e.Words++
}

// Captured returns true once the target has no health left.
func Captured(e *Encounter) bool {
	return e.Target.Health <= 0
}

// Escaped returns true once the target's countdown has run out.
func Escaped(e *Encounter) bool {
	return e.Target.Countdown <= 0
}
