// Package matcher implements the keystroke automaton that tracks every live
// spelling of the current word and narrows the set as characters arrive.
package matcher

import (
	"unicode"

	"github.com/nathoo/hookline/types"
)

// MissPolicy decides what a wrong keystroke does to the automaton.
type MissPolicy int

const (
	// KeepOnMiss leaves candidates and cursors untouched on a miss.
	KeepOnMiss MissPolicy = iota
	// ResetOnMiss restores every candidate and rewinds all cursors to zero.
	ResetOnMiss
)

// Matcher holds the live candidates and one cursor per candidate.
// cursors[i] <= len(live[i]) always holds.
type Matcher struct {
	all     []string
	live    []string
	cursors []int
	lead    int // index into live of the most recent anchor
	policy  MissPolicy
}

// New creates a matcher over candidates with every cursor at zero.
// candidates must be lowercase ASCII and non-empty.
func New(candidates []string, policy MissPolicy) *Matcher {
	m := &Matcher{
		all:    append([]string(nil), candidates...),
		policy: policy,
	}
	m.rewind()
	return m
}

func (m *Matcher) rewind() {
	m.live = append(m.live[:0], m.all...)
	m.cursors = make([]int, len(m.live))
	m.lead = 0
}

// Submit feeds one keystroke and reports Hit, Miss, or Complete. Once a
// candidate is complete the matcher reports Ignored for any further key.
//
// The first live candidate expecting r at its cursor is the anchor. Every
// candidate expecting r advances. Candidates are then pruned unless the
// character just before their cursor is r, so a candidate that did not
// advance survives when its previous character happens to equal r.
func (m *Matcher) Submit(r rune) types.Outcome {
	if m.Done() {
		return types.Ignored
	}
	if r > unicode.MaxASCII {
		return m.miss()
	}
	c := byte(unicode.ToLower(r))

	anchor := -1
	for i, cand := range m.live {
		if m.cursors[i] < len(cand) && cand[m.cursors[i]] == c {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return m.miss()
	}

	for i, cand := range m.live {
		if m.cursors[i] < len(cand) && cand[m.cursors[i]] == c {
			m.cursors[i]++
		}
	}

	for i := len(m.live) - 1; i >= 0; i-- {
		cur := m.cursors[i]
		if cur == 0 || cur > len(m.live[i]) || m.live[i][cur-1] != c {
			m.live = append(m.live[:i], m.live[i+1:]...)
			m.cursors = append(m.cursors[:i], m.cursors[i+1:]...)
			if i < anchor {
				anchor--
			}
		}
	}
	// The anchor advanced onto c, so it always survives pruning.
	m.lead = anchor

	for i, cand := range m.live {
		if m.cursors[i] == len(cand) {
			m.lead = i
			return types.Complete
		}
	}
	return types.Hit
}

func (m *Matcher) miss() types.Outcome {
	if m.policy == ResetOnMiss {
		m.rewind()
	}
	return types.Miss
}

// Live returns the surviving candidates in order.
func (m *Matcher) Live() []string {
	return append([]string(nil), m.live...)
}

// Cursors returns a copy of the per-candidate cursors, parallel to Live.
func (m *Matcher) Cursors() []int {
	return append([]int(nil), m.cursors...)
}

// Lead returns the candidate used for display: the latest anchor.
func (m *Matcher) Lead() string {
	if len(m.live) == 0 {
		return ""
	}
	return m.live[m.lead]
}

// Typed returns the confirmed prefix of the lead candidate.
func (m *Matcher) Typed() string {
	if len(m.live) == 0 {
		return ""
	}
	return m.live[m.lead][:m.cursors[m.lead]]
}

// Remaining returns the unconfirmed suffix of the lead candidate.
func (m *Matcher) Remaining() string {
	if len(m.live) == 0 {
		return ""
	}
	return m.live[m.lead][m.cursors[m.lead]:]
}

// Done reports whether some live candidate is fully typed.
func (m *Matcher) Done() bool {
	for i, cand := range m.live {
		if m.cursors[i] == len(cand) {
			return true
		}
	}
	return false
}
