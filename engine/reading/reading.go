// Package reading checks word bank entries against the kana reading of
// their display text.
package reading

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/nathoo/hookline/engine/candidates"
	"github.com/nathoo/hookline/types"
)

// Issue is an entry whose romanization does not spell its display text.
type Issue struct {
	Entry    types.WordEntry
	Reading  string // katakana reading of the display text
	Derived  string // romaji derived from Reading
	Oversize bool   // romanization expands past candidates.MaxCandidates
}

func (i Issue) String() string {
	if i.Oversize {
		return fmt.Sprintf("level %d %s: romanization %q has more than %d spellings",
			i.Entry.Level, i.Entry.Display, i.Entry.Romanization, candidates.MaxCandidates)
	}
	return fmt.Sprintf("level %d %s: romanization %q, reading %s suggests %q",
		i.Entry.Level, i.Entry.Display, i.Entry.Romanization, i.Reading, i.Derived)
}

// Linter derives readings with kagome and compares them through the
// variant table.
type Linter struct {
	tok   *tokenizer.Tokenizer
	table candidates.Table
}

// New builds a Linter over the IPA dictionary.
func New(table candidates.Table) (*Linter, error) {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	return &Linter{tok: tok, table: table}, nil
}

// Reading returns the katakana reading of text. Tokens the dictionary has
// no reading for contribute their surface form.
func (l *Linter) Reading(text string) string {
	var sb strings.Builder
	for _, t := range l.tok.Tokenize(text) {
		if r, ok := t.Reading(); ok && r != "" && r != "*" {
			sb.WriteString(r)
			continue
		}
		sb.WriteString(t.Surface)
	}
	return sb.String()
}

// Check reports an Issue when no typed spelling of the entry's
// romanization is also a spelling of the derived reading, or when the
// romanization has too many spellings to play.
func (l *Linter) Check(e types.WordEntry) (Issue, bool) {
	if !candidates.Fits(l.table, e.Romanization) {
		return Issue{Entry: e, Oversize: true}, true
	}
	reading := l.Reading(e.Display)
	derived := KanaToRomaji(reading)
	if !candidates.Fits(l.table, derived) {
		return Issue{Entry: e, Reading: reading, Derived: derived}, true
	}

	spellings := map[string]bool{}
	for _, c := range candidates.Generate(l.table, derived) {
		spellings[c] = true
	}
	for _, c := range candidates.Generate(l.table, e.Romanization) {
		if spellings[c] {
			return Issue{}, false
		}
	}
	return Issue{Entry: e, Reading: reading, Derived: derived}, true
}

// Lint checks every entry and returns the issues in input order.
func (l *Linter) Lint(entries []types.WordEntry) []Issue {
	var issues []Issue
	for _, e := range entries {
		if is, bad := l.Check(e); bad {
			issues = append(issues, is)
		}
	}
	return issues
}
