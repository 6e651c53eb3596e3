package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/hookline/engine/candidates"
	"github.com/nathoo/hookline/engine/romaji"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled content for consistency. Warnings are kept
// on the content for the caller to log.
func validate(c *Content) error {
	ve := &ValidationError{}

	table := c.Table(romaji.Default())
	levels := map[int]bool{}
	for _, w := range c.Words {
		levels[w.Level] = true
		if w.Level < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"word %q: level %d must be at least 1", w.Display, w.Level))
		}
		if w.Display == "" || w.Romanization == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"level %d: word with empty display text or romanization", w.Level))
		}
		if !isPrintable(w.Romanization) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"word %q: romanization %q must be printable ASCII", w.Display, w.Romanization))
		}
		if !candidates.Fits(table, w.Romanization) || !candidates.Fits(romaji.Default(), w.Romanization) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"word %q: romanization has more than %d spellings", w.Display, candidates.MaxCandidates))
		}
	}

	seen := map[string]bool{}
	for _, f := range c.Fish {
		if seen[f.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate fish %q", f.ID))
		}
		seen[f.ID] = true
		if f.Level < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fish %q: level must be at least 1", f.ID))
		}
		if f.Health < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fish %q: hp must be at least 1", f.ID))
		}
		if f.Countdown < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fish %q: timer must be at least 1", f.ID))
		}
		if f.Weight < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fish %q: weight must be at least 1", f.ID))
		}
		if f.Price < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("fish %q: price must not be negative", f.ID))
		}
		if f.Shadow < 1 || f.Shadow > 5 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("fish %q: shadow %d outside 1..5", f.ID, f.Shadow))
		}
		if len(c.Words) > 0 && !levels[f.Level] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"fish %q: pack defines no words for level %d", f.ID, f.Level))
		}
	}

	keys := make([]string, 0, len(c.Variants))
	for k := range c.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if len(key) == 0 || len(key) > romaji.MaxKeyLen || !isTypeable(key) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"variant key %q must be 1 to %d printable ASCII characters", key, romaji.MaxKeyLen))
		}
		if len(c.Variants[key]) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("variant %q lists no spellings", key))
		}
		for _, s := range c.Variants[key] {
			if s == "" || !isTypeable(s) || s != strings.ToLower(s) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"variant %q: spelling %q must be lowercase printable ASCII", key, s))
			}
		}
	}

	c.Warnings = ve.Warnings

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// isTypeable reports whether s is printable ASCII with no spaces.
func isTypeable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

// isPrintable reports whether s is printable ASCII, spaces allowed.
func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
