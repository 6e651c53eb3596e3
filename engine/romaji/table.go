// Package romaji holds the phonetic variant table: every mora key mapped to
// the ASCII spellings a player may type for it.
package romaji

import (
	"sort"
	"strings"
	"sync"
)

// MaxKeyLen is the longest mora key the table may contain.
const MaxKeyLen = 3

// Table maps a mora key to its accepted spellings. The key's own spelling is
// always the first variant. A Table is never mutated after construction.
type Table struct {
	entries map[string][]string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is built on first use and shared.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = build(baseVariants())
	})
	return defaultTable
}

// Extend returns a new table with base's entries plus overrides. An override
// replaces the base entry for its key. Keys longer than MaxKeyLen are dropped.
func Extend(base *Table, overrides map[string][]string) *Table {
	merged := make(map[string][]string, len(base.entries)+len(overrides))
	for k, v := range base.entries {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return build(merged)
}

// Lookup returns the spellings for key, or nil if the key is unknown.
// Matching is exact; callers lowercase first. The returned slice must not
// be modified.
func (t *Table) Lookup(key string) []string {
	return t.entries[key]
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns all keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns one "key: spelling spelling" line for every key that
// starts with prefix, in key order.
func Describe(t *Table, prefix string) []string {
	var lines []string
	for _, k := range t.Keys() {
		if strings.HasPrefix(k, prefix) {
			lines = append(lines, k+": "+strings.Join(t.entries[k], " "))
		}
	}
	return lines
}

// build normalizes raw entries: the key goes first, duplicates are dropped.
func build(raw map[string][]string) *Table {
	t := &Table{entries: make(map[string][]string, len(raw))}
	for key, spellings := range raw {
		if key == "" || len(key) > MaxKeyLen {
			continue
		}
		seen := map[string]bool{key: true}
		list := []string{key}
		for _, s := range spellings {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			list = append(list, s)
		}
		t.entries[key] = list
	}
	return t
}
