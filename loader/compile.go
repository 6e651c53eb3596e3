// Package loader loads Lua content packs into Go structs at startup.
// The Lua VM is discarded after loading, so no Lua runs during play.
package loader

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/engine/wordbank"
	"github.com/nathoo/hookline/types"
)

// Content is everything a content pack defines.
type Content struct {
	Name     string
	Intro    string
	Fish     []types.FishDef
	Words    []types.WordEntry
	Variants map[string][]string
	Warnings []string
}

// AddWords adds the pack's words to b.
func (c *Content) AddWords(b *wordbank.Bank) error {
	for _, w := range c.Words {
		if err := b.Add(w); err != nil {
			return err
		}
	}
	return nil
}

// Table returns base extended with the pack's variant overrides, or base
// itself when the pack has none.
func (c *Content) Table(base *romaji.Table) *romaji.Table {
	if len(c.Variants) == 0 {
		return base
	}
	return romaji.Extend(base, c.Variants)
}

// rawFish holds a fish table before compilation.
type rawFish struct {
	id    string
	table *lua.LTable
}

// rawWords holds a level's word list before compilation.
type rawWords struct {
	level int
	table *lua.LTable
}

// rawVariant holds a variant override before compilation.
type rawVariant struct {
	key   string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if tbl.RawGetString(key) == lua.LNil {
		return def
	}
	return int(getNumber(tbl, key))
}

// stringList converts a Lua array of strings to a Go slice.
func stringList(tbl *lua.LTable) ([]string, error) {
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		out = append(out, string(s))
	}
	return out, nil
}

// compile converts all collected Lua data into Content.
func compile(coll *collector) (*Content, error) {
	c := &Content{Variants: map[string][]string{}}

	if coll.pond != nil {
		c.Name = getString(coll.pond, "name")
		c.Intro = getString(coll.pond, "intro")
	}

	for _, raw := range coll.fish {
		c.Fish = append(c.Fish, compileFish(raw))
	}

	for _, raw := range coll.words {
		words, err := compileWords(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling words for level %d: %w", raw.level, err)
		}
		c.Words = append(c.Words, words...)
	}

	for _, raw := range coll.variants {
		spellings, err := stringList(raw.table)
		if err != nil {
			return nil, fmt.Errorf("compiling variant %s: %w", raw.key, err)
		}
		key := strings.ToLower(raw.key)
		c.Variants[key] = append(c.Variants[key], spellings...)
	}

	return c, nil
}

func compileFish(raw rawFish) types.FishDef {
	name := getString(raw.table, "name")
	if name == "" {
		name = raw.id
	}
	return types.FishDef{
		ID:        raw.id,
		Name:      name,
		Level:     getInt(raw.table, "level", 1),
		Health:    getInt(raw.table, "hp", 10),
		Countdown: getInt(raw.table, "timer", 5),
		Price:     getInt(raw.table, "price", 0),
		Shadow:    getInt(raw.table, "shadow", 1),
		Weight:    getInt(raw.table, "weight", 1),
	}
}

// compileWords reads { {"display", "romaji"}, ... }. Fields are trimmed.
func compileWords(raw rawWords) ([]types.WordEntry, error) {
	var out []types.WordEntry
	for i := 1; i <= raw.table.MaxN(); i++ {
		pair, ok := raw.table.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("entry %d is not a {display, romaji} pair", i)
		}
		fields, err := stringList(pair)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("entry %d: expected 2 fields, got %d", i, len(fields))
		}
		out = append(out, types.WordEntry{
			Level:        raw.level,
			Display:      strings.TrimSpace(fields[0]),
			Romanization: strings.TrimSpace(fields[1]),
		})
	}
	return out, nil
}
