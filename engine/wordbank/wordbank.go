// Package wordbank loads typing prompts from a comma-separated file and
// serves random words by level.
package wordbank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/hookline/engine/candidates"
	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/types"
)

// ErrMissingSource is returned by Load when the word file does not exist.
// The bank returned alongside it is empty but usable.
var ErrMissingSource = errors.New("word source not found")

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// Bank maps a level to its words in file order.
type Bank struct {
	levels map[int][]types.WordEntry
	count  int
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{levels: map[int][]types.WordEntry{}}
}

// Load reads the word file at path. A missing file is not fatal: Load
// returns an empty bank and an error wrapping ErrMissingSource.
func Load(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), fmt.Errorf("loading words from %s: %w", path, ErrMissingSource)
		}
		return New(), fmt.Errorf("loading words from %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads rows of the form level,display,romaji[,display,romaji...].
// The first non-blank row is a header. Rows whose level is not an integer
// are skipped, pairs with an empty field are dropped, and a trailing
// unpaired field is ignored.
func Parse(r io.Reader) (*Bank, error) {
	b := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	header := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		fields := strings.Split(line, ",")
		level, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		for i := 1; i+1 < len(fields); i += 2 {
			// Invalid pairs are skipped silently.
			_ = b.Add(types.WordEntry{
				Level:        level,
				Display:      strings.TrimSpace(fields[i]),
				Romanization: strings.TrimSpace(fields[i+1]),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return b, fmt.Errorf("reading words: %w", err)
	}
	return b, nil
}

// Add appends an entry to its level. Entries with an empty display text or
// romanization, a level below 1, or more than candidates.MaxCandidates
// spellings under the default table are rejected.
func (b *Bank) Add(e types.WordEntry) error {
	if e.Display == "" || e.Romanization == "" {
		return fmt.Errorf("level %d: empty display text or romanization", e.Level)
	}
	if e.Level < 1 {
		return fmt.Errorf("word %q: level %d must be at least 1", e.Display, e.Level)
	}
	if !candidates.Fits(romaji.Default(), e.Romanization) {
		return fmt.Errorf("word %q: romanization %q has more than %d spellings",
			e.Display, e.Romanization, candidates.MaxCandidates)
	}
	b.levels[e.Level] = append(b.levels[e.Level], e)
	b.count++
	return nil
}

// SampleRandom returns a uniformly chosen word for level, or false if the
// level has none.
func (b *Bank) SampleRandom(level int, p Picker) (types.WordEntry, bool) {
	words := b.levels[level]
	if len(words) == 0 {
		return types.WordEntry{}, false
	}
	return words[p.Intn(len(words))], true
}

// Prune removes every word with more than candidates.MaxCandidates
// spellings under table and returns the removed words, lowest level first.
func (b *Bank) Prune(table candidates.Table) []types.WordEntry {
	var removed []types.WordEntry
	for _, level := range b.Levels() {
		kept := b.levels[level][:0]
		for _, w := range b.levels[level] {
			if candidates.Fits(table, w.Romanization) {
				kept = append(kept, w)
			} else {
				removed = append(removed, w)
			}
		}
		b.levels[level] = kept
	}
	b.count -= len(removed)
	return removed
}

// Words returns a copy of the words for level in insertion order.
func (b *Bank) Words(level int) []types.WordEntry {
	return append([]types.WordEntry(nil), b.levels[level]...)
}

// Levels returns the levels that have at least one word, ascending.
func (b *Bank) Levels() []int {
	levels := make([]int, 0, len(b.levels))
	for l, words := range b.levels {
		if len(words) > 0 {
			levels = append(levels, l)
		}
	}
	sort.Ints(levels)
	return levels
}

// Len returns the total number of words.
func (b *Bank) Len() int {
	return b.count
}

// All returns every word, by ascending level then insertion order.
func (b *Bank) All() []types.WordEntry {
	out := make([]types.WordEntry, 0, b.count)
	for _, l := range b.Levels() {
		out = append(out, b.levels[l]...)
	}
	return out
}
