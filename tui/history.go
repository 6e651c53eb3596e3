// Package tui provides a Bubble Tea terminal UI for the Hookline engine.
package tui

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isSystem bool // true for meta-command output
}

// Backlog keeps the most recent output lines, dropping the oldest once
// full.
type Backlog struct {
	lines []rawLine
	max   int
}

// NewBacklog creates a backlog holding at most max lines.
func NewBacklog(max int) *Backlog {
	return &Backlog{
		lines: make([]rawLine, 0, max),
		max:   max,
	}
}

// Push appends a line, evicting the oldest when over capacity.
func (b *Backlog) Push(l rawLine) {
	b.lines = append(b.lines, l)
	if len(b.lines) > b.max {
		b.lines = b.lines[len(b.lines)-b.max:]
	}
}

// Separate appends a blank line unless the backlog is empty or already
// ends with one.
func (b *Backlog) Separate() {
	if n := len(b.lines); n > 0 && b.lines[n-1].text != "" {
		b.Push(rawLine{})
	}
}

// Lines returns the held lines, oldest first.
func (b *Backlog) Lines() []rawLine {
	return b.lines
}

// Len returns the number of held lines.
func (b *Backlog) Len() int {
	return len(b.lines)
}
