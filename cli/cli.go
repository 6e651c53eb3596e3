// Package cli provides line-oriented terminal I/O and meta-command dispatch
// for the Hookline engine. Each non-command line is typed into the engine
// one rune at a time.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/hookline/engine"
	"github.com/nathoo/hookline/engine/reading"
	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/types"
)

// CLI plays a session over line-oriented text streams.
type CLI struct {
	Engine    *engine.Engine
	Pond      *engine.Pond
	Tally     *engine.Tally
	Linter    *reading.Linter // nil disables /lint
	Variants  *romaji.Table   // nil disables /variants
	Intro     string
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	Level     int  // level used by a bare /cast; 0 casts at any level
}

// New creates a CLI wired to the given engine, pond and tally.
func New(eng *engine.Engine, pond *engine.Pond, tally *engine.Tally) *CLI {
	return &CLI{
		Engine: eng,
		Pond:   pond,
		Tally:  tally,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run reads lines until /quit or end of input. Lines starting with '/' are
// commands, '#' lines are script comments, and anything else is typed.
func (c *CLI) Run() {
	if c.Intro != "" {
		c.printLine(c.Intro)
		c.printLine("")
	}
	c.printSystem("Type /cast to drop a line, /help for commands.")

	lines := bufio.NewScanner(c.In)
	for c.printPrompt(); lines.Scan(); c.printPrompt() {
		line := strings.TrimSpace(lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if c.EchoInput {
			c.printLine(line)
		}
		if line[0] != '/' {
			c.typeLine(line)
			continue
		}
		if c.handleMeta(line) {
			return
		}
	}
	if err := lines.Err(); err != nil {
		c.printSystem(fmt.Sprintf("Input error: %v", err))
	}
	c.printSummary()
}

// typeLine feeds input to the engine rune by rune. Keystrokes left over
// after the encounter ends are dropped.
func (c *CLI) typeLine(input string) {
	if c.Engine.Phase() == types.Idle {
		c.printSystem("Nothing on the line. Type /cast first.")
		return
	}
	for _, r := range input {
		result := c.Engine.Input(r)
		if result.Outcome == types.Ignored {
			return
		}
		if c.Trace {
			c.printTrace(r, result)
		}
		c.printResult(result)
	}
}

// handleMeta runs one slash command and reports whether the session ends.
func (c *CLI) handleMeta(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/quit", "/exit":
		c.printSummary()
		c.printSystem("Goodbye.")
		return true
	case "/cast":
		c.cmdCast(arg)
	case "/reset":
		c.cmdReset()
	case "/help":
		c.cmdHelp()
	case "/state":
		c.cmdState()
	case "/trace":
		c.Trace = !c.Trace
		c.printSystem("Trace output " + onOff(c.Trace) + ".")
	case "/lint":
		c.cmdLint()
	case "/variants":
		c.cmdVariants(arg)
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name))
	}
	return false
}

func onOff(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func (c *CLI) cmdReset() {
	if c.Engine.Phase() == types.Idle {
		c.printSystem("Nothing to cut loose.")
		return
	}
	c.Engine.Reset()
	c.printSystem("You cut the line.")
}

func (c *CLI) cmdCast(arg string) {
	if c.Engine.Phase() == types.Presenting {
		c.printSystem("A fish is already on the line.")
		return
	}

	level := c.Level
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			c.printSystem(fmt.Sprintf("Bad level %q.", arg))
			return
		}
		level = n
	}

	target, ok := c.Pond.Cast(c.Engine.RNG, level)
	if !ok {
		c.printSystem(fmt.Sprintf("No fish swim at level %d.", level))
		return
	}
	if !c.Engine.Hook(target) {
		c.printSystem(fmt.Sprintf("The %s slipped the hook: no words for level %d.", target.Name, target.Level))
		return
	}
	c.printLine(fmt.Sprintf("%s Something bites! A %s (level %d, HP %d, %d slips to escape).",
		engine.Ripple(target.Shadow), target.Name, target.Level, target.Health, target.Countdown))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /cast [level] - Drop a line (default level: any)",
		"  /reset        - Cut the line and end the encounter",
		"  /state        - Debug: dump current encounter",
		"  /trace        - Toggle per-keystroke trace output",
		"  /lint         - Check word romanizations against their readings",
		"  /variants [k] - List accepted spellings for keys starting with k",
		"  /help         - Show this help",
		"  /quit         - Exit",
		"",
		"While a fish is on the line, type the romaji of the word shown.",
		"Any common spelling works: shi or si, tsu or tu, kk or xtuk.",
	}
	c.printLine(strings.Join(help, "\n"))
}

func (c *CLI) cmdState() {
	v := c.Engine.View()
	c.printSystem(fmt.Sprintf("Phase: %s", v.Phase))
	if v.Phase == types.Presenting {
		enc := c.Engine.Encounter()
		c.printSystem(fmt.Sprintf("Encounter: %s", enc.ID))
		c.printSystem(fmt.Sprintf("Fish: %s (level %d) HP %d, countdown %d",
			v.Target.Name, v.Target.Level, v.Target.Health, v.Target.Countdown))
		c.printSystem(fmt.Sprintf("Word: %s (%s), typed %q, remaining %q",
			v.Display, v.Romanization, v.Typed, v.Remaining))
		c.printSystem(fmt.Sprintf("Candidates: %d live of %d", v.Live, len(enc.Candidates)))
		c.printSystem("Cursors: " + cursorList(enc.Matcher.Live(), enc.Matcher.Cursors()))
		c.printSystem(fmt.Sprintf("Words: %d (%d at level %d), misses: %d",
			enc.Words, len(c.Engine.Bank.Words(v.Target.Level)), v.Target.Level, enc.Misses))
	}
	rng := c.Engine.RNG
	c.printSystem(fmt.Sprintf("RNG: seed %d, %d draws", rng.Seed(), rng.Draws()))
	if c.Tally != nil {
		c.printSystem(fmt.Sprintf("Caught: %d, escaped: %d, score: %d",
			c.Tally.Captured, c.Tally.Escaped, c.Tally.Score))
	}
}

func (c *CLI) cmdLint() {
	if c.Linter == nil {
		c.printSystem("Lint is unavailable.")
		return
	}
	words := c.Engine.Bank.All()
	issues := c.Linter.Lint(words)
	for _, is := range issues {
		c.printSystem(is.String())
	}
	c.printSystem(fmt.Sprintf("%d issue(s) in %d word(s).", len(issues), len(words)))
}

func (c *CLI) cmdVariants(prefix string) {
	if c.Variants == nil {
		c.printSystem("Variant table is unavailable.")
		return
	}
	lines := romaji.Describe(c.Variants, prefix)
	if len(lines) == 0 {
		c.printSystem(fmt.Sprintf("No keys start with %q.", prefix))
		return
	}
	c.printLine(strings.Join(lines, "\n"))
}

// maxCursorList bounds the /state cursor dump.
const maxCursorList = 8

// cursorList renders live candidates as spelling@cursor.
func cursorList(live []string, cursors []int) string {
	parts := make([]string, 0, min(len(live), maxCursorList)+1)
	for i, cand := range live {
		if i == maxCursorList {
			parts = append(parts, fmt.Sprintf("(+%d more)", len(live)-i))
			break
		}
		parts = append(parts, fmt.Sprintf("%s@%d", cand, cursors[i]))
	}
	return strings.Join(parts, " ")
}

func (c *CLI) printSummary() {
	if c.Tally == nil || c.Tally.Captured+c.Tally.Escaped == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("Caught %d, lost %d, score %d.",
		c.Tally.Captured, c.Tally.Escaped, c.Tally.Score))

	names := make([]string, 0, len(c.Tally.Catches))
	for name := range c.Tally.Catches {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.printSystem(fmt.Sprintf("  %s x%d", name, c.Tally.Catches[name]))
	}
}

func (c *CLI) printTrace(r rune, result types.Result) {
	v := c.Engine.View()
	c.printSystem(fmt.Sprintf("[trace] %q %s live=%d typed=%q", r, result.Outcome, v.Live, v.Typed))
	for _, e := range result.Effects {
		c.printSystem(fmt.Sprintf("[trace]   %s %d", e.Type, e.Amount))
	}
	for _, e := range result.Events {
		c.printSystem(fmt.Sprintf("[trace]   event %s %s", e.Type, e.EncounterID))
	}
}

func (c *CLI) printResult(result types.Result) {
	if len(result.Output) > 0 {
		c.printLine(strings.Join(result.Output, "\n"))
	}
	if result.Word != nil {
		c.printLine(fmt.Sprintf("Next word: %s", result.Word.Display))
	}
}

// printPrompt shows the current word before the input marker.
func (c *CLI) printPrompt() {
	v := c.Engine.View()
	if v.Phase == types.Presenting {
		c.printLine(fmt.Sprintf("%s  %s|%s  (%s HP %d, %d left)",
			v.Display, v.Typed, v.Remaining, v.Target.Name, v.Target.Health, v.Target.Countdown))
	}
	c.print("> ")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
