package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/hookline/engine"
	"github.com/nathoo/hookline/engine/reading"
	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/types"
)

// Options carries the optional pieces of a session.
type Options struct {
	Title    string
	Intro    string
	Linter   *reading.Linter // nil disables /lint
	Variants *romaji.Table   // nil disables /variants
	Level    int             // level used by Tab and a bare /cast; 0 casts at any level
}

// Model is the Bubble Tea model for the Hookline TUI. While a fish is on
// the line every keystroke goes to the engine; while idle the input line
// takes meta-commands.
type Model struct {
	engine *engine.Engine
	pond   *engine.Pond
	tally  *engine.Tally
	linter   *reading.Linter
	variants *romaji.Table

	viewport viewport.Model
	input    textinput.Model
	backlog  *Backlog

	title    string
	intro    string
	level    int
	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastMiss bool
}

// outputMsg carries output into the Update loop.
type outputMsg struct {
	lines    []string
	isSystem bool // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, pond *engine.Pond, tally *engine.Tally, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	title := opts.Title
	if title == "" {
		title = "Hookline"
	}
	return Model{
		engine:   eng,
		pond:     pond,
		tally:    tally,
		linter:   opts.Linter,
		variants: opts.Variants,
		input:    ti,
		backlog:  NewBacklog(500),
		title:    title,
		intro:    opts.Intro,
		level:    opts.Level,
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, pond *engine.Pond, tally *engine.Tally, opts Options) error {
	m := New(eng, pond, tally, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the intro text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []string{m.title, ""}
		if m.intro != "" {
			lines = append(lines, m.intro, "")
		}
		lines = append(lines, "[Press Tab to cast. Type /help for commands.]")
		return outputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

		if m.engine.Phase() == types.Presenting {
			return m.handleTyping(msg)
		}

		switch msg.String() {
		case "tab":
			m = m.appendOutput(outputMsg{lines: m.cast(m.level), isSystem: true})
			return m, nil
		case "enter":
			return m.handleEnter()
		}

	case outputMsg:
		m = m.appendOutput(msg)
		return m, nil
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleTyping routes a key to the engine while a fish is on the line.
func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var runes []rune
	switch msg.Type {
	case tea.KeyEsc:
		m.engine.Reset()
		m.lastMiss = false
		m = m.appendOutput(outputMsg{lines: []string{"You cut the line."}, isSystem: true})
		return m, nil
	case tea.KeySpace:
		runes = []rune{' '}
	case tea.KeyRunes:
		runes = msg.Runes
	default:
		return m, nil
	}

	var lines []string
	for _, r := range runes {
		result := m.engine.Input(r)
		if result.Outcome == types.Ignored {
			break
		}
		m.lastMiss = result.Outcome == types.Miss
		if m.trace {
			lines = append(lines, m.formatTrace(r, result)...)
		}
		lines = append(lines, result.Output...)
		if result.Word != nil {
			lines = append(lines, "Next word: "+result.Word.Display)
		}
		if len(result.Events) > 0 {
			m.lastMiss = false
		}
	}
	if len(lines) > 0 {
		m = m.appendOutput(outputMsg{lines: lines})
	}
	return m, nil
}

// handleEnter processes the submitted command line while idle.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	if !strings.HasPrefix(input, "/") {
		m = m.appendOutput(outputMsg{
			lines: []string{"Nothing on the line. Press Tab to cast."}, isSystem: true,
		})
		return m, nil
	}

	output, quit := m.handleMeta(input)
	m = m.appendOutput(outputMsg{lines: output, isSystem: true})
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds lines to the backlog and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.backlog.Push(rl)
	}
	m.backlog.Separate()

	m.refreshViewport()

	return m
}

// chromeHeight is the rows below the viewport: prompt, status bar, input.
const chromeHeight = 3

// resize fits the viewport to the terminal, creating it on first use.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-chromeHeight, 1)

	if m.ready {
		m.viewport.Width, m.viewport.Height = width, vpHeight
	} else {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	}
	m.refreshViewport()
}

// refreshViewport re-renders the backlog at the current width and scrolls
// to the newest line.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderBacklog(m.backlog.Lines(), max(m.width, 10)))
	m.viewport.GotoBottom()
}

// renderBacklog wraps and styles every line for the given width.
func renderBacklog(lines []rawLine, width int) string {
	styled := make([]string, len(lines))
	for i, rl := range lines {
		switch {
		case rl.text == "":
		case rl.isSystem:
			styled[i] = styledSystemMsg(wordWrap(rl.text, width))
		default:
			styled[i] = renderLineKind(wordWrap(rl.text, width), rl.kind)
		}
	}
	return strings.Join(styled, "\n")
}

// wordWrap breaks text at spaces so no line is wider than width display
// columns. A single over-wide word keeps its own line.
func wordWrap(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case lipgloss.Width(cur)+1+lipgloss.Width(word) > width:
			lines = append(lines, cur)
			cur = word
		default:
			cur += " " + word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}

// View stacks the backlog, the word prompt, the status bar, and either the
// command line or the keys typed so far.
func (m Model) View() string {
	switch {
	case m.quitting:
		return ""
	case !m.ready:
		return "Loading..."
	}

	bottom := m.input.View()
	if m.engine.Phase() == types.Presenting {
		bottom = styleInputPrompt.Render("> ") + styleTyped.Render(m.engine.View().Typed)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(), m.renderPromptLine(), m.renderStatusBar(), bottom)
}

// handleMeta runs one slash command and reports whether the session ends.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/cast":
		level := m.level
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return []string{fmt.Sprintf("Bad level %q.", arg)}, false
			}
			level = n
		}
		return m.cast(level), false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	case "/lint":
		return m.cmdLint(), false

	case "/variants":
		return m.cmdVariants(arg), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

// cast picks a fish and hooks it.
func (m *Model) cast(level int) []string {
	target, ok := m.pond.Cast(m.engine.RNG, level)
	if !ok {
		return []string{fmt.Sprintf("No fish swim at level %d.", level)}
	}
	if !m.engine.Hook(target) {
		return []string{fmt.Sprintf("The %s slipped the hook: no words for level %d.", target.Name, target.Level)}
	}
	m.lastMiss = false
	return []string{fmt.Sprintf("%s Something bites! A %s (level %d, HP %d).",
		engine.Ripple(target.Shadow), target.Name, target.Level, target.Health)}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"While idle:",
		"  Tab           - Cast at the default level",
		"  /cast [level] - Cast at a level (0 for any)",
		"  /state        - Debug: dump session state",
		"  /trace        - Toggle per-keystroke trace output",
		"  /lint         - Check word romanizations against their readings",
		"  /variants [k] - List accepted spellings for keys starting with k",
		"  /help         - Show this help",
		"  /quit         - Exit",
		"",
		"While a fish is on the line:",
		"  type the romaji of the word shown; Esc cuts the line",
		"",
		"Navigation: PgUp/PgDn to scroll, Ctrl+C to quit",
	}
}

func (m *Model) cmdState() []string {
	v := m.engine.View()
	output := []string{fmt.Sprintf("Phase: %s", v.Phase)}
	if v.Phase == types.Presenting {
		output = append(output,
			fmt.Sprintf("Fish: %s (level %d) HP %d, countdown %d",
				v.Target.Name, v.Target.Level, v.Target.Health, v.Target.Countdown),
			fmt.Sprintf("Word: %s (%s), %d live", v.Display, v.Romanization, v.Live),
			fmt.Sprintf("Level %d words: %d", v.Target.Level, len(m.engine.Bank.Words(v.Target.Level))),
		)
	}
	output = append(output, fmt.Sprintf("Backlog: %d lines", m.backlog.Len()))
	if m.tally != nil {
		output = append(output, fmt.Sprintf("Caught: %d, escaped: %d, score: %d",
			m.tally.Captured, m.tally.Escaped, m.tally.Score))
	}
	return output
}

func (m *Model) cmdLint() []string {
	if m.linter == nil {
		return []string{"Lint is unavailable."}
	}
	words := m.engine.Bank.All()
	issues := m.linter.Lint(words)
	output := make([]string, 0, len(issues)+1)
	for _, is := range issues {
		output = append(output, is.String())
	}
	return append(output, fmt.Sprintf("%d issue(s) in %d word(s).", len(issues), len(words)))
}

func (m *Model) cmdVariants(prefix string) []string {
	if m.variants == nil {
		return []string{"Variant table is unavailable."}
	}
	if lines := romaji.Describe(m.variants, prefix); len(lines) > 0 {
		return lines
	}
	return []string{fmt.Sprintf("No keys start with %q.", prefix)}
}

func (m *Model) formatTrace(r rune, result types.Result) []string {
	lines := []string{fmt.Sprintf("[trace] %q %s", r, result.Outcome)}
	for _, e := range result.Effects {
		lines = append(lines, fmt.Sprintf("[trace]   %s %d", e.Type, e.Amount))
	}
	for _, e := range result.Events {
		lines = append(lines, fmt.Sprintf("[trace]   event %s", e.Type))
	}
	return lines
}

// viewportKeyMap keeps paging on the default viewport keys and disables
// line scrolling, so letters always reach the engine.
func viewportKeyMap() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.PageDown.SetKeys("pgdown")
	km.PageUp.SetKeys("pgup")
	km.HalfPageDown.SetKeys("ctrl+d")
	km.HalfPageUp.SetKeys("ctrl+u")
	for _, b := range []*key.Binding{&km.Up, &km.Down} {
		b.SetEnabled(false)
	}
	return km
}
