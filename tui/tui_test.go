package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/hookline/engine"
	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/engine/wordbank"
	"github.com/nathoo/hookline/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"The carp takes 10 damage. (HP 10)", kindHit},
		{"The line slips. (2 left)", kindMiss},
		{"You landed the carp!", kindCatch},
		{"The carp got away.", kindEscape},
		{"[Trace output enabled.]", kindSystem},
		{"[trace] 'n' hit", kindTrace},
		{"Next word: ねこ", kindNarrative},
		{"", kindNarrative},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ねこ", 80, "ねこ"},
		{"cast again", 4, "cast\nagain"},
		{"The carp thrashes against the line as the gulls circle.", 30,
			"The carp thrashes against the\nline as the gulls circle."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
		{"kajiki", 3, "kajiki"},
		{"ねこ いぬ", 6, "ねこ\nいぬ"},
	}
	for _, tt := range tests {
		if got := wordWrap(tt.text, tt.width); got != tt.want {
			t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestBacklog_Bounded(t *testing.T) {
	b := NewBacklog(3)
	for _, s := range []string{"one", "two", "three", "four"} {
		b.Push(rawLine{text: s})
	}
	if b.Len() != 3 {
		t.Fatalf("Len = %d, want 3", b.Len())
	}
	if got := b.Lines()[0].text; got != "two" {
		t.Errorf("oldest = %q, want two", got)
	}
}

func TestBacklog_Separate(t *testing.T) {
	b := NewBacklog(10)
	b.Separate()
	if b.Len() != 0 {
		t.Error("separator on empty backlog")
	}
	b.Push(rawLine{text: "one"})
	b.Separate()
	b.Separate()
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2 (one line + one separator)", b.Len())
	}
}

func TestLineGauge(t *testing.T) {
	tests := []struct {
		countdown, width int
		want             string
	}{
		{3, 10, "~~~"},
		{0, 10, ""},
		{-2, 10, ""},
		{12, 10, "~~~~~~~~~~+"},
	}
	for _, tt := range tests {
		if got := lineGauge(tt.countdown, tt.width); got != tt.want {
			t.Errorf("lineGauge(%d, %d) = %q, want %q", tt.countdown, tt.width, got, tt.want)
		}
	}
}

// testModel returns a sized model with one level-1 carp and the word neko.
func testModel(t *testing.T) Model {
	t.Helper()
	bank := wordbank.New()
	if err := bank.Add(types.WordEntry{Level: 1, Display: "ねこ", Romanization: "neko"}); err != nil {
		t.Fatal(err)
	}
	eng := engine.New(bank, romaji.Default(), engine.WithRNG(engine.NewRNG(1)))
	tally := engine.NewTally()
	eng.Subscribe(tally)
	pond := engine.NewPond([]types.FishDef{
		{ID: "carp", Name: "carp", Level: 1, Health: 20, Countdown: 3, Price: 50, Shadow: 2, Weight: 1},
	})

	m := New(eng, pond, tally, Options{Title: "Harbor", Level: 1})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_TabCastsAndTypingCaptures(t *testing.T) {
	m := testModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.engine.Phase() != types.Presenting {
		t.Fatal("Tab should hook a fish")
	}
	if !strings.Contains(m.renderStatusBar(), "carp Lv1 | HP 20") {
		t.Errorf("status bar = %q", m.renderStatusBar())
	}

	m = press(t, m, typeRunes("n"), typeRunes("e"), typeRunes("ko"))
	if got := m.engine.Target().Health; got != 10 {
		t.Errorf("health = %d, want 10", got)
	}

	m = press(t, m, typeRunes("neco"))
	if m.engine.Phase() != types.Idle {
		t.Fatal("expected capture")
	}
	if m.tally.Captured != 1 || m.tally.Score != 50 {
		t.Errorf("tally = %+v", m.tally)
	}
	if !strings.Contains(m.renderStatusBar(), "Caught 1 | Lost 0 | Score 50") {
		t.Errorf("status bar = %q", m.renderStatusBar())
	}
}

func TestUpdate_MissesLoseTheFish(t *testing.T) {
	m := testModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, typeRunes("x"))
	if !m.lastMiss {
		t.Error("expected miss marker")
	}
	m = press(t, m, typeRunes("xx"))
	if m.engine.Phase() != types.Idle || m.tally.Escaped != 1 {
		t.Errorf("expected escape, tally = %+v", m.tally)
	}
	if m.lastMiss {
		t.Error("miss marker should clear when the encounter ends")
	}
}

func TestUpdate_EscCutsLine(t *testing.T) {
	m := testModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.engine.Phase() != types.Idle {
		t.Error("Esc should reset the encounter")
	}
	if m.tally.Captured+m.tally.Escaped != 0 {
		t.Error("reset must not raise events")
	}
}

func TestUpdate_IdleTypingGoesToInput(t *testing.T) {
	m := testModel(t)
	m = press(t, m, typeRunes("/state"))
	if m.input.Value() != "/state" {
		t.Errorf("input = %q", m.input.Value())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.input.Value() != "" {
		t.Error("input should clear on enter")
	}
	last := m.backlog.Lines()
	found := false
	for _, l := range last {
		if l.text == "Phase: idle" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected state output in backlog")
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView_PromptLine(t *testing.T) {
	m := testModel(t)
	if !strings.Contains(m.View(), "Tab to cast") {
		t.Error("expected idle hint")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, typeRunes("ne"))
	view := m.View()
	if !strings.Contains(view, "ねこ") || !strings.Contains(view, "ko") {
		t.Errorf("view missing prompt:\n%s", view)
	}
}

func TestHandleMeta(t *testing.T) {
	tests := []struct {
		input    string
		wantQuit bool
		want     []string
	}{
		{"/quit", true, []string{"Goodbye."}},
		{"/exit", true, []string{"Goodbye."}},
		{"/help", false, []string{"Tab", "/cast", "/lint", "/quit", "Esc"}},
		{"/cast 4", false, []string{"No fish swim at level 4."}},
		{"/cast x", false, []string{`Bad level "x".`}},
		{"/cast", false, []string{"(~~) Something bites! A carp (level 1, HP 20)."}},
		{"/variants", false, []string{"Variant table is unavailable."}},
		{"/bogus", false, []string{"Unknown command: /bogus."}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := testModel(t)
			output, quit := m.handleMeta(tt.input)
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
			joined := strings.Join(output, "\n")
			for _, w := range tt.want {
				if !strings.Contains(joined, w) {
					t.Errorf("missing %q in:\n%s", w, joined)
				}
			}
		})
	}
}

func TestHandleMeta_TraceToggles(t *testing.T) {
	m := testModel(t)
	for _, want := range []string{"Trace output enabled.", "Trace output disabled."} {
		output, _ := m.handleMeta("/trace")
		if len(output) != 1 || output[0] != want {
			t.Errorf("output = %v, want %q", output, want)
		}
	}
	if m.trace {
		t.Error("two toggles should leave trace off")
	}
}

func TestHandleMeta_LintUnavailable(t *testing.T) {
	m := testModel(t)
	output, _ := m.handleMeta("/lint")
	if len(output) != 1 || output[0] != "Lint is unavailable." {
		t.Errorf("output = %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := testModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	output, _ := m.handleMeta("/state")
	joined := strings.Join(output, "\n")
	for _, want := range []string{"Phase: presenting", "Fish: carp (level 1) HP 20", "Word: ねこ (neko)", "Level 1 words: 1", "Backlog: "} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in state output:\n%s", want, joined)
		}
	}
}

func TestHandleMeta_Variants(t *testing.T) {
	m := testModel(t)
	m.variants = romaji.Default()

	output, _ := m.handleMeta("/variants tsu")
	if len(output) != 1 || output[0] != "tsu: tsu tu" {
		t.Errorf("output = %v", output)
	}
	output, _ = m.handleMeta("/variants qqq")
	if len(output) != 1 || output[0] != `No keys start with "qqq".` {
		t.Errorf("output = %v", output)
	}
}
