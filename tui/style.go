package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette for the pond screen.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("254")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("37"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("153"))

	styleWord = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true)

	styleTyped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleRemaining = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Underline(true)

	styleHit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleMiss = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleCatch = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleEscape = lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")).
			Italic(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("239")).
			Faint(true)
)

// lineKind says how a backlog line is coloured.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHit
	kindMiss
	kindCatch
	kindEscape
	kindSystem
	kindTrace
)

// classifyLine recognises engine narration by its fixed wording.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You landed"):
		return kindCatch
	case strings.HasSuffix(line, "got away."):
		return kindEscape
	case strings.HasPrefix(line, "The line slips"):
		return kindMiss
	case strings.Contains(line, " damage. (HP "):
		return kindHit
	default:
		return kindNarrative
	}
}

var kindStyles = map[lineKind]lipgloss.Style{
	kindNarrative: styleNarrative,
	kindHit:       styleHit,
	kindMiss:      styleMiss,
	kindCatch:     styleCatch,
	kindEscape:    styleEscape,
	kindSystem:    styleSystem,
	kindTrace:     styleTrace,
}

func renderLineKind(line string, kind lineKind) string {
	if st, ok := kindStyles[kind]; ok {
		return st.Render(line)
	}
	return line
}

// styledSystemMsg brackets command output.
func styledSystemMsg(text string) string {
	return renderLineKind("["+text+"]", kindSystem)
}

// styledPrompt renders the word with the typed part and the rest of the
// lead spelling.
func styledPrompt(display, typed, remaining string) string {
	return styleWord.Render(display) + "  " +
		styleTyped.Render(typed) + styleRemaining.Render(remaining)
}
