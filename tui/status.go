package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/hookline/types"
)

// lineGauge draws the countdown as a row of marks, capped at width.
func lineGauge(countdown, width int) string {
	if countdown < 0 {
		countdown = 0
	}
	if countdown > width {
		return strings.Repeat("~", width) + "+"
	}
	return strings.Repeat("~", countdown)
}

// renderStatusBar produces a full-width inverted status line showing the
// hooked fish, its health and countdown, and the session tally.
func (m Model) renderStatusBar() string {
	v := m.engine.View()

	left := " " + m.title
	if v.Phase == types.Presenting {
		t := v.Target
		left = fmt.Sprintf(" %s Lv%d | HP %d | Line %s %d",
			t.Name, t.Level, t.Health, lineGauge(t.Countdown, 10), t.Countdown)
	}

	right := " "
	if m.tally != nil {
		right = fmt.Sprintf("Caught %d | Lost %d | Score %d ",
			m.tally.Captured, m.tally.Escaped, m.tally.Score)
		if lipgloss.Width(left)+lipgloss.Width(right)+2 >= m.width {
			right = fmt.Sprintf("%d/%d ", m.tally.Captured, m.tally.Escaped)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// renderPromptLine shows the word being typed, or a hint while idle.
func (m Model) renderPromptLine() string {
	v := m.engine.View()
	if v.Phase != types.Presenting {
		return styleSystem.Render("Tab to cast, or enter a /command.")
	}
	line := styledPrompt(v.Display, v.Typed, v.Remaining)
	if m.lastMiss {
		line += "  " + styleMiss.Render("×")
	}
	return line
}
