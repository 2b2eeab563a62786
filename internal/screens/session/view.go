package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/report"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/components"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Error: " + s.errMsg)
	}
	if snap.State == exam.StateIdle || snap.QuestionCount == 0 {
		return ""
	}

	var b strings.Builder

	// Clock and progress row.
	clock := theme.TimerStyle(snap.Remaining).Render("⏱ " + report.Clock(snap.Remaining))
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", snap.Current+1, snap.QuestionCount))
	answered := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered: %d/%d", snap.Answered, snap.QuestionCount))

	row := "  " + clock + "    " + counter + "    " + answered
	b.WriteString(row)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(snap.Answered)/float64(snap.QuestionCount), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Question card.
	q := s.set.Questions[snap.Current]
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 8).
		Render(q.Prompt)
	b.WriteString(theme.Card.Width(width - 4).Render(prompt + "\n\n" + s.options.View()))
	b.WriteString("\n")

	if s.confirmSubmit {
		b.WriteString("\n")
		b.WriteString(confirmLine(width,
			fmt.Sprintf("Submit the test with %d of %d answered? (y/n)", snap.Answered, snap.QuestionCount)))
	}
	if s.confirmExit {
		b.WriteString("\n")
		b.WriteString(confirmLine(width, "Leave the test? Progress will be discarded. (y/n)"))
	}

	return b.String()
}

func confirmLine(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(text))
}
