// Package results shows the outcome of a finished test.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/report"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screen"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/layout"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

// ResultsScreen displays the scorecard for one attempt. It sits on top of
// the session screen; leaving pops both so the catalog shows up with fresh
// stats, and retaking swaps in a brand-new session screen.
type ResultsScreen struct {
	card   report.Card
	retake func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. retake builds a fresh session over the same
// set; nil disables the retake key.
func New(card report.Card, retake func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{card: card, retake: retake}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Back to tests"},
	}
	if r.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreensMsg{N: 2} }
	case "r", "R":
		if r.retake == nil {
			return r, nil
		}
		fresh := r.retake()
		return r, func() tea.Msg { return router.PopScreensMsg{N: 2, Then: fresh} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	c := r.card

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(c.SetTitle))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(scoreColor(c.Band)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", c.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(scoreColor(c.Band)).Render(c.Band.String())))
	b.WriteString("\n\n")

	stats := "Correct: " + c.Correct + "        Accuracy: " + c.Accuracy + "        Time: " + c.TimeTaken
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))
	b.WriteString("\n")

	return b.String()
}

// scoreColor maps the rating band onto the traffic-light palette.
func scoreColor(band report.Band) color.Color {
	switch band {
	case report.BandExcellent:
		return theme.Success
	case report.BandGood:
		return theme.Accent
	default:
		return theme.Error
	}
}
