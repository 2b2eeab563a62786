// Package history shows past attempts, newest first.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/report"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screen"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/layout"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

const maxRows = 50

// HistoryScreen lists recent attempts with their scores.
type HistoryScreen struct {
	repo     store.AttemptRepo
	attempts []store.Attempt
	loadErr  error
	offset   int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen backed by repo.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (h *HistoryScreen) Init() tea.Cmd {
	if h.repo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	h.attempts, h.loadErr = h.repo.Recent(ctx, maxRows)
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.offset > 0 {
			h.offset--
		}
	case "down", "j":
		if h.offset < len(h.attempts)-1 {
			h.offset++
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.loadErr != nil {
		return "  " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not load history: "+h.loadErr.Error())
	}
	if len(h.attempts) == 0 {
		return "  " + theme.Hint.Render("No attempts yet. Finish a test and it will show up here.")
	}

	var b strings.Builder

	visible := layout.ContentHeight(height) / 2
	if visible < 1 {
		visible = len(h.attempts)
	}

	end := h.offset + visible
	if end > len(h.attempts) {
		end = len(h.attempts)
	}

	for _, a := range h.attempts[h.offset:end] {
		date := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(a.CreatedAt.Local().Format("Jan 02 15:04"))
		score := lipgloss.NewStyle().
			Foreground(scoreColor(a.Score)).
			Bold(true).
			Render(fmt.Sprintf("%3d%%", a.Score))

		b.WriteString(fmt.Sprintf("  %s  %s  %s\n", date, score,
			theme.Body.Render(a.SetTitle)))
		b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s correct · %s", report.Fraction(a.Correct, a.Total),
				report.Clock(a.TimeTakenSecs))))
		b.WriteString("\n")
	}

	if end < len(h.attempts) {
		b.WriteString("\n  " + theme.Hint.Render(fmt.Sprintf("… %d more", len(h.attempts)-end)))
	}
	return b.String()
}

func scoreColor(score int) color.Color {
	switch report.BandFor(score) {
	case report.BandExcellent:
		return theme.Success
	case report.BandGood:
		return theme.Accent
	default:
		return theme.Error
	}
}
