// Package home is the application's landing screen.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screen"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screens/browse"
	historyscreen "github.com/Sakthirajan135/gct-connect-career-path/internal/screens/history"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/components"
)

// Category slices behind each menu entry.
var (
	mockCategories = []string{
		catalog.CategoryGeneral,
		catalog.CategoryCommunication,
	}
	departmentCategories = []string{
		catalog.CategoryCSE,
		catalog.CategoryIT,
		catalog.CategoryMechanical,
		catalog.CategoryElectronics,
	}
	interviewCategories = []string{catalog.CategoryInterview}
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu     components.Menu
	overview store.Overview
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the catalog and attempt history.
func New(cat *catalog.Catalog, repo store.AttemptRepo, sink exam.ResultSink) *HomeScreen {
	open := func(title string, categories []string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: browse.New(title, cat, repo, sink, categories),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "MOCK TESTS", Description: "aptitude and communication", Action: open("Mock Tests", mockCategories)},
		{Label: "DEPARTMENT TESTS", Description: "branch-specific technical sets", Action: open("Department Tests", departmentCategories)},
		{Label: "INTERVIEW PREP", Description: "HR and interview basics", Action: open("Interview Prep", interviewCategories)},
		{Label: "HISTORY", Description: "past attempts", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(repo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{menu: components.NewMenu(items)}
	h.loadOverview(repo)
	return h
}

func (h *HomeScreen) loadOverview(repo store.AttemptRepo) {
	if repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if o, err := repo.Overview(ctx); err == nil {
		h.overview = o
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Placement Preparation"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(renderBanner(width))
	b.WriteString("\n\n")

	if h.overview.Attempts > 0 {
		stats := fmt.Sprintf("%d attempts · %d tests completed · average %d%%",
			h.overview.Attempts, h.overview.SetsCompleted, h.overview.AverageScore)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(statsStyle.Render(stats)))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}
