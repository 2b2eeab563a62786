// Package browse lists question sets and launches sessions.
package browse

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
	sessionscreen "github.com/Sakthirajan135/gct-connect-career-path/internal/screens/session"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/components"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/layout"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

// BrowseScreen shows one slice of the catalog (e.g. department tests) with
// per-set attempt stats, a text filter and launch-on-enter.
type BrowseScreen struct {
	title      string
	cat        *catalog.Catalog
	repo       store.AttemptRepo
	sink       exam.ResultSink
	categories []string

	search  components.SearchInput
	rows    []catalog.Summary
	cursor  int
	loadErr error
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a browse screen over the given category slice. An empty
// categories list shows the whole catalog.
func New(title string, cat *catalog.Catalog, repo store.AttemptRepo, sink exam.ResultSink, categories []string) *BrowseScreen {
	return &BrowseScreen{
		title:      title,
		cat:        cat,
		repo:       repo,
		sink:       sink,
		categories: categories,
		search:     components.NewSearchInput("type to filter"),
	}
}

// Init loads attempt stats and builds the visible rows. The router re-runs
// it whenever this screen is exposed again, so a just-finished attempt shows
// up immediately.
func (b *BrowseScreen) Init() tea.Cmd {
	b.reload()
	return nil
}

func (b *BrowseScreen) Title() string {
	return b.title
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start test"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if b.search.Focused() {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				b.search.Blur()
				b.reload()
				return b, nil
			case "esc":
				b.search.Blur()
				b.search.Clear()
				b.reload()
				return b, nil
			}
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.reload()
		return b, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.rows)-1 {
			b.cursor++
		}
	case "/":
		return b, b.search.Focus()
	case "enter":
		return b, b.startSelected()
	}

	return b, nil
}

func (b *BrowseScreen) startSelected() tea.Cmd {
	if b.cursor < 0 || b.cursor >= len(b.rows) {
		return nil
	}
	set := b.cat.Get(b.rows[b.cursor].ID)
	if set == nil {
		return nil
	}
	sink := b.sink
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(set, sink)}
	}
}

// reload re-queries attempt stats and applies the current filter.
func (b *BrowseScreen) reload() {
	var stats map[string]catalog.AttemptStats
	if b.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		var err error
		stats, err = b.repo.Stats(ctx)
		b.loadErr = err
	}

	b.rows = b.cat.List(catalog.Filter{
		Categories: b.categories,
		Query:      b.search.Value(),
	}, stats)

	if b.cursor >= len(b.rows) {
		b.cursor = len(b.rows) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *BrowseScreen) View(width, height int) string {
	var sb strings.Builder

	sb.WriteString("  " + b.search.View())
	sb.WriteString("\n")
	sb.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(b.statsLine()))
	sb.WriteString("\n\n")

	if b.loadErr != nil {
		sb.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("History unavailable: "+b.loadErr.Error()))
		sb.WriteString("\n\n")
	}

	if len(b.rows) == 0 {
		sb.WriteString("  " + theme.Hint.Render("No tests match."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, row := range b.rows {
		sb.WriteString(b.renderRow(row, i == b.cursor, width))
		sb.WriteString("\n")
	}
	return sb.String()
}

// statsLine summarizes this slice: how many sets were attempted and the
// average best score across them.
func (b *BrowseScreen) statsLine() string {
	attempted := 0
	bestSum := 0
	for _, row := range b.rows {
		if row.Attempts > 0 {
			attempted++
			if row.BestScore != nil {
				bestSum += *row.BestScore
			}
		}
	}
	line := fmt.Sprintf("%d tests · %d attempted", len(b.rows), attempted)
	if attempted > 0 {
		line += fmt.Sprintf(" · avg best %d%%", bestSum/attempted)
	}
	return line
}

func (b *BrowseScreen) renderRow(row catalog.Summary, selected bool, width int) string {
	badge := ""
	if row.BestScore != nil {
		badge = theme.BadgeBest.Render(fmt.Sprintf("  ★ %d%%", *row.BestScore))
	}

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %d questions · %d min", row.Difficulty, row.QuestionCount, row.DurationSecs/60))

	if selected {
		return theme.Selected.Render("  ▸ "+row.Title) + badge + "\n      " + meta
	}
	return theme.Unselected.Render("    "+row.Title) + badge + "\n      " + meta
}
