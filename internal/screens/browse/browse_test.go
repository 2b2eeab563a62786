package browse

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	sessionscreen "github.com/Sakthirajan135/gct-connect-career-path/internal/screens/session"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/store"
)

// fakeRepo serves canned stats; the browse screen only reads.
type fakeRepo struct {
	stats map[string]catalog.AttemptStats
}

func (f *fakeRepo) Save(context.Context, store.Attempt) error { return nil }
func (f *fakeRepo) Stats(context.Context) (map[string]catalog.AttemptStats, error) {
	return f.stats, nil
}
func (f *fakeRepo) Recent(context.Context, int) ([]store.Attempt, error) { return nil, nil }
func (f *fakeRepo) Overview(context.Context) (store.Overview, error)     { return store.Overview{}, nil }
func (f *fakeRepo) DeleteAll(context.Context) error                      { return nil }

func testCatalog() *catalog.Catalog {
	q := []catalog.Question{
		{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, Correct: 0},
	}
	return catalog.New([]catalog.QuestionSet{
		{ID: "aptitude", Title: "Quantitative Aptitude", Category: catalog.CategoryGeneral, Difficulty: "Medium", DurationSecs: 600, Questions: q},
		{ID: "networks", Title: "Network Protocols", Category: catalog.CategoryIT, Difficulty: "Hard", DurationSecs: 900, Questions: q},
		{ID: "verbal", Title: "Verbal Ability", Category: catalog.CategoryCommunication, Difficulty: "Easy", DurationSecs: 300, Questions: q},
	})
}

func TestInitLoadsRows(t *testing.T) {
	repo := &fakeRepo{stats: map[string]catalog.AttemptStats{
		"aptitude": {Attempts: 2, BestScore: 80},
	}}
	b := New("All Tests", testCatalog(), repo, nil, nil)
	b.Init()

	if len(b.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(b.rows))
	}
	if b.rows[0].BestScore == nil || *b.rows[0].BestScore != 80 {
		t.Errorf("BestScore = %v, want 80", b.rows[0].BestScore)
	}
}

func TestCategoryScope(t *testing.T) {
	b := New("Department", testCatalog(), nil, nil, []string{catalog.CategoryIT})
	b.Init()

	if len(b.rows) != 1 || b.rows[0].ID != "networks" {
		t.Fatalf("rows = %v, want only networks", b.rows)
	}
}

func TestSearchFiltersRows(t *testing.T) {
	b := New("All Tests", testCatalog(), nil, nil, nil)
	b.Init()

	b.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !b.search.Focused() {
		t.Fatal("search not focused after /")
	}

	for _, r := range "verbal" {
		b.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if len(b.rows) != 1 || b.rows[0].ID != "verbal" {
		t.Fatalf("rows = %v, want only verbal", b.rows)
	}

	b.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if b.search.Focused() {
		t.Error("search still focused after esc")
	}
	if len(b.rows) != 3 {
		t.Errorf("rows = %d after clearing search, want 3", len(b.rows))
	}
}

func TestEnterStartsSession(t *testing.T) {
	b := New("All Tests", testCatalog(), nil, nil, nil)
	b.Init()

	b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned nil command")
	}

	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed %T, want *session.SessionScreen", msg.Screen)
	}
}

func TestCursorClamps(t *testing.T) {
	b := New("All Tests", testCatalog(), nil, nil, nil)
	b.Init()

	b.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if b.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", b.cursor)
	}
	for i := 0; i < 10; i++ {
		b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if b.cursor != 2 {
		t.Errorf("cursor = %d after overscroll, want 2", b.cursor)
	}
}
