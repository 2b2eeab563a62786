package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const validSetJSON = `{
  "id": "go-basics",
  "title": "Go Basics",
  "category": "cse",
  "difficulty": "Easy",
  "duration_secs": 300,
  "questions": [
    {"id": "g1", "prompt": "Zero value of int?", "options": ["0", "nil"], "correct": 0}
  ]
}`

func TestLoadBuiltin(t *testing.T) {
	c, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("built-in bank is empty")
	}

	ids := make([]string, 0, c.Len())
	for _, s := range c.List(Filter{}, nil) {
		ids = append(ids, s.ID)
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("built-in sets not sorted by id: %v", ids)
	}
}

func TestLoadMissingDir(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load() error for missing dir: %v", err)
	}

	builtin, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	if c.Len() != builtin.Len() {
		t.Errorf("Len() = %d, want %d", c.Len(), builtin.Len())
	}
}

func TestLoadMergesUserDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go-basics.json"), []byte(validSetJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	set := c.Get("go-basics")
	if set == nil {
		t.Fatal("user set not loaded")
	}
	if set.Title != "Go Basics" {
		t.Errorf("Title = %q, want %q", set.Title, "Go Basics")
	}

	builtin, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	if c.Len() != builtin.Len()+1 {
		t.Errorf("Len() = %d, want %d", c.Len(), builtin.Len()+1)
	}
}

func TestLoadOverridesBuiltinByID(t *testing.T) {
	builtin, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	target := builtin.List(Filter{}, nil)[0].ID

	override := `{
  "id": "` + target + `",
  "title": "Replaced Title",
  "category": "general",
  "difficulty": "Easy",
  "duration_secs": 60,
  "questions": [
    {"id": "r1", "prompt": "p", "options": ["a", "b"], "correct": 1}
  ]
}`
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "override.json"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Len() != builtin.Len() {
		t.Errorf("Len() = %d, want %d", c.Len(), builtin.Len())
	}
	set := c.Get(target)
	if set == nil || set.Title != "Replaced Title" {
		t.Errorf("override not applied for %q", target)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"id": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load() = nil error for invalid bank file")
	}
}

func TestParseSet(t *testing.T) {
	set, err := ParseSet([]byte(validSetJSON))
	if err != nil {
		t.Fatalf("ParseSet() error: %v", err)
	}
	if set.ID != "go-basics" {
		t.Errorf("ID = %q, want %q", set.ID, "go-basics")
	}
	if len(set.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(set.Questions))
	}
}

func TestParseSetRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing fields", `{"id": "x"}`},
		{"bad difficulty", `{
			"id": "x", "title": "X", "category": "cse", "difficulty": "Impossible",
			"duration_secs": 60,
			"questions": [{"id": "q", "prompt": "p", "options": ["a", "b"], "correct": 0}]
		}`},
		{"zero duration", `{
			"id": "x", "title": "X", "category": "cse", "difficulty": "Easy",
			"duration_secs": 0,
			"questions": [{"id": "q", "prompt": "p", "options": ["a", "b"], "correct": 0}]
		}`},
		{"one option", `{
			"id": "x", "title": "X", "category": "cse", "difficulty": "Easy",
			"duration_secs": 60,
			"questions": [{"id": "q", "prompt": "p", "options": ["a"], "correct": 0}]
		}`},
		{"unknown field", `{
			"id": "x", "title": "X", "category": "cse", "difficulty": "Easy",
			"duration_secs": 60, "bonus": true,
			"questions": [{"id": "q", "prompt": "p", "options": ["a", "b"], "correct": 0}]
		}`},
		{"correct out of range", `{
			"id": "x", "title": "X", "category": "cse", "difficulty": "Easy",
			"duration_secs": 60,
			"questions": [{"id": "q", "prompt": "p", "options": ["a", "b"], "correct": 5}]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSet([]byte(tt.raw)); err == nil {
				t.Errorf("ParseSet() = nil error for %s", tt.name)
			}
		})
	}
}

func TestValidateEmptySet(t *testing.T) {
	s := QuestionSet{ID: "x", Title: "X", Category: "cse", Difficulty: "Easy", DurationSecs: 60}
	if err := s.Validate(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("Validate() = %v, want ErrEmptySet", err)
	}
}
