package catalog

import (
	"errors"
	"fmt"
)

// Question is a single multiple-choice question. Option order is the order
// shown to the candidate; Correct indexes into Options.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// QuestionSet is an immutable assessment definition. Question order is the
// navigation order of a session.
type QuestionSet struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	Difficulty   string     `json:"difficulty"`
	DurationSecs int        `json:"duration_secs"`
	Questions    []Question `json:"questions"`
}

// Category tags used by the built-in bank. User bank files may introduce
// additional tags; the catalog treats tags as opaque strings.
const (
	CategoryGeneral       = "general"
	CategoryCommunication = "communication"
	CategoryCSE           = "cse"
	CategoryIT            = "it"
	CategoryMechanical    = "mechanical"
	CategoryElectronics   = "electronics"
	CategoryInterview     = "interview"
)

var ErrEmptySet = errors.New("question set has no questions")

// KnownCategories returns the category tags of the built-in bank, in
// display order.
func KnownCategories() []string {
	return []string{
		CategoryGeneral,
		CategoryCommunication,
		CategoryCSE,
		CategoryIT,
		CategoryMechanical,
		CategoryElectronics,
		CategoryInterview,
	}
}

// Validate checks structural invariants beyond what the JSON schema covers.
func (s *QuestionSet) Validate() error {
	if s.ID == "" {
		return errors.New("question set is missing an id")
	}
	if s.DurationSecs <= 0 {
		return fmt.Errorf("question set %q: duration must be positive, got %d", s.ID, s.DurationSecs)
	}
	if len(s.Questions) == 0 {
		return fmt.Errorf("question set %q: %w", s.ID, ErrEmptySet)
	}
	for i, q := range s.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question set %q: question %d has %d options, need at least 2", s.ID, i, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question set %q: question %d correct index %d out of range [0,%d)", s.ID, i, q.Correct, len(q.Options))
		}
	}
	return nil
}
