// Package catalog holds the question set catalog: immutable assessment
// definitions loaded from the embedded bank and optional user bank files.
package catalog

import "strings"

// AttemptStats is prior-attempt bookkeeping supplied by the result sink.
// The catalog itself never records attempts.
type AttemptStats struct {
	Attempts  int
	BestScore int
}

// Summary is the list-view projection of a QuestionSet, joined with any
// prior attempt stats.
type Summary struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Difficulty    string
	DurationSecs  int
	QuestionCount int
	Attempts      int
	BestScore     *int
}

// Filter selects a subset of the catalog. Zero value matches everything.
type Filter struct {
	// Categories limits results to the given category tags (OR semantics).
	Categories []string
	// Attempted, when set, keeps only sets with (true) or without (false)
	// prior attempts.
	Attempted *bool
	// Query keeps sets whose title contains the string, case-insensitively.
	Query string
}

// Catalog is a read-only collection of question sets.
type Catalog struct {
	sets []QuestionSet
	byID map[string]*QuestionSet
}

// New builds a catalog over the given sets. The slice is not copied; callers
// must not mutate it afterwards.
func New(sets []QuestionSet) *Catalog {
	byID := make(map[string]*QuestionSet, len(sets))
	for i := range sets {
		byID[sets[i].ID] = &sets[i]
	}
	return &Catalog{sets: sets, byID: byID}
}

// Get returns the set with the given id, or nil if unknown.
func (c *Catalog) Get(id string) *QuestionSet {
	return c.byID[id]
}

// Len returns the number of sets in the catalog.
func (c *Catalog) Len() int {
	return len(c.sets)
}

// Categories returns the distinct category tags in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.sets {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// List returns summaries of the sets matching the filter, in catalog order.
// stats carries prior-attempt data keyed by set id and may be nil. A filter
// matching nothing yields an empty slice, never an error.
func (c *Catalog) List(f Filter, stats map[string]AttemptStats) []Summary {
	out := make([]Summary, 0, len(c.sets))
	for _, s := range c.sets {
		st, attempted := stats[s.ID]
		if attempted {
			attempted = st.Attempts > 0
		}
		if !f.matches(&s, attempted) {
			continue
		}

		sum := Summary{
			ID:            s.ID,
			Title:         s.Title,
			Description:   s.Description,
			Category:      s.Category,
			Difficulty:    s.Difficulty,
			DurationSecs:  s.DurationSecs,
			QuestionCount: len(s.Questions),
			Attempts:      st.Attempts,
		}
		if attempted {
			best := st.BestScore
			sum.BestScore = &best
		}
		out = append(out, sum)
	}
	return out
}

func (f Filter) matches(s *QuestionSet, attempted bool) bool {
	if len(f.Categories) > 0 {
		found := false
		for _, cat := range f.Categories {
			if s.Category == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Attempted != nil && *f.Attempted != attempted {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(f.Query)) {
		return false
	}
	return true
}
