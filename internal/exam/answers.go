package exam

import (
	"fmt"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

// AnswerSheet records the option picked for each question of one session.
// Last write wins; a candidate may change their mind. Index validation is
// strict because an out-of-range write indicates a navigation bug in the
// caller, not candidate input.
type AnswerSheet struct {
	set   *catalog.QuestionSet
	picks map[int]int
}

// NewAnswerSheet creates an empty sheet for the given set.
func NewAnswerSheet(set *catalog.QuestionSet) *AnswerSheet {
	return &AnswerSheet{
		set:   set,
		picks: make(map[int]int),
	}
}

// Record stores the option picked for a question, overwriting any prior pick.
func (a *AnswerSheet) Record(question, option int) error {
	if question < 0 || question >= len(a.set.Questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", question, len(a.set.Questions))
	}
	if option < 0 || option >= len(a.set.Questions[question].Options) {
		return fmt.Errorf("option index %d out of range [0,%d) for question %d",
			option, len(a.set.Questions[question].Options), question)
	}
	a.picks[question] = option
	return nil
}

// Selected returns the picked option for a question, with ok=false when the
// question is unanswered.
func (a *AnswerSheet) Selected(question int) (option int, ok bool) {
	option, ok = a.picks[question]
	return option, ok
}

// AnsweredCount returns how many questions have a recorded pick.
func (a *AnswerSheet) AnsweredCount() int {
	return len(a.picks)
}
