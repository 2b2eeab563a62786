package exam

import (
	"math"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

// Score computes the result for a finished session. Unanswered questions and
// wrong picks both count as incorrect. An empty set scores zero rather than
// dividing by zero. Time taken is the assigned duration minus the remaining
// seconds at finish, clamped to [0, duration].
func Score(set *catalog.QuestionSet, sheet *AnswerSheet, remainingAtFinish int) Result {
	total := len(set.Questions)

	correct := 0
	for i, q := range set.Questions {
		if pick, ok := sheet.Selected(i); ok && pick == q.Correct {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}

	taken := set.DurationSecs - remainingAtFinish
	if taken < 0 {
		taken = 0
	}
	if taken > set.DurationSecs {
		taken = set.DurationSecs
	}

	return Result{
		Score:         score,
		Correct:       correct,
		Total:         total,
		TimeTakenSecs: taken,
	}
}
