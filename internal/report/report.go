// Package report turns raw session results into the figures and labels
// shown on the results screen and in CLI output.
package report

import (
	"fmt"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
)

// Band is the qualitative rating attached to a score.
type Band int

const (
	BandNeedsImprovement Band = iota
	BandGood
	BandExcellent
)

func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandGood:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

// BandFor rates a 0-100 score: 80 and above is excellent, 60 and above is
// good, anything lower needs improvement.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	default:
		return BandNeedsImprovement
	}
}

// Card holds everything the results view displays for one finished session.
type Card struct {
	SetTitle  string
	Score     int
	Band      Band
	Correct   string
	Accuracy  string
	TimeTaken string
}

// BuildCard assembles a Card from a finished session's result.
func BuildCard(setTitle string, r exam.Result) Card {
	return Card{
		SetTitle:  setTitle,
		Score:     r.Score,
		Band:      BandFor(r.Score),
		Correct:   Fraction(r.Correct, r.Total),
		Accuracy:  fmt.Sprintf("%d%%", r.Accuracy()),
		TimeTaken: Clock(r.TimeTakenSecs),
	}
}

// Clock formats a second count as m:ss, the format used everywhere a
// countdown or elapsed time appears. Negative input reads as 0:00.
func Clock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Fraction renders "correct/total" counts, e.g. "7/10".
func Fraction(part, whole int) string {
	return fmt.Sprintf("%d/%d", part, whole)
}
