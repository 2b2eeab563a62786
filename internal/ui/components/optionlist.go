package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

// OptionList renders a question's options with a movable cursor and an
// optional recorded pick. Unlike a grading view it never reveals the
// correct option; the session screen uses it while the clock is running.
type OptionList struct {
	Options []string
	Cursor  int
	Picked  int // -1 when nothing recorded yet
}

// NewOptionList creates an option list with no recorded pick.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Picked:  -1,
	}
}

// Update moves the cursor. Selection itself is the session screen's call,
// since it has to go through the controller.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// SetPicked records which option the candidate has chosen, moving the
// cursor there so re-entry shows the saved pick.
func (o *OptionList) SetPicked(idx int) {
	o.Picked = idx
	if idx >= 0 && idx < len(o.Options) {
		o.Cursor = idx
	}
}

// View renders the options with letter labels.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := optionLabel(i)
		marker := " "
		if i == o.Picked {
			marker = "●"
		}

		line := fmt.Sprintf("%s %s)  %s", marker, label, opt)
		switch {
		case i == o.Cursor:
			s += theme.Selected.Render("▸ "+line) + "\n"
		case i == o.Picked:
			s += theme.Correct.Render("  "+line) + "\n"
		default:
			s += theme.Unselected.Render("  "+line) + "\n"
		}
	}
	return s
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
