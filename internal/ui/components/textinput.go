package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as the catalog's filter box.
type SearchInput struct {
	Model   textinput.Model
	focused bool
}

// NewSearchInput creates a styled, unfocused search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return SearchInput{Model: ti}
}

// Focus puts the input into typing mode.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.Model.Focus()
}

// Blur leaves typing mode, keeping the current query.
func (s *SearchInput) Blur() {
	s.focused = false
	s.Model.Blur()
}

// Focused reports whether keystrokes currently go to the input.
func (s SearchInput) Focused() bool {
	return s.focused
}

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search box with a prompt.
func (s SearchInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Search: ")
	return prompt + s.Model.View()
}

// Value returns the current query text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Clear wipes the query.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
}
