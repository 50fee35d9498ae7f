package components

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchBar is the header search input. Typing is debounced by generation
// and every issued request carries a sequence number so late responses can be dropped.
type SearchBar struct {
	input    textinput.Model
	debounce time.Duration
	gen      int // debounce generation
	seq      int // sequence of the latest issued request
	errText  string
	keys     SearchKeyMap
}

// NewSearchBar creates an unfocused search bar
func NewSearchBar(debounce time.Duration) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Rechercher un film, une série…"
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti, debounce: debounce, keys: DefaultSearchKeyMap()}
}

// Focus focuses the input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur unfocuses the input. Pending debounces still fire.
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// Error returns the inline validation message, if any
func (s SearchBar) Error() string {
	return s.errText
}

// Gen returns the current debounce generation
func (s SearchBar) Gen() int {
	return s.gen
}

// SetWidth sets the input width in cells
func (s *SearchBar) SetWidth(width int) {
	s.input.Width = max(width, 10)
}

// SetStyles re-reads the prompt colours from the active theme
func (s *SearchBar) SetStyles() {
	s.input.PromptStyle = styles.AccentStyle
	s.input.PlaceholderStyle = styles.DimStyle
}

// Input records a new value and schedules a debounce tick
func (s *SearchBar) Input(value string) tea.Cmd {
	s.input.SetValue(value)
	s.errText = ""
	return s.schedule()
}

func (s *SearchBar) schedule() tea.Cmd {
	s.gen++
	return tickAfter(s.debounce, SearchDebounceMsg{Gen: s.gen})
}

// Submit validates the value. Short queries set the inline message and
// return domain.ErrQueryTooShort without scheduling anything.
func (s *SearchBar) Submit() (tea.Cmd, error) {
	if _, err := service.ValidateQuery(s.input.Value()); err != nil {
		s.errText = err.Error()
		s.gen++ // cancel a pending debounce for the short value
		return nil, err
	}
	s.errText = ""
	return s.schedule(), nil
}

// Fire is called when a debounce tick arrives. It returns the query and its
// sequence number when gen is current and the query is long enough.
func (s *SearchBar) Fire(gen int) (query string, seq int, ok bool) {
	if gen != s.gen {
		return "", 0, false
	}
	q, err := service.ValidateQuery(s.input.Value())
	if err != nil {
		return "", 0, false
	}
	s.seq++
	return q, s.seq, true
}

// Accept reports whether a response tagged seq is the latest issued
func (s SearchBar) Accept(seq int) bool {
	return seq == s.seq
}

// Update handles keys while focused
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.input.Focused() {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.Blur):
			s.Blur()
			return s, nil
		case key.Matches(msg, s.keys.Submit):
			cmd, _ := s.Submit()
			return s, cmd
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.errText = ""
		return s, tea.Batch(cmd, s.schedule())
	}
	return s, cmd
}

// View renders the input and any inline message
func (s SearchBar) View() string {
	view := s.input.View()
	if s.errText != "" {
		view += " " + styles.ErrorStyle.Render(s.errText)
	}
	return view
}
