package session

import (
	"fmt"

	"github.com/jongio/termkit/menu"
)

// Choose renders the menu and runs its selection question through the
// prompt pipeline, so rejected replies retry with the menu's configured
// responses.
func (s *Session) Choose(m *menu.Menu) (menu.Choice, error) {
	if err := m.Check(); err != nil {
		return menu.Choice{}, err
	}

	if err := s.write(m.Render(s.WrapAt)); err != nil {
		return menu.Choice{}, err
	}

	ans, err := s.AskQuestion(m.Question())
	if err != nil {
		return menu.Choice{}, err
	}

	choice, ok := ans.Value().(menu.Choice)
	if !ok {
		return menu.Choice{}, fmt.Errorf("session: unexpected selection value %T", ans.Value())
	}
	return choice, nil
}
