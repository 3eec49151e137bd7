package procedure

import (
	"sync"
	"time"

	"dbt-guide/internal/i18n"
)

// Session is one guide widget: its language selection and navigator.
// Hold the session lock while using Navigator.
type Session struct {
	mu sync.Mutex

	ID        string
	Language  *i18n.Selector
	Navigator *Navigator
	CreatedAt time.Time
}

// NewSession starts a navigator over caseID in lang.
func NewSession(id string, catalog *Catalog, caseID string, lang i18n.Language) (*Session, error) {
	sel := i18n.NewSelector(lang)
	nav, err := NewNavigator(catalog, sel, caseID)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		Language:  sel,
		Navigator: nav,
		CreatedAt: time.Now(),
	}, nil
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
