package gate

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// Config параметры сессий и ограничения попыток PIN
type Config struct {
	SessionTTL        time.Duration
	PINAttemptsPerMin float64
	PINBurst          int
}

// Session снимок сессии gate для ответа клиенту
type Session struct {
	ID         string            `json:"id"`
	VenueID    string            `json:"-"`
	TemplateID string            `json:"templateId"`
	State      domain.GateState  `json:"state"`
	Importance domain.Importance `json:"importance"`
	Category   domain.Category   `json:"category"`
	PINError   bool              `json:"pinError"`
	LastError  string            `json:"lastError,omitempty"`
	ExpiresAt  time.Time         `json:"expiresAt"`
}

type session struct {
	id         string
	venueID    string
	templateID string
	gate       *domain.Gate
	expiresAt  time.Time
}

func (s *session) snapshot() Session {
	return Session{
		ID:         s.id,
		VenueID:    s.venueID,
		TemplateID: s.templateID,
		State:      s.gate.State(),
		Importance: s.gate.Importance(),
		Category:   s.gate.Category(),
		PINError:   s.gate.PINError(),
		LastError:  s.gate.LastError(),
		ExpiresAt:  s.expiresAt,
	}
}
