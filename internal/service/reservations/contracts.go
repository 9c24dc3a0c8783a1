package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// AgendaRepository интерфейс репозитория агенды
type AgendaRepository interface {
	GetEntry(ctx context.Context, source domain.Source, venueID, id string) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, venueID, id string) error
}

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	Get(ctx context.Context, source domain.Source, agendaID string) (*domain.PaymentRecord, error)
	Delete(ctx context.Context, agendaID string) error
}

// CatalogRepository интерфейс каталога площадки
type CatalogRepository interface {
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
	ListTimeSlots(ctx context.Context, venueID string) ([]domain.TimeSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
