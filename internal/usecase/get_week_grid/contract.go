package get_week_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// CatalogRepository корты и слоты площадки
type CatalogRepository interface {
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
	ListTimeSlots(ctx context.Context, venueID string) ([]domain.TimeSlot, error)
}

// AgendaRepository записи агенды
type AgendaRepository interface {
	ListEntries(ctx context.Context, source domain.Source, venueID string, from, to types.Date) ([]domain.ScheduleEntry, error)
}

// PaymentRepository оплаты записей агенды
type PaymentRepository interface {
	ListByAgendaIDs(ctx context.Context, source domain.Source, agendaIDs []string) (map[string]domain.PaymentRecord, error)
}

// OverrideRepository исключения расписания
type OverrideRepository interface {
	ListOverrides(ctx context.Context, venueID string, from, to types.Date) (map[types.Date]domain.DayOverride, error)
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
