package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// CatalogRepository справочники площадки и цена слота
type CatalogRepository interface {
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
	ListTimeSlots(ctx context.Context, venueID string) ([]domain.TimeSlot, error)
	ResolvePrice(ctx context.Context, venueID string, date types.Date, t types.TimeString) (*int64, error)
	ListPriceRules(ctx context.Context, venueID string) ([]domain.PriceRule, error)
}

// AgendaRepository живая агенда
type AgendaRepository interface {
	FindByCell(ctx context.Context, venueID string, key domain.CellKey) (*domain.ScheduleEntry, error)
	Create(ctx context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	Save(ctx context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, venueID, id string) error
}

// PaymentRepository оплаты живой агенды
type PaymentRepository interface {
	Get(ctx context.Context, source domain.Source, agendaID string) (*domain.PaymentRecord, error)
	Save(ctx context.Context, record domain.PaymentRecord) error
	Delete(ctx context.Context, agendaID string) error
}

// OverrideRepository исключения расписания
type OverrideRepository interface {
	GetOverride(ctx context.Context, venueID string, date types.Date) (*domain.DayOverride, error)
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
