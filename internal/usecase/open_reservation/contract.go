package open_reservation

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
}

// AgendaRepository записи агенды
type AgendaRepository interface {
	GetEntry(ctx context.Context, source domain.Source, venueID, id string) (*domain.ScheduleEntry, error)
}

// PaymentRepository оплаты записей агенды
type PaymentRepository interface {
	Get(ctx context.Context, source domain.Source, agendaID string) (*domain.PaymentRecord, error)
	Save(ctx context.Context, record domain.PaymentRecord) error
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
