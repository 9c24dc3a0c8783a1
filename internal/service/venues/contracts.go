package venues

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// CatalogRepository интерфейс каталога площадок
type CatalogRepository interface {
	GetVenueByOwner(ctx context.Context, ownerID string) (*domain.Venue, error)
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
	ListTimeSlots(ctx context.Context, venueID string) ([]domain.TimeSlot, error)
	GetPublicAvailability(ctx context.Context, slug string, from, to types.Date) (*domain.PublicAvailability, error)
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
