package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// OverrideRepository интерфейс репозитория исключений расписания
type OverrideRepository interface {
	ListOverrides(ctx context.Context, venueID string, from, to types.Date) (map[types.Date]domain.DayOverride, error)
	GetOverride(ctx context.Context, venueID string, date types.Date) (*domain.DayOverride, error)
	SetOverride(ctx context.Context, o domain.DayOverride) error
	DeleteOverride(ctx context.Context, venueID string, date types.Date) error
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
