package haircuts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// HaircutRepository интерфейс репозитория стрижек
type HaircutRepository interface {
	ListTypes(ctx context.Context, venueID string) ([]domain.HaircutType, error)
	List(ctx context.Context, venueID string, from, to time.Time) ([]domain.Haircut, error)
	Get(ctx context.Context, venueID, id string) (*domain.Haircut, error)
	Create(ctx context.Context, cut domain.Haircut) (*domain.Haircut, error)
	Update(ctx context.Context, cut domain.Haircut) (*domain.Haircut, error)
	Delete(ctx context.Context, venueID, id string) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListStaff(ctx context.Context, venueID string) ([]domain.StaffMember, error)
	GetStaff(ctx context.Context, venueID, staffID string) (*domain.StaffMember, error)
	ListStatuses(ctx context.Context, staffIDs []string) (map[string]domain.StaffStatus, error)
}

// PINLimiter общий лимит попыток ввода PIN площадки
type PINLimiter interface {
	AllowPIN(venueID string) bool
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
