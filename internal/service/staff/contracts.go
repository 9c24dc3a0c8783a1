package staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListStaff(ctx context.Context, venueID string) ([]domain.StaffMember, error)
	GetStaff(ctx context.Context, venueID, staffID string) (*domain.StaffMember, error)
	ListStatuses(ctx context.Context, staffIDs []string) (map[string]domain.StaffStatus, error)
	SaveStatus(ctx context.Context, status domain.StaffStatus) error
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
