package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	cronogramaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/cronograma"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// maxRangeDays ограничение периода для ListRange
const maxRangeDays = 62

// Service сервис исключений расписания площадки (cronograma)
type Service struct {
	overrideRepo OverrideRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(overrideRepo OverrideRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDay возвращает расписание площадки на дату с текстовым описанием
func (s *Service) GetDay(ctx context.Context, venueID string, date types.Date) (*models.DayResponse, error) {
	s.logger.Info("GetDay: fetching schedule for venue=%s, date=%s", venueID, date)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	o, err := s.overrideRepo.GetOverride(ctx, venueID, date)
	if err != nil && !errors.Is(err, cronogramaRepo.ErrOverrideNotFound) {
		s.logger.Error("GetDay: repository error for venue=%s, date=%s: %v", venueID, date, err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(date, o), nil
}

// ListRange возвращает исключения площадки за период [from, to]
func (s *Service) ListRange(ctx context.Context, venueID string, from, to types.Date) (*models.DayListResponse, error) {
	s.logger.Info("ListRange: fetching overrides for venue=%s, period=%s to %s", venueID, from, to)

	if from.IsZero() || to.IsZero() || to.Before(from) || from.AddDays(maxRangeDays).Before(to) {
		s.logger.Warn("ListRange: invalid period %s to %s", from, to)
		return nil, fmt.Errorf("%w: invalid period", ErrInvalidInput)
	}

	overrides, err := s.overrideRepo.ListOverrides(ctx, venueID, from, to)
	if err != nil {
		s.logger.Error("ListRange: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListRange - repository error: %v", ErrInternal, err)
	}

	resp := &models.DayListResponse{From: from, To: to, Days: make([]models.DayResponse, 0, len(overrides))}
	for d := from; !d.After(to); d = d.AddDays(1) {
		if o, ok := overrides[d]; ok {
			resp.Days = append(resp.Days, *models.FromDomainOverride(d, &o))
		}
	}
	return resp, nil
}

// CreateClosed закрывает площадку на весь день
func (s *Service) CreateClosed(ctx context.Context, req *models.CreateClosedRequest) (*models.DayResponse, error) {
	s.logger.Info("CreateClosed: venue=%s, date=%s", req.VenueID, req.Date)

	// 1. Валидация до обращения к хранилищу
	o, err := domain.NewClosedOverride(req.VenueID, req.Date, req.Reason)
	if err != nil {
		s.logger.Warn("CreateClosed: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkDate(req.Date); err != nil {
		return nil, err
	}

	// 2. Сохраняем
	return s.create(ctx, "CreateClosed", o)
}

// CreateSpecialHours задаёт окно работы [open, close) на день
// Требует подтверждения, что существующие резервации дня проверены
func (s *Service) CreateSpecialHours(ctx context.Context, req *models.CreateSpecialHoursRequest) (*models.DayResponse, error) {
	s.logger.Info("CreateSpecialHours: venue=%s, date=%s, %s-%s, confirmed=%t",
		req.VenueID, req.Date, req.Open, req.Close, req.Confirmed)

	// 1. Валидация до обращения к хранилищу
	open, err := domain.ParseClock(req.Open)
	if err != nil {
		s.logger.Warn("CreateSpecialHours: invalid open time %q: %v", req.Open, err)
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidSpecialHours, err)
	}
	closeAt, err := domain.ParseClock(req.Close)
	if err != nil {
		s.logger.Warn("CreateSpecialHours: invalid close time %q: %v", req.Close, err)
		return nil, fmt.Errorf("%w: close: %v", ErrInvalidSpecialHours, err)
	}
	o, err := domain.NewSpecialHoursOverride(req.VenueID, req.Date, open, closeAt, req.Reason)
	if err != nil {
		s.logger.Warn("CreateSpecialHours: validation failed: %v", err)
		if errors.Is(err, domain.ErrReasonTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpecialHours, err)
	}
	if err := s.checkDate(req.Date); err != nil {
		return nil, err
	}

	// 2. Подтверждение
	if !req.Confirmed {
		s.logger.Info("CreateSpecialHours: confirmation required for venue=%s, date=%s", req.VenueID, req.Date)
		return nil, ErrConfirmationRequired
	}

	// 3. Сохраняем
	return s.create(ctx, "CreateSpecialHours", o)
}

// Delete удаляет исключение, день возвращается к базовому расписанию
func (s *Service) Delete(ctx context.Context, req *models.DeleteRequest) error {
	s.logger.Info("Delete: venue=%s, date=%s, confirmed=%t", req.VenueID, req.Date, req.Confirmed)

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	// Прошедший день остаётся как был, в том числе его исключение
	if err := s.checkDate(req.Date); err != nil {
		return err
	}
	if !req.Confirmed {
		return ErrConfirmationRequired
	}

	if _, err := s.overrideRepo.GetOverride(ctx, req.VenueID, req.Date); err != nil {
		if errors.Is(err, cronogramaRepo.ErrOverrideNotFound) {
			s.logger.Warn("Delete: no override for venue=%s, date=%s", req.VenueID, req.Date)
			return ErrOverrideNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.overrideRepo.DeleteOverride(ctx, req.VenueID, req.Date); err != nil {
		s.logger.Error("Delete: repository error for venue=%s, date=%s: %v", req.VenueID, req.Date, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted override for venue=%s, date=%s", req.VenueID, req.Date)
	return nil
}

// Вспомогательные методы

func (s *Service) checkDate(date types.Date) error {
	today := domain.VenueToday(s.timeProvider.Now(), s.location)
	if date.Before(today) {
		s.logger.Warn("checkDate: date=%s is before today=%s", date, today)
		return ErrPastDate
	}
	return nil
}

// create исключение не редактируется: существующее нужно сначала удалить
func (s *Service) create(ctx context.Context, op string, o domain.DayOverride) (*models.DayResponse, error) {
	existing, err := s.overrideRepo.GetOverride(ctx, o.VenueID, o.Date)
	switch {
	case err == nil && existing != nil:
		s.logger.Warn("%s: override already exists for venue=%s, date=%s", op, o.VenueID, o.Date)
		return nil, ErrOverrideExists
	case err != nil && !errors.Is(err, cronogramaRepo.ErrOverrideNotFound):
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.overrideRepo.SetOverride(ctx, o); err != nil {
		s.logger.Error("%s: failed to set override for venue=%s, date=%s: %v", op, o.VenueID, o.Date, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully set %s override for venue=%s, date=%s", op, o.Kind, o.VenueID, o.Date)
	return models.FromDomainOverride(o.Date, &o), nil
}
