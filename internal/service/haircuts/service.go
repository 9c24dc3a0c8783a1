package haircuts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	haircutRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/haircut"
	staffRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Service учёт стрижек: запись, исправление, удаление по PIN, итоги дня и отчёт за период
type Service struct {
	haircutRepo  HaircutRepository
	staffRepo    StaffRepository
	pinLimiter   PINLimiter
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	haircutRepo HaircutRepository,
	staffRepo StaffRepository,
	pinLimiter PINLimiter,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		haircutRepo:  haircutRepo,
		staffRepo:    staffRepo,
		pinLimiter:   pinLimiter,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListTypes возвращает активный каталог стрижек
func (s *Service) ListTypes(ctx context.Context, venueID string) (*models.TypeListResponse, error) {
	catalog, err := s.haircutRepo.ListTypes(ctx, venueID)
	if err != nil {
		s.logger.Error("ListTypes: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListTypes - repository error: %v", ErrInternal, err)
	}

	resp := &models.TypeListResponse{Types: make([]models.TypeResponse, 0, len(catalog))}
	for _, t := range catalog {
		if t.Active {
			resp.Types = append(resp.Types, models.FromDomainType(t))
		}
	}
	return resp, nil
}

// Register записывает стрижку сотруднику, который сейчас принимает клиентов
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.HaircutResponse, error) {
	s.logger.Info("Register: venue=%s, staff=%s, type=%s", req.VenueID, req.StaffID, req.TypeID)

	// 1. Каталог и расчёт долей
	catalog, err := s.haircutRepo.ListTypes(ctx, req.VenueID)
	if err != nil {
		s.logger.Error("Register: repository error for types: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}
	cut, err := req.ToDomainDraft().Resolve(catalog, domain.StaffSharePercent, "")
	if err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Сотрудник площадки и его статус
	member, err := s.getStaff(ctx, "Register", req.VenueID, req.StaffID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.staffRepo.ListStatuses(ctx, []string{member.ID})
	if err != nil {
		s.logger.Error("Register: repository error for statuses: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}
	var status *domain.StaffStatus
	if st, ok := statuses[member.ID]; ok {
		status = &st
	}
	if err := domain.CanTakeClients(status); err != nil {
		s.logger.Warn("Register: staff=%s is not taking clients: %v", member.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrStaffNotWorking, err)
	}

	// 3. Сохраняем
	cut.VenueID = req.VenueID
	created, err := s.haircutRepo.Create(ctx, cut)
	if err != nil {
		s.logger.Error("Register: failed to create haircut: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}
	created.StaffName = member.Name
	created.TypeName = cut.TypeName

	s.logger.Info("Register: haircut=%s recorded for staff=%s, price=%d", created.ID, member.ID, created.Price)
	resp := models.FromDomainHaircut(*created)
	return &resp, nil
}

// Update исправляет стрижку текущего дня; процент сотрудника остаётся тем, что был при записи
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.HaircutResponse, error) {
	s.logger.Info("Update: venue=%s, haircut=%s", req.VenueID, req.HaircutID)

	if req.HaircutID == "" {
		return nil, fmt.Errorf("%w: haircut id is required", ErrInvalidInput)
	}

	existing, err := s.getEditable(ctx, "Update", req.VenueID, req.HaircutID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.haircutRepo.ListTypes(ctx, req.VenueID)
	if err != nil {
		s.logger.Error("Update: repository error for types: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	percent := existing.StaffPercent
	if percent == 0 {
		percent = domain.StaffSharePercent
	}
	cut, err := req.ToDomainDraft().Resolve(catalog, percent, existing.TypeID)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member, err := s.getStaff(ctx, "Update", req.VenueID, req.StaffID)
	if err != nil {
		return nil, err
	}

	cut.ID = existing.ID
	cut.VenueID = req.VenueID
	cut.CreatedAt = existing.CreatedAt
	saved, err := s.haircutRepo.Update(ctx, cut)
	if err != nil {
		s.logger.Error("Update: failed to save haircut=%s: %v", req.HaircutID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	saved.StaffName = member.Name
	saved.TypeName = cut.TypeName

	s.logger.Info("Update: haircut=%s updated, price=%d", saved.ID, saved.Price)
	resp := models.FromDomainHaircut(*saved)
	return &resp, nil
}

// Delete удаляет стрижку текущего дня после проверки PIN площадки
func (s *Service) Delete(ctx context.Context, venue domain.Venue, haircutID, pin string) error {
	s.logger.Info("Delete: venue=%s, haircut=%s", venue.ID, haircutID)

	if haircutID == "" || pin == "" {
		return fmt.Errorf("%w: haircut id and pin are required", ErrInvalidInput)
	}
	if !s.pinLimiter.AllowPIN(venue.ID) {
		s.logger.Warn("Delete: too many pin attempts for venue=%s", venue.ID)
		return ErrTooManyAttempts
	}
	if !venue.CheckPIN(pin) {
		s.logger.Warn("Delete: pin mismatch for venue=%s", venue.ID)
		return ErrPINMismatch
	}

	if _, err := s.getEditable(ctx, "Delete", venue.ID, haircutID); err != nil {
		return err
	}
	if err := s.haircutRepo.Delete(ctx, venue.ID, haircutID); err != nil {
		s.logger.Error("Delete: failed to delete haircut=%s: %v", haircutID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: haircut=%s deleted", haircutID)
	return nil
}

// Today стрижки площадки за сегодня с итогами
func (s *Service) Today(ctx context.Context, venueID string) (*models.DayResponse, error) {
	today := domain.VenueToday(s.timeProvider.Now(), s.location)
	s.logger.Info("Today: venue=%s, date=%s", venueID, today)

	cuts, err := s.listNamed(ctx, "Today", venueID, today, today)
	if err != nil {
		return nil, err
	}

	return &models.DayResponse{
		Date:     today,
		Totals:   models.FromDomainTotals(domain.SummarizeHaircuts(cuts)),
		Haircuts: models.FromDomainHaircuts(cuts),
	}, nil
}

// Report отчёт за день или месяц с рейтингом и сводкой по сотрудникам
func (s *Service) Report(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error) {
	date := req.Date
	if date.IsZero() {
		date = domain.VenueToday(s.timeProvider.Now(), s.location)
	}
	period := domain.Period(req.Period)
	if period == "" {
		period = domain.PeriodDay
	}
	s.logger.Info("Report: venue=%s, date=%s, period=%s, staff=%s", req.VenueID, date, period, req.StaffID)

	from, to, err := period.Range(date)
	if err != nil {
		s.logger.Warn("Report: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cuts, err := s.listNamed(ctx, "Report", req.VenueID, from, to)
	if err != nil {
		return nil, err
	}

	report := domain.BuildAccountingReport(cuts, req.StaffID)
	report.From, report.To, report.Period = from, to, period

	s.logger.Info("Report: venue=%s, %d haircuts in period, income=%d", req.VenueID, len(cuts), report.Totals.Income)
	return models.FromDomainReport(report, req.StaffID), nil
}

func (s *Service) getStaff(ctx context.Context, op, venueID, staffID string) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetStaff(ctx, venueID, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("%s: staff=%s not found in venue=%s", op, staffID, venueID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("%s: repository error for staff=%s: %v", op, staffID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return member, nil
}

// getEditable стрижка площадки, записанная сегодня; прошлые дни только для чтения
func (s *Service) getEditable(ctx context.Context, op, venueID, haircutID string) (*domain.Haircut, error) {
	cut, err := s.haircutRepo.Get(ctx, venueID, haircutID)
	if err != nil {
		if errors.Is(err, haircutRepo.ErrHaircutNotFound) {
			s.logger.Warn("%s: haircut=%s not found in venue=%s", op, haircutID, venueID)
			return nil, ErrHaircutNotFound
		}
		s.logger.Error("%s: repository error for haircut=%s: %v", op, haircutID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	today := domain.VenueToday(s.timeProvider.Now(), s.location)
	if types.TodayIn(cut.CreatedAt, s.location).Before(today) {
		s.logger.Warn("%s: haircut=%s belongs to a past day", op, haircutID)
		return nil, ErrPastDate
	}
	return cut, nil
}

// listNamed стрижки за [from, to] с именами сотрудников и типов
func (s *Service) listNamed(ctx context.Context, op, venueID string, from, to types.Date) ([]domain.Haircut, error) {
	start, end := domain.DayBounds(from, to, s.location)
	cuts, err := s.haircutRepo.List(ctx, venueID, start, end)
	if err != nil {
		s.logger.Error("%s: repository error for haircuts: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if len(cuts) == 0 {
		return cuts, nil
	}

	members, err := s.staffRepo.ListStaff(ctx, venueID)
	if err != nil {
		s.logger.Error("%s: repository error for staff: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	catalog, err := s.haircutRepo.ListTypes(ctx, venueID)
	if err != nil {
		s.logger.Error("%s: repository error for types: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	staffNames := make(map[string]string, len(members))
	for _, m := range members {
		staffNames[m.ID] = m.Name
	}
	typeNames := make(map[string]string, len(catalog))
	for _, t := range catalog {
		typeNames[t.ID] = t.Name
	}
	for i := range cuts {
		cuts[i].StaffName = staffNames[cuts[i].StaffID]
		cuts[i].TypeName = typeNames[cuts[i].TypeID]
	}
	return cuts, nil
}
