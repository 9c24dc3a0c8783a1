package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	staffRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueConsole/internal/service/staff/models"
)

// Service сервис дневного статуса сотрудников
type Service struct {
	staffRepo    StaffRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo:    staffRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает сотрудников площадки с текущим статусом
func (s *Service) List(ctx context.Context, venueID string) (*models.StaffListResponse, error) {
	s.logger.Info("List: fetching staff for venue=%s", venueID)

	members, err := s.staffRepo.ListStaff(ctx, venueID)
	if err != nil {
		s.logger.Error("List: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	statuses, err := s.staffRepo.ListStatuses(ctx, ids)
	if err != nil {
		s.logger.Error("List: repository error for statuses: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.StaffListResponse{Staff: make([]models.StaffResponse, 0, len(members))}
	for _, m := range members {
		var status *domain.StaffStatus
		if st, ok := statuses[m.ID]; ok {
			status = &st
		}
		resp.Staff = append(resp.Staff, models.FromDomainStaff(m, status))
	}

	s.logger.Info("List: successfully fetched %d staff members for venue=%s", len(members), venueID)
	return resp, nil
}

// UpdateStatus меняет дневной статус сотрудника
// Время обеда проверяется, но не хранится: боту нужно только время возвращения
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateStatus: venue=%s, staff=%s, state=%s, allDay=%t",
		req.VenueID, req.StaffID, req.State, req.AllDay)

	// 1. Валидация
	update := req.ToDomainUpdate()
	if err := update.Validate(); err != nil {
		s.logger.Warn("UpdateStatus: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Сотрудник должен принадлежать площадке
	member, err := s.staffRepo.GetStaff(ctx, req.VenueID, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateStatus: staff=%s not found in venue=%s", req.StaffID, req.VenueID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStatus: repository error for staff=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// 3. Сохраняем
	status := update.Status(s.timeProvider.Now())
	if err := s.staffRepo.SaveStatus(ctx, status); err != nil {
		s.logger.Error("UpdateStatus: failed to save status for staff=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: staff=%s is now %s", member.ID, status.State)
	resp := models.FromDomainStaff(*member, &status)
	return &resp, nil
}

// Queue очередь сотрудников: disponible и en_almuerzo по имени, остальные отдельно
// Порядок обслуживания внутри очереди ведёт консоль
func (s *Service) Queue(ctx context.Context, venueID string) (*models.QueueResponse, error) {
	s.logger.Info("Queue: fetching queue for venue=%s", venueID)

	members, err := s.staffRepo.ListStaff(ctx, venueID)
	if err != nil {
		s.logger.Error("Queue: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: Queue - repository error: %v", ErrInternal, err)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	statuses, err := s.staffRepo.ListStatuses(ctx, ids)
	if err != nil {
		s.logger.Error("Queue: repository error for statuses: %v", err)
		return nil, fmt.Errorf("%w: Queue - repository error: %v", ErrInternal, err)
	}

	queue, unavailable := domain.StaffQueue(members, statuses)
	s.logger.Info("Queue: venue=%s, %d in queue, %d unavailable", venueID, len(queue), len(unavailable))
	return models.FromDomainQueue(queue, unavailable), nil
}

// EndLunch возвращает сотрудника с обеда: disponible без времени возвращения
func (s *Service) EndLunch(ctx context.Context, venueID, staffID string) (*models.StaffResponse, error) {
	s.logger.Info("EndLunch: venue=%s, staff=%s", venueID, staffID)

	if staffID == "" {
		return nil, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	member, err := s.staffRepo.GetStaff(ctx, venueID, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("EndLunch: staff=%s not found in venue=%s", staffID, venueID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("EndLunch: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: EndLunch - repository error: %v", ErrInternal, err)
	}

	statuses, err := s.staffRepo.ListStatuses(ctx, []string{member.ID})
	if err != nil {
		s.logger.Error("EndLunch: repository error for statuses: %v", err)
		return nil, fmt.Errorf("%w: EndLunch - repository error: %v", ErrInternal, err)
	}
	if current, ok := statuses[member.ID]; !ok || current.State != domain.StaffAtLunch {
		s.logger.Warn("EndLunch: staff=%s is not at lunch", member.ID)
		return nil, ErrNotAtLunch
	}

	status := domain.StaffStatus{
		StaffID:   member.ID,
		State:     domain.StaffAvailable,
		UpdatedAt: s.timeProvider.Now(),
	}
	if err := s.staffRepo.SaveStatus(ctx, status); err != nil {
		s.logger.Error("EndLunch: failed to save status for staff=%s: %v", member.ID, err)
		return nil, fmt.Errorf("%w: EndLunch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EndLunch: staff=%s is back", member.ID)
	resp := models.FromDomainStaff(*member, &status)
	return &resp, nil
}
