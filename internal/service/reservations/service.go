package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Service сервис для работы с резервациями агенды
type Service struct {
	agendaRepo   AgendaRepository
	paymentRepo  PaymentRepository
	catalogRepo  CatalogRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	agendaRepo AgendaRepository,
	paymentRepo PaymentRepository,
	catalogRepo CatalogRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		agendaRepo:   agendaRepo,
		paymentRepo:  paymentRepo,
		catalogRepo:  catalogRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Release освобождает ячейку живой агенды
// Сначала удаляется оплата, затем запись; оплаченную резервацию освободить нельзя
func (s *Service) Release(ctx context.Context, req *models.ReleaseRequest) (*models.ReleaseResponse, error) {
	s.logger.Info("Release: releasing entry id=%s for venue=%s", req.AgendaID, req.VenueID)

	if req.AgendaID == "" {
		s.logger.Warn("Release: empty agenda id")
		return nil, fmt.Errorf("%w: agenda id is required", ErrInvalidInput)
	}

	// Получаем запись
	entry, err := s.agendaRepo.GetEntry(ctx, domain.SourceLive, req.VenueID, req.AgendaID)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrEntryNotFound) {
			s.logger.Warn("Release: entry id=%s not found", req.AgendaID)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("Release: repository error for entry id=%s: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	// Прошедшие даты только для чтения
	today := domain.VenueToday(s.timeProvider.Now(), s.location)
	if entry.Date.Before(today) {
		s.logger.Warn("Release: entry id=%s date=%s is before today=%s", entry.ID, entry.Date, today)
		return nil, ErrPastDate
	}

	resp := &models.ReleaseResponse{AgendaID: entry.ID}

	// Блокировка не имеет оплаты
	if entry.Status == domain.EntryReserved {
		record, err := s.paymentRepo.Get(ctx, domain.SourceLive, entry.ID)
		if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Error("Release: payment repository error for entry id=%s: %v", entry.ID, err)
			return nil, fmt.Errorf("%w: Release - payment repository error: %v", ErrInternal, err)
		}

		// Проверяем, можно ли изменять резервацию
		if err := domain.DeriveLedger(*entry, record, nil).CanModify(); err != nil {
			s.logger.Warn("Release: entry id=%s is paid", entry.ID)
			return nil, ErrReservationPaid
		}

		if record != nil {
			if err := s.paymentRepo.Delete(ctx, entry.ID); err != nil {
				s.logger.Error("Release: failed to delete payment for entry id=%s: %v", entry.ID, err)
				return nil, fmt.Errorf("%w: Release - delete payment: %v", ErrInternal, err)
			}
			resp.PaymentDeleted = true
		}
	}

	// Удаляем запись
	if err := s.agendaRepo.Delete(ctx, req.VenueID, entry.ID); err != nil {
		s.logger.Error("Release: failed to delete entry id=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: Release - delete entry: %v", ErrInternal, err)
	}

	s.logger.Info("Release: successfully released entry id=%s, paymentDeleted=%t", entry.ID, resp.PaymentDeleted)
	return resp, nil
}

// GetReceipt возвращает квитанцию архивной резервации
// Архив не дополняется ценой: итог берётся только из архивной оплаты
func (s *Service) GetReceipt(ctx context.Context, venueID, agendaID string) (*models.ReceiptResponse, error) {
	s.logger.Info("GetReceipt: fetching archived entry id=%s for venue=%s", agendaID, venueID)

	entry, err := s.agendaRepo.GetEntry(ctx, domain.SourceArchive, venueID, agendaID)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrEntryNotFound) {
			s.logger.Warn("GetReceipt: archived entry id=%s not found", agendaID)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("GetReceipt: repository error for entry id=%s: %v", agendaID, err)
		return nil, fmt.Errorf("%w: GetReceipt - repository error: %v", ErrInternal, err)
	}

	record, err := s.paymentRepo.Get(ctx, domain.SourceArchive, entry.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		s.logger.Error("GetReceipt: payment repository error for entry id=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: GetReceipt - payment repository error: %v", ErrInternal, err)
	}

	courts, err := s.catalogRepo.ListCourts(ctx, venueID)
	if err != nil {
		s.logger.Error("GetReceipt: failed to list courts for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetReceipt - list courts: %v", ErrInternal, err)
	}
	slots, err := s.catalogRepo.ListTimeSlots(ctx, venueID)
	if err != nil {
		s.logger.Error("GetReceipt: failed to list time slots for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetReceipt - list time slots: %v", ErrInternal, err)
	}

	ledger := domain.DeriveLedger(*entry, record, nil)
	receipt := models.FromDomainReceipt(*entry, ledger, domain.CourtName(courts, entry.CourtID), slotTime(slots, entry.SlotID))

	s.logger.Info("GetReceipt: successfully fetched receipt for entry id=%s", entry.ID)
	return receipt, nil
}

// Вспомогательные методы

func slotTime(slots []domain.TimeSlot, id string) types.TimeString {
	for _, slot := range slots {
		if slot.ID == id {
			return slot.Time.Normalize()
		}
	}
	return ""
}
