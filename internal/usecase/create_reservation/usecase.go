package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	cronogramaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/cronograma"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
)

// UseCase use case записи ячейки: резервация клиента или блокировка
type UseCase struct {
	catalogRepo  CatalogRepository
	agendaRepo   AgendaRepository
	paymentRepo  PaymentRepository
	overrideRepo OverrideRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	agendaRepo AgendaRepository,
	paymentRepo PaymentRepository,
	overrideRepo OverrideRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		agendaRepo:   agendaRepo,
		paymentRepo:  paymentRepo,
		overrideRepo: overrideRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute записывает ячейку (дата, корт, слот)
// Свободная ячейка вставляется, конфликт уникальности означает, что её успели занять.
// Занятая ячейка перезаписывается, если резервация не оплачена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: venue=%s, date=%s, court=%s, slot=%s, block=%t",
		req.VenueID, req.Date, req.CourtID, req.SlotID, req.Block)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом по часовому поясу площадки
	today := domain.VenueToday(uc.timeProvider.Now(), uc.location)
	if req.Date.Before(today) {
		uc.logger.Warn("CreateReservation: date=%s is before today=%s", req.Date, today)
		return nil, ErrPastDate
	}

	// 3. Корт и слот площадки
	courts, err := uc.catalogRepo.ListCourts(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}
	if _, err := findCourt(courts, req.CourtID); err != nil {
		uc.logger.Warn("CreateReservation: court=%s not found in venue=%s", req.CourtID, req.VenueID)
		return nil, err
	}

	slots, err := uc.catalogRepo.ListTimeSlots(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}
	slot, err := findSlot(slots, req.SlotID)
	if err != nil {
		uc.logger.Warn("CreateReservation: slot=%s not found in venue=%s", req.SlotID, req.VenueID)
		return nil, err
	}

	// 4. Исключение расписания на дату
	override, err := uc.overrideRepo.GetOverride(ctx, req.VenueID, req.Date)
	if err != nil && !errors.Is(err, cronogramaRepo.ErrOverrideNotFound) {
		uc.logger.Error("CreateReservation: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
	}
	if err := domain.ActionAllowed(req.Date, today, slot.Time, override); err != nil {
		uc.logger.Warn("CreateReservation: action not allowed: %v", err)
		if errors.Is(err, domain.ErrPastDate) {
			return nil, ErrPastDate
		}
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}

	// 5. Цена слота и проверка абона
	var price *int64
	if !req.Block {
		price, err = uc.catalogRepo.ResolvePrice(ctx, req.VenueID, req.Date, slot.Time)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to resolve price: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve price: %v", ErrInternal, err)
		}
		depositCap, err := uc.depositCap(ctx, req.VenueID, price)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateDeposit(req.Deposit, depositCap); err != nil {
			uc.logger.Warn("CreateReservation: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDeposit, err)
		}
	}

	entry := domain.ScheduleEntry{
		VenueID:       req.VenueID,
		Date:          req.Date,
		CourtID:       req.CourtID,
		SlotID:        req.SlotID,
		Status:        domain.EntryReserved,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Source:        domain.SourceLive,
	}
	if req.Block {
		entry.Status = domain.EntryBlocked
	}

	// 6. Запись ячейки
	existing, err := uc.agendaRepo.FindByCell(ctx, req.VenueID, entry.Key())
	if err != nil && !errors.Is(err, agendaRepo.ErrEntryNotFound) {
		uc.logger.Error("CreateReservation: failed to find cell entry: %v", err)
		return nil, fmt.Errorf("%w: failed to find cell entry: %v", ErrInternal, err)
	}

	var saved *domain.ScheduleEntry
	if existing == nil {
		saved, err = uc.agendaRepo.Create(ctx, entry)
		if err != nil {
			if errors.Is(err, agendaRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: cell already taken: date=%s, court=%s, slot=%s",
					req.Date, req.CourtID, req.SlotID)
				return nil, ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create entry: %v", err)
			return nil, fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}
	} else {
		if err := uc.ensureModifiable(ctx, *existing); err != nil {
			return nil, err
		}
		entry.ID = existing.ID
		saved, err = uc.agendaRepo.Save(ctx, entry)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to save entry id=%s: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: failed to save entry: %v", ErrInternal, err)
		}
	}

	// 7. Оплата: у блокировки её нет, у резервации создаётся заново
	resp := &Response{Entry: *saved, Price: price}
	if req.Block {
		if existing != nil {
			if err := uc.paymentRepo.Delete(ctx, saved.ID); err != nil {
				uc.logger.Error("CreateReservation: failed to delete payment of agenda=%s: %v", saved.ID, err)
				return nil, fmt.Errorf("%w: failed to delete payment: %v", ErrInternal, err)
			}
		}
		uc.logger.Info("CreateReservation: blocked agenda=%s", saved.ID)
		return resp, nil
	}

	record := domain.PaymentRecord{
		AgendaID:      saved.ID,
		Deposit:       req.Deposit,
		Status:        domain.InitialPaymentStatus(req.Deposit),
		CustomerPhone: req.CustomerPhone,
	}
	if price != nil {
		record.Total = *price
	}
	if err := uc.paymentRepo.Save(ctx, record); err != nil {
		uc.logger.Error("CreateReservation: failed to save payment of agenda=%s: %v", saved.ID, err)
		uc.rollbackEntry(ctx, req.VenueID, saved.ID, existing == nil)
		return nil, fmt.Errorf("%w: failed to save payment: %v", ErrInternal, err)
	}
	resp.Payment = &record

	uc.logger.Info("CreateReservation: reserved agenda=%s, deposit=%d, status=%s", saved.ID, record.Deposit, record.Status)

	return resp, nil
}

// depositCap верхняя граница абона: цена слота, а если она неизвестна, максимальная цена площадки
func (uc *UseCase) depositCap(ctx context.Context, venueID string, price *int64) (*int64, error) {
	if price != nil {
		return price, nil
	}
	rules, err := uc.catalogRepo.ListPriceRules(ctx, venueID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list price rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list price rules: %v", ErrInternal, err)
	}
	if maxPrice, ok := domain.MaxPrice(rules); ok {
		return &maxPrice, nil
	}
	return nil, nil
}

// rollbackEntry удаляет только что созданную запись, оставшуюся без оплаты.
// Перезаписанная запись остаётся: open_reservation дополнит отсутствующую оплату ценой
func (uc *UseCase) rollbackEntry(ctx context.Context, venueID, agendaID string, created bool) {
	if !created {
		uc.logger.Warn("CreateReservation: agenda=%s kept without payment, backfilled on open", agendaID)
		return
	}
	if err := uc.agendaRepo.Delete(ctx, venueID, agendaID); err != nil {
		uc.logger.Error("CreateReservation: failed to roll back agenda=%s: %v", agendaID, err)
		return
	}
	uc.logger.Info("CreateReservation: rolled back agenda=%s", agendaID)
}

// ensureModifiable запрещает перезапись оплаченной резервации
func (uc *UseCase) ensureModifiable(ctx context.Context, existing domain.ScheduleEntry) error {
	if existing.Status != domain.EntryReserved {
		return nil
	}

	record, err := uc.paymentRepo.Get(ctx, domain.SourceLive, existing.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("CreateReservation: failed to get payment of agenda=%s: %v", existing.ID, err)
		return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	if err := domain.DeriveLedger(existing, record, nil).CanModify(); err != nil {
		uc.logger.Warn("CreateReservation: agenda=%s is paid", existing.ID)
		return ErrReservationPaid
	}
	return nil
}
