package mark_paid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
)

// UseCase use case отметки резервации оплаченной
type UseCase struct {
	catalogRepo  CatalogRepository
	agendaRepo   AgendaRepository
	paymentRepo  PaymentRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	agendaRepo AgendaRepository,
	paymentRepo PaymentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		agendaRepo:   agendaRepo,
		paymentRepo:  paymentRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute закрывает оплату резервации через rpc_cerrar_reserva_pagada
// Операция необратима; для резервации не на сегодня требуется подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MarkPaid: venue=%s, agenda=%s, confirmed=%t", req.VenueID, req.AgendaID, req.Confirmed)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MarkPaid: validation failed: %v", err)
		return nil, err
	}

	// 2. Живая запись агенды
	entry, err := uc.agendaRepo.GetEntry(ctx, domain.SourceLive, req.VenueID, req.AgendaID)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrEntryNotFound) {
			uc.logger.Warn("MarkPaid: agenda=%s not found", req.AgendaID)
			return nil, ErrEntryNotFound
		}
		uc.logger.Error("MarkPaid: failed to get agenda=%s: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get entry: %v", ErrInternal, err)
	}
	if entry.Status != domain.EntryReserved {
		uc.logger.Warn("MarkPaid: agenda=%s is %s", entry.ID, entry.Status)
		return nil, ErrNotReservation
	}

	// Прошедшие даты только для чтения
	today := domain.VenueToday(uc.timeProvider.Now(), uc.location)
	if entry.Date.Before(today) {
		uc.logger.Warn("MarkPaid: agenda=%s date=%s is before today=%s", entry.ID, entry.Date, today)
		return nil, ErrPastDate
	}

	// 3. Текущая оплата
	record, err := uc.paymentRepo.Get(ctx, domain.SourceLive, entry.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("MarkPaid: failed to get payment of agenda=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 4. Итог должен быть известен до закрытия
	var price *int64
	if record == nil || record.Total <= 0 {
		price, err = uc.resolvePrice(ctx, *entry)
		if err != nil {
			return nil, err
		}
	}

	ledger := domain.DeriveLedger(*entry, record, price)
	if err := ledger.CanMarkPaid(); err != nil {
		uc.logger.Warn("MarkPaid: agenda=%s: %v", entry.ID, err)
		if errors.Is(err, domain.ErrReservationPaid) {
			return nil, ErrReservationPaid
		}
		return nil, ErrPriceUndetermined
	}

	// 5. Подтверждение для резервации не на сегодня
	if !entry.Date.Equal(today) && !req.Confirmed {
		uc.logger.Info("MarkPaid: agenda=%s date=%s is not today, confirmation required", entry.ID, entry.Date)
		return nil, ErrConfirmationRequired
	}

	// 6. Сохраняем подставленный итог, чтобы RPC закрыл оплату на верную сумму
	if ledger.NeedsBackfill {
		phone := entry.CustomerPhone
		if record != nil && record.CustomerPhone != "" {
			phone = record.CustomerPhone
		}
		if err := uc.paymentRepo.Save(ctx, ledger.Record(entry.ID, phone)); err != nil {
			uc.logger.Error("MarkPaid: failed to backfill total of agenda=%s: %v", entry.ID, err)
			return nil, fmt.Errorf("%w: failed to backfill total: %v", ErrInternal, err)
		}
	}

	// 7. Атомарное закрытие оплаты
	if err := uc.paymentRepo.MarkPaid(ctx, entry.ID); err != nil {
		uc.logger.Error("MarkPaid: failed to close payment of agenda=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to mark paid: %v", ErrInternal, err)
	}

	ledger.Status = domain.LedgerPaid
	ledger.Balance = 0
	ledger.NeedsBackfill = false
	ledger.Closed = true

	uc.logger.Info("MarkPaid: agenda=%s closed, total=%d", entry.ID, ledger.Total)

	return &Response{AgendaID: entry.ID, Ledger: ledger}, nil
}

func (uc *UseCase) resolvePrice(ctx context.Context, entry domain.ScheduleEntry) (*int64, error) {
	slots, err := uc.catalogRepo.ListTimeSlots(ctx, entry.VenueID)
	if err != nil {
		uc.logger.Error("MarkPaid: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}
	for _, slot := range slots {
		if slot.ID != entry.SlotID {
			continue
		}
		price, err := uc.catalogRepo.ResolvePrice(ctx, entry.VenueID, entry.Date, slot.Time)
		if err != nil {
			uc.logger.Error("MarkPaid: failed to resolve price: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve price: %v", ErrInternal, err)
		}
		return price, nil
	}
	return nil, nil
}
