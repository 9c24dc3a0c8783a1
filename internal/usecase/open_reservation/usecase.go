package open_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// UseCase use case открытия записи агенды с проекцией оплаты
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

// Execute открывает запись агенды
// Если у живой резервации нет итога, он берётся из get_precio_cancha и сохраняется в оплату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenReservation: venue=%s, agenda=%s, date=%s", req.VenueID, req.AgendaID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OpenReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Хранилище по дате: прошлое только в архиве
	today := domain.VenueToday(uc.timeProvider.Now(), uc.location)
	source := domain.ResolveSource(req.Date, today)

	// 3. Запись агенды
	entry, err := uc.agendaRepo.GetEntry(ctx, source, req.VenueID, req.AgendaID)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrEntryNotFound) {
			uc.logger.Warn("OpenReservation: agenda=%s not found in %s", req.AgendaID, source)
			return nil, ErrEntryNotFound
		}
		uc.logger.Error("OpenReservation: failed to get agenda=%s: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get entry: %v", ErrInternal, err)
	}

	// 4. Корт и время слота
	courts, err := uc.catalogRepo.ListCourts(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("OpenReservation: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}
	slots, err := uc.catalogRepo.ListTimeSlots(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("OpenReservation: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}
	slotTime := slotTimeOf(slots, entry.SlotID)

	resp := &Response{
		Entry:     *entry,
		CourtName: domain.CourtName(courts, entry.CourtID),
		Time:      slotTime,
		ReadOnly:  entry.IsArchived(),
		IsToday:   entry.Date.Equal(today),
	}
	if entry.Status == domain.EntryBlocked {
		return resp, nil
	}

	// 5. Оплата
	record, err := uc.paymentRepo.Get(ctx, source, entry.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("OpenReservation: failed to get payment of agenda=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 6. Цена по данным хранилища, если итог не задан
	var price *int64
	if !entry.IsArchived() && (record == nil || record.Total <= 0) && !slotTime.IsZero() {
		price, err = uc.catalogRepo.ResolvePrice(ctx, req.VenueID, entry.Date, slotTime)
		if err != nil {
			uc.logger.Error("OpenReservation: failed to resolve price: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve price: %v", ErrInternal, err)
		}
	}

	ledger := domain.DeriveLedger(*entry, record, price)
	resp.Ledger = ledger
	resp.ReadOnly = resp.ReadOnly || ledger.IsPaid()

	// 7. Дозаполнение итога; ошибка записи не мешает показать проекцию
	if ledger.NeedsBackfill {
		phone := entry.CustomerPhone
		if record != nil && record.CustomerPhone != "" {
			phone = record.CustomerPhone
		}
		if err := uc.paymentRepo.Save(ctx, ledger.Record(entry.ID, phone)); err != nil {
			uc.logger.Warn("OpenReservation: failed to backfill total of agenda=%s: %v", entry.ID, err)
		} else {
			uc.logger.Info("OpenReservation: backfilled agenda=%s, total=%d, status=%s",
				entry.ID, ledger.Total, ledger.StoredStatus())
		}
	}

	return resp, nil
}

func slotTimeOf(slots []domain.TimeSlot, id string) types.TimeString {
	for _, s := range slots {
		if s.ID == id {
			return s.Time
		}
	}
	return ""
}
