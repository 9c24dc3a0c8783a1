package mark_paid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	price *int64
}

func (f *fakeCatalog) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{{ID: "s1", Time: "19:00", Active: true}}, nil
}

func (f *fakeCatalog) ResolvePrice(_ context.Context, _ string, _ types.Date, _ types.TimeString) (*int64, error) {
	return f.price, nil
}

type fakeAgenda struct {
	entry *domain.ScheduleEntry
}

func (f *fakeAgenda) GetEntry(_ context.Context, _ domain.Source, _, id string) (*domain.ScheduleEntry, error) {
	if f.entry == nil || f.entry.ID != id {
		return nil, agendaRepo.ErrEntryNotFound
	}
	return f.entry, nil
}

type fakePayments struct {
	record *domain.PaymentRecord
	saved  []domain.PaymentRecord
	closed []string
}

func (f *fakePayments) Get(_ context.Context, _ domain.Source, _ string) (*domain.PaymentRecord, error) {
	if f.record == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.record, nil
}

func (f *fakePayments) Save(_ context.Context, record domain.PaymentRecord) error {
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakePayments) MarkPaid(_ context.Context, agendaID string) error {
	f.closed = append(f.closed, agendaID)
	return nil
}

var today = types.NewDate(2025, time.March, 12)

func newUseCase(date types.Date, record *domain.PaymentRecord, price *int64) (*UseCase, *fakePayments) {
	agenda := &fakeAgenda{entry: &domain.ScheduleEntry{
		ID: "a1", VenueID: "v1", Date: date, CourtID: "c1", SlotID: "s1",
		Status: domain.EntryReserved, CustomerName: "Ana", Source: domain.SourceLive,
	}}
	payments := &fakePayments{record: record}
	uc := NewUseCase(&fakeCatalog{price: price}, agenda, payments, time.UTC, logger.Nop())
	uc.timeProvider = fakeTime{now: time.Date(2025, 3, 12, 21, 0, 0, 0, time.UTC)}
	return uc, payments
}

func TestExecute_TodayNoConfirmationNeeded(t *testing.T) {
	uc, payments := newUseCase(today, &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial}, nil)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a1"}, payments.closed)
	assert.Empty(t, payments.saved)
	assert.Equal(t, domain.LedgerPaid, resp.Ledger.Status)
	assert.Zero(t, resp.Ledger.Balance)
	assert.Equal(t, int64(20000), resp.Ledger.Total)
}

func TestExecute_OtherDayRequiresConfirmation(t *testing.T) {
	record := &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Status: domain.PaymentUnpaid}
	uc, payments := newUseCase(today.AddDays(2), record, nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1"})
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, payments.closed)

	_, err = uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1", Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, payments.closed)
}

func TestExecute_BackfillsBeforeClosing(t *testing.T) {
	price := int64(18000)
	uc, payments := newUseCase(today, nil, &price)

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1"})
	require.NoError(t, err)

	require.Len(t, payments.saved, 1)
	assert.Equal(t, int64(18000), payments.saved[0].Total)
	assert.Equal(t, domain.PaymentUnpaid, payments.saved[0].Status)
	assert.Equal(t, []string{"a1"}, payments.closed)
}

func TestExecute_PastDateIsReadOnly(t *testing.T) {
	record := &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial}
	uc, payments := newUseCase(today.AddDays(-3), record, nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1", Confirmed: true})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, payments.closed)
	assert.Empty(t, payments.saved)
}

func TestExecute_FullDepositCanBeClosed(t *testing.T) {
	record := &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Deposit: 20000, Status: domain.PaymentPartial}
	uc, payments := newUseCase(today, record, nil)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a1"}, payments.closed)
	assert.True(t, resp.Ledger.Closed)
	assert.Equal(t, domain.LedgerPaid, resp.Ledger.Status)
}

func TestExecute_Rejections(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		uc, payments := newUseCase(today, &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Status: domain.PaymentPaid}, nil)
		_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1", Confirmed: true})
		assert.ErrorIs(t, err, ErrReservationPaid)
		assert.Empty(t, payments.closed)
	})

	t.Run("price undetermined", func(t *testing.T) {
		uc, payments := newUseCase(today, nil, nil)
		_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1", Confirmed: true})
		assert.ErrorIs(t, err, ErrPriceUndetermined)
		assert.Empty(t, payments.closed)
	})

	t.Run("blocked entry", func(t *testing.T) {
		uc, _ := newUseCase(today, nil, nil)
		uc.agendaRepo.(*fakeAgenda).entry.Status = domain.EntryBlocked
		_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "a1"})
		assert.ErrorIs(t, err, ErrNotReservation)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _ := newUseCase(today, nil, nil)
		_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", AgendaID: "zz"})
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newUseCase(today, nil, nil)
		_, err := uc.Execute(context.Background(), &Request{VenueID: "v1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
