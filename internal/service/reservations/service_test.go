package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeAgenda struct {
	entries map[domain.Source]map[string]domain.ScheduleEntry
	calls   *[]string
}

func (f *fakeAgenda) GetEntry(_ context.Context, source domain.Source, _, id string) (*domain.ScheduleEntry, error) {
	e, ok := f.entries[source][id]
	if !ok {
		return nil, agendaRepo.ErrEntryNotFound
	}
	return &e, nil
}

func (f *fakeAgenda) Delete(_ context.Context, _, id string) error {
	*f.calls = append(*f.calls, "entry:"+id)
	delete(f.entries[domain.SourceLive], id)
	return nil
}

type fakePayments struct {
	records map[domain.Source]map[string]domain.PaymentRecord
	calls   *[]string
	err     error
}

func (f *fakePayments) Get(_ context.Context, source domain.Source, agendaID string) (*domain.PaymentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.records[source][agendaID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return &r, nil
}

func (f *fakePayments) Delete(_ context.Context, agendaID string) error {
	*f.calls = append(*f.calls, "payment:"+agendaID)
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	return []domain.Court{{ID: "c1", Name: "Cancha 1", Active: true}}, nil
}

func (fakeCatalog) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{{ID: "s1", Time: "19:00:00", Active: true}}, nil
}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fixture struct {
	svc      *Service
	agenda   *fakeAgenda
	payments *fakePayments
	calls    *[]string
}

func newFixture() *fixture {
	calls := &[]string{}
	date := types.NewDate(2025, time.March, 12)
	agenda := &fakeAgenda{
		calls: calls,
		entries: map[domain.Source]map[string]domain.ScheduleEntry{
			domain.SourceLive: {
				"a1": {ID: "a1", Date: date, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved, CustomerName: "Ana"},
				"a2": {ID: "a2", Date: date, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved, CustomerName: "Luis"},
				"b1": {ID: "b1", Date: date, CourtID: "c1", SlotID: "s1", Status: domain.EntryBlocked, CustomerName: domain.BlockedCustomerName},
			},
			domain.SourceArchive: {
				"h1": {ID: "h1", Date: date.AddDays(-7), CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved,
					CustomerName: "Eva", Source: domain.SourceArchive},
			},
		},
	}
	payments := &fakePayments{
		calls: calls,
		records: map[domain.Source]map[string]domain.PaymentRecord{
			domain.SourceLive: {
				"a1": {AgendaID: "a1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial},
				"a2": {AgendaID: "a2", Total: 20000, Deposit: 20000, Status: domain.PaymentPaid},
			},
			domain.SourceArchive: {
				"h1": {AgendaID: "h1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial},
			},
		},
	}
	svc := NewService(agenda, payments, fakeCatalog{}, time.UTC, logger.Nop())
	svc.timeProvider = fakeTime{now: time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC)}
	return &fixture{svc: svc, agenda: agenda, payments: payments, calls: calls}
}

func TestService_Release_DeletesPaymentThenEntry(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "a1"})
	require.NoError(t, err)
	assert.True(t, resp.PaymentDeleted)
	assert.Equal(t, []string{"payment:a1", "entry:a1"}, *f.calls)
}

func TestService_Release_PaidIsRejected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "a2"})
	assert.ErrorIs(t, err, ErrReservationPaid)
	assert.Empty(t, *f.calls)
}

func TestService_Release_PastDateIsReadOnly(t *testing.T) {
	f := newFixture()
	past := f.agenda.entries[domain.SourceLive]["b1"]
	past.Date = types.NewDate(2024, time.February, 6)
	f.agenda.entries[domain.SourceLive]["b1"] = past

	_, err := f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "b1"})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, *f.calls)

	// вчера в часовом поясе площадки тоже прошлое
	yesterday := f.agenda.entries[domain.SourceLive]["a1"]
	yesterday.Date = types.NewDate(2025, time.March, 11)
	f.agenda.entries[domain.SourceLive]["a1"] = yesterday

	_, err = f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "a1"})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, *f.calls)
}

func TestService_Release_Block(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "b1"})
	require.NoError(t, err)
	assert.False(t, resp.PaymentDeleted)
	assert.Equal(t, []string{"entry:b1"}, *f.calls)
}

func TestService_Release_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "zz"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	f.payments.err = errors.New("connection reset")
	_, err = f.svc.Release(context.Background(), &models.ReleaseRequest{VenueID: "v1", AgendaID: "a1"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, *f.calls)
}

func TestService_GetReceipt(t *testing.T) {
	f := newFixture()

	receipt, err := f.svc.GetReceipt(context.Background(), "v1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "Cancha 1", receipt.CourtName)
	assert.Equal(t, "19:00", receipt.Time)
	assert.Equal(t, int64(15000), receipt.Balance)
	assert.Equal(t, string(domain.LedgerPartiallyPaid), receipt.PaymentStatus)

	_, err = f.svc.GetReceipt(context.Background(), "v1", "a1")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
