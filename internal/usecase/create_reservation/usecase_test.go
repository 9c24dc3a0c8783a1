package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	cronogramaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/cronograma"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	price *int64
	rules []domain.PriceRule
}

func (f *fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	return []domain.Court{
		{ID: "c1", VenueID: "v1", Name: "Cancha 1", Active: true},
		{ID: "c2", VenueID: "v1", Name: "Cancha 2", Active: false},
	}, nil
}

func (f *fakeCatalog) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{
		{ID: "s1", VenueID: "v1", Time: "19:00", Active: true},
		{ID: "s2", VenueID: "v1", Time: "22:00", Active: true},
	}, nil
}

func (f *fakeCatalog) ResolvePrice(_ context.Context, _ string, _ types.Date, _ types.TimeString) (*int64, error) {
	return f.price, nil
}

func (f *fakeCatalog) ListPriceRules(_ context.Context, _ string) ([]domain.PriceRule, error) {
	return f.rules, nil
}

type fakeAgenda struct {
	existing  *domain.ScheduleEntry
	createErr error
	created   []domain.ScheduleEntry
	saved     []domain.ScheduleEntry
	deleted   []string
}

func (f *fakeAgenda) FindByCell(_ context.Context, _ string, _ domain.CellKey) (*domain.ScheduleEntry, error) {
	if f.existing == nil {
		return nil, agendaRepo.ErrEntryNotFound
	}
	return f.existing, nil
}

func (f *fakeAgenda) Create(_ context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, entry)
	entry.ID = "new-id"
	return &entry, nil
}

func (f *fakeAgenda) Save(_ context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	f.saved = append(f.saved, entry)
	return &entry, nil
}

func (f *fakeAgenda) Delete(_ context.Context, _, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePayments struct {
	record  *domain.PaymentRecord
	saveErr error
	saved   []domain.PaymentRecord
	deleted []string
}

func (f *fakePayments) Get(_ context.Context, _ domain.Source, _ string) (*domain.PaymentRecord, error) {
	if f.record == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.record, nil
}

func (f *fakePayments) Save(_ context.Context, record domain.PaymentRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakePayments) Delete(_ context.Context, agendaID string) error {
	f.deleted = append(f.deleted, agendaID)
	return nil
}

type fakeOverrides struct {
	override *domain.DayOverride
}

func (f *fakeOverrides) GetOverride(_ context.Context, _ string, _ types.Date) (*domain.DayOverride, error) {
	if f.override == nil {
		return nil, cronogramaRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

var today = types.NewDate(2025, time.March, 12)

type fixture struct {
	uc        *UseCase
	catalog   *fakeCatalog
	agenda    *fakeAgenda
	payments  *fakePayments
	overrides *fakeOverrides
}

func newFixture() *fixture {
	price := int64(20000)
	f := &fixture{
		catalog:   &fakeCatalog{price: &price},
		agenda:    &fakeAgenda{},
		payments:  &fakePayments{},
		overrides: &fakeOverrides{},
	}
	f.uc = NewUseCase(f.catalog, f.agenda, f.payments, f.overrides, time.UTC, logger.Nop())
	f.uc.timeProvider = fakeTime{now: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)}
	return f
}

func reservation() *Request {
	return &Request{
		VenueID:       "v1",
		Date:          today.AddDays(1),
		CourtID:       "c1",
		SlotID:        "s1",
		CustomerName:  "  Ana Pérez ",
		CustomerPhone: "9 8765 4321",
		Deposit:       5000,
	}
}

func TestExecute_CreatesReservationWithPayment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), reservation())
	require.NoError(t, err)

	require.Len(t, f.agenda.created, 1)
	entry := f.agenda.created[0]
	assert.Equal(t, domain.EntryReserved, entry.Status)
	assert.Equal(t, "Ana Pérez", entry.CustomerName)
	assert.Equal(t, "+56987654321", entry.CustomerPhone)

	require.Len(t, f.payments.saved, 1)
	record := f.payments.saved[0]
	assert.Equal(t, "new-id", record.AgendaID)
	assert.Equal(t, int64(20000), record.Total)
	assert.Equal(t, int64(5000), record.Deposit)
	assert.Equal(t, domain.PaymentPartial, record.Status)

	assert.Equal(t, "new-id", resp.Entry.ID)
	require.NotNil(t, resp.Price)
	assert.Equal(t, int64(20000), *resp.Price)
}

func TestExecute_ZeroDepositIsUnpaid(t *testing.T) {
	f := newFixture()
	req := reservation()
	req.Deposit = 0

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnpaid, f.payments.saved[0].Status)
}

func TestExecute_UnknownPriceKeepsZeroTotal(t *testing.T) {
	f := newFixture()
	f.catalog.price = nil

	resp, err := f.uc.Execute(context.Background(), reservation())
	require.NoError(t, err)
	assert.Nil(t, resp.Price)
	assert.Zero(t, f.payments.saved[0].Total)
}

func TestExecute_UnknownPriceCapsDepositByMaxRule(t *testing.T) {
	f := newFixture()
	f.catalog.price = nil
	f.catalog.rules = []domain.PriceRule{
		{ID: "r1", Start: "08:00", End: "18:00", Weekdays: []domain.ISOWeekday{domain.Monday}, Price: 18000},
		{ID: "r2", Start: "18:00", End: "23:00", Weekdays: []domain.ISOWeekday{domain.Monday}, Price: 25000},
	}

	req := reservation()
	req.Deposit = 30000
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDeposit)
	assert.Empty(t, f.agenda.created)

	req = reservation()
	req.Deposit = 25000
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, f.payments.saved, 1)
	assert.Equal(t, int64(25000), f.payments.saved[0].Deposit)
}

func TestExecute_PaymentFailureRollsBackNewEntry(t *testing.T) {
	f := newFixture()
	f.payments.saveErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), reservation())
	assert.ErrorIs(t, err, ErrInternal)
	require.Len(t, f.agenda.created, 1)
	assert.Equal(t, []string{"new-id"}, f.agenda.deleted)
}

func TestExecute_PaymentFailureKeepsOverwrittenEntry(t *testing.T) {
	f := newFixture()
	f.agenda.existing = &domain.ScheduleEntry{ID: "a1", VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Status: domain.EntryBlocked}
	f.payments.saveErr = errors.New("connection reset")

	req := reservation()
	req.Date = today
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.agenda.deleted)
}

func TestExecute_Block(t *testing.T) {
	f := newFixture()
	req := &Request{VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Block: true, CustomerName: "x", Deposit: 100}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	entry := f.agenda.created[0]
	assert.Equal(t, domain.EntryBlocked, entry.Status)
	assert.Equal(t, domain.BlockedCustomerName, entry.CustomerName)
	assert.Empty(t, f.payments.saved)
	assert.Nil(t, resp.Payment)
}

func TestExecute_ReblockExistingDropsPayment(t *testing.T) {
	f := newFixture()
	f.agenda.existing = &domain.ScheduleEntry{ID: "a1", VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved}
	f.payments.record = &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial}

	_, err := f.uc.Execute(context.Background(), &Request{VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Block: true})
	require.NoError(t, err)

	require.Len(t, f.agenda.saved, 1)
	assert.Equal(t, "a1", f.agenda.saved[0].ID)
	assert.Equal(t, []string{"a1"}, f.payments.deleted)
}

func TestExecute_PaidReservationCannotBeOverwritten(t *testing.T) {
	f := newFixture()
	f.agenda.existing = &domain.ScheduleEntry{ID: "a1", VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved}
	f.payments.record = &domain.PaymentRecord{AgendaID: "a1", Total: 20000, Deposit: 0, Status: domain.PaymentPaid}

	_, err := f.uc.Execute(context.Background(), &Request{VenueID: "v1", Date: today, CourtID: "c1", SlotID: "s1", Block: true})
	assert.ErrorIs(t, err, ErrReservationPaid)
	assert.Empty(t, f.agenda.saved)
}

func TestExecute_RaceLosesWithConflict(t *testing.T) {
	f := newFixture()
	f.agenda.createErr = agendaRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), reservation())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.payments.saved)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(_ *fixture, req *Request) { req.CustomerName = " " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid phone",
			mutate:  func(_ *fixture, req *Request) { req.CustomerPhone = "123" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative deposit",
			mutate:  func(_ *fixture, req *Request) { req.Deposit = -1 },
			wantErr: ErrInvalidDeposit,
		},
		{
			name:    "deposit above price",
			mutate:  func(_ *fixture, req *Request) { req.Deposit = 25000 },
			wantErr: ErrInvalidDeposit,
		},
		{
			name:    "past date",
			mutate:  func(_ *fixture, req *Request) { req.Date = today.AddDays(-1) },
			wantErr: ErrPastDate,
		},
		{
			name:    "inactive court",
			mutate:  func(_ *fixture, req *Request) { req.CourtID = "c2" },
			wantErr: ErrCourtNotFound,
		},
		{
			name:    "unknown slot",
			mutate:  func(_ *fixture, req *Request) { req.SlotID = "s9" },
			wantErr: ErrSlotNotFound,
		},
		{
			name: "closed day",
			mutate: func(f *fixture, req *Request) {
				f.overrides.override = &domain.DayOverride{VenueID: "v1", Date: req.Date, Kind: domain.OverrideClosed}
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "outside special hours",
			mutate: func(f *fixture, req *Request) {
				req.SlotID = "s2"
				f.overrides.override = &domain.DayOverride{
					VenueID: "v1", Date: req.Date, Kind: domain.OverrideSpecialHours, Open: "10:00", Close: "20:00",
				}
			},
			wantErr: ErrSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := reservation()
			tt.mutate(f, req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.agenda.created)
			assert.Empty(t, f.payments.saved)
		})
	}
}
