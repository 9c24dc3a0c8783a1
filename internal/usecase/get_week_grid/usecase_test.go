package get_week_grid

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	courts []domain.Court
	slots  []domain.TimeSlot
	err    error
}

func (f *fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	return f.courts, f.err
}

func (f *fakeCatalog) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	return f.slots, nil
}

type listCall struct {
	source   domain.Source
	from, to types.Date
}

type fakeAgenda struct {
	mu      sync.Mutex
	entries map[domain.Source][]domain.ScheduleEntry
	calls   []listCall
}

func (f *fakeAgenda) ListEntries(_ context.Context, source domain.Source, _ string, from, to types.Date) ([]domain.ScheduleEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, listCall{source: source, from: from, to: to})
	return f.entries[source], nil
}

func (f *fakeAgenda) call(source domain.Source) (listCall, bool) {
	for _, c := range f.calls {
		if c.source == source {
			return c, true
		}
	}
	return listCall{}, false
}

type fakePayments struct {
	records map[string]domain.PaymentRecord
	asked   []string
}

func (f *fakePayments) ListByAgendaIDs(_ context.Context, _ domain.Source, ids []string) (map[string]domain.PaymentRecord, error) {
	f.asked = ids
	return f.records, nil
}

type fakeOverrides struct {
	overrides map[types.Date]domain.DayOverride
}

func (f *fakeOverrides) ListOverrides(_ context.Context, _ string, _, _ types.Date) (map[types.Date]domain.DayOverride, error) {
	return f.overrides, nil
}

var (
	monday    = types.NewDate(2025, time.March, 10)
	tuesday   = types.NewDate(2025, time.March, 11)
	wednesday = types.NewDate(2025, time.March, 12)
	friday    = types.NewDate(2025, time.March, 14)
	sunday    = types.NewDate(2025, time.March, 16)
)

func newFixture() (*UseCase, *fakeAgenda, *fakePayments) {
	catalog := &fakeCatalog{
		courts: []domain.Court{{ID: "c1", VenueID: "v1", Name: "Cancha 1", Active: true}},
		slots: []domain.TimeSlot{
			{ID: "s2", VenueID: "v1", Time: "20:00", Active: true},
			{ID: "s1", VenueID: "v1", Time: "19:00", Active: true},
		},
	}
	agenda := &fakeAgenda{entries: map[domain.Source][]domain.ScheduleEntry{
		domain.SourceLive: {
			{ID: "a1", VenueID: "v1", Date: wednesday, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved, CustomerName: "Ana"},
			{ID: "a2", VenueID: "v1", Date: friday, CourtID: "c1", SlotID: "s2", Status: domain.EntryBlocked, CustomerName: domain.BlockedCustomerName},
		},
		domain.SourceArchive: {
			{ID: "h1", VenueID: "v1", Date: monday, CourtID: "c1", SlotID: "s1", Status: domain.EntryReserved, CustomerName: "Luis"},
		},
	}}
	payments := &fakePayments{records: map[string]domain.PaymentRecord{
		"a1": {AgendaID: "a1", Total: 20000, Deposit: 5000, Status: domain.PaymentPartial},
	}}
	overrides := &fakeOverrides{overrides: map[types.Date]domain.DayOverride{
		friday: {VenueID: "v1", Date: friday, Kind: domain.OverrideSpecialHours, Open: "10:00", Close: "20:00"},
	}}

	uc := NewUseCase(catalog, agenda, payments, overrides, time.UTC, logger.Nop())
	uc.timeProvider = fakeTime{now: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)}
	return uc, agenda, payments
}

func TestExecute_SplitsLiveAndArchive(t *testing.T) {
	uc, agenda, payments := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "v1", Date: friday})
	require.NoError(t, err)

	live, ok := agenda.call(domain.SourceLive)
	require.True(t, ok)
	assert.Equal(t, wednesday, live.from)
	assert.Equal(t, sunday, live.to)

	archive, ok := agenda.call(domain.SourceArchive)
	require.True(t, ok)
	assert.Equal(t, monday, archive.from)
	assert.Equal(t, tuesday, archive.to)

	assert.ElementsMatch(t, []string{"a1", "a2"}, payments.asked)

	grid := resp.Grid
	assert.Equal(t, monday, grid.WeekStart)
	assert.Equal(t, wednesday, grid.Today)
	assert.Len(t, grid.Cells(), 14)

	archived, _ := grid.Cell(monday, "c1", "s1")
	assert.Equal(t, domain.CellArchivedPaid, archived.State)
	assert.Equal(t, domain.ActionReceipt, archived.Action)

	pastFree, _ := grid.Cell(tuesday, "c1", "s1")
	assert.Equal(t, domain.ActionNone, pastFree.Action)
	assert.False(t, pastFree.Interactive)

	reserved, _ := grid.Cell(wednesday, "c1", "s1")
	assert.Equal(t, domain.CellReserved, reserved.State)
	assert.Equal(t, domain.LedgerPartiallyPaid, reserved.Payment)
	assert.Equal(t, domain.ActionManage, reserved.Action)

	outside, _ := grid.Cell(friday, "c1", "s2")
	assert.Equal(t, domain.CellBlocked, outside.State)
	assert.False(t, outside.Interactive)
	assert.NotEmpty(t, outside.Reason)
}

func TestExecute_DefaultsToCurrentWeek(t *testing.T) {
	uc, _, _ := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, monday, resp.Grid.WeekStart)
}

func TestExecute_FutureWeekSkipsArchive(t *testing.T) {
	uc, agenda, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", Date: monday.AddDays(7)})
	require.NoError(t, err)

	_, ok := agenda.call(domain.SourceArchive)
	assert.False(t, ok)
	live, ok := agenda.call(domain.SourceLive)
	require.True(t, ok)
	assert.Equal(t, monday.AddDays(7), live.from)
}

func TestExecute_PastWeekSkipsLive(t *testing.T) {
	uc, agenda, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{VenueID: "v1", Date: monday.AddDays(-7)})
	require.NoError(t, err)

	_, ok := agenda.call(domain.SourceLive)
	assert.False(t, ok)
	archive, ok := agenda.call(domain.SourceArchive)
	require.True(t, ok)
	assert.Equal(t, monday.AddDays(-1), archive.to)
}

func TestExecute_Errors(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc.catalogRepo = &fakeCatalog{err: errors.New("boom")}
	_, err = uc.Execute(context.Background(), &Request{VenueID: "v1"})
	assert.ErrorIs(t, err, ErrInternal)
}
