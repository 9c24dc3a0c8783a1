package venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	catalogRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeCatalog struct {
	from, to types.Date
}

func (f *fakeCatalog) GetVenueByOwner(_ context.Context, ownerID string) (*domain.Venue, error) {
	if ownerID != "u1" {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return &domain.Venue{ID: "v1", Name: "Club", Slug: "club", OwnerID: "u1", PINCode: "4321"}, nil
}

func (f *fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	return []domain.Court{{ID: "c1", Name: "Cancha 1", Active: true}}, nil
}

func (f *fakeCatalog) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{{ID: "s1", Time: "19:00:00", Active: true}}, nil
}

func (f *fakeCatalog) GetPublicAvailability(_ context.Context, slug string, from, to types.Date) (*domain.PublicAvailability, error) {
	f.from, f.to = from, to
	if slug != "club" {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return &domain.PublicAvailability{
		VenueName: "Club",
		From:      from,
		To:        to,
		Slots: []domain.PublicSlot{
			{CourtID: "c1", CourtName: "Cancha 1", Date: from, Time: "19:00:00", Status: "ocupado"},
		},
	}, nil
}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

func newService(t *testing.T) (*Service, *fakeCatalog) {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	catalog := &fakeCatalog{}
	svc := NewService(catalog, loc, logger.Nop())
	// 02:00 UTC 12 марта это ещё 11 марта в Сантьяго
	svc.timeProvider = fakeTime{now: time.Date(2025, time.March, 12, 2, 0, 0, 0, time.UTC)}
	return svc, catalog
}

func TestService_ResolveOwnerVenue(t *testing.T) {
	svc, _ := newService(t)

	venue, err := svc.ResolveOwnerVenue(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "v1", venue.ID)

	_, err = svc.ResolveOwnerVenue(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = svc.ResolveOwnerVenue(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetProfile(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.GetProfile(context.Background(), domain.Venue{ID: "v1", Name: "Club", PINCode: "4321"})
	require.NoError(t, err)
	assert.True(t, resp.HasPIN)
	assert.Equal(t, types.NewDate(2025, time.March, 11), resp.Today)
	assert.Equal(t, "19:00", resp.Slots[0].Time)
}

func TestService_PublicAvailability(t *testing.T) {
	svc, catalog := newService(t)

	resp, err := svc.PublicAvailability(context.Background(), " club ")
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2025, time.March, 11), catalog.from)
	assert.Equal(t, catalog.from.AddDays(domain.PublicAvailabilityDays), catalog.to)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "19:00", resp.Slots[0].Time)

	_, err = svc.PublicAvailability(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
