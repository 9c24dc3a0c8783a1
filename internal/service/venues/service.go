package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	catalogRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-VenueConsole/internal/service/venues/models"
)

// Service сервис площадок
type Service struct {
	catalogRepo  CatalogRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(catalogRepo CatalogRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ResolveOwnerVenue возвращает площадку владельца сессии
// Используется middleware авторизации, поэтому отдаёт domain модель вместе с PIN
func (s *Service) ResolveOwnerVenue(ctx context.Context, ownerID string) (*domain.Venue, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	venue, err := s.catalogRepo.GetVenueByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			s.logger.Warn("ResolveOwnerVenue: no venue for owner=%s", ownerID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("ResolveOwnerVenue: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ResolveOwnerVenue - repository error: %v", ErrInternal, err)
	}
	return venue, nil
}

// GetProfile возвращает площадку с кортами и слотами для шапки консоли
func (s *Service) GetProfile(ctx context.Context, venue domain.Venue) (*models.VenueResponse, error) {
	s.logger.Info("GetProfile: fetching catalog for venue=%s", venue.ID)

	courts, err := s.catalogRepo.ListCourts(ctx, venue.ID)
	if err != nil {
		s.logger.Error("GetProfile: failed to list courts for venue=%s: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: GetProfile - list courts: %v", ErrInternal, err)
	}
	slots, err := s.catalogRepo.ListTimeSlots(ctx, venue.ID)
	if err != nil {
		s.logger.Error("GetProfile: failed to list time slots for venue=%s: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: GetProfile - list time slots: %v", ErrInternal, err)
	}

	today := domain.VenueToday(s.timeProvider.Now(), s.location)
	return models.FromDomainVenue(venue, today, courts, slots), nil
}

// PublicAvailability публичная доступность площадки по slug на 90 дней вперёд
func (s *Service) PublicAvailability(ctx context.Context, slug string) (*models.PublicAvailabilityResponse, error) {
	slug = strings.TrimSpace(slug)
	s.logger.Info("PublicAvailability: slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	from := domain.VenueToday(s.timeProvider.Now(), s.location)
	to := from.AddDays(domain.PublicAvailabilityDays)

	availability, err := s.catalogRepo.GetPublicAvailability(ctx, slug, from, to)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			s.logger.Warn("PublicAvailability: slug=%s not found", slug)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("PublicAvailability: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: PublicAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PublicAvailability: slug=%s, %d slots from %s to %s", slug, len(availability.Slots), from, to)
	return models.FromDomainPublic(*availability), nil
}
