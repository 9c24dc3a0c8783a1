package get_week_grid

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// UseCase use case построения недельной сетки площадки
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

// Execute собирает сетку недели
// Справочники, исключения, живая агенда и архив читаются параллельно;
// отмена контекста запроса прерывает все чтения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekGrid: validation failed: %v", err)
		return nil, err
	}

	today := domain.VenueToday(uc.timeProvider.Now(), uc.location)
	date := req.Date
	if date.IsZero() {
		date = today
	}
	weekStart := domain.WeekStartOf(date)
	weekEnd := weekStart.AddDays(domain.DaysInWeek - 1)

	uc.logger.Info("GetWeekGrid: venue=%s, week=%s, today=%s", req.VenueID, weekStart, today)

	var (
		courts    []domain.Court
		slots     []domain.TimeSlot
		overrides map[types.Date]domain.DayOverride
		live      []domain.ScheduleEntry
		archive   []domain.ScheduleEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courts, err = uc.catalogRepo.ListCourts(gctx, req.VenueID)
		return wrap("list courts", err)
	})
	g.Go(func() error {
		var err error
		slots, err = uc.catalogRepo.ListTimeSlots(gctx, req.VenueID)
		return wrap("list time slots", err)
	})
	g.Go(func() error {
		var err error
		overrides, err = uc.overrideRepo.ListOverrides(gctx, req.VenueID, weekStart, weekEnd)
		return wrap("list overrides", err)
	})

	// прошлое читается только из архива, сегодня и будущее только из живой агенды
	if !weekEnd.Before(today) {
		liveFrom := weekStart
		if liveFrom.Before(today) {
			liveFrom = today
		}
		g.Go(func() error {
			var err error
			live, err = uc.agendaRepo.ListEntries(gctx, domain.SourceLive, req.VenueID, liveFrom, weekEnd)
			return wrap("list live entries", err)
		})
	}
	if weekStart.Before(today) {
		archiveTo := weekEnd
		if !archiveTo.Before(today) {
			archiveTo = today.AddDays(-1)
		}
		g.Go(func() error {
			var err error
			archive, err = uc.agendaRepo.ListEntries(gctx, domain.SourceArchive, req.VenueID, weekStart, archiveTo)
			return wrap("list archive entries", err)
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetWeekGrid: venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	agendaIDs := make([]string, 0, len(live))
	for _, e := range live {
		agendaIDs = append(agendaIDs, e.ID)
	}
	payments, err := uc.paymentRepo.ListByAgendaIDs(ctx, domain.SourceLive, agendaIDs)
	if err != nil {
		uc.logger.Error("GetWeekGrid: failed to list payments for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: list payments: %v", ErrInternal, err)
	}

	overrideList := make([]domain.DayOverride, 0, len(overrides))
	for _, o := range overrides {
		overrideList = append(overrideList, o)
	}

	grid, err := domain.BuildGrid(domain.GridInput{
		VenueID:   req.VenueID,
		WeekStart: weekStart,
		Today:     today,
		Courts:    courts,
		Slots:     slots,
		Overrides: overrideList,
		Live:      live,
		Archive:   archive,
		Payments:  payments,
	})
	if err != nil {
		uc.logger.Error("GetWeekGrid: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: build grid: %v", ErrInternal, err)
	}

	uc.logger.Info("GetWeekGrid: venue=%s, courts=%d, slots=%d, live=%d, archive=%d",
		req.VenueID, len(grid.Courts), len(grid.Slots), len(live), len(archive))

	return &Response{Grid: grid}, nil
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
