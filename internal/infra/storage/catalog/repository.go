package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Repository справочные данные площадки: площадка, корты, слоты, правила цен
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// GetVenueByOwner возвращает площадку владельца (1:1)
func (r *Repository) GetVenueByOwner(ctx context.Context, ownerID string) (*domain.Venue, error) {
	return r.getVenue(ctx, "GetVenueByOwner", datastore.Eq("owner_id", ownerID))
}

// GetVenueBySlug возвращает площадку по публичному slug
func (r *Repository) GetVenueBySlug(ctx context.Context, slug string) (*domain.Venue, error) {
	return r.getVenue(ctx, "GetVenueBySlug", datastore.Eq("slug", slug))
}

func (r *Repository) getVenue(ctx context.Context, op string, filter datastore.Filter) (*domain.Venue, error) {
	var rows []venueRow
	query := datastore.Query(venueColumns...).Where(filter).WithLimit(1)
	if err := r.store.Select(ctx, tableVenues, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s - select venue: %v", ErrStore, op, err)
	}
	if len(rows) == 0 {
		return nil, ErrVenueNotFound
	}
	venue := rows[0].toDomain()
	return &venue, nil
}

// ListCourts возвращает все корты площадки, включая неактивные
func (r *Repository) ListCourts(ctx context.Context, venueID string) ([]domain.Court, error) {
	var rows []courtRow
	query := datastore.Query("id", "recinto_id", "nombre", "activa").
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Asc("nombre"))
	if err := r.store.Select(ctx, tableCourts, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - select courts: %v", ErrStore, err)
	}

	courts := make([]domain.Court, 0, len(rows))
	for _, row := range rows {
		courts = append(courts, row.toDomain())
	}
	return courts, nil
}

// ListTimeSlots возвращает базовые слоты площадки по возрастанию времени
func (r *Repository) ListTimeSlots(ctx context.Context, venueID string) ([]domain.TimeSlot, error) {
	var rows []timeSlotRow
	query := datastore.Query("id", "recinto_id", "hora", "activo").
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Asc("hora"))
	if err := r.store.Select(ctx, tableTimeSlots, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - select slots: %v", ErrStore, err)
	}

	slots := make([]domain.TimeSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, row.toDomain())
	}
	return slots, nil
}

// ListPriceRules возвращает правила цен площадки
func (r *Repository) ListPriceRules(ctx context.Context, venueID string) ([]domain.PriceRule, error) {
	var rows []priceRuleRow
	query := datastore.Query("id", "recinto_id", "hora_inicio", "hora_fin", "dias_semana", "precio").
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Asc("hora_inicio"))
	if err := r.store.Select(ctx, tablePriceRules, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListPriceRules - select rules: %v", ErrStore, err)
	}

	rules := make([]domain.PriceRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// CreatePriceRule сохраняет правило цены и возвращает его с ID хранилища
func (r *Repository) CreatePriceRule(ctx context.Context, rule domain.PriceRule) (*domain.PriceRule, error) {
	var created priceRuleRow
	if err := r.store.Insert(ctx, tablePriceRules, newPriceRuleRow(rule), &created); err != nil {
		return nil, fmt.Errorf("%w: CreatePriceRule - insert rule: %v", ErrStore, err)
	}
	result, err := created.toDomain()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePriceRule удаляет правило цены площадки
func (r *Repository) DeletePriceRule(ctx context.Context, venueID, ruleID string) error {
	err := r.store.Delete(ctx, tablePriceRules, []datastore.Filter{
		datastore.Eq("id", ruleID),
		datastore.Eq("recinto_id", venueID),
	})
	if err != nil {
		return fmt.Errorf("%w: DeletePriceRule - delete rule: %v", ErrStore, err)
	}
	return nil
}

// ResolvePrice цена корта на дату и время по данным хранилища (get_precio_cancha)
// nil означает, что цена не определена
func (r *Repository) ResolvePrice(ctx context.Context, venueID string, date types.Date, t types.TimeString) (*int64, error) {
	var price *types.Amount
	args := map[string]interface{}{
		"p_recinto_id": venueID,
		"p_fecha":      date,
		"p_hora":       t.Normalize(),
	}
	if err := r.store.Call(ctx, rpcResolvePrice, args, &price); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: ResolvePrice - call %s: %v", ErrStore, rpcResolvePrice, err)
	}
	if price == nil {
		return nil, nil
	}
	value := price.Int64()
	return &value, nil
}

// GetPublicAvailability публичная доступность площадки по slug в окне [from, to]
// Пустой результат означает неизвестный slug
func (r *Repository) GetPublicAvailability(ctx context.Context, slug string, from, to types.Date) (*domain.PublicAvailability, error) {
	var rows []publicRow
	query := datastore.Query(publicColumns...).
		Where(
			datastore.Eq("slug", slug),
			datastore.Gte("fecha", from),
			datastore.Lte("fecha", to),
		).
		OrderBy(datastore.Asc("fecha"), datastore.Asc("hora"))
	if err := r.store.Select(ctx, viewPublicSchedule, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetPublicAvailability - select view: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrVenueNotFound
	}

	result := &domain.PublicAvailability{
		VenueID:       rows[0].RecintoID,
		VenueName:     rows[0].RecintoNombre,
		Address:       rows[0].Direccion,
		WhatsAppPhone: rows[0].TelefonoWhats,
		From:          from,
		To:            to,
		Slots:         make([]domain.PublicSlot, 0, len(rows)),
	}
	for _, row := range rows {
		result.Slots = append(result.Slots, row.toDomain())
	}
	return result, nil
}
