package cronograma

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Repository исключения расписания площадки по датам
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListOverrides возвращает исключения площадки за период [from, to], ключ: дата
func (r *Repository) ListOverrides(ctx context.Context, venueID string, from, to types.Date) (map[types.Date]domain.DayOverride, error) {
	var rows []overrideRow
	query := datastore.Query(overrideColumns...).
		Where(
			datastore.Eq("recinto_id", venueID),
			datastore.Gte("fecha", from),
			datastore.Lte("fecha", to),
		).
		OrderBy(datastore.Asc("fecha"))
	if err := r.store.Select(ctx, tableOverrides, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - select: %v", ErrStore, err)
	}

	result := make(map[types.Date]domain.DayOverride, len(rows))
	for _, row := range rows {
		o := row.toDomain()
		if o.Kind == domain.OverrideNormal {
			continue
		}
		result[o.Date] = o
	}
	return result, nil
}

// GetOverride возвращает исключение на дату или ErrOverrideNotFound
func (r *Repository) GetOverride(ctx context.Context, venueID string, date types.Date) (*domain.DayOverride, error) {
	var rows []overrideRow
	query := datastore.Query(overrideColumns...).
		Where(datastore.Eq("recinto_id", venueID), datastore.Eq("fecha", date)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableOverrides, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetOverride - select: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrOverrideNotFound
	}
	o := rows[0].toDomain()
	if o.Kind == domain.OverrideNormal {
		return nil, ErrOverrideNotFound
	}
	return &o, nil
}

// SetOverride записывает исключение через rpc_set_cronograma_dia
func (r *Repository) SetOverride(ctx context.Context, o domain.DayOverride) error {
	if err := r.store.Call(ctx, rpcSetOverride, rpcArgs(o), nil); err != nil {
		return fmt.Errorf("%w: SetOverride - call %s: %v", ErrStore, rpcSetOverride, err)
	}
	return nil
}

// DeleteOverride удаляет исключение на дату, день возвращается к базовому расписанию
func (r *Repository) DeleteOverride(ctx context.Context, venueID string, date types.Date) error {
	err := r.store.Delete(ctx, tableOverrides, []datastore.Filter{
		datastore.Eq("recinto_id", venueID),
		datastore.Eq("fecha", date),
	})
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - delete: %v", ErrStore, err)
	}
	return nil
}
