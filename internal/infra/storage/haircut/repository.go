package haircut

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
)

// Repository стрижки площадки и каталог типов
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListTypes возвращает каталог площадки по имени, включая выключенные типы
func (r *Repository) ListTypes(ctx context.Context, venueID string) ([]domain.HaircutType, error) {
	var rows []typeRow
	query := datastore.Query("id", "recinto_id", "nombre", "precio", "activo").
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Asc("nombre"))
	if err := r.store.Select(ctx, tableTypes, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListTypes - select: %v", ErrStore, err)
	}

	result := make([]domain.HaircutType, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

// List возвращает стрижки площадки за [from, to], новые первыми
func (r *Repository) List(ctx context.Context, venueID string, from, to time.Time) ([]domain.Haircut, error) {
	var rows []haircutRow
	query := datastore.Query(haircutColumns...).
		Where(
			datastore.Eq("recinto_id", venueID),
			datastore.Gte("created_at", timestamp(from)),
			datastore.Lte("created_at", timestamp(to)),
		).
		OrderBy(datastore.Desc("created_at"))
	if err := r.store.Select(ctx, tableHaircuts, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: List - select: %v", ErrStore, err)
	}

	result := make([]domain.Haircut, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

// Get возвращает стрижку площадки
func (r *Repository) Get(ctx context.Context, venueID, id string) (*domain.Haircut, error) {
	var rows []haircutRow
	query := datastore.Query(haircutColumns...).
		Where(datastore.Eq("id", id), datastore.Eq("recinto_id", venueID)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableHaircuts, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: Get - select: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrHaircutNotFound
	}
	cut := rows[0].toDomain()
	return &cut, nil
}

// Create сохраняет новую стрижку; ID и время создания назначает хранилище
func (r *Repository) Create(ctx context.Context, cut domain.Haircut) (*domain.Haircut, error) {
	row := newHaircutWrite(cut)
	row.ID = ""

	var created haircutRow
	if err := r.store.Insert(ctx, tableHaircuts, row, &created); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrStore, err)
	}
	result := created.toDomain()
	return &result, nil
}

// Update перезаписывает стрижку по ID
func (r *Repository) Update(ctx context.Context, cut domain.Haircut) (*domain.Haircut, error) {
	var saved haircutRow
	if err := r.store.Upsert(ctx, tableHaircuts, newHaircutWrite(cut), []string{"id"}, &saved); err != nil {
		return nil, fmt.Errorf("%w: Update - upsert: %v", ErrStore, err)
	}
	result := saved.toDomain()
	return &result, nil
}

// Delete удаляет стрижку площадки
func (r *Repository) Delete(ctx context.Context, venueID, id string) error {
	err := r.store.Delete(ctx, tableHaircuts, []datastore.Filter{
		datastore.Eq("id", id),
		datastore.Eq("recinto_id", venueID),
	})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete: %v", ErrStore, err)
	}
	return nil
}

// timestamp момент для фильтра по timestamptz
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
