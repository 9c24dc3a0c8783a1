package staff

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
)

// Repository сотрудники площадки и их дневной статус
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListStaff возвращает сотрудников площадки по имени
func (r *Repository) ListStaff(ctx context.Context, venueID string) ([]domain.StaffMember, error) {
	var rows []staffRow
	query := datastore.Query("id", "recinto_id", "nombre").
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Asc("nombre"))
	if err := r.store.Select(ctx, tableStaff, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - select: %v", ErrStore, err)
	}

	members := make([]domain.StaffMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.toDomain())
	}
	return members, nil
}

// GetStaff возвращает сотрудника площадки
func (r *Repository) GetStaff(ctx context.Context, venueID, staffID string) (*domain.StaffMember, error) {
	var rows []staffRow
	query := datastore.Query("id", "recinto_id", "nombre").
		Where(datastore.Eq("id", staffID), datastore.Eq("recinto_id", venueID)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableStaff, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetStaff - select: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrStaffNotFound
	}
	member := rows[0].toDomain()
	return &member, nil
}

// ListStatuses возвращает текущие статусы сотрудников, ключ: ID сотрудника
func (r *Repository) ListStatuses(ctx context.Context, staffIDs []string) (map[string]domain.StaffStatus, error) {
	result := make(map[string]domain.StaffStatus, len(staffIDs))
	if len(staffIDs) == 0 {
		return result, nil
	}

	var rows []statusRow
	query := datastore.Query("barbero_id", "estado", "hora_vuelve", "updated_at").
		Where(datastore.In("barbero_id", staffIDs))
	if err := r.store.Select(ctx, tableStatus, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListStatuses - select: %v", ErrStore, err)
	}

	for _, row := range rows {
		result[row.BarberoID] = row.toDomain()
	}
	return result, nil
}

// SaveStatus записывает статус сотрудника (одна строка на сотрудника)
func (r *Repository) SaveStatus(ctx context.Context, status domain.StaffStatus) error {
	err := r.store.Upsert(ctx, tableStatus, newStatusRow(status), []string{"barbero_id"}, nil)
	if err != nil {
		return fmt.Errorf("%w: SaveStatus - upsert: %v", ErrStore, err)
	}
	return nil
}
