package agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Repository записи агенды кортов: живая таблица и архив прошедших дат
// Источник выбирает вызывающий через domain.ResolveSource
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListEntries возвращает записи площадки за период [from, to] из указанного источника
func (r *Repository) ListEntries(ctx context.Context, source domain.Source, venueID string, from, to types.Date) ([]domain.ScheduleEntry, error) {
	var rows []entryRow
	query := datastore.Query(entryColumns...).
		Where(
			datastore.Eq("recinto_id", venueID),
			datastore.Gte("fecha", from),
			datastore.Lte("fecha", to),
		)
	if err := r.store.Select(ctx, tableFor(source), query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListEntries - select %s: %v", ErrStore, source, err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain(source))
	}
	return entries, nil
}

// GetEntry возвращает запись площадки по ID
func (r *Repository) GetEntry(ctx context.Context, source domain.Source, venueID, id string) (*domain.ScheduleEntry, error) {
	var rows []entryRow
	query := datastore.Query(entryColumns...).
		Where(datastore.Eq("id", id), datastore.Eq("recinto_id", venueID)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableFor(source), query, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetEntry - select %s: %v", ErrStore, source, err)
	}
	if len(rows) == 0 {
		return nil, ErrEntryNotFound
	}
	entry := rows[0].toDomain(source)
	return &entry, nil
}

// FindByCell возвращает живую запись ячейки или ErrEntryNotFound
func (r *Repository) FindByCell(ctx context.Context, venueID string, key domain.CellKey) (*domain.ScheduleEntry, error) {
	var rows []entryRow
	query := datastore.Query(entryColumns...).
		Where(
			datastore.Eq("recinto_id", venueID),
			datastore.Eq("fecha", key.Date),
			datastore.Eq("cancha_id", key.CourtID),
			datastore.Eq("horario_id", key.SlotID),
		).
		WithLimit(1)
	if err := r.store.Select(ctx, tableLive, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: FindByCell - select: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrEntryNotFound
	}
	entry := rows[0].toDomain(domain.SourceLive)
	return &entry, nil
}

// Create вставляет запись в свободную ячейку
// Если ячейку успели занять, возвращает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if entry.IsArchived() {
		return nil, ErrArchiveReadOnly
	}
	row := newEntryRow(entry)
	row.ID = ""

	var created entryRow
	if err := r.store.Insert(ctx, tableLive, row, &created); err != nil {
		if errors.Is(err, datastore.ErrConflict) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrStore, err)
	}
	result := created.toDomain(domain.SourceLive)
	return &result, nil
}

// Save перезаписывает существующую запись ячейки (смена статуса, клиента)
func (r *Repository) Save(ctx context.Context, entry domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if entry.IsArchived() {
		return nil, ErrArchiveReadOnly
	}

	var saved entryRow
	if err := r.store.Upsert(ctx, tableLive, newEntryRow(entry), cellColumns, &saved); err != nil {
		return nil, fmt.Errorf("%w: Save - upsert: %v", ErrStore, err)
	}
	result := saved.toDomain(domain.SourceLive)
	return &result, nil
}

// Delete удаляет живую запись площадки
func (r *Repository) Delete(ctx context.Context, venueID, id string) error {
	err := r.store.Delete(ctx, tableLive, []datastore.Filter{
		datastore.Eq("id", id),
		datastore.Eq("recinto_id", venueID),
	})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete: %v", ErrStore, err)
	}
	return nil
}
