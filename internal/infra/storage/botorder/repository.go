package botorder

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
)

// Repository шаблоны и заказы бота
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListTemplates возвращает активные шаблоны по порядку категории и позиции
func (r *Repository) ListTemplates(ctx context.Context) ([]domain.BotOrderTemplate, error) {
	var rows []templateRow
	query := datastore.Query(templateColumns...).
		Where(datastore.Eq("activo", true)).
		OrderBy(datastore.Asc("orden_categoria"), datastore.Asc("orden_item"))
	if err := r.store.Select(ctx, tableTemplates, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListTemplates - select: %v", ErrStore, err)
	}

	templates := make([]domain.BotOrderTemplate, 0, len(rows))
	for _, row := range rows {
		tpl, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

// GetTemplate возвращает активный шаблон по ID
func (r *Repository) GetTemplate(ctx context.Context, id string) (*domain.BotOrderTemplate, error) {
	var rows []templateRow
	query := datastore.Query(templateColumns...).
		Where(datastore.Eq("id", id), datastore.Eq("activo", true)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableTemplates, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetTemplate - select: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrTemplateNotFound
	}
	tpl, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListOrders возвращает заказы площадки, новые первыми; limit <= 0 без ограничения
func (r *Repository) ListOrders(ctx context.Context, venueID string, limit int) ([]domain.BotOrder, error) {
	var rows []orderRow
	query := datastore.Query(orderColumns...).
		Where(datastore.Eq("recinto_id", venueID)).
		OrderBy(datastore.Desc("created_at"))
	if limit > 0 {
		query = query.WithLimit(limit)
	}
	if err := r.store.Select(ctx, viewOrders, query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListOrders - select: %v", ErrStore, err)
	}

	orders := make([]domain.BotOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders, nil
}

// CreateOrder вставляет заказ
// Хранилище может не вернуть строку (политики доступа); тогда ID у результата пустой
func (r *Repository) CreateOrder(ctx context.Context, order domain.BotOrder) (*domain.BotOrder, error) {
	var created orderRow
	if err := r.store.Insert(ctx, tableOrders, newOrderInsert(order), &created); err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - insert: %v", ErrStore, err)
	}

	result := order
	if created.ID != "" {
		result = created.toDomain()
	}
	return &result, nil
}
