package payment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
)

// Repository записи оплат, 1:1 с записями агенды
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ListByAgendaIDs возвращает оплаты по ID записей агенды, ключ map: ID записи
func (r *Repository) ListByAgendaIDs(ctx context.Context, source domain.Source, agendaIDs []string) (map[string]domain.PaymentRecord, error) {
	result := make(map[string]domain.PaymentRecord, len(agendaIDs))
	if len(agendaIDs) == 0 {
		return result, nil
	}

	var rows []paymentRow
	query := datastore.Query(paymentColumns...).Where(datastore.In("agenda_cancha_id", agendaIDs))
	if err := r.store.Select(ctx, tableFor(source), query, &rows); err != nil {
		return nil, fmt.Errorf("%w: ListByAgendaIDs - select %s: %v", ErrStore, source, err)
	}

	for _, row := range rows {
		result[row.AgendaCanchaID] = row.toDomain()
	}
	return result, nil
}

// Get возвращает оплату записи агенды или ErrPaymentNotFound
func (r *Repository) Get(ctx context.Context, source domain.Source, agendaID string) (*domain.PaymentRecord, error) {
	var rows []paymentRow
	query := datastore.Query(paymentColumns...).
		Where(datastore.Eq("agenda_cancha_id", agendaID)).
		WithLimit(1)
	if err := r.store.Select(ctx, tableFor(source), query, &rows); err != nil {
		return nil, fmt.Errorf("%w: Get - select %s: %v", ErrStore, source, err)
	}
	if len(rows) == 0 {
		return nil, ErrPaymentNotFound
	}
	record := rows[0].toDomain()
	return &record, nil
}

// Save создаёт или обновляет оплату записи агенды (ключ agenda_cancha_id)
func (r *Repository) Save(ctx context.Context, record domain.PaymentRecord) error {
	err := r.store.Upsert(ctx, tableLive, newPaymentRow(record), []string{"agenda_cancha_id"}, nil)
	if err != nil {
		return fmt.Errorf("%w: Save - upsert: %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет оплату записи агенды
func (r *Repository) Delete(ctx context.Context, agendaID string) error {
	err := r.store.Delete(ctx, tableLive, []datastore.Filter{datastore.Eq("agenda_cancha_id", agendaID)})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete: %v", ErrStore, err)
	}
	return nil
}

// MarkPaid атомарно закрывает оплату (rpc_cerrar_reserva_pagada)
func (r *Repository) MarkPaid(ctx context.Context, agendaID string) error {
	err := r.store.Call(ctx, rpcMarkPaid, map[string]interface{}{"p_agenda_id": agendaID}, nil)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - call %s: %v", ErrStore, rpcMarkPaid, err)
	}
	return nil
}
