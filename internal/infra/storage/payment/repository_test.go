package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore/datastoretest"
)

func TestRepository_ListByAgendaIDs(t *testing.T) {
	store := datastoretest.New()
	store.Rows[tableLive] = []map[string]interface{}{
		{"agenda_cancha_id": "a1", "monto_total": "15000.00", "monto_abonado": 5000, "estado_pago": "abono"},
		{"agenda_cancha_id": "a2", "monto_total": nil, "monto_abonado": nil, "estado_pago": "por_pagar"},
	}
	repo := NewRepository(store)

	records, err := repo.ListByAgendaIDs(context.Background(), domain.SourceLive, []string{"a1", "a2"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRecord{AgendaID: "a1", Total: 15000, Deposit: 5000, Status: domain.PaymentPartial}, records["a1"])
	assert.Equal(t, int64(0), records["a2"].Total)
}

func TestRepository_ListByAgendaIDs_EmptySkipsStore(t *testing.T) {
	store := datastoretest.New()
	repo := NewRepository(store)

	records, err := repo.ListByAgendaIDs(context.Background(), domain.SourceArchive, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, store.Selects)
}

func TestRepository_Get(t *testing.T) {
	store := datastoretest.New()
	store.Rows[tableArchive] = []map[string]interface{}{
		{"agenda_cancha_id": "a1", "monto_total": 15000, "monto_abonado": 15000, "estado_pago": "pagado", "telefono_cliente": "+56911111111"},
	}
	repo := NewRepository(store)

	record, err := repo.Get(context.Background(), domain.SourceArchive, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, record.Status)
	assert.Equal(t, "+56911111111", record.CustomerPhone)

	_, err = repo.Get(context.Background(), domain.SourceLive, "a1")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestRepository_SaveAndMarkPaid(t *testing.T) {
	store := datastoretest.New()
	repo := NewRepository(store)

	require.NoError(t, repo.Save(context.Background(), domain.PaymentRecord{AgendaID: "a1", Total: 15000, Status: domain.PaymentUnpaid}))
	assert.Equal(t, []string{"agenda_cancha_id"}, store.Upserts[0].Conflict)
	assert.Equal(t, "por_pagar", store.Upserts[0].Row["estado_pago"])

	require.NoError(t, repo.MarkPaid(context.Background(), "a1"))
	assert.Equal(t, rpcMarkPaid, store.Calls[0].Function)
	assert.Equal(t, "a1", store.Calls[0].Args["p_agenda_id"])

	store.Errors[rpcMarkPaid] = errors.New("boom")
	assert.ErrorIs(t, repo.MarkPaid(context.Background(), "a1"), ErrStore)
}
