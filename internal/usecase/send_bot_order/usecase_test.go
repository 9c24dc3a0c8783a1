package send_bot_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	botorderRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/botorder"
	"github.com/m04kA/SMC-VenueConsole/internal/service/gate"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeTemplates struct {
	templates map[string]domain.BotOrderTemplate
}

func (f *fakeTemplates) GetTemplate(_ context.Context, id string) (*domain.BotOrderTemplate, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return nil, botorderRepo.ErrTemplateNotFound
	}
	return &tpl, nil
}

type fakeOrders struct {
	created []domain.BotOrder
	noRow   bool
	err     error
}

func (f *fakeOrders) CreateOrder(_ context.Context, order domain.BotOrder) (*domain.BotOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, order)
	if !f.noRow {
		order.ID = "o1"
	}
	return &order, nil
}

type fakeCatalog struct{}

func (fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	return []domain.Court{{ID: "c1", Name: "Cancha Central", Active: true}}, nil
}

type fakeMetrics struct {
	observed []string
}

func (m *fakeMetrics) ObserveBotOrder(importance string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.observed = append(m.observed, importance+":"+status)
}

func (m *fakeMetrics) ObserveGateTransition(_, _ string) {}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

var venue = domain.Venue{ID: "v1", Name: "Club", PINCode: "4321"}

func templates() map[string]domain.BotOrderTemplate {
	return map[string]domain.BotOrderTemplate{
		"notice": {
			ID: "notice", Category: domain.CategoryCommunications, OrderType: "aviso",
			MessageTemplate: "Aviso: {{texto}}",
			Variables:       []domain.Variable{{Key: "texto", Type: domain.VarText}},
			Importance:      domain.ImportanceNormal,
		},
		"reserve": {
			ID: "reserve", Category: domain.CategoryReservations, OrderType: "reserva_manual",
			MessageTemplate: "Reservar {{cancha}} el {{fecha}} a las {{hora}}",
			Variables: []domain.Variable{
				{Key: "cancha", Type: domain.VarCourt},
				{Key: "fecha", Type: domain.VarDate},
				{Key: "hora", Type: domain.VarTime},
			},
			Importance: domain.ImportanceHigh,
		},
		"close": {
			ID: "close", Category: domain.CategoryEmergencies, OrderType: "cierre",
			MessageTemplate: "Cierre de emergencia",
			Importance:      domain.ImportanceCritical,
		},
		"broken": {
			ID: "broken", Category: domain.CategoryCommunications, OrderType: "aviso",
			MessageTemplate: "Hola {{nombre}}",
			Importance:      domain.ImportanceNormal,
		},
	}
}

type fixture struct {
	uc      *UseCase
	orders  *fakeOrders
	metrics *fakeMetrics
}

func newFixture() *fixture {
	m := &fakeMetrics{}
	gates := gate.NewService(gate.Config{SessionTTL: time.Minute, PINAttemptsPerMin: 60, PINBurst: 5}, m, logger.Nop())
	orders := &fakeOrders{}
	uc := NewUseCase(&fakeTemplates{templates: templates()}, orders, fakeCatalog{}, gates, m, logger.Nop())
	uc.ids = fixedID("abc")
	return &fixture{uc: uc, orders: orders, metrics: m}
}

func TestExecute_NormalSendsImmediately(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Venue: venue, TemplateID: "notice", Step: StepExecute,
		Values: map[string]domain.Value{"texto": domain.TextValue("Cancha 2 cerrada")},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.GateDone, resp.Session.State)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "o1", resp.Order.ID)

	require.Len(t, f.orders.created, 1)
	order := f.orders.created[0]
	assert.Equal(t, "Aviso: Cancha 2 cerrada", order.Message)
	assert.Equal(t, domain.OrderSending, order.Status)
	assert.Equal(t, domain.DefaultOrderCreator, order.CreatedBy)
	assert.Equal(t, "v1", order.VenueID)
	assert.Equal(t, []string{"normal:ok"}, f.metrics.observed)
}

func TestExecute_TemporaryIDWhenNoRowReturned(t *testing.T) {
	f := newFixture()
	f.orders.noRow = true

	resp, err := f.uc.Execute(context.Background(), &Request{
		Venue: venue, TemplateID: "notice", Step: StepExecute,
		Values: map[string]domain.Value{"texto": domain.TextValue("hola")},
	})
	require.NoError(t, err)
	assert.Equal(t, "temp-abc", resp.Order.ID)
	assert.True(t, resp.Order.IsTemporary())
}

func TestExecute_HighImportanceNeedsSecondConfirm(t *testing.T) {
	f := newFixture()
	values := map[string]domain.Value{
		"cancha": domain.TextValue("c1"),
		"fecha":  domain.DateValue("5", "3", "2025"),
		"hora":   domain.TimeValue("9", "0"),
	}

	resp, err := f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "reserve", Step: StepExecute, Values: values})
	require.NoError(t, err)
	assert.Equal(t, domain.GatePromptSecondConfirm, resp.Session.State)
	assert.Equal(t, SecondConfirmPrompt, resp.Prompt)
	assert.Empty(t, f.orders.created)

	resp, err = f.uc.Execute(context.Background(), &Request{
		Venue: venue, TemplateID: "reserve", SessionID: resp.Session.ID, Step: StepConfirm, Yes: true, Values: values,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GateDone, resp.Session.State)
	require.Len(t, f.orders.created, 1)
	assert.Equal(t, "Reservar Cancha Central el 05/03/2025 a las 09:00", f.orders.created[0].Message)
}

func TestExecute_CriticalNeedsPIN(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", Step: StepExecute})
	require.NoError(t, err)
	assert.Equal(t, domain.GatePromptPIN, resp.Session.State)
	assert.Equal(t, PINPrompt, resp.Prompt)

	sessionID := resp.Session.ID
	resp, err = f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", SessionID: sessionID, Step: StepPIN, PIN: "1111"})
	assert.ErrorIs(t, err, ErrPINMismatch)
	require.NotNil(t, resp)
	assert.True(t, resp.Session.PINError)
	assert.Empty(t, f.orders.created)

	resp, err = f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", SessionID: sessionID, Step: StepPIN, PIN: "4321"})
	require.NoError(t, err)
	assert.Equal(t, domain.GateDone, resp.Session.State)
	assert.Len(t, f.orders.created, 1)
}

func TestExecute_SendFailureLeavesSessionRetryable(t *testing.T) {
	f := newFixture()
	f.orders.err = errors.New("store unavailable")
	values := map[string]domain.Value{"texto": domain.TextValue("hola")}

	resp, err := f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "notice", Step: StepExecute, Values: values})
	require.NoError(t, err)
	assert.Equal(t, domain.GateFailed, resp.Session.State)
	assert.NotEmpty(t, resp.Session.LastError)
	assert.Nil(t, resp.Order)
	assert.Equal(t, []string{"normal:error"}, f.metrics.observed)

	f.orders.err = nil
	resp, err = f.uc.Execute(context.Background(), &Request{
		Venue: venue, TemplateID: "notice", SessionID: resp.Session.ID, Step: StepExecute, Values: values,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GateDone, resp.Session.State)
}

func TestExecute_Cancel(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", Step: StepExecute})
	require.NoError(t, err)

	resp, err = f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", SessionID: resp.Session.ID, Step: StepCancel})
	require.NoError(t, err)
	assert.Equal(t, domain.GateCancelled, resp.Session.State)

	_, err = f.uc.Execute(context.Background(), &Request{Venue: venue, TemplateID: "close", SessionID: resp.Session.ID, Step: StepPIN, PIN: "4321"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing required variable",
			req:     &Request{Venue: venue, TemplateID: "notice", Step: StepExecute},
			wantErr: ErrMissingVariable,
		},
		{
			name:    "unresolved placeholder",
			req:     &Request{Venue: venue, TemplateID: "broken", Step: StepExecute},
			wantErr: ErrUnresolvedPlaceholder,
		},
		{
			name:    "unknown template",
			req:     &Request{Venue: venue, TemplateID: "nope", Step: StepExecute},
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "pin without session",
			req:     &Request{Venue: venue, TemplateID: "close", Step: StepPIN, PIN: "4321"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown step",
			req:     &Request{Venue: venue, TemplateID: "close", Step: "jump"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.orders.created)
		})
	}
}
