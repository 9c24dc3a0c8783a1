package botorders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	botorderRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/botorder"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeRepo struct {
	templates []domain.BotOrderTemplate
	orders    []domain.BotOrder
	limit     int
}

func (f *fakeRepo) ListTemplates(_ context.Context) ([]domain.BotOrderTemplate, error) {
	return f.templates, nil
}

func (f *fakeRepo) GetTemplate(_ context.Context, id string) (*domain.BotOrderTemplate, error) {
	for _, t := range f.templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, botorderRepo.ErrTemplateNotFound
}

func (f *fakeRepo) ListOrders(_ context.Context, _ string, limit int) ([]domain.BotOrder, error) {
	f.limit = limit
	return f.orders, nil
}

type fakeCatalog struct{ calls int }

func (f *fakeCatalog) ListCourts(_ context.Context, _ string) ([]domain.Court, error) {
	f.calls++
	return []domain.Court{
		{ID: "c1", Name: "Cancha 1", Active: true},
		{ID: "c2", Name: "Cancha vieja", Active: false},
	}, nil
}

func templates() []domain.BotOrderTemplate {
	return []domain.BotOrderTemplate{
		{
			ID: "t1", Category: domain.CategoryReservations, Title: "Reagendar", Importance: domain.ImportanceHigh,
			Variables: []domain.Variable{
				{Key: "fecha", Type: domain.VarDate},
				{Key: "cancha", Type: domain.VarCourtID},
			},
		},
		{ID: "t2", Category: domain.CategoryReservations, Title: "Confirmar"},
		{
			ID: "t3", Category: domain.CategoryCommunications, Title: "Aviso",
			Variables: []domain.Variable{{Key: "texto", Type: domain.VarTextarea}},
		},
	}
}

func TestService_ListTemplates_GroupsByCategoryInOrder(t *testing.T) {
	svc := NewService(&fakeRepo{templates: templates()}, &fakeCatalog{}, logger.Nop())

	resp, err := svc.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, string(domain.CategoryReservations), resp.Categories[0].Category)
	assert.Len(t, resp.Categories[0].Templates, 2)
	assert.Equal(t, "t3", resp.Categories[1].Templates[0].ID)
}

func TestService_GetForm(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := NewService(&fakeRepo{templates: templates()}, catalog, logger.Nop())

	form, err := svc.GetForm(context.Background(), "v1", "t1")
	require.NoError(t, err)
	assert.NotEmpty(t, form.Warning)
	require.Len(t, form.Courts, 1)
	assert.Equal(t, "c1", form.Courts[0].ID)
	for _, f := range form.Fields {
		assert.True(t, f.Required)
	}
	assert.Equal(t, 1, catalog.calls)

	_, err = svc.GetForm(context.Background(), "v1", "t3")
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.calls)

	_, err = svc.GetForm(context.Background(), "v1", "zz")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestService_Board(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{orders: []domain.BotOrder{
		{ID: "o3", Status: domain.OrderExecuting, CreatedAt: now},
		{ID: "o2", Status: domain.OrderActive, CreatedAt: now.Add(-time.Hour)},
		{ID: "o1", Status: domain.OrderExpired, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "temp-x", Status: domain.OrderSending, CreatedAt: now.Add(-3 * time.Hour)},
	}}
	svc := NewService(repo, &fakeCatalog{}, logger.Nop())

	board, err := svc.Board(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, DefaultBoardLimit, repo.limit)
	require.Len(t, board.Executing, 1)
	require.Len(t, board.Active, 1)
	require.Len(t, board.History, 2)
	assert.Equal(t, "o1", board.History[0].ID)
	assert.True(t, board.History[1].Temporary)
}
