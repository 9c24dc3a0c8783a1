package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeRules struct {
	rules   []domain.PriceRule
	created []domain.PriceRule
	deleted []string
}

func (f *fakeRules) ListPriceRules(_ context.Context, _ string) ([]domain.PriceRule, error) {
	return f.rules, nil
}

func (f *fakeRules) CreatePriceRule(_ context.Context, rule domain.PriceRule) (*domain.PriceRule, error) {
	f.created = append(f.created, rule)
	rule.ID = "r-new"
	return &rule, nil
}

func (f *fakeRules) DeletePriceRule(_ context.Context, _, ruleID string) error {
	f.deleted = append(f.deleted, ruleID)
	return nil
}

func weekdayEvenings() domain.PriceRule {
	return domain.PriceRule{
		ID: "r1", VenueID: "v1", Start: "18:00", End: "23:00",
		Weekdays: []domain.ISOWeekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
		Price:    25000,
	}
}

func TestService_CreateRule(t *testing.T) {
	repo := &fakeRules{rules: []domain.PriceRule{weekdayEvenings()}}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		VenueID: "v1", Start: "08:00", End: "18:00", Weekdays: []int{1, 2, 3, 4, 5}, Price: 18000,
	})
	require.NoError(t, err)
	assert.Equal(t, "r-new", resp.ID)
	assert.Equal(t, "08:00", resp.Start)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, resp.Weekdays)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "v1", repo.created[0].VenueID)
}

func TestService_CreateRule_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateRuleRequest
		wantErr error
	}{
		{
			name:    "overlap",
			req:     models.CreateRuleRequest{Start: "22:00", End: "23:30", Weekdays: []int{5}, Price: 1},
			wantErr: ErrOverlappingRules,
		},
		{
			name:    "start after end",
			req:     models.CreateRuleRequest{Start: "20:00", End: "19:00", Weekdays: []int{6}, Price: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "weekday zero",
			req:     models.CreateRuleRequest{Start: "08:00", End: "09:00", Weekdays: []int{0}, Price: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			req:     models.CreateRuleRequest{Start: "08:00", End: "09:00", Weekdays: []int{6}, Price: -5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time",
			req:     models.CreateRuleRequest{Start: "8am", End: "09:00", Weekdays: []int{6}, Price: 1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRules{rules: []domain.PriceRule{weekdayEvenings()}}
			svc := NewService(repo, logger.Nop())
			req := tt.req
			req.VenueID = "v1"

			_, err := svc.CreateRule(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestService_AdjacentRulesDoNotOverlap(t *testing.T) {
	repo := &fakeRules{rules: []domain.PriceRule{weekdayEvenings()}}
	svc := NewService(repo, logger.Nop())

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		VenueID: "v1", Start: "23:00", End: "24:00", Weekdays: []int{1}, Price: 15000,
	})
	require.NoError(t, err)
}

func TestService_DeleteRule(t *testing.T) {
	repo := &fakeRules{rules: []domain.PriceRule{weekdayEvenings()}}
	svc := NewService(repo, logger.Nop())

	require.NoError(t, svc.DeleteRule(context.Background(), "v1", "r1"))
	assert.Equal(t, []string{"r1"}, repo.deleted)

	assert.ErrorIs(t, svc.DeleteRule(context.Background(), "v1", "r9"), ErrRuleNotFound)
}

func TestService_Quote(t *testing.T) {
	repo := &fakeRules{rules: []domain.PriceRule{weekdayEvenings()}}
	svc := NewService(repo, logger.Nop())
	wednesday := types.NewDate(2025, time.March, 12)

	resp, err := svc.Quote(context.Background(), &models.QuoteRequest{VenueID: "v1", Date: wednesday, Time: "19:00:00"})
	require.NoError(t, err)
	require.NotNil(t, resp.Price)
	assert.Equal(t, int64(25000), *resp.Price)
	assert.Equal(t, 3, resp.Weekday)
	assert.Equal(t, "19:00", resp.Time)

	saturday := wednesday.AddDays(3)
	resp, err = svc.Quote(context.Background(), &models.QuoteRequest{VenueID: "v1", Date: saturday, Time: "19:00"})
	require.NoError(t, err)
	assert.Nil(t, resp.Price)

	_, err = svc.Quote(context.Background(), &models.QuoteRequest{VenueID: "v1", Time: "19:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
