package list_price_rules

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing/models"
)

type PricingService interface {
	ListRules(ctx context.Context, venueID string) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
