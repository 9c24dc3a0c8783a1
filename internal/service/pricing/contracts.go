package pricing

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// PriceRuleRepository интерфейс репозитория правил цен
type PriceRuleRepository interface {
	ListPriceRules(ctx context.Context, venueID string) ([]domain.PriceRule, error)
	CreatePriceRule(ctx context.Context, rule domain.PriceRule) (*domain.PriceRule, error)
	DeletePriceRule(ctx context.Context, venueID, ruleID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
