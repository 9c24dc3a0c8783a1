package delete_price_rule

import "context"

type PricingService interface {
	DeleteRule(ctx context.Context, venueID, ruleID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
