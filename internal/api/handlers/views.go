package handlers

import "github.com/m04kA/SMC-VenueConsole/internal/domain"

// LedgerView проекция оплаты для ответов API
type LedgerView struct {
	Total      int64  `json:"total"`
	Deposit    int64  `json:"deposit"`
	Balance    int64  `json:"balance"`
	Status     string `json:"status"`
	PriceKnown bool   `json:"priceKnown"`
}

// FromDomainLedger конвертирует domain.Ledger в LedgerView
func FromDomainLedger(l domain.Ledger) LedgerView {
	return LedgerView{
		Total:      l.Total,
		Deposit:    l.Deposit,
		Balance:    l.Balance,
		Status:     string(l.Status),
		PriceKnown: l.PriceKnown,
	}
}
