package mark_paid

import (
	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	markPaid "github.com/m04kA/SMC-VenueConsole/internal/usecase/mark_paid"
)

// MarkPaidRequest HTTP request model
type MarkPaidRequest struct {
	Confirmed bool `json:"confirmed"`
}

// MarkPaidResponse HTTP response model
type MarkPaidResponse struct {
	AgendaID string              `json:"agendaId"`
	Ledger   handlers.LedgerView `json:"ledger"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *markPaid.Response) *MarkPaidResponse {
	return &MarkPaidResponse{
		AgendaID: resp.AgendaID,
		Ledger:   handlers.FromDomainLedger(resp.Ledger),
	}
}
