package open_reservation

import (
	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	openReservation "github.com/m04kA/SMC-VenueConsole/internal/usecase/open_reservation"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// EntryResponse HTTP response model
type EntryResponse struct {
	AgendaID      string               `json:"agendaId"`
	Date          types.Date           `json:"date"`
	CourtID       string               `json:"courtId"`
	CourtName     string               `json:"courtName"`
	SlotID        string               `json:"slotId"`
	Time          string               `json:"time"`
	Status        string               `json:"status"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone,omitempty"`
	Source        string               `json:"source"`
	Ledger        *handlers.LedgerView `json:"ledger,omitempty"`
	ReadOnly      bool                 `json:"readOnly"`
	IsToday       bool                 `json:"isToday"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// У блокировки нет оплаты, ledger не отдаётся
func FromUseCaseResponse(resp *openReservation.Response) *EntryResponse {
	e := resp.Entry
	out := &EntryResponse{
		AgendaID:      e.ID,
		Date:          e.Date,
		CourtID:       e.CourtID,
		CourtName:     resp.CourtName,
		SlotID:        e.SlotID,
		Time:          resp.Time.String(),
		Status:        string(e.Status),
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		Source:        string(e.Source),
		ReadOnly:      resp.ReadOnly,
		IsToday:       resp.IsToday,
	}
	if e.Status == domain.EntryReserved {
		ledger := handlers.FromDomainLedger(resp.Ledger)
		out.Ledger = &ledger
	}
	return out
}
