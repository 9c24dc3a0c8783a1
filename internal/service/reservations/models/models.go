package models

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модели

// ReleaseRequest запрос на освобождение ячейки
type ReleaseRequest struct {
	VenueID  string `json:"-"`
	AgendaID string `json:"agendaId"`
}

// Response модели

// ReleaseResponse результат освобождения
type ReleaseResponse struct {
	AgendaID       string `json:"agendaId"`
	PaymentDeleted bool   `json:"paymentDeleted"`
}

// ReceiptResponse квитанция архивной резервации, только чтение
type ReceiptResponse struct {
	AgendaID      string     `json:"agendaId"`
	Date          types.Date `json:"date"`
	CourtID       string     `json:"courtId"`
	CourtName     string     `json:"courtName"`
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	Total         int64      `json:"total"`
	Deposit       int64      `json:"deposit"`
	Balance       int64      `json:"balance"`
	PaymentStatus string     `json:"paymentStatus"`
	PriceKnown    bool       `json:"priceKnown"`
}

// Методы конвертации

// FromDomainReceipt собирает квитанцию из записи архива и проекции оплаты
func FromDomainReceipt(entry domain.ScheduleEntry, ledger domain.Ledger, courtName string, t types.TimeString) *ReceiptResponse {
	return &ReceiptResponse{
		AgendaID:      entry.ID,
		Date:          entry.Date,
		CourtID:       entry.CourtID,
		CourtName:     courtName,
		Time:          t.String(),
		Status:        string(entry.Status),
		CustomerName:  entry.CustomerName,
		CustomerPhone: entry.CustomerPhone,
		Total:         ledger.Total,
		Deposit:       ledger.Deposit,
		Balance:       ledger.Balance,
		PaymentStatus: string(ledger.Status),
		PriceKnown:    ledger.PriceKnown,
	}
}
