package create_reservation

import (
	createReservation "github.com/m04kA/SMC-VenueConsole/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          types.Date `json:"date"`
	CourtID       string     `json:"courtId"`
	SlotID        string     `json:"slotId"`
	Block         bool       `json:"block"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Deposit       int64      `json:"deposit"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *CreateReservationRequest) ToUseCaseRequest(venueID string) *createReservation.Request {
	return &createReservation.Request{
		VenueID:       venueID,
		Date:          r.Date,
		CourtID:       r.CourtID,
		SlotID:        r.SlotID,
		Block:         r.Block,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Deposit:       r.Deposit,
	}
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	AgendaID      string     `json:"agendaId"`
	Date          types.Date `json:"date"`
	CourtID       string     `json:"courtId"`
	SlotID        string     `json:"slotId"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	Price         *int64     `json:"price"`
	Payment       *Payment   `json:"payment,omitempty"`
}

// Payment запись оплаты созданной резервации
type Payment struct {
	Total   int64  `json:"total"`
	Deposit int64  `json:"deposit"`
	Status  string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		AgendaID:      resp.Entry.ID,
		Date:          resp.Entry.Date,
		CourtID:       resp.Entry.CourtID,
		SlotID:        resp.Entry.SlotID,
		Status:        string(resp.Entry.Status),
		CustomerName:  resp.Entry.CustomerName,
		CustomerPhone: resp.Entry.CustomerPhone,
		Price:         resp.Price,
	}
	if resp.Payment != nil {
		out.Payment = &Payment{
			Total:   resp.Payment.Total,
			Deposit: resp.Payment.Deposit,
			Status:  string(resp.Payment.Status),
		}
	}
	return out
}
