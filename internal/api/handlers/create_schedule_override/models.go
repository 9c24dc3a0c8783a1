package create_schedule_override

import (
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	kindClosed       = "closed"
	kindSpecialHours = "special_hours"
)

// CreateOverrideRequest HTTP request model
// Open и Close нужны только для kind = special_hours
type CreateOverrideRequest struct {
	Date      types.Date `json:"date"`
	Kind      string     `json:"kind"`
	Open      string     `json:"open,omitempty"`
	Close     string     `json:"close,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Confirmed bool       `json:"confirmed"`
}

// ToClosedRequest конвертирует HTTP request в запрос закрытия
func (r *CreateOverrideRequest) ToClosedRequest(venueID string) *models.CreateClosedRequest {
	return &models.CreateClosedRequest{
		VenueID: venueID,
		Date:    r.Date,
		Reason:  r.Reason,
	}
}

// ToSpecialHoursRequest конвертирует HTTP request в запрос специального окна
func (r *CreateOverrideRequest) ToSpecialHoursRequest(venueID string) *models.CreateSpecialHoursRequest {
	return &models.CreateSpecialHoursRequest{
		VenueID:   venueID,
		Date:      r.Date,
		Open:      r.Open,
		Close:     r.Close,
		Reason:    r.Reason,
		Confirmed: r.Confirmed,
	}
}
