package update_staff_status

import (
	"github.com/m04kA/SMC-VenueConsole/internal/service/staff/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	State    string `json:"state"`
	AllDay   bool   `json:"allDay"`
	LunchAt  string `json:"lunchAt,omitempty"`
	ReturnAt string `json:"returnAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(venueID, staffID string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		VenueID:  venueID,
		StaffID:  staffID,
		State:    r.State,
		AllDay:   r.AllDay,
		LunchAt:  r.LunchAt,
		ReturnAt: r.ReturnAt,
	}
}
