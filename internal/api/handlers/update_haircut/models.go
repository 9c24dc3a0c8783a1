package update_haircut

import (
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

// UpdateHaircutRequest HTTP request model
type UpdateHaircutRequest struct {
	StaffID string `json:"staffId"`
	TypeID  string `json:"typeId,omitempty"`
	Price   int64  `json:"price,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateHaircutRequest) ToServiceRequest(venueID, haircutID string) *models.UpdateRequest {
	return &models.UpdateRequest{
		VenueID:   venueID,
		HaircutID: haircutID,
		StaffID:   r.StaffID,
		TypeID:    r.TypeID,
		Price:     r.Price,
		Note:      r.Note,
	}
}
