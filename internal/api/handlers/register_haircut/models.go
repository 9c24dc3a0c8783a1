package register_haircut

import (
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

// RegisterHaircutRequest HTTP request model
type RegisterHaircutRequest struct {
	StaffID string `json:"staffId"`
	TypeID  string `json:"typeId,omitempty"`
	Price   int64  `json:"price,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RegisterHaircutRequest) ToServiceRequest(venueID string) *models.RegisterRequest {
	return &models.RegisterRequest{
		VenueID: venueID,
		StaffID: r.StaffID,
		TypeID:  r.TypeID,
		Price:   r.Price,
		Note:    r.Note,
	}
}
