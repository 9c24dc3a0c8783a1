package create_price_rule

import (
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing/models"
)

// CreatePriceRuleRequest HTTP request model
type CreatePriceRuleRequest struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Weekdays []int  `json:"weekdays"`
	Price    int64  `json:"price"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreatePriceRuleRequest) ToServiceRequest(venueID string) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		VenueID:  venueID,
		Start:    r.Start,
		End:      r.End,
		Weekdays: r.Weekdays,
		Price:    r.Price,
	}
}
