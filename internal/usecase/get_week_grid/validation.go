package get_week_grid

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	return nil
}
