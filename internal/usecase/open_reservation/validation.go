package open_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if req.AgendaID == "" {
		return fmt.Errorf("%w: agendaID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
