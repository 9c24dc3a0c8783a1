package create_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/phone"
)

// validateRequest валидирует входные данные запроса и нормализует телефон
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.Block {
		req.CustomerName = domain.BlockedCustomerName
		req.CustomerPhone = ""
		req.Deposit = 0
		return nil
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if req.Deposit < 0 {
		return fmt.Errorf("%w: negative deposit", ErrInvalidDeposit)
	}

	normalized, err := phone.Normalize(req.CustomerPhone, domain.DefaultPhoneRegion)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	req.CustomerPhone = normalized

	return nil
}

// findCourt проверяет, что корт активен на площадке
func findCourt(courts []domain.Court, id string) (*domain.Court, error) {
	for i := range courts {
		if courts[i].ID == id && courts[i].Active {
			return &courts[i], nil
		}
	}
	return nil, ErrCourtNotFound
}

// findSlot проверяет, что слот активен на площадке
func findSlot(slots []domain.TimeSlot, id string) (*domain.TimeSlot, error) {
	for i := range slots {
		if slots[i].ID == id && slots[i].Active {
			return &slots[i], nil
		}
	}
	return nil, ErrSlotNotFound
}
