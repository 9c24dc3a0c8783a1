package send_bot_order

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Venue.ID == "" {
		return fmt.Errorf("%w: venue is required", ErrInvalidInput)
	}
	if req.TemplateID == "" {
		return fmt.Errorf("%w: templateID is required", ErrInvalidInput)
	}
	switch req.Step {
	case StepExecute:
	case StepConfirm, StepPIN, StepCancel:
		if req.SessionID == "" {
			return fmt.Errorf("%w: sessionID is required for step %s", ErrInvalidInput, req.Step)
		}
	default:
		return fmt.Errorf("%w: unknown step %q", ErrInvalidInput, req.Step)
	}
	return nil
}

// renderMessage подставляет значения и проверяет обязательные переменные
func renderMessage(tpl domain.BotOrderTemplate, values map[string]domain.Value, courts []domain.Court) (string, error) {
	resolved := domain.ResolveValues(tpl, values, courts)
	if missing := domain.MissingRequired(tpl, resolved); len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, strings.Join(missing, ", "))
	}
	message, err := domain.Render(tpl, resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvedPlaceholder, err)
	}
	return message, nil
}
