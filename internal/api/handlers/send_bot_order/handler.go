package send_bot_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	sendBotOrder "github.com/m04kA/SMC-VenueConsole/internal/usecase/send_bot_order"
)

const (
	msgInvalidRequest   = "cuerpo de la solicitud inválido"
	msgInvalidInput     = "datos de la orden inválidos"
	msgTemplateNotFound = "plantilla no encontrada"
	msgMissingVariable  = "faltan campos obligatorios de la plantilla"
	msgUnresolved       = "la plantilla contiene variables desconocidas"
	msgSessionNotFound  = "la sesión expiró, vuelve a abrir la plantilla"
	msgPINMismatch      = "PIN incorrecto"
	msgTooManyAttempts  = "demasiados intentos de PIN, espera un momento"
	msgBusy             = "la orden se está enviando"
	msgInvalidStep      = "acción no permitida en este momento"
)

type Handler struct {
	useCase SendBotOrderUseCase
	logger  Logger
}

func NewHandler(useCase SendBotOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bot/templates/{templateId}/send
// Один шаг диалога: execute, confirm, pin или cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	templateID := mux.Vars(r)["templateId"]

	var req SendBotOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bot/templates/{templateId}/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(venue, templateID))
	if err != nil {
		switch {
		case errors.Is(err, sendBotOrder.ErrInvalidInput):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Invalid input: template_id=%s, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, sendBotOrder.ErrTemplateNotFound):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Template not found: template_id=%s", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, sendBotOrder.ErrMissingVariable):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Missing variable: template_id=%s, error=%v", templateID, err)
			handlers.RespondUnprocessable(w, msgMissingVariable)

		case errors.Is(err, sendBotOrder.ErrUnresolvedPlaceholder):
			h.logger.Error("POST /bot/templates/{templateId}/send - Unresolved placeholder: template_id=%s, error=%v", templateID, err)
			handlers.RespondUnprocessable(w, msgUnresolved)

		case errors.Is(err, sendBotOrder.ErrSessionNotFound):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sendBotOrder.ErrPINMismatch):
			h.logger.Warn("POST /bot/templates/{templateId}/send - PIN mismatch: venue_id=%s, session_id=%s", venue.ID, req.SessionID)
			handlers.RespondPINError(w, msgPINMismatch)

		case errors.Is(err, sendBotOrder.ErrTooManyAttempts):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Too many PIN attempts: venue_id=%s", venue.ID)
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)

		case errors.Is(err, sendBotOrder.ErrBusy):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Busy: session_id=%s", req.SessionID)
			handlers.RespondConflict(w, msgBusy)

		case errors.Is(err, sendBotOrder.ErrInvalidStep):
			h.logger.Warn("POST /bot/templates/{templateId}/send - Invalid step: step=%s, error=%v", req.Step, err)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, sendBotOrder.ErrInternal):
			h.logger.Error("POST /bot/templates/{templateId}/send - Store error: template_id=%s, error=%v", templateID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /bot/templates/{templateId}/send - Failed to send order: template_id=%s, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Ошибка отправки не прерывает диалог: сессия в failed, шаг execute можно повторить
	if result.Session.LastError != "" && result.Order == nil {
		h.logger.Warn("POST /bot/templates/{templateId}/send - Send failed: session_id=%s, error=%s", result.Session.ID, result.Session.LastError)
	} else {
		h.logger.Info("POST /bot/templates/{templateId}/send - Step done: session_id=%s, state=%s", result.Session.ID, result.Session.State)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
