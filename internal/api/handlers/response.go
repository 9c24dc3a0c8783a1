package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError = "error interno del servidor"
	msgBadGateway    = "el servicio de datos no está disponible, inténtalo de nuevo"
	msgUnauthorized  = "sesión no válida o expirada"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Prompt   string `json:"prompt,omitempty"`
	PINError bool   `json:"pinError,omitempty"`
}

// DecodeJSON читает тело запроса; неизвестные поля и лишние данные считаются ошибкой
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON body")
	}
	return nil
}

// RespondJSON пишет JSON ответ; nil payload даёт пустое тело
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с кодом статуса
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, msgUnauthorized)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondPINError 403 с флагом pinError для диалога PIN
func RespondPINError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Code: http.StatusForbidden, Message: message, PINError: true})
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnprocessable 422, ошибка конкретного поля
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

// RespondConfirmationRequired 428 с текстом подтверждения
func RespondConfirmationRequired(w http.ResponseWriter, prompt string) {
	RespondJSON(w, http.StatusPreconditionRequired, ErrorResponse{
		Code:    http.StatusPreconditionRequired,
		Message: "se requiere confirmación",
		Prompt:  prompt,
	})
}

// RespondTooManyRequests 429
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondBadGateway 502, внешнее хранилище не ответило
func RespondBadGateway(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, msgBadGateway)
}
