package models

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// SpecialHoursPrompt подтверждение перед установкой специального расписания
const SpecialHoursPrompt = "Revisa las reservas existentes de ese día antes de aplicar el horario especial. ¿Deseas continuar?"

// DeletePrompt подтверждение удаления исключения
const DeletePrompt = "Se eliminará el cronograma de este día y volverá el horario normal. ¿Deseas continuar?"

// Request модели

// CreateClosedRequest запрос на закрытие площадки на день
type CreateClosedRequest struct {
	VenueID string     `json:"-"`
	Date    types.Date `json:"date"`
	Reason  string     `json:"reason,omitempty"`
}

// CreateSpecialHoursRequest запрос на специальное окно работы
type CreateSpecialHoursRequest struct {
	VenueID   string     `json:"-"`
	Date      types.Date `json:"date"`
	Open      string     `json:"open"`  // HH:MM или HH
	Close     string     `json:"close"` // HH:MM или HH
	Reason    string     `json:"reason,omitempty"`
	Confirmed bool       `json:"confirmed"`
}

// DeleteRequest запрос на удаление исключения
type DeleteRequest struct {
	VenueID   string     `json:"-"`
	Date      types.Date `json:"date"`
	Confirmed bool       `json:"confirmed"`
}

// Response модели

// DayResponse расписание площадки на дату
type DayResponse struct {
	Date        types.Date `json:"date"`
	Kind        string     `json:"kind"`
	Open        string     `json:"open,omitempty"`
	Close       string     `json:"close,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	Description string     `json:"description"`
}

// DayListResponse исключения площадки за период
type DayListResponse struct {
	From types.Date    `json:"from"`
	To   types.Date    `json:"to"`
	Days []DayResponse `json:"days"`
}

// Методы конвертации

// FromDomainOverride конвертирует исключение в DTO; nil означает обычный день
func FromDomainOverride(date types.Date, o *domain.DayOverride) *DayResponse {
	resp := &DayResponse{
		Date:        date,
		Kind:        string(domain.OverrideNormal),
		Description: o.Describe(),
	}
	if o == nil {
		return resp
	}
	resp.Kind = string(o.Kind)
	resp.Reason = o.Reason
	if o.Kind == domain.OverrideSpecialHours {
		resp.Open = o.Open.String()
		resp.Close = o.Close.String()
	}
	return resp
}
