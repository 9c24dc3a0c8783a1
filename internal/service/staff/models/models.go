package models

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модели

// UpdateStatusRequest запрос на изменение дневного статуса
type UpdateStatusRequest struct {
	VenueID  string `json:"-"`
	StaffID  string `json:"-"`
	State    string `json:"state"`
	AllDay   bool   `json:"allDay"`
	LunchAt  string `json:"lunchAt,omitempty"`
	ReturnAt string `json:"returnAt,omitempty"`
}

// ToDomainUpdate конвертирует запрос в domain модель
func (r *UpdateStatusRequest) ToDomainUpdate() domain.StaffStatusUpdate {
	return domain.StaffStatusUpdate{
		StaffID:  r.StaffID,
		State:    domain.StaffState(r.State),
		AllDay:   r.AllDay,
		LunchAt:  types.TimeString(r.LunchAt),
		ReturnAt: types.TimeString(r.ReturnAt),
	}
}

// Response модели

// StaffResponse сотрудник со статусом
type StaffResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	State     string     `json:"state,omitempty"`
	AllDay    bool       `json:"allDay"`
	ReturnAt  string     `json:"returnAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// StaffListResponse сотрудники площадки
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// QueueResponse очередь сотрудников
type QueueResponse struct {
	Queue       []StaffResponse `json:"queue"`
	Unavailable []StaffResponse `json:"unavailable"`
}

// Методы конвертации

// FromDomainStaff сотрудник без статуса отдаётся с пустым state
func FromDomainStaff(m domain.StaffMember, status *domain.StaffStatus) StaffResponse {
	resp := StaffResponse{ID: m.ID, Name: m.Name}
	if status == nil {
		return resp
	}
	updatedAt := status.UpdatedAt
	resp.State = string(status.State)
	resp.AllDay = status.AllDay()
	resp.ReturnAt = status.ReturnAt.Normalize().String()
	resp.UpdatedAt = &updatedAt
	return resp
}

// FromDomainQueue конвертирует очередь; пустые части отдаются как []
func FromDomainQueue(queue, unavailable []domain.StaffQueueEntry) *QueueResponse {
	resp := &QueueResponse{
		Queue:       make([]StaffResponse, 0, len(queue)),
		Unavailable: make([]StaffResponse, 0, len(unavailable)),
	}
	for _, e := range queue {
		resp.Queue = append(resp.Queue, FromDomainStaff(e.Member, e.Status))
	}
	for _, e := range unavailable {
		resp.Unavailable = append(resp.Unavailable, FromDomainStaff(e.Member, e.Status))
	}
	return resp
}
