package models

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Response модели

// CourtResponse корт площадки
type CourtResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// SlotResponse слот базового расписания
type SlotResponse struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	Active bool   `json:"active"`
}

// VenueResponse площадка владельца; PIN наружу не отдаётся
type VenueResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Slug          string          `json:"slug"`
	WhatsAppPhone string          `json:"whatsappPhone"`
	HasPIN        bool            `json:"hasPin"`
	Today         types.Date      `json:"today"`
	Courts        []CourtResponse `json:"courts"`
	Slots         []SlotResponse  `json:"slots"`
}

// PublicSlotResponse строка публичной доступности
type PublicSlotResponse struct {
	CourtID   string     `json:"courtId"`
	CourtName string     `json:"courtName"`
	Date      types.Date `json:"date"`
	Time      string     `json:"time"`
	Status    string     `json:"status"`
}

// PublicAvailabilityResponse публичная страница площадки
type PublicAvailabilityResponse struct {
	VenueName     string               `json:"venueName"`
	Address       string               `json:"address"`
	WhatsAppPhone string               `json:"whatsappPhone"`
	From          types.Date           `json:"from"`
	To            types.Date           `json:"to"`
	Slots         []PublicSlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainVenue конвертирует площадку с каталогом в DTO
func FromDomainVenue(v domain.Venue, today types.Date, courts []domain.Court, slots []domain.TimeSlot) *VenueResponse {
	resp := &VenueResponse{
		ID:            v.ID,
		Name:          v.Name,
		Address:       v.Address,
		Slug:          v.Slug,
		WhatsAppPhone: v.WhatsAppPhone,
		HasPIN:        v.PINCode != "",
		Today:         today,
		Courts:        make([]CourtResponse, 0, len(courts)),
		Slots:         make([]SlotResponse, 0, len(slots)),
	}
	for _, c := range courts {
		resp.Courts = append(resp.Courts, CourtResponse{ID: c.ID, Name: c.Name, Active: c.Active})
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{ID: s.ID, Time: s.Time.Normalize().String(), Active: s.Active})
	}
	return resp
}

// FromDomainPublic конвертирует публичную доступность в DTO; имена клиентов не попадают
func FromDomainPublic(p domain.PublicAvailability) *PublicAvailabilityResponse {
	resp := &PublicAvailabilityResponse{
		VenueName:     p.VenueName,
		Address:       p.Address,
		WhatsAppPhone: p.WhatsAppPhone,
		From:          p.From,
		To:            p.To,
		Slots:         make([]PublicSlotResponse, 0, len(p.Slots)),
	}
	for _, s := range p.Slots {
		resp.Slots = append(resp.Slots, PublicSlotResponse{
			CourtID:   s.CourtID,
			CourtName: s.CourtName,
			Date:      s.Date,
			Time:      s.Time.Normalize().String(),
			Status:    s.Status,
		})
	}
	return resp
}
