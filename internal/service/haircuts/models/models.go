package models

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модели

// RegisterRequest запрос на запись стрижки
// Пустой typeId означает специальную стрижку, цена тогда обязательна
type RegisterRequest struct {
	VenueID string `json:"-"`
	StaffID string `json:"staffId"`
	TypeID  string `json:"typeId,omitempty"`
	Price   int64  `json:"price,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ToDomainDraft конвертирует запрос в domain модель
func (r *RegisterRequest) ToDomainDraft() domain.HaircutDraft {
	return domain.HaircutDraft{StaffID: r.StaffID, TypeID: r.TypeID, Price: r.Price, Note: r.Note}
}

// UpdateRequest запрос на исправление стрижки
type UpdateRequest struct {
	VenueID   string `json:"-"`
	HaircutID string `json:"-"`
	StaffID   string `json:"staffId"`
	TypeID    string `json:"typeId,omitempty"`
	Price     int64  `json:"price,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ToDomainDraft конвертирует запрос в domain модель
func (r *UpdateRequest) ToDomainDraft() domain.HaircutDraft {
	return domain.HaircutDraft{StaffID: r.StaffID, TypeID: r.TypeID, Price: r.Price, Note: r.Note}
}

// ReportRequest запрос отчёта; пустая дата означает сегодня, пустой период означает день
type ReportRequest struct {
	VenueID string
	Date    types.Date
	Period  string
	StaffID string
}

// Response модели

// TypeResponse позиция каталога
type TypeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// TypeListResponse активный каталог площадки
type TypeListResponse struct {
	Types []TypeResponse `json:"types"`
}

// HaircutResponse стрижка
type HaircutResponse struct {
	ID           string    `json:"id"`
	StaffID      string    `json:"staffId"`
	StaffName    string    `json:"staffName"`
	TypeID       string    `json:"typeId,omitempty"`
	TypeName     string    `json:"typeName,omitempty"`
	Special      bool      `json:"special"`
	Price        int64     `json:"price"`
	StaffPercent int       `json:"staffPercent"`
	StaffShare   int64     `json:"staffShare"`
	HouseShare   int64     `json:"houseShare"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TotalsResponse итоги
type TotalsResponse struct {
	Income int64 `json:"income"`
	Staff  int64 `json:"staff"`
	House  int64 `json:"house"`
	Count  int   `json:"count"`
}

// DayResponse стрижки за сегодня с итогами
type DayResponse struct {
	Date     types.Date        `json:"date"`
	Totals   TotalsResponse    `json:"totals"`
	Haircuts []HaircutResponse `json:"haircuts"`
}

// StaffEarningsResponse итоги сотрудника
type StaffEarningsResponse struct {
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
	Count     int    `json:"count"`
	Earned    int64  `json:"earned"`
	Generated int64  `json:"generated"`
}

// ReportResponse отчёт за период
type ReportResponse struct {
	From     types.Date              `json:"from"`
	To       types.Date              `json:"to"`
	Period   string                  `json:"period"`
	StaffID  string                  `json:"staffId,omitempty"`
	Totals   TotalsResponse          `json:"totals"`
	Ranking  []StaffEarningsResponse `json:"ranking"`
	Summary  []StaffEarningsResponse `json:"summary"`
	Haircuts []HaircutResponse       `json:"haircuts"`
}

// Методы конвертации

// FromDomainType конвертирует позицию каталога
func FromDomainType(t domain.HaircutType) TypeResponse {
	return TypeResponse{ID: t.ID, Name: t.Name, Price: t.Price}
}

// FromDomainHaircut конвертирует стрижку
func FromDomainHaircut(h domain.Haircut) HaircutResponse {
	return HaircutResponse{
		ID:           h.ID,
		StaffID:      h.StaffID,
		StaffName:    h.StaffName,
		TypeID:       h.TypeID,
		TypeName:     h.TypeName,
		Special:      h.Special(),
		Price:        h.Price,
		StaffPercent: h.StaffPercent,
		StaffShare:   h.StaffShare,
		HouseShare:   h.HouseShare,
		Note:         h.Note,
		CreatedAt:    h.CreatedAt,
	}
}

// FromDomainHaircuts конвертирует список; пустой список отдаётся как []
func FromDomainHaircuts(cuts []domain.Haircut) []HaircutResponse {
	out := make([]HaircutResponse, 0, len(cuts))
	for _, h := range cuts {
		out = append(out, FromDomainHaircut(h))
	}
	return out
}

// FromDomainTotals конвертирует итоги
func FromDomainTotals(t domain.EarningsTotals) TotalsResponse {
	return TotalsResponse{Income: t.Income, Staff: t.Staff, House: t.House, Count: t.Count}
}

func fromDomainEarnings(in []domain.StaffEarnings) []StaffEarningsResponse {
	out := make([]StaffEarningsResponse, 0, len(in))
	for _, e := range in {
		out = append(out, StaffEarningsResponse{
			StaffID:   e.StaffID,
			StaffName: e.StaffName,
			Count:     e.Count,
			Earned:    e.Earned,
			Generated: e.Generated,
		})
	}
	return out
}

// FromDomainReport конвертирует отчёт
func FromDomainReport(r domain.AccountingReport, staffID string) *ReportResponse {
	return &ReportResponse{
		From:     r.From,
		To:       r.To,
		Period:   string(r.Period),
		StaffID:  staffID,
		Totals:   FromDomainTotals(r.Totals),
		Ranking:  fromDomainEarnings(r.Ranking),
		Summary:  fromDomainEarnings(r.Summary),
		Haircuts: FromDomainHaircuts(r.Haircuts),
	}
}
