package models

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила цены
type CreateRuleRequest struct {
	VenueID  string `json:"-"`
	Start    string `json:"start"`    // HH:MM, включительно
	End      string `json:"end"`      // HH:MM, не включительно
	Weekdays []int  `json:"weekdays"` // ISO: 1 = понедельник, 7 = воскресенье
	Price    int64  `json:"price"`
}

// QuoteRequest запрос цены на дату и время
type QuoteRequest struct {
	VenueID string     `json:"-"`
	Date    types.Date `json:"date"`
	Time    string     `json:"time"`
}

// Response модели

// RuleResponse правило цены
type RuleResponse struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Weekdays []int  `json:"weekdays"`
	Price    int64  `json:"price"`
}

// RuleListResponse список правил площадки
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// QuoteResponse цена слота; Price = nil, если ни одно правило не подходит
type QuoteResponse struct {
	Date    types.Date `json:"date"`
	Time    string     `json:"time"`
	Weekday int        `json:"weekday"`
	Price   *int64     `json:"price"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r domain.PriceRule) RuleResponse {
	weekdays := make([]int, 0, len(r.Weekdays))
	for _, w := range r.Weekdays {
		weekdays = append(weekdays, int(w))
	}
	return RuleResponse{
		ID:       r.ID,
		Start:    r.Start.String(),
		End:      r.End.String(),
		Weekdays: weekdays,
		Price:    r.Price,
	}
}

// FromDomainRuleList конвертирует список правил в DTO
func FromDomainRuleList(rules []domain.PriceRule) *RuleListResponse {
	resp := &RuleListResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, FromDomainRule(r))
	}
	return resp
}

// ToDomainRule конвертирует запрос в domain модель
func (r *CreateRuleRequest) ToDomainRule() (domain.PriceRule, error) {
	start, err := types.NewTimeStringFromString(r.Start)
	if err != nil {
		return domain.PriceRule{}, err
	}
	end, err := types.NewTimeStringFromString(r.End)
	if err != nil {
		return domain.PriceRule{}, err
	}
	weekdays := make([]domain.ISOWeekday, 0, len(r.Weekdays))
	for _, w := range r.Weekdays {
		weekdays = append(weekdays, domain.ISOWeekday(w))
	}
	return domain.PriceRule{
		VenueID:  r.VenueID,
		Start:    start,
		End:      end,
		Weekdays: weekdays,
		Price:    r.Price,
	}, nil
}
