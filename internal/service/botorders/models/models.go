package models

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// Response модели

// TemplateResponse шаблон заказа в каталоге консоли
type TemplateResponse struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Title      string `json:"title"`
	OrderType  string `json:"orderType"`
	Importance string `json:"importance"`
	Message    string `json:"messageTemplate"`
}

// CategoryGroup шаблоны одной категории
type CategoryGroup struct {
	Category  string             `json:"category"`
	Templates []TemplateResponse `json:"templates"`
}

// TemplateListResponse каталог шаблонов по категориям
type TemplateListResponse struct {
	Categories []CategoryGroup `json:"categories"`
}

// FieldResponse поле формы
type FieldResponse struct {
	Key      string   `json:"key"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// CourtOption вариант выбора корта
type CourtOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FormResponse форма шаблона для диалога отправки
type FormResponse struct {
	Template TemplateResponse `json:"template"`
	Fields   []FieldResponse  `json:"fields"`
	Courts   []CourtOption    `json:"courts,omitempty"`
	Warning  string           `json:"warning,omitempty"`
}

// OrderResponse заказ бота
type OrderResponse struct {
	ID        string    `json:"id"`
	OrderType string    `json:"orderType"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Temporary bool      `json:"temporary,omitempty"`
}

// BoardResponse панель заказов
type BoardResponse struct {
	Executing []OrderResponse `json:"executing"`
	Active    []OrderResponse `json:"active"`
	History   []OrderResponse `json:"history"`
}

// Методы конвертации

// FromDomainTemplate конвертирует шаблон в DTO
func FromDomainTemplate(t domain.BotOrderTemplate) TemplateResponse {
	return TemplateResponse{
		ID:         t.ID,
		Category:   string(t.Category),
		Title:      t.Title,
		OrderType:  t.OrderType,
		Importance: string(t.Importance),
		Message:    t.MessageTemplate,
	}
}

// FromDomainTemplates группирует шаблоны по категориям, сохраняя порядок хранилища
func FromDomainTemplates(templates []domain.BotOrderTemplate) *TemplateListResponse {
	resp := &TemplateListResponse{Categories: []CategoryGroup{}}
	index := make(map[domain.Category]int)
	for _, t := range templates {
		i, ok := index[t.Category]
		if !ok {
			i = len(resp.Categories)
			index[t.Category] = i
			resp.Categories = append(resp.Categories, CategoryGroup{Category: string(t.Category)})
		}
		resp.Categories[i].Templates = append(resp.Categories[i].Templates, FromDomainTemplate(t))
	}
	return resp
}

// FromDomainForm конвертирует конфигурацию формы в DTO
func FromDomainForm(t domain.BotOrderTemplate, cfg domain.FormConfig, courts []domain.Court) *FormResponse {
	resp := &FormResponse{
		Template: FromDomainTemplate(t),
		Fields:   make([]FieldResponse, 0, len(cfg.Fields)),
		Warning:  cfg.Warning,
	}
	for _, f := range cfg.Fields {
		resp.Fields = append(resp.Fields, FieldResponse{
			Key:      f.Key,
			Type:     string(f.Type),
			Label:    f.Label,
			Options:  f.Options,
			Required: f.Required,
		})
	}
	for _, c := range courts {
		if c.Active {
			resp.Courts = append(resp.Courts, CourtOption{ID: c.ID, Name: c.Name})
		}
	}
	return resp
}

// FromDomainOrder конвертирует заказ в DTO
func FromDomainOrder(o domain.BotOrder) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		OrderType: o.OrderType,
		Message:   o.Message,
		Status:    string(o.Status),
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt,
		Temporary: o.IsTemporary(),
	}
}

// FromDomainBoard конвертирует панель заказов в DTO
func FromDomainBoard(board domain.OrderBoard) *BoardResponse {
	return &BoardResponse{
		Executing: fromOrders(board.Executing),
		Active:    fromOrders(board.Active),
		History:   fromOrders(board.History),
	}
}

func fromOrders(orders []domain.BotOrder) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromDomainOrder(o))
	}
	return result
}
