package botorder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

const (
	tableTemplates = "bot_plantillas"
	tableOrders    = "bot_ordenes"
	viewOrders     = "v_bot_ordenes_estado"
)

var templateColumns = []string{
	"id", "categoria", "titulo", "tipo_orden", "mensaje_publico_template", "variables",
	"importance_level", "orden_categoria", "orden_item", "activo",
}

var orderColumns = []string{
	"id", "recinto_id", "tipo_orden", "mensaje_publico", "estado_orden", "creada_por", "created_at",
}

type templateRow struct {
	ID              string          `json:"id"`
	Categoria       string          `json:"categoria"`
	Titulo          string          `json:"titulo"`
	TipoOrden       string          `json:"tipo_orden"`
	MensajeTemplate string          `json:"mensaje_publico_template"`
	Variables       json.RawMessage `json:"variables"`
	ImportanceLevel string          `json:"importance_level"`
	OrdenCategoria  int             `json:"orden_categoria"`
	OrdenItem       int             `json:"orden_item"`
	Activo          bool            `json:"activo"`
}

func (r templateRow) toDomain() (domain.BotOrderTemplate, error) {
	variables, err := parseVariables(r.Variables)
	if err != nil {
		return domain.BotOrderTemplate{}, fmt.Errorf("%w: template %s: %v", ErrInvalidVariables, r.ID, err)
	}
	return domain.BotOrderTemplate{
		ID:              r.ID,
		Category:        domain.Category(r.Categoria),
		Title:           r.Titulo,
		OrderType:       r.TipoOrden,
		MessageTemplate: r.MensajeTemplate,
		Variables:       variables,
		Importance:      domain.ParseImportance(r.ImportanceLevel),
		CategoryOrder:   r.OrdenCategoria,
		ItemOrder:       r.OrdenItem,
		Active:          r.Activo,
	}, nil
}

// parseVariables читает jsonb-массив переменных; встречается и строка с JSON внутри
func parseVariables(raw json.RawMessage) ([]domain.Variable, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, err
		}
		if encoded == "" {
			return nil, nil
		}
		raw = json.RawMessage(encoded)
	}

	var variables []domain.Variable
	if err := json.Unmarshal(raw, &variables); err != nil {
		return nil, err
	}
	return variables, nil
}

type orderRow struct {
	ID             string    `json:"id,omitempty"`
	RecintoID      string    `json:"recinto_id"`
	TipoOrden      string    `json:"tipo_orden"`
	MensajePublico string    `json:"mensaje_publico"`
	EstadoOrden    string    `json:"estado_orden"`
	CreadaPor      string    `json:"creada_por"`
	CreatedAt      time.Time `json:"created_at"`
}

// orderInsert строка для вставки; id и created_at заполняет хранилище
type orderInsert struct {
	RecintoID      string `json:"recinto_id"`
	TipoOrden      string `json:"tipo_orden"`
	MensajePublico string `json:"mensaje_publico"`
	EstadoOrden    string `json:"estado_orden"`
	CreadaPor      string `json:"creada_por"`
}

func newOrderInsert(o domain.BotOrder) orderInsert {
	return orderInsert{
		RecintoID:      o.VenueID,
		TipoOrden:      o.OrderType,
		MensajePublico: o.Message,
		EstadoOrden:    string(o.Status),
		CreadaPor:      o.CreatedBy,
	}
}

func (r orderRow) toDomain() domain.BotOrder {
	return domain.BotOrder{
		ID:        r.ID,
		VenueID:   r.RecintoID,
		OrderType: r.TipoOrden,
		Message:   r.MensajePublico,
		Status:    domain.OrderStatus(r.EstadoOrden),
		CreatedBy: r.CreadaPor,
		CreatedAt: r.CreatedAt,
	}
}
