package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableVenues        = "recintos"
	tableCourts        = "canchas"
	tableTimeSlots     = "horarios_base"
	tablePriceRules    = "precios_cancha"
	viewPublicSchedule = "v_recinto_disponibilidad_publica"

	rpcResolvePrice = "get_precio_cancha"
)

var venueColumns = []string{"id", "nombre", "direccion", "slug", "telefono_whatsapp", "owner_id", "pin_code"}

type venueRow struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Direccion     string `json:"direccion"`
	Slug          string `json:"slug"`
	TelefonoWhats string `json:"telefono_whatsapp"`
	OwnerID       string `json:"owner_id"`
	PINCode       string `json:"pin_code"`
}

func (r venueRow) toDomain() domain.Venue {
	return domain.Venue{
		ID:            r.ID,
		Name:          r.Nombre,
		Address:       r.Direccion,
		Slug:          r.Slug,
		WhatsAppPhone: r.TelefonoWhats,
		OwnerID:       r.OwnerID,
		PINCode:       r.PINCode,
	}
}

type courtRow struct {
	ID        string `json:"id"`
	RecintoID string `json:"recinto_id"`
	Nombre    string `json:"nombre"`
	Activa    bool   `json:"activa"`
}

func (r courtRow) toDomain() domain.Court {
	return domain.Court{ID: r.ID, VenueID: r.RecintoID, Name: r.Nombre, Active: r.Activa}
}

type timeSlotRow struct {
	ID        string           `json:"id"`
	RecintoID string           `json:"recinto_id"`
	Hora      types.TimeString `json:"hora"`
	Activo    bool             `json:"activo"`
}

func (r timeSlotRow) toDomain() domain.TimeSlot {
	return domain.TimeSlot{ID: r.ID, VenueID: r.RecintoID, Time: r.Hora.Normalize(), Active: r.Activo}
}

type priceRuleRow struct {
	ID         string           `json:"id,omitempty"`
	RecintoID  string           `json:"recinto_id"`
	HoraInicio types.TimeString `json:"hora_inicio"`
	HoraFin    types.TimeString `json:"hora_fin"`
	DiasSemana []int            `json:"dias_semana"`
	Precio     types.Amount     `json:"precio"`
}

func newPriceRuleRow(rule domain.PriceRule) priceRuleRow {
	days := make([]int, len(rule.Weekdays))
	for i, d := range rule.Weekdays {
		days[i] = int(d)
	}
	return priceRuleRow{
		RecintoID:  rule.VenueID,
		HoraInicio: rule.Start.Normalize(),
		HoraFin:    rule.End.Normalize(),
		DiasSemana: days,
		Precio:     types.Amount(rule.Price),
	}
}

func (r priceRuleRow) toDomain() (domain.PriceRule, error) {
	days := make([]domain.ISOWeekday, 0, len(r.DiasSemana))
	for _, d := range r.DiasSemana {
		day := domain.ISOWeekday(d)
		if !day.Valid() {
			return domain.PriceRule{}, fmt.Errorf("%w: price rule %s has weekday %d", ErrInvalidRow, r.ID, d)
		}
		days = append(days, day)
	}
	return domain.PriceRule{
		ID:       r.ID,
		VenueID:  r.RecintoID,
		Start:    r.HoraInicio.Normalize(),
		End:      r.HoraFin.Normalize(),
		Weekdays: days,
		Price:    r.Precio.Int64(),
	}, nil
}

var publicColumns = []string{
	"recinto_id", "recinto_nombre", "direccion", "telefono_whatsapp",
	"cancha_id", "cancha_nombre", "fecha", "hora", "estado",
}

type publicRow struct {
	RecintoID     string           `json:"recinto_id"`
	RecintoNombre string           `json:"recinto_nombre"`
	Direccion     string           `json:"direccion"`
	TelefonoWhats string           `json:"telefono_whatsapp"`
	CanchaID      string           `json:"cancha_id"`
	CanchaNombre  string           `json:"cancha_nombre"`
	Fecha         types.Date       `json:"fecha"`
	Hora          types.TimeString `json:"hora"`
	Estado        string           `json:"estado"`
}

func (r publicRow) toDomain() domain.PublicSlot {
	return domain.PublicSlot{
		CourtID:   r.CanchaID,
		CourtName: r.CanchaNombre,
		Date:      r.Fecha,
		Time:      r.Hora.Normalize(),
		Status:    r.Estado,
	}
}
