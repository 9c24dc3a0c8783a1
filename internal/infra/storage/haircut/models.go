package haircut

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableHaircuts = "cortes"
	tableTypes    = "tipos_corte"
)

var haircutColumns = []string{
	"id", "recinto_id", "barbero_id", "tipo_corte_id", "precio",
	"porcentaje_barbero", "monto_barbero", "monto_barberia", "nota", "created_at",
}

type typeRow struct {
	ID        string       `json:"id"`
	RecintoID string       `json:"recinto_id"`
	Nombre    string       `json:"nombre"`
	Precio    types.Amount `json:"precio"`
	Activo    bool         `json:"activo"`
}

func (r typeRow) toDomain() domain.HaircutType {
	return domain.HaircutType{
		ID:      r.ID,
		VenueID: r.RecintoID,
		Name:    r.Nombre,
		Price:   r.Precio.Int64(),
		Active:  r.Activo,
	}
}

type haircutRow struct {
	ID                string       `json:"id"`
	RecintoID         string       `json:"recinto_id"`
	BarberoID         string       `json:"barbero_id"`
	TipoCorteID       *string      `json:"tipo_corte_id"`
	Precio            types.Amount `json:"precio"`
	PorcentajeBarbero int          `json:"porcentaje_barbero"`
	MontoBarbero      types.Amount `json:"monto_barbero"`
	MontoBarberia     types.Amount `json:"monto_barberia"`
	Nota              *string      `json:"nota"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (r haircutRow) toDomain() domain.Haircut {
	cut := domain.Haircut{
		ID:           r.ID,
		VenueID:      r.RecintoID,
		StaffID:      r.BarberoID,
		Price:        r.Precio.Int64(),
		StaffPercent: r.PorcentajeBarbero,
		StaffShare:   r.MontoBarbero.Int64(),
		HouseShare:   r.MontoBarberia.Int64(),
		CreatedAt:    r.CreatedAt,
	}
	if r.TipoCorteID != nil {
		cut.TypeID = *r.TipoCorteID
	}
	if r.Nota != nil {
		cut.Note = *r.Nota
	}
	return cut
}

// haircutWrite строка для записи; created_at заполняет хранилище
type haircutWrite struct {
	ID                string  `json:"id,omitempty"`
	RecintoID         string  `json:"recinto_id"`
	BarberoID         string  `json:"barbero_id"`
	TipoCorteID       *string `json:"tipo_corte_id"`
	Precio            int64   `json:"precio"`
	PorcentajeBarbero int     `json:"porcentaje_barbero"`
	MontoBarbero      int64   `json:"monto_barbero"`
	MontoBarberia     int64   `json:"monto_barberia"`
	Nota              *string `json:"nota"`
}

func newHaircutWrite(h domain.Haircut) haircutWrite {
	row := haircutWrite{
		ID:                h.ID,
		RecintoID:         h.VenueID,
		BarberoID:         h.StaffID,
		Precio:            h.Price,
		PorcentajeBarbero: h.StaffPercent,
		MontoBarbero:      h.StaffShare,
		MontoBarberia:     h.HouseShare,
	}
	if h.TypeID != "" {
		typeID := h.TypeID
		row.TipoCorteID = &typeID
	}
	if h.Note != "" {
		note := h.Note
		row.Nota = &note
	}
	return row
}
