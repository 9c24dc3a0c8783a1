package agenda

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableLive    = "agenda_canchas"
	tableArchive = "agenda_canchas_historico"
)

// cellColumns уникальный ключ живой агенды
var cellColumns = []string{"fecha", "cancha_id", "horario_id"}

var entryColumns = []string{
	"id", "recinto_id", "fecha", "cancha_id", "horario_id", "estado", "nombre_cliente", "telefono_cliente",
}

func tableFor(source domain.Source) string {
	if source == domain.SourceArchive {
		return tableArchive
	}
	return tableLive
}

type entryRow struct {
	ID              string     `json:"id,omitempty"`
	RecintoID       string     `json:"recinto_id"`
	Fecha           types.Date `json:"fecha"`
	CanchaID        string     `json:"cancha_id"`
	HorarioID       string     `json:"horario_id"`
	Estado          string     `json:"estado"`
	NombreCliente   string     `json:"nombre_cliente"`
	TelefonoCliente *string    `json:"telefono_cliente"`
}

func newEntryRow(e domain.ScheduleEntry) entryRow {
	row := entryRow{
		ID:            e.ID,
		RecintoID:     e.VenueID,
		Fecha:         e.Date,
		CanchaID:      e.CourtID,
		HorarioID:     e.SlotID,
		Estado:        string(e.Status),
		NombreCliente: e.CustomerName,
	}
	if e.CustomerPhone != "" {
		phone := e.CustomerPhone
		row.TelefonoCliente = &phone
	}
	return row
}

func (r entryRow) toDomain(source domain.Source) domain.ScheduleEntry {
	entry := domain.ScheduleEntry{
		ID:           r.ID,
		VenueID:      r.RecintoID,
		Date:         r.Fecha,
		CourtID:      r.CanchaID,
		SlotID:       r.HorarioID,
		Status:       domain.EntryStatus(r.Estado),
		CustomerName: r.NombreCliente,
		Source:       source,
	}
	if r.TelefonoCliente != nil {
		entry.CustomerPhone = *r.TelefonoCliente
	}
	return entry
}
