package staff

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/ptr"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableStaff  = "barberos"
	tableStatus = "estado_actual"
)

type staffRow struct {
	ID        string `json:"id"`
	RecintoID string `json:"recinto_id"`
	Nombre    string `json:"nombre"`
}

func (r staffRow) toDomain() domain.StaffMember {
	return domain.StaffMember{ID: r.ID, VenueID: r.RecintoID, Name: r.Nombre}
}

type statusRow struct {
	BarberoID  string            `json:"barbero_id"`
	Estado     string            `json:"estado"`
	HoraVuelve *types.TimeString `json:"hora_vuelve"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func newStatusRow(s domain.StaffStatus) statusRow {
	row := statusRow{
		BarberoID: s.StaffID,
		Estado:    string(s.State),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
	if !s.ReturnAt.IsZero() {
		row.HoraVuelve = ptr.Ptr(s.ReturnAt.Normalize())
	}
	return row
}

func (r statusRow) toDomain() domain.StaffStatus {
	status := domain.StaffStatus{
		StaffID:   r.BarberoID,
		State:     domain.StaffState(r.Estado),
		UpdatedAt: r.UpdatedAt,
	}
	if r.HoraVuelve != nil {
		status.ReturnAt = r.HoraVuelve.Normalize()
	}
	return status
}
