package cronograma

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableOverrides = "cronograma_total"

	rpcSetOverride = "rpc_set_cronograma_dia"
)

var overrideColumns = []string{
	"recinto_id", "fecha", "local_cerrado", "horario_extra", "hora_apertura", "hora_cierre", "motivo",
}

type overrideRow struct {
	RecintoID    string            `json:"recinto_id"`
	Fecha        types.Date        `json:"fecha"`
	LocalCerrado bool              `json:"local_cerrado"`
	HorarioExtra bool              `json:"horario_extra"`
	HoraApertura *types.TimeString `json:"hora_apertura"`
	HoraCierre   *types.TimeString `json:"hora_cierre"`
	Motivo       *string           `json:"motivo"`
}

func (r overrideRow) toDomain() domain.DayOverride {
	o := domain.DayOverride{
		VenueID: r.RecintoID,
		Date:    r.Fecha,
		Kind:    domain.OverrideNormal,
	}
	switch {
	case r.LocalCerrado:
		o.Kind = domain.OverrideClosed
	case r.HorarioExtra:
		o.Kind = domain.OverrideSpecialHours
		if r.HoraApertura != nil {
			o.Open = r.HoraApertura.Normalize()
		}
		if r.HoraCierre != nil {
			o.Close = r.HoraCierre.Normalize()
		}
	}
	if r.Motivo != nil {
		o.Reason = *r.Motivo
	}
	return o
}

// rpcArgs аргументы rpc_set_cronograma_dia
func rpcArgs(o domain.DayOverride) map[string]interface{} {
	args := map[string]interface{}{
		"p_recinto_id":    o.VenueID,
		"p_fecha":         o.Date,
		"p_local_cerrado": o.Kind == domain.OverrideClosed,
		"p_horario_extra": o.Kind == domain.OverrideSpecialHours,
		"p_hora_apertura": nil,
		"p_hora_cierre":   nil,
		"p_motivo":        nil,
	}
	if o.Kind == domain.OverrideSpecialHours {
		args["p_hora_apertura"] = o.Open.Normalize()
		args["p_hora_cierre"] = o.Close.Normalize()
	}
	if o.Reason != "" {
		args["p_motivo"] = o.Reason
	}
	return args
}
