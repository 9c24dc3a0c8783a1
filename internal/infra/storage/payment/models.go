package payment

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	tableLive    = "pagos_reservas"
	tableArchive = "pagos_reservas_historico"

	rpcMarkPaid = "rpc_cerrar_reserva_pagada"
)

var paymentColumns = []string{"agenda_cancha_id", "monto_total", "monto_abonado", "estado_pago", "telefono_cliente"}

func tableFor(source domain.Source) string {
	if source == domain.SourceArchive {
		return tableArchive
	}
	return tableLive
}

type paymentRow struct {
	AgendaCanchaID  string       `json:"agenda_cancha_id"`
	MontoTotal      types.Amount `json:"monto_total"`
	MontoAbonado    types.Amount `json:"monto_abonado"`
	EstadoPago      string       `json:"estado_pago"`
	TelefonoCliente *string      `json:"telefono_cliente"`
}

func newPaymentRow(p domain.PaymentRecord) paymentRow {
	row := paymentRow{
		AgendaCanchaID: p.AgendaID,
		MontoTotal:     types.Amount(p.Total),
		MontoAbonado:   types.Amount(p.Deposit),
		EstadoPago:     string(p.Status),
	}
	if p.CustomerPhone != "" {
		phone := p.CustomerPhone
		row.TelefonoCliente = &phone
	}
	return row
}

func (r paymentRow) toDomain() domain.PaymentRecord {
	record := domain.PaymentRecord{
		AgendaID: r.AgendaCanchaID,
		Total:    r.MontoTotal.Int64(),
		Deposit:  r.MontoAbonado.Int64(),
		Status:   domain.ParsePaymentStatus(r.EstadoPago),
	}
	if r.TelefonoCliente != nil {
		record.CustomerPhone = *r.TelefonoCliente
	}
	return record
}
