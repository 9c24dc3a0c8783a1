package domain

import (
	"fmt"
	"strings"
)

// PaymentStatus статус оплаты в хранилище
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "por_pagar"
	PaymentPartial PaymentStatus = "abonado"
	PaymentPaid    PaymentStatus = "pagado"
)

// ParsePaymentStatus читает статус из хранилища
// Старое значение "abono" читается как abonado, неизвестное как por_pagar
func ParsePaymentStatus(s string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PaymentPaid):
		return PaymentPaid
	case string(PaymentPartial), "abono":
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// InitialPaymentStatus статус оплаты при создании резервации
func InitialPaymentStatus(deposit int64) PaymentStatus {
	if deposit > 0 {
		return PaymentPartial
	}
	return PaymentUnpaid
}

// PaymentRecord запись оплаты, 1:1 с записью агенды
type PaymentRecord struct {
	AgendaID      string
	Total         int64
	Deposit       int64
	Status        PaymentStatus
	CustomerPhone string
}

// LedgerStatus отображаемый статус оплаты
type LedgerStatus string

const (
	LedgerUnpaid        LedgerStatus = "unpaid"
	LedgerPartiallyPaid LedgerStatus = "partially_paid"
	LedgerPaid          LedgerStatus = "paid"
)

// Ledger производное представление оплаты резервации
type Ledger struct {
	Total   int64
	Deposit int64
	Balance int64
	Status  LedgerStatus
	// PriceKnown false, если итог так и не удалось определить
	PriceKnown bool
	// NeedsBackfill итог был подставлен из цены и должен быть сохранён
	NeedsBackfill bool
	// Closed в хранилище уже pagado; абон на всю сумму закрытием не считается
	Closed bool
}

// Balance max(0, total - deposit)
func Balance(total, deposit int64) int64 {
	if deposit >= total {
		return 0
	}
	return total - deposit
}

// DeriveLedger вычисляет итог, абон, остаток и статус
// Если записи нет или итог не задан, итог берётся из resolvedPrice
func DeriveLedger(entry ScheduleEntry, record *PaymentRecord, resolvedPrice *int64) Ledger {
	var l Ledger
	var stored PaymentStatus = PaymentUnpaid

	if record != nil {
		l.Total = record.Total
		l.Deposit = record.Deposit
		stored = record.Status
	}
	l.Closed = stored == PaymentPaid
	if l.Deposit < 0 {
		l.Deposit = 0
	}

	if l.Total <= 0 {
		l.Total = 0
		if resolvedPrice != nil && *resolvedPrice > 0 && !entry.IsArchived() {
			l.Total = *resolvedPrice
			l.NeedsBackfill = true
		}
	}
	l.PriceKnown = l.Total > 0
	l.Balance = Balance(l.Total, l.Deposit)

	switch {
	case stored == PaymentPaid, l.PriceKnown && l.Balance == 0:
		l.Status = LedgerPaid
	case l.Deposit > 0:
		l.Status = LedgerPartiallyPaid
	default:
		l.Status = LedgerUnpaid
	}
	if l.Status == LedgerPaid {
		l.Balance = 0
	}

	return l
}

// IsPaid резервация оплачена полностью
func (l Ledger) IsPaid() bool {
	return l.Status == LedgerPaid
}

// CanModify проверяет, можно ли освободить, переблокировать или поменять абон
func (l Ledger) CanModify() error {
	if l.IsPaid() {
		return ErrReservationPaid
	}
	return nil
}

// CanMarkPaid проверяет, можно ли отметить резервацию оплаченной
// Решает сохранённый статус: резервацию с абоном на всю сумму ещё нужно закрыть
func (l Ledger) CanMarkPaid() error {
	if l.Closed {
		return ErrReservationPaid
	}
	if !l.PriceKnown {
		return ErrPriceUndetermined
	}
	return nil
}

// StoredStatus статус для сохранения в хранилище
func (l Ledger) StoredStatus() PaymentStatus {
	switch l.Status {
	case LedgerPaid:
		return PaymentPaid
	case LedgerPartiallyPaid:
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// Record запись оплаты, соответствующая проекции
func (l Ledger) Record(agendaID, phone string) PaymentRecord {
	return PaymentRecord{
		AgendaID:      agendaID,
		Total:         l.Total,
		Deposit:       l.Deposit,
		Status:        l.StoredStatus(),
		CustomerPhone: phone,
	}
}

// ValidateDeposit абон не отрицательный и не больше цены, если она известна
func ValidateDeposit(deposit int64, maxPrice *int64) error {
	if deposit < 0 {
		return fmt.Errorf("%w: negative deposit %d", ErrInvalidDeposit, deposit)
	}
	if maxPrice != nil && deposit > *maxPrice {
		return fmt.Errorf("%w: deposit %d exceeds price %d", ErrInvalidDeposit, deposit, *maxPrice)
	}
	return nil
}
