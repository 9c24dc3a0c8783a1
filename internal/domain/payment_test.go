package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/pkg/ptr"
)

func TestBalance_Invariant(t *testing.T) {
	for total := int64(0); total <= 30000; total += 2500 {
		for deposit := int64(0); deposit <= 35000; deposit += 2500 {
			b := Balance(total, deposit)
			assert.GreaterOrEqual(t, b, int64(0))
			if deposit <= total {
				assert.Equal(t, total-deposit, b)
			} else {
				assert.Equal(t, int64(0), b)
			}
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentPaid, ParsePaymentStatus("pagado"))
	assert.Equal(t, PaymentPartial, ParsePaymentStatus("abonado"))
	assert.Equal(t, PaymentPartial, ParsePaymentStatus("abono"))
	assert.Equal(t, PaymentUnpaid, ParsePaymentStatus("por_pagar"))
	assert.Equal(t, PaymentUnpaid, ParsePaymentStatus(""))
	assert.Equal(t, PaymentUnpaid, ParsePaymentStatus("desconocido"))
}

func TestInitialPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentUnpaid, InitialPaymentStatus(0))
	assert.Equal(t, PaymentPartial, InitialPaymentStatus(5000))
}

func TestDeriveLedger_BackfillWithoutRecord(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Status: EntryReserved, Source: SourceLive}

	l := DeriveLedger(entry, nil, ptr.Ptr(int64(15000)))

	assert.Equal(t, int64(15000), l.Total)
	assert.Equal(t, int64(0), l.Deposit)
	assert.Equal(t, int64(15000), l.Balance)
	assert.Equal(t, LedgerUnpaid, l.Status)
	assert.True(t, l.PriceKnown)
	assert.True(t, l.NeedsBackfill)

	record := l.Record("a1", "+56912345678")
	assert.Equal(t, PaymentUnpaid, record.Status)
	assert.Equal(t, int64(15000), record.Total)
}

func TestDeriveLedger_BackfillKeepsDeposit(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}
	record := &PaymentRecord{AgendaID: "a1", Total: 0, Deposit: 5000, Status: PaymentPartial}

	l := DeriveLedger(entry, record, ptr.Ptr(int64(15000)))

	assert.Equal(t, int64(15000), l.Total)
	assert.Equal(t, int64(10000), l.Balance)
	assert.Equal(t, LedgerPartiallyPaid, l.Status)
	assert.True(t, l.NeedsBackfill)
}

func TestDeriveLedger_UnknownPrice(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}

	l := DeriveLedger(entry, nil, nil)

	assert.Equal(t, int64(0), l.Total)
	assert.Equal(t, int64(0), l.Balance)
	assert.Equal(t, LedgerUnpaid, l.Status)
	assert.False(t, l.PriceKnown)
	assert.False(t, l.NeedsBackfill)
	assert.ErrorIs(t, l.CanMarkPaid(), ErrPriceUndetermined)
}

func TestDeriveLedger_StoredTotalWins(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}
	record := &PaymentRecord{Total: 12000, Deposit: 2000, Status: PaymentPartial}

	l := DeriveLedger(entry, record, ptr.Ptr(int64(99999)))

	assert.Equal(t, int64(12000), l.Total)
	assert.Equal(t, int64(10000), l.Balance)
	assert.False(t, l.NeedsBackfill)
}

func TestDeriveLedger_StatusMapping(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}

	tests := []struct {
		name   string
		record PaymentRecord
		want   LedgerStatus
	}{
		{"stored paid", PaymentRecord{Total: 10000, Deposit: 0, Status: PaymentPaid}, LedgerPaid},
		{"zero balance", PaymentRecord{Total: 10000, Deposit: 10000, Status: PaymentPartial}, LedgerPaid},
		{"overpaid", PaymentRecord{Total: 10000, Deposit: 12000, Status: PaymentPartial}, LedgerPaid},
		{"partial", PaymentRecord{Total: 10000, Deposit: 3000, Status: PaymentPartial}, LedgerPartiallyPaid},
		{"unpaid", PaymentRecord{Total: 10000, Deposit: 0, Status: PaymentUnpaid}, LedgerUnpaid},
		{"legacy status ignored when balance open", PaymentRecord{Total: 10000, Deposit: 0, Status: PaymentPartial}, LedgerUnpaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.record
			l := DeriveLedger(entry, &record, nil)
			assert.Equal(t, tt.want, l.Status)
			assert.GreaterOrEqual(t, l.Balance, int64(0))
		})
	}
}

func TestLedger_PaidIsImmutable(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}
	l := DeriveLedger(entry, &PaymentRecord{Total: 10000, Deposit: 10000, Status: PaymentPaid}, nil)

	require.True(t, l.IsPaid())
	assert.True(t, l.Closed)
	assert.ErrorIs(t, l.CanModify(), ErrReservationPaid)
	assert.ErrorIs(t, l.CanMarkPaid(), ErrReservationPaid)
	assert.Equal(t, int64(0), l.Balance)
}

func TestLedger_FullDepositStillClosable(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceLive}
	l := DeriveLedger(entry, &PaymentRecord{Total: 20000, Deposit: 20000, Status: PaymentPartial}, nil)

	assert.True(t, l.IsPaid())
	assert.False(t, l.Closed)
	assert.NoError(t, l.CanMarkPaid())
	assert.ErrorIs(t, l.CanModify(), ErrReservationPaid)
}

func TestDeriveLedger_ArchivedNeverBackfills(t *testing.T) {
	entry := ScheduleEntry{ID: "a1", Source: SourceArchive}
	l := DeriveLedger(entry, nil, ptr.Ptr(int64(15000)))

	assert.Equal(t, int64(0), l.Total)
	assert.False(t, l.NeedsBackfill)
}

func TestValidateDeposit(t *testing.T) {
	assert.NoError(t, ValidateDeposit(0, nil))
	assert.NoError(t, ValidateDeposit(5000, nil))
	assert.NoError(t, ValidateDeposit(15000, ptr.Ptr(int64(15000))))
	assert.ErrorIs(t, ValidateDeposit(-1, nil), ErrInvalidDeposit)
	assert.ErrorIs(t, ValidateDeposit(15001, ptr.Ptr(int64(15000))), ErrInvalidDeposit)
}
