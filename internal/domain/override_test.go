package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

func TestParseClock(t *testing.T) {
	tm, err := ParseClock("14")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), tm)

	tm, err = ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), tm)

	tm, err = ParseClock("")
	require.NoError(t, err)
	assert.True(t, tm.IsZero())

	_, err = ParseClock("25")
	assert.Error(t, err)
}

func TestNewSpecialHoursOverride_CloseBeforeOpenRejected(t *testing.T) {
	open, err := ParseClock("14")
	require.NoError(t, err)
	closeAt, err := ParseClock("12")
	require.NoError(t, err)

	_, err = NewSpecialHoursOverride(testVenue, types.NewDate(2025, time.March, 4), open, closeAt, "")
	assert.ErrorIs(t, err, ErrInvalidSpecialHours)
}

func TestNewSpecialHoursOverride_OrderingProperty(t *testing.T) {
	date := types.NewDate(2025, time.March, 4)
	for open := 0; open < 24*60; open += 45 {
		for close := 0; close <= 24*60; close += 45 {
			_, err := NewSpecialHoursOverride(testVenue, date, types.FromMinutes(open), types.FromMinutes(close), "")
			if close > open {
				assert.NoError(t, err, "open=%d close=%d", open, close)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSpecialHours, "open=%d close=%d", open, close)
			}
		}
	}
}

func TestNewSpecialHoursOverride_MinuteGranularity(t *testing.T) {
	date := types.NewDate(2025, time.March, 4)

	_, err := NewSpecialHoursOverride(testVenue, date, "10:00", "10:30", "")
	assert.NoError(t, err)

	_, err = NewSpecialHoursOverride(testVenue, date, "10:30", "10:15", "")
	assert.ErrorIs(t, err, ErrInvalidSpecialHours)
}

func TestNewSpecialHoursOverride_MissingTimes(t *testing.T) {
	date := types.NewDate(2025, time.March, 4)

	_, err := NewSpecialHoursOverride(testVenue, date, "", "12:00", "")
	assert.ErrorIs(t, err, ErrMissingSpecialHours)

	_, err = NewSpecialHoursOverride(testVenue, date, "10:00", "", "")
	assert.ErrorIs(t, err, ErrMissingSpecialHours)
}

func TestNewClosedOverride_Reason(t *testing.T) {
	date := types.NewDate(2025, time.March, 4)

	o, err := NewClosedOverride(testVenue, date, "  Mantención  ")
	require.NoError(t, err)
	assert.Equal(t, "Mantención", o.Reason)
	assert.Equal(t, OverrideClosed, o.Kind)

	// 30 символов, включая не-ASCII, допустимы
	_, err = NewClosedOverride(testVenue, date, strings.Repeat("ñ", MaxOverrideReasonLength))
	assert.NoError(t, err)

	_, err = NewClosedOverride(testVenue, date, strings.Repeat("a", MaxOverrideReasonLength+1))
	assert.ErrorIs(t, err, ErrReasonTooLong)
}

func TestDayOverride_InvalidKind(t *testing.T) {
	o := DayOverride{Kind: "edited"}
	assert.ErrorIs(t, o.Validate(), ErrInvalidOverrideKind)
}

func TestDayOverride_AllowsSlot(t *testing.T) {
	var normal *DayOverride
	ok, reason := normal.AllowsSlot("09:00")
	assert.True(t, ok)
	assert.Empty(t, reason)

	closed := &DayOverride{Kind: OverrideClosed, Reason: "Feriado"}
	ok, reason = closed.AllowsSlot("09:00")
	assert.False(t, ok)
	assert.Equal(t, "Recinto cerrado: Feriado", reason)

	special := &DayOverride{Kind: OverrideSpecialHours, Open: "10:00", Close: "14:00"}
	ok, _ = special.AllowsSlot("10:00")
	assert.True(t, ok)
	ok, _ = special.AllowsSlot("13:00")
	assert.True(t, ok)
	ok, reason = special.AllowsSlot("14:00")
	assert.False(t, ok)
	assert.Equal(t, "Fuera del horario especial (10:00–14:00)", reason)
	ok, _ = special.AllowsSlot("09:00")
	assert.False(t, ok)
}

func TestDayOverride_Describe(t *testing.T) {
	var normal *DayOverride
	assert.Equal(t, "Horario normal.", normal.Describe())

	closed := &DayOverride{Kind: OverrideClosed}
	assert.Equal(t, "Cierre total del recinto.", closed.Describe())

	special := &DayOverride{Kind: OverrideSpecialHours, Open: "10:00", Close: "14:00", Reason: "Torneo"}
	assert.Equal(t, "Horario especial: Abierto desde las 10:00 a las 14:00 horas. Motivo: Torneo", special.Describe())
}
