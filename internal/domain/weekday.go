package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// ISOWeekday день недели в нумерации ISO: 1 = понедельник ... 7 = воскресенье
// Единственное соглашение внутри сервиса; time.Weekday (воскресенье = 0) конвертируется на границе
type ISOWeekday int

const (
	Monday    ISOWeekday = 1
	Tuesday   ISOWeekday = 2
	Wednesday ISOWeekday = 3
	Thursday  ISOWeekday = 4
	Friday    ISOWeekday = 5
	Saturday  ISOWeekday = 6
	Sunday    ISOWeekday = 7
)

// ISOWeekdayFrom конвертирует time.Weekday
func ISOWeekdayFrom(w time.Weekday) ISOWeekday {
	if w == time.Sunday {
		return Sunday
	}
	return ISOWeekday(w)
}

// ISOWeekdayOf возвращает день недели даты
func ISOWeekdayOf(d types.Date) ISOWeekday {
	return ISOWeekdayFrom(d.Weekday())
}

// Valid проверяет диапазон 1..7
func (w ISOWeekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// IsWeekend суббота или воскресенье
func (w ISOWeekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}
