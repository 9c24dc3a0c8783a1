package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// OverrideKind тип дня в расписании площадки
type OverrideKind string

const (
	// OverrideNormal записи нет, работает базовое расписание
	OverrideNormal OverrideKind = "normal"
	// OverrideClosed площадка закрыта весь день
	OverrideClosed OverrideKind = "closed"
	// OverrideSpecialHours площадка работает только в окне [Open, Close)
	OverrideSpecialHours OverrideKind = "special_hours"
)

// DayOverride исключение расписания на одну дату (cronograma)
// Не редактируется: существующее исключение можно только удалить и создать заново
type DayOverride struct {
	VenueID string
	Date    types.Date
	Kind    OverrideKind
	Open    types.TimeString
	Close   types.TimeString
	Reason  string
}

// ParseClock разбирает время исключения; "14" трактуется как "14:00"
func ParseClock(s string) (types.TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !strings.Contains(s, ":") {
		s += ":00"
	}
	return types.NewTimeStringFromString(s)
}

// NewClosedOverride создаёт исключение "закрыто весь день"
func NewClosedOverride(venueID string, date types.Date, reason string) (DayOverride, error) {
	o := DayOverride{
		VenueID: venueID,
		Date:    date,
		Kind:    OverrideClosed,
		Reason:  strings.TrimSpace(reason),
	}
	if err := o.Validate(); err != nil {
		return DayOverride{}, err
	}
	return o, nil
}

// NewSpecialHoursOverride создаёт исключение со специальным окном работы
func NewSpecialHoursOverride(venueID string, date types.Date, open, close types.TimeString, reason string) (DayOverride, error) {
	o := DayOverride{
		VenueID: venueID,
		Date:    date,
		Kind:    OverrideSpecialHours,
		Open:    open,
		Close:   close,
		Reason:  strings.TrimSpace(reason),
	}
	if err := o.Validate(); err != nil {
		return DayOverride{}, err
	}
	return o, nil
}

// Validate проверяет исключение до любого обращения к хранилищу
func (o DayOverride) Validate() error {
	if utf8.RuneCountInString(o.Reason) > MaxOverrideReasonLength {
		return fmt.Errorf("%w: max %d characters", ErrReasonTooLong, MaxOverrideReasonLength)
	}

	switch o.Kind {
	case OverrideClosed:
		return nil
	case OverrideSpecialHours:
		if o.Open.IsZero() || o.Close.IsZero() {
			return ErrMissingSpecialHours
		}
		if err := o.Open.Validate(); err != nil {
			return fmt.Errorf("%w: open: %v", ErrMissingSpecialHours, err)
		}
		if err := o.Close.Validate(); err != nil {
			return fmt.Errorf("%w: close: %v", ErrMissingSpecialHours, err)
		}
		if !o.Close.IsAfter(o.Open) {
			return fmt.Errorf("%w: open=%s close=%s", ErrInvalidSpecialHours, o.Open, o.Close)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOverrideKind, o.Kind)
	}
}

// AllowsSlot проверяет, можно ли работать со слотом в этот день
// Для запрещённого слота возвращает причину для подсказки в сетке
func (o *DayOverride) AllowsSlot(t types.TimeString) (bool, string) {
	if o == nil {
		return true, ""
	}
	switch o.Kind {
	case OverrideClosed:
		reason := "Recinto cerrado"
		if o.Reason != "" {
			reason += ": " + o.Reason
		}
		return false, reason
	case OverrideSpecialHours:
		if t.InRange(o.Open, o.Close) {
			return true, ""
		}
		return false, fmt.Sprintf("Fuera del horario especial (%s–%s)", o.Open, o.Close)
	default:
		return true, ""
	}
}

// Describe возвращает текстовое описание исключения для просмотра
func (o *DayOverride) Describe() string {
	if o == nil {
		return "Horario normal."
	}
	var text string
	switch o.Kind {
	case OverrideClosed:
		text = "Cierre total del recinto."
	case OverrideSpecialHours:
		text = fmt.Sprintf("Horario especial: Abierto desde las %s a las %s horas.", o.Open, o.Close)
	default:
		text = "Horario normal."
	}
	if o.Reason != "" {
		text += " Motivo: " + o.Reason
	}
	return text
}
