package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// StaffState дневной статус сотрудника, на него опирается чат-бот
type StaffState string

const (
	StaffAvailable   StaffState = "disponible"
	StaffAtLunch     StaffState = "en_almuerzo"
	StaffUnavailable StaffState = "no_disponible"
)

// Valid проверяет статус
func (s StaffState) Valid() bool {
	switch s {
	case StaffAvailable, StaffAtLunch, StaffUnavailable:
		return true
	default:
		return false
	}
}

// StaffMember сотрудник площадки
type StaffMember struct {
	ID      string
	VenueID string
	Name    string
}

// StaffStatus текущий статус сотрудника
type StaffStatus struct {
	StaffID   string
	State     StaffState
	ReturnAt  types.TimeString
	UpdatedAt time.Time
}

// AllDay статус действует весь день (нет времени возвращения)
func (s StaffStatus) AllDay() bool {
	return s.ReturnAt.IsZero()
}

// StaffStatusUpdate изменение статуса из консоли
type StaffStatusUpdate struct {
	StaffID  string
	State    StaffState
	AllDay   bool
	LunchAt  types.TimeString
	ReturnAt types.TimeString
}

// Validate правила дневного статуса:
// disponible не на весь день требует время обеда и возвращения, en_almuerzo требует время возвращения
func (u StaffStatusUpdate) Validate() error {
	if u.StaffID == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidStaffStatus)
	}
	if !u.State.Valid() {
		return fmt.Errorf("%w: unknown state %q", ErrInvalidStaffStatus, u.State)
	}

	switch u.State {
	case StaffAvailable:
		if !u.AllDay && (u.LunchAt.IsZero() || u.ReturnAt.IsZero()) {
			return fmt.Errorf("%w: lunch and return time are required unless all day", ErrInvalidStaffStatus)
		}
	case StaffAtLunch:
		if u.ReturnAt.IsZero() {
			return fmt.Errorf("%w: return time is required", ErrInvalidStaffStatus)
		}
	}

	for _, t := range []types.TimeString{u.LunchAt, u.ReturnAt} {
		if !t.IsZero() {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidStaffStatus, err)
			}
		}
	}
	return nil
}

// Status статус для сохранения; для всего дня время возвращения не хранится
func (u StaffStatusUpdate) Status(now time.Time) StaffStatus {
	status := StaffStatus{
		StaffID:   u.StaffID,
		State:     u.State,
		UpdatedAt: now,
	}
	if !u.AllDay {
		status.ReturnAt = u.ReturnAt
	}
	return status
}
