package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const minutesPerDay = 24 * 60

// TimeString время суток в формате HH:MM (без даты и часового пояса)
// Хранилище отдаёт колонки типа time как "HH:MM:SS", поэтому секунды при разборе отбрасываются
type TimeString string

// NewTimeString создаёт TimeString из времени суток t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString разбирает строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes), nil
}

// NewTimeStringFromParts собирает время из часов и минут, переданных строками
// Пустая часть даёт ошибку
func NewTimeStringFromParts(hour, minute string) (TimeString, error) {
	if strings.TrimSpace(hour) == "" || strings.TrimSpace(minute) == "" {
		return "", fmt.Errorf("%w: hour and minute are required", ErrInvalidTimeString)
	}
	return NewTimeStringFromString(strings.TrimSpace(hour) + ":" + strings.TrimSpace(minute))
}

// FromMinutes создаёт TimeString из количества минут от полуночи
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes возвращает количество минут от полуночи
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return -1
	}
	return m
}

// Hour возвращает час
func (t TimeString) Hour() int {
	m := t.Minutes()
	if m < 0 {
		return -1
	}
	return m / 60
}

// AddMinutes прибавляет минуты, не выходя за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	total := m + minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes is outside the day", ErrInvalidTimeString, t, minutes)
	}
	if total == minutesPerDay {
		return "24:00", nil
	}
	return FromMinutes(total), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// InRange проверяет принадлежность полуоткрытому интервалу [start, end)
func (t TimeString) InRange(start, end TimeString) bool {
	m := t.Minutes()
	return m >= start.Minutes() && m < end.Minutes()
}

// String возвращает нормализованное представление HH:MM
func (t TimeString) String() string {
	m, err := parseMinutes(string(t))
	if err != nil {
		return string(t)
	}
	if m == minutesPerDay {
		return "24:00"
	}
	return string(FromMinutes(m))
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		// "HH:MM:SS" и "HH:MM:SS.ffffff" от Postgres
		sec := strings.SplitN(parts[2], ".", 2)[0]
		if _, err := strconv.Atoi(sec); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	if hour == 24 && minute == 0 {
		return minutesPerDay, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hour*60 + minute, nil
}

// Normalize приводит время из хранилища ("19:00:00") к виду HH:MM
// Пустое и некорректное значение возвращается как есть
func (t TimeString) Normalize() TimeString {
	if t.IsZero() {
		return t
	}
	return TimeString(t.String())
}
