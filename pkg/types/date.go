package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format")

// Date календарная дата без времени и часового пояса
// Сравнение дат никогда не зависит от UTC-смещения сервера
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate нормализует год/месяц/день (32 января превращается в 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// TodayIn возвращает сегодняшнюю дату в часовом поясе loc
func TodayIn(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}

// ParseDate разбирает дату в формате YYYY-MM-DD
// Допускается хвост времени ("2025-03-05T00:00:00"), он отбрасывается
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// IsZero возвращает true, если дата не задана
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time возвращает полночь даты в часовом поясе loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays прибавляет n календарных дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday возвращает день недели в соглашении time.Weekday (воскресенье = 0)
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Before возвращает true, если d строго раньше other
func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

// After возвращает true, если d строго позже other
func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

// Equal возвращает true для одной и той же даты
func (d Date) Equal(other Date) bool {
	return d.compare(other) == 0
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON сериализует дату строкой YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает дату из строки YYYY-MM-DD
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return int(d.Month) - int(other.Month)
	default:
		return d.Day - other.Day
	}
}
