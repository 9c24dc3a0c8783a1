package domain

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// PriceRule правило цены: полуоткрытый интервал [Start, End) в указанные дни недели
type PriceRule struct {
	ID       string
	VenueID  string
	Start    types.TimeString
	End      types.TimeString
	Weekdays []ISOWeekday
	Price    int64
}

// AppliesOn проверяет, действует ли правило в день недели
func (r PriceRule) AppliesOn(day ISOWeekday) bool {
	for _, w := range r.Weekdays {
		if w == day {
			return true
		}
	}
	return false
}

// Matches проверяет день недели и время
func (r PriceRule) Matches(day ISOWeekday, t types.TimeString) bool {
	return r.AppliesOn(day) && t.InRange(r.Start, r.End)
}

// Validate проверяет правило: start < end, дни 1..7 без повторов, цена >= 0
func (r PriceRule) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidPriceRule, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidPriceRule, err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidPriceRule, r.Start, r.End)
	}
	if len(r.Weekdays) == 0 {
		return fmt.Errorf("%w: no weekdays", ErrInvalidPriceRule)
	}
	seen := make(map[ISOWeekday]bool, len(r.Weekdays))
	for _, w := range r.Weekdays {
		if !w.Valid() {
			return fmt.Errorf("%w: weekday %d out of range 1..7", ErrInvalidPriceRule, w)
		}
		if seen[w] {
			return fmt.Errorf("%w: duplicate weekday %d", ErrInvalidPriceRule, w)
		}
		seen[w] = true
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidPriceRule)
	}
	return nil
}

// Overlaps возвращает true, если правила пересекаются хотя бы в одном дне и минуте
func (r PriceRule) Overlaps(other PriceRule) bool {
	if r.Start.Minutes() >= other.End.Minutes() || other.Start.Minutes() >= r.End.Minutes() {
		return false
	}
	for _, w := range r.Weekdays {
		if other.AppliesOn(w) {
			return true
		}
	}
	return false
}

func (r PriceRule) width() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// ValidatePriceRules проверяет набор правил одной площадки
// Пересекающиеся правила считаются ошибкой конфигурации
func ValidatePriceRules(rules []PriceRule) error {
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return err
		}
		for j := 0; j < i; j++ {
			if rules[i].Overlaps(rules[j]) {
				return fmt.Errorf("%w: %s-%s overlaps %s-%s",
					ErrOverlappingPriceRules, rules[i].Start, rules[i].End, rules[j].Start, rules[j].End)
			}
		}
	}
	return nil
}

// ResolvePrice возвращает цену для площадки, даты и времени
// ok=false означает "цена не определена", а не ноль.
// Правила других площадок игнорируются. Если правила всё же пересекаются,
// побеждает самый узкий интервал, затем более раннее начало, затем меньший ID
func ResolvePrice(venueID string, date types.Date, t types.TimeString, rules []PriceRule) (price int64, ok bool) {
	day := ISOWeekdayOf(date)

	var candidates []PriceRule
	for _, r := range rules {
		if r.VenueID != "" && venueID != "" && r.VenueID != venueID {
			continue
		}
		if r.Matches(day, t) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.width() != b.width() {
			return a.width() < b.width()
		}
		if a.Start.Minutes() != b.Start.Minutes() {
			return a.Start.Minutes() < b.Start.Minutes()
		}
		return a.ID < b.ID
	})

	return candidates[0].Price, true
}

// MaxPrice возвращает максимальную цену среди правил площадки
// Используется как верхняя граница абона, когда точная цена неизвестна
func MaxPrice(rules []PriceRule) (int64, bool) {
	if len(rules) == 0 {
		return 0, false
	}
	max := rules[0].Price
	for _, r := range rules[1:] {
		if r.Price > max {
			max = r.Price
		}
	}
	return max, true
}
