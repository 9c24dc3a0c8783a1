package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	// StaffSharePercent доля сотрудника от цены стрижки
	StaffSharePercent = 50

	// SpecialHaircutNote заметка по умолчанию для стрижки вне каталога
	SpecialHaircutNote = "Corte especial"

	// AccountingRankingSize размер рейтинга сотрудников в отчёте
	AccountingRankingSize = 3
)

// HaircutType позиция каталога стрижек
type HaircutType struct {
	ID      string
	VenueID string
	Name    string
	Price   int64
	Active  bool
}

// Haircut проведённая стрижка с разделением выручки
type Haircut struct {
	ID           string
	VenueID      string
	StaffID      string
	StaffName    string
	TypeID       string
	TypeName     string
	Price        int64
	StaffPercent int
	StaffShare   int64
	HouseShare   int64
	Note         string
	CreatedAt    time.Time
}

// Special стрижка вне каталога
func (h Haircut) Special() bool {
	return h.TypeID == ""
}

// SplitEarnings делит цену между сотрудником и заведением
// Доля сотрудника округляется до ближайшего целого, остаток уходит заведению
func SplitEarnings(price int64, percent int) (staff, house int64) {
	staff = (price*int64(percent) + 50) / 100
	return staff, price - staff
}

// HaircutDraft стрижка из консоли до сохранения
// Пустой TypeID означает специальную стрижку с ценой вручную
type HaircutDraft struct {
	StaffID string
	TypeID  string
	Price   int64
	Note    string
}

// Resolve проверяет черновик по каталогу и считает доли
// keepTypeID разрешает оставить уже выключенный тип при редактировании
func (d HaircutDraft) Resolve(catalog []HaircutType, percent int, keepTypeID string) (Haircut, error) {
	if d.StaffID == "" {
		return Haircut{}, fmt.Errorf("%w: staff id is required", ErrInvalidHaircut)
	}
	if d.Price < 0 {
		return Haircut{}, fmt.Errorf("%w: price must not be negative", ErrInvalidHaircut)
	}

	cut := Haircut{
		StaffID:      d.StaffID,
		TypeID:       d.TypeID,
		Price:        d.Price,
		StaffPercent: percent,
		Note:         strings.TrimSpace(d.Note),
	}

	if d.TypeID == "" {
		if cut.Note == "" {
			cut.Note = SpecialHaircutNote
		}
	} else {
		t, ok := findHaircutType(catalog, d.TypeID)
		if !ok || (!t.Active && t.ID != keepTypeID) {
			return Haircut{}, fmt.Errorf("%w: unknown haircut type %q", ErrInvalidHaircut, d.TypeID)
		}
		cut.TypeName = t.Name
		if cut.Price == 0 {
			cut.Price = t.Price
		}
	}

	if cut.Price <= 0 {
		return Haircut{}, fmt.Errorf("%w: price must be positive", ErrInvalidHaircut)
	}
	cut.StaffShare, cut.HouseShare = SplitEarnings(cut.Price, percent)
	return cut, nil
}

func findHaircutType(catalog []HaircutType, id string) (HaircutType, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return HaircutType{}, false
}

// CanTakeClients можно ли записать стрижку на сотрудника
// Сотрудник без статуса за день считается работающим
func CanTakeClients(status *StaffStatus) error {
	if status == nil {
		return nil
	}
	switch status.State {
	case StaffUnavailable, StaffAtLunch:
		return fmt.Errorf("%w: staff is %s", ErrStaffNotWorking, status.State)
	}
	return nil
}

// Period период отчёта
type Period string

const (
	PeriodDay   Period = "dia"
	PeriodMonth Period = "mes"
)

// Range первый и последний день периода, содержащего date
func (p Period) Range(date types.Date) (from, to types.Date, err error) {
	switch p {
	case PeriodDay:
		return date, date, nil
	case PeriodMonth:
		from = types.NewDate(date.Year, date.Month, 1)
		// последний день месяца, а не фиксированное 31-е
		to = types.NewDate(date.Year, date.Month+1, 1).AddDays(-1)
		return from, to, nil
	default:
		return types.Date{}, types.Date{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
	}
}

// DayBounds границы дня площадки во времени
func DayBounds(from, to types.Date, loc *time.Location) (time.Time, time.Time) {
	return from.Time(loc), to.AddDays(1).Time(loc).Add(-time.Nanosecond)
}

// EarningsTotals сводные суммы по стрижкам
type EarningsTotals struct {
	Income int64
	Staff  int64
	House  int64
	Count  int
}

// Add учитывает стрижку
func (t *EarningsTotals) Add(h Haircut) {
	t.Income += h.Price
	t.Staff += h.StaffShare
	t.House += h.HouseShare
	t.Count++
}

// SummarizeHaircuts итоги по списку стрижек
func SummarizeHaircuts(cuts []Haircut) EarningsTotals {
	var totals EarningsTotals
	for _, h := range cuts {
		totals.Add(h)
	}
	return totals
}

// StaffEarnings итоги одного сотрудника за период
type StaffEarnings struct {
	StaffID   string
	StaffName string
	Count     int
	Earned    int64
	Generated int64
}

// AccountingReport отчёт за период
type AccountingReport struct {
	From     types.Date
	To       types.Date
	Period   Period
	Haircuts []Haircut
	Totals   EarningsTotals
	Ranking  []StaffEarnings
	Summary  []StaffEarnings
}

// BuildAccountingReport строит отчёт: список и итоги учитывают фильтр по сотруднику,
// рейтинг и сводка по сотрудникам всегда считаются по всем стрижкам периода
func BuildAccountingReport(cuts []Haircut, staffID string) AccountingReport {
	var report AccountingReport

	byStaff := make(map[string]*StaffEarnings)
	for _, h := range cuts {
		e, ok := byStaff[h.StaffID]
		if !ok {
			e = &StaffEarnings{StaffID: h.StaffID, StaffName: h.StaffName}
			byStaff[h.StaffID] = e
		}
		e.Count++
		e.Earned += h.StaffShare
		e.Generated += h.Price

		if staffID == "" || h.StaffID == staffID {
			report.Haircuts = append(report.Haircuts, h)
			report.Totals.Add(h)
		}
	}

	all := make([]StaffEarnings, 0, len(byStaff))
	for _, e := range byStaff {
		all = append(all, *e)
	}

	report.Summary = sortedEarnings(all, func(e StaffEarnings) int64 { return e.Earned })
	report.Ranking = sortedEarnings(all, func(e StaffEarnings) int64 { return e.Generated })
	if len(report.Ranking) > AccountingRankingSize {
		report.Ranking = report.Ranking[:AccountingRankingSize]
	}
	return report
}

func sortedEarnings(in []StaffEarnings, key func(StaffEarnings) int64) []StaffEarnings {
	out := append([]StaffEarnings(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki > kj
		}
		return out[i].StaffName < out[j].StaffName
	})
	return out
}

// StaffQueueEntry сотрудник в очереди вместе со статусом
type StaffQueueEntry struct {
	Member StaffMember
	Status *StaffStatus
}

// StaffQueue делит сотрудников на очередь (disponible и en_almuerzo) и недоступных
// Без статуса сотрудник считается недоступным; порядок входа сохраняется
func StaffQueue(members []StaffMember, statuses map[string]StaffStatus) (queue, unavailable []StaffQueueEntry) {
	for _, m := range members {
		entry := StaffQueueEntry{Member: m}
		st, ok := statuses[m.ID]
		if ok {
			entry.Status = &st
		}
		if ok && (st.State == StaffAvailable || st.State == StaffAtLunch) {
			queue = append(queue, entry)
			continue
		}
		unavailable = append(unavailable, entry)
	}
	return queue, unavailable
}
