package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// CellState состояние ячейки сетки
type CellState string

const (
	CellFree         CellState = "free"
	CellReserved     CellState = "reserved"
	CellBlocked      CellState = "blocked"
	CellArchivedPaid CellState = "archived_paid"
)

// CellAction действие, которое открывает клик по ячейке
type CellAction string

const (
	// ActionBook открыть создание резервации
	ActionBook CellAction = "book"
	// ActionManage открыть управление (освободить, переблокировать, оплатить)
	ActionManage CellAction = "manage"
	// ActionReceipt открыть квитанцию архивной записи
	ActionReceipt CellAction = "receipt"
	// ActionNone клик ничего не делает
	ActionNone CellAction = "none"
)

// Cell ячейка (дата, корт, слот)
type Cell struct {
	Date         types.Date
	CourtID      string
	SlotID       string
	Time         types.TimeString
	State        CellState
	CustomerName string
	AgendaID     string
	Payment      LedgerStatus
	Interactive  bool
	Action       CellAction
	Reason       string
}

// Grid недельная сетка площадки
type Grid struct {
	VenueID   string
	WeekStart types.Date
	Today     types.Date
	Days      []types.Date
	Courts    []Court
	Slots     []TimeSlot
	Overrides map[types.Date]DayOverride
	cells     map[CellKey]Cell
}

// GridInput данные для построения сетки
type GridInput struct {
	VenueID   string
	WeekStart types.Date
	Today     types.Date
	Courts    []Court
	Slots     []TimeSlot
	Overrides []DayOverride
	Live      []ScheduleEntry
	Archive   []ScheduleEntry
	// Payments оплаты live-записей по ID агенды
	Payments map[string]PaymentRecord
}

// WeekStartOf возвращает понедельник недели, содержащей d
func WeekStartOf(d types.Date) types.Date {
	return d.AddDays(-(int(ISOWeekdayOf(d)) - 1))
}

// WeekOf возвращает 7 дат недели, начиная с понедельника
func WeekOf(d types.Date) []types.Date {
	start := WeekStartOf(d)
	days := make([]types.Date, DaysInWeek)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// BuildGrid строит сетку недели
// Прошедшие даты берутся только из архива, сегодняшние и будущие только из live
func BuildGrid(in GridInput) (*Grid, error) {
	if in.VenueID == "" {
		return nil, fmt.Errorf("%w: venue id is required", ErrInvalidGridInput)
	}
	if in.Today.IsZero() {
		return nil, fmt.Errorf("%w: today is required", ErrInvalidGridInput)
	}

	days := WeekOf(in.WeekStart)
	g := &Grid{
		VenueID:   in.VenueID,
		WeekStart: days[0],
		Today:     in.Today,
		Days:      days,
		Courts:    activeCourts(in.Courts),
		Slots:     activeSlots(in.Slots),
		Overrides: make(map[types.Date]DayOverride),
		cells:     make(map[CellKey]Cell),
	}

	inWeek := make(map[types.Date]bool, len(days))
	for _, d := range days {
		inWeek[d] = true
	}
	for _, o := range in.Overrides {
		if o.VenueID == in.VenueID && inWeek[o.Date] {
			g.Overrides[o.Date] = o
		}
	}

	entries := make(map[CellKey]ScheduleEntry)
	for _, e := range in.Live {
		if e.VenueID == in.VenueID && inWeek[e.Date] && ResolveSource(e.Date, in.Today) == SourceLive {
			e.Source = SourceLive
			entries[e.Key()] = e
		}
	}
	for _, e := range in.Archive {
		if e.VenueID == in.VenueID && inWeek[e.Date] && ResolveSource(e.Date, in.Today) == SourceArchive {
			e.Source = SourceArchive
			entries[e.Key()] = e
		}
	}

	for _, d := range days {
		var override *DayOverride
		if o, ok := g.Overrides[d]; ok {
			override = &o
		}
		for _, court := range g.Courts {
			for _, slot := range g.Slots {
				key := CellKey{Date: d, CourtID: court.ID, SlotID: slot.ID}
				var entry *ScheduleEntry
				if e, ok := entries[key]; ok {
					entry = &e
				}
				g.cells[key] = classifyCell(key, slot.Time, in.Today, entry, in.Payments, override)
			}
		}
	}

	return g, nil
}

func classifyCell(key CellKey, t types.TimeString, today types.Date, entry *ScheduleEntry,
	payments map[string]PaymentRecord, override *DayOverride) Cell {

	cell := Cell{
		Date:    key.Date,
		CourtID: key.CourtID,
		SlotID:  key.SlotID,
		Time:    t,
		State:   CellFree,
	}

	if entry != nil {
		cell.AgendaID = entry.ID
		cell.CustomerName = entry.CustomerName
		switch {
		case entry.IsArchived():
			cell.State = CellArchivedPaid
			cell.Payment = LedgerPaid
		case entry.Status == EntryBlocked:
			cell.State = CellBlocked
		default:
			cell.State = CellReserved
			var record *PaymentRecord
			if p, ok := payments[entry.ID]; ok {
				record = &p
			}
			cell.Payment = DeriveLedger(*entry, record, nil).Status
		}
	}

	// Прошлое никогда не доступно для записи
	if key.Date.Before(today) {
		if cell.State == CellArchivedPaid {
			cell.Action = ActionReceipt
		} else {
			cell.Action = ActionNone
		}
		return cell
	}

	if allowed, reason := override.AllowsSlot(t); !allowed {
		cell.Action = ActionNone
		cell.Reason = reason
		return cell
	}

	cell.Interactive = true
	if cell.State == CellFree {
		cell.Action = ActionBook
	} else {
		cell.Action = ActionManage
	}
	return cell
}

// Cell возвращает ячейку сетки
func (g *Grid) Cell(date types.Date, courtID, slotID string) (Cell, bool) {
	c, ok := g.cells[CellKey{Date: date, CourtID: courtID, SlotID: slotID}]
	return c, ok
}

// Cells возвращает ячейки в порядке дата, слот, корт
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for _, d := range g.Days {
		for _, slot := range g.Slots {
			for _, court := range g.Courts {
				if c, ok := g.cells[CellKey{Date: d, CourtID: court.ID, SlotID: slot.ID}]; ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// Override возвращает исключение расписания на дату
func (g *Grid) Override(d types.Date) (*DayOverride, bool) {
	o, ok := g.Overrides[d]
	if !ok {
		return nil, false
	}
	return &o, true
}

// ActionAllowed проверяет, разрешено ли действие записи для даты, слота и исключения
func ActionAllowed(date, today types.Date, t types.TimeString, override *DayOverride) error {
	if date.Before(today) {
		return ErrPastDate
	}
	if allowed, reason := override.AllowsSlot(t); !allowed {
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, reason)
	}
	return nil
}

// DateRange возвращает даты [from, from+days)
func DateRange(from types.Date, days int) []types.Date {
	out := make([]types.Date, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, from.AddDays(i))
	}
	return out
}

// VenueToday сегодняшняя дата в часовом поясе площадки
func VenueToday(now time.Time, loc *time.Location) types.Date {
	return types.TodayIn(now, loc)
}

func activeCourts(courts []Court) []Court {
	out := make([]Court, 0, len(courts))
	for _, c := range courts {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

func activeSlots(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Active {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.IsBefore(out[j].Time)
	})
	return out
}
