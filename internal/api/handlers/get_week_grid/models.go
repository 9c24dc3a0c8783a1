package get_week_grid

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	getWeekGrid "github.com/m04kA/SMC-VenueConsole/internal/usecase/get_week_grid"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// GridResponse HTTP response model
type GridResponse struct {
	WeekStart types.Date    `json:"weekStart"`
	Today     types.Date    `json:"today"`
	Days      []DayHeader   `json:"days"`
	Courts    []CourtHeader `json:"courts"`
	Slots     []SlotHeader  `json:"slots"`
	Cells     []Cell        `json:"cells"`
}

// DayHeader заголовок дня с описанием исключения
type DayHeader struct {
	Date     types.Date `json:"date"`
	Override string     `json:"override"`
	Schedule string     `json:"schedule"`
}

// CourtHeader колонка корта
type CourtHeader struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotHeader строка слота
type SlotHeader struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Cell ячейка сетки
type Cell struct {
	Date         types.Date `json:"date"`
	CourtID      string     `json:"courtId"`
	SlotID       string     `json:"slotId"`
	Time         string     `json:"time"`
	State        string     `json:"state"`
	CustomerName string     `json:"customerName,omitempty"`
	AgendaID     string     `json:"agendaId,omitempty"`
	Payment      string     `json:"payment,omitempty"`
	Interactive  bool       `json:"interactive"`
	Action       string     `json:"action"`
	Reason       string     `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekGrid.Response) *GridResponse {
	g := resp.Grid
	out := &GridResponse{
		WeekStart: g.WeekStart,
		Today:     g.Today,
		Days:      make([]DayHeader, 0, len(g.Days)),
		Courts:    make([]CourtHeader, 0, len(g.Courts)),
		Slots:     make([]SlotHeader, 0, len(g.Slots)),
	}
	for _, d := range g.Days {
		o, _ := g.Override(d)
		header := DayHeader{Date: d, Override: string(domain.OverrideNormal), Schedule: o.Describe()}
		if o != nil {
			header.Override = string(o.Kind)
		}
		out.Days = append(out.Days, header)
	}
	for _, c := range g.Courts {
		out.Courts = append(out.Courts, CourtHeader{ID: c.ID, Name: c.Name})
	}
	for _, s := range g.Slots {
		out.Slots = append(out.Slots, SlotHeader{ID: s.ID, Time: s.Time.String()})
	}

	cells := g.Cells()
	out.Cells = make([]Cell, 0, len(cells))
	for _, c := range cells {
		out.Cells = append(out.Cells, Cell{
			Date:         c.Date,
			CourtID:      c.CourtID,
			SlotID:       c.SlotID,
			Time:         c.Time.String(),
			State:        string(c.State),
			CustomerName: c.CustomerName,
			AgendaID:     c.AgendaID,
			Payment:      string(c.Payment),
			Interactive:  c.Interactive,
			Action:       string(c.Action),
			Reason:       c.Reason,
		})
	}
	return out
}
