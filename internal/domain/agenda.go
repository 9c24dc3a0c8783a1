package domain

import "github.com/m04kA/SMC-VenueConsole/pkg/types"

// EntryStatus статус записи агенды
type EntryStatus string

const (
	EntryReserved EntryStatus = "reservada"
	EntryBlocked  EntryStatus = "bloqueada"
)

// Valid проверяет статус
func (s EntryStatus) Valid() bool {
	return s == EntryReserved || s == EntryBlocked
}

// Source хранилище, из которого читается дата
type Source string

const (
	// SourceLive текущие записи, изменяемые
	SourceLive Source = "live"
	// SourceArchive архив прошедших дат, только чтение
	SourceArchive Source = "archive"
)

// ResolveSource выбирает хранилище для даты: live для date >= today, архив для прошлого
// today должен быть вычислен в часовом поясе площадки
func ResolveSource(date, today types.Date) Source {
	if date.Before(today) {
		return SourceArchive
	}
	return SourceLive
}

// ScheduleEntry запись агенды: резервация или блокировка корта в слоте
type ScheduleEntry struct {
	ID            string
	VenueID       string
	Date          types.Date
	CourtID       string
	SlotID        string
	Status        EntryStatus
	CustomerName  string
	CustomerPhone string
	Source        Source
}

// IsArchived запись из архива, только для чтения
func (e ScheduleEntry) IsArchived() bool {
	return e.Source == SourceArchive
}

// Key ключ ячейки сетки
func (e ScheduleEntry) Key() CellKey {
	return CellKey{Date: e.Date, CourtID: e.CourtID, SlotID: e.SlotID}
}

// CellKey уникальный ключ (дата, корт, слот)
type CellKey struct {
	Date    types.Date
	CourtID string
	SlotID  string
}
