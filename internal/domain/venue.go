package domain

import (
	"crypto/subtle"
	"strings"

	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Venue площадка (recinto), владелец связан с ней 1:1
type Venue struct {
	ID            string
	Name          string
	Address       string
	Slug          string
	WhatsAppPhone string
	OwnerID       string
	PINCode       string
}

// CheckPIN сравнивает введённый PIN с PIN площадки за постоянное время
// Площадка без PIN не пропускает ни одно значение
func (v Venue) CheckPIN(pin string) bool {
	stored := strings.TrimSpace(v.PINCode)
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(strings.TrimSpace(pin))) == 1
}

// Court корт площадки (cancha)
type Court struct {
	ID      string
	VenueID string
	Name    string
	Active  bool
}

// TimeSlot базовый слот расписания (horario base), не зависит от даты
type TimeSlot struct {
	ID      string
	VenueID string
	Time    types.TimeString
	Active  bool
}

// CourtName возвращает название корта по ID или пустую строку
func CourtName(courts []Court, id string) string {
	for _, c := range courts {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// PublicSlot строка публичной доступности площадки
// Имя клиента наружу не отдаётся
type PublicSlot struct {
	CourtID   string
	CourtName string
	Date      types.Date
	Time      types.TimeString
	Status    string
}

// PublicAvailability публичная страница площадки по slug
type PublicAvailability struct {
	VenueID       string
	VenueName     string
	Address       string
	WhatsAppPhone string
	From          types.Date
	To            types.Date
	Slots         []PublicSlot
}
