package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business constants
const (
	// DaysInWeek неделя сетки всегда 7 дней, начиная с понедельника
	DaysInWeek = 7

	// PublicAvailabilityDays окно публичной доступности от сегодняшнего дня
	PublicAvailabilityDays = 90

	// MaxOverrideReasonLength максимальная длина причины исключения расписания
	MaxOverrideReasonLength = 30

	// MaxCustomerNameLength максимальная длина имени клиента
	MaxCustomerNameLength = 80

	// BlockedCustomerName имя, которое хранится у заблокированного слота
	BlockedCustomerName = "Bloqueado"

	// DefaultOrderCreator автор заказов, созданных из консоли
	DefaultOrderCreator = "admin"

	// DefaultPhoneRegion регион для нормализации телефонов клиентов
	DefaultPhoneRegion = "CL"

	// DefaultTimezone часовой пояс площадки по умолчанию
	DefaultTimezone = "America/Santiago"
)
