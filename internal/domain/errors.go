package domain

import "errors"

var (
	// ErrInvalidPriceRule возвращается при некорректном правиле цены
	ErrInvalidPriceRule = errors.New("domain: invalid price rule")

	// ErrOverlappingPriceRules возвращается, если два правила цены покрывают один и тот же день и время
	ErrOverlappingPriceRules = errors.New("domain: overlapping price rules")

	// ErrMissingSpecialHours возвращается, если для специального расписания не указано время открытия или закрытия
	ErrMissingSpecialHours = errors.New("domain: special hours require open and close time")

	// ErrInvalidSpecialHours возвращается, если время закрытия не позже времени открытия
	ErrInvalidSpecialHours = errors.New("domain: close time must be after open time")

	// ErrReasonTooLong возвращается, если причина исключения длиннее допустимого
	ErrReasonTooLong = errors.New("domain: override reason is too long")

	// ErrInvalidOverrideKind возвращается при неизвестном типе исключения
	ErrInvalidOverrideKind = errors.New("domain: invalid override kind")

	// ErrInvalidDeposit возвращается при отрицательном абоне или абоне больше цены
	ErrInvalidDeposit = errors.New("domain: invalid deposit amount")

	// ErrReservationPaid возвращается при попытке изменить оплаченную резервацию
	ErrReservationPaid = errors.New("domain: reservation is paid and cannot be modified")

	// ErrPriceUndetermined возвращается, если цену резервации определить не удалось
	ErrPriceUndetermined = errors.New("domain: price undetermined")

	// ErrInvalidGridInput возвращается, если для сетки не хватает данных
	ErrInvalidGridInput = errors.New("domain: invalid grid input")

	// ErrPastDate возвращается при попытке изменить прошедшую дату
	ErrPastDate = errors.New("domain: date is in the past")

	// ErrSlotUnavailable возвращается, если слот закрыт исключением расписания
	ErrSlotUnavailable = errors.New("domain: slot is unavailable on this date")

	// ErrGateTransition возвращается при недопустимом переходе confirmation gate
	ErrGateTransition = errors.New("domain: invalid confirmation gate transition")

	// ErrGateBusy возвращается, пока заказ отправляется
	ErrGateBusy = errors.New("domain: order submission in progress")

	// ErrPINMismatch возвращается, если введённый PIN не совпадает с PIN площадки
	ErrPINMismatch = errors.New("domain: pin mismatch")

	// ErrUnresolvedPlaceholder возвращается, если в сообщении остался {{token}} без переменной
	ErrUnresolvedPlaceholder = errors.New("domain: unresolved template placeholder")

	// ErrMissingVariable возвращается, если обязательная переменная шаблона не заполнена
	ErrMissingVariable = errors.New("domain: missing required template variable")

	// ErrInvalidStaffStatus возвращается при некорректном статусе сотрудника
	ErrInvalidStaffStatus = errors.New("domain: invalid staff status")

	// ErrInvalidHaircut возвращается при некорректной записи стрижки
	ErrInvalidHaircut = errors.New("domain: invalid haircut")

	// ErrStaffNotWorking возвращается, если сотрудник не принимает клиентов
	ErrStaffNotWorking = errors.New("domain: staff member is not working")

	// ErrInvalidPeriod возвращается при неизвестном периоде отчёта
	ErrInvalidPeriod = errors.New("domain: invalid report period")
)
