package domain

import "fmt"

// GateState состояние confirmation gate
type GateState string

const (
	GateIdle                GateState = "idle"
	GateCheck               GateState = "gate_check"
	GatePromptSecondConfirm GateState = "prompt_second_confirm"
	GatePromptPIN           GateState = "prompt_pin"
	GateExecuting           GateState = "executing"
	GateDone                GateState = "done"
	GateFailed              GateState = "failed"
	GateCancelled           GateState = "cancelled"
)

// Gate конечный автомат подтверждений перед отправкой заказа
// Один экземпляр живёт от открытия диалога шаблона до его закрытия
type Gate struct {
	importance Importance
	category   Category
	state      GateState
	pinError   bool
	lastError  string
}

// NewGate создаёт gate в состоянии idle
func NewGate(importance Importance, category Category) *Gate {
	return &Gate{
		importance: importance,
		category:   category,
		state:      GateIdle,
	}
}

// State текущее состояние
func (g *Gate) State() GateState { return g.state }

// Importance уровень важности
func (g *Gate) Importance() Importance { return g.importance }

// Category категория шаблона
func (g *Gate) Category() Category { return g.category }

// PINError последний введённый PIN не совпал
func (g *Gate) PINError() bool { return g.pinError }

// LastError текст последней ошибки отправки
func (g *Gate) LastError() string { return g.lastError }

// RequiresSecondConfirm high-заказы категорий Reservas и Emergencias требуют второго "да"
func RequiresSecondConfirm(importance Importance, category Category) bool {
	return importance == ImportanceHigh && (category == CategoryReservations || category == CategoryEmergencies)
}

// Execute нажатие "выполнить"
// Из idle и failed проходит gate_check и останавливается на промпте либо переходит в executing
func (g *Gate) Execute() (GateState, error) {
	switch g.state {
	case GateExecuting:
		return g.state, ErrGateBusy
	case GateIdle, GateFailed:
	default:
		return g.state, fmt.Errorf("%w: execute from %s", ErrGateTransition, g.state)
	}

	g.state = GateCheck
	g.lastError = ""
	switch {
	case g.importance == ImportanceCritical:
		g.state = GatePromptPIN
		g.pinError = false
	case RequiresSecondConfirm(g.importance, g.category):
		g.state = GatePromptSecondConfirm
	default:
		g.state = GateExecuting
	}
	return g.state, nil
}

// Confirm ответ на второй промпт: "да" запускает отправку, "нет" возвращает в idle
func (g *Gate) Confirm(yes bool) (GateState, error) {
	if g.state != GatePromptSecondConfirm {
		return g.state, fmt.Errorf("%w: confirm from %s", ErrGateTransition, g.state)
	}
	if yes {
		g.state = GateExecuting
	} else {
		g.state = GateIdle
	}
	return g.state, nil
}

// SubmitPIN проверяет PIN площадки; при несовпадении остаётся в prompt_pin с флагом ошибки
func (g *Gate) SubmitPIN(pin string, venue Venue) (GateState, error) {
	if g.state != GatePromptPIN {
		return g.state, fmt.Errorf("%w: pin from %s", ErrGateTransition, g.state)
	}
	if !venue.CheckPIN(pin) {
		g.pinError = true
		return g.state, ErrPINMismatch
	}
	g.pinError = false
	g.state = GateExecuting
	return g.state, nil
}

// Complete результат отправки; ошибка переводит в failed, откуда можно повторить
func (g *Gate) Complete(err error) (GateState, error) {
	if g.state != GateExecuting {
		return g.state, fmt.Errorf("%w: complete from %s", ErrGateTransition, g.state)
	}
	if err != nil {
		g.state = GateFailed
		g.lastError = err.Error()
		return g.state, nil
	}
	g.state = GateDone
	return g.state, nil
}

// Cancel закрывает диалог; во время отправки отмена невозможна
func (g *Gate) Cancel() (GateState, error) {
	switch g.state {
	case GateIdle, GatePromptSecondConfirm, GatePromptPIN, GateFailed:
		g.state = GateCancelled
		return g.state, nil
	case GateExecuting:
		return g.state, ErrGateBusy
	default:
		return g.state, fmt.Errorf("%w: cancel from %s", ErrGateTransition, g.state)
	}
}

// Terminal диалог закрыт
func (g *Gate) Terminal() bool {
	return g.state == GateDone || g.state == GateCancelled
}
