package send_bot_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	botorderRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/botorder"
	"github.com/m04kA/SMC-VenueConsole/internal/service/gate"
)

// UUIDGenerator генерирует временные ID заказов
type UUIDGenerator struct{}

// NewID возвращает новый uuid
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case отправки заказа боту через confirmation gate
type UseCase struct {
	templateRepo TemplateRepository
	orderRepo    OrderRepository
	catalogRepo  CatalogRepository
	gates        GateService
	metrics      Metrics
	ids          IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	orderRepo OrderRepository,
	catalogRepo CatalogRepository,
	gates GateService,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		orderRepo:    orderRepo,
		catalogRepo:  catalogRepo,
		gates:        gates,
		metrics:      metrics,
		ids:          UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет один шаг диалога шаблона
// Заказ вставляется только когда gate дошёл до executing; ошибка отправки
// переводит сессию в failed с сохранением значений, шаг execute можно повторить
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendBotOrder: venue=%s, template=%s, session=%s, step=%s",
		req.Venue.ID, req.TemplateID, req.SessionID, req.Step)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendBotOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Отмена не требует шаблона
	if req.Step == StepCancel {
		session, err := uc.session(req)
		if err != nil {
			return nil, err
		}
		session, err = uc.gates.Cancel(req.Venue.ID, session.ID)
		if err != nil {
			return nil, mapGateError(err)
		}
		return &Response{Session: session}, nil
	}

	// 3. Шаблон
	tpl, err := uc.templateRepo.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, botorderRepo.ErrTemplateNotFound) {
			uc.logger.Warn("SendBotOrder: template=%s not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		uc.logger.Error("SendBotOrder: failed to get template=%s: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 4. Подстановка значений до любых переходов gate
	var courts []domain.Court
	if needsCourts(*tpl) {
		courts, err = uc.catalogRepo.ListCourts(ctx, req.Venue.ID)
		if err != nil {
			uc.logger.Error("SendBotOrder: failed to list courts: %v", err)
			return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
		}
	}
	message, err := renderMessage(*tpl, req.Values, courts)
	if err != nil {
		uc.logger.Warn("SendBotOrder: template=%s: %v", tpl.ID, err)
		return nil, err
	}

	// 5. Сессия gate: новая для первого шага
	var session gate.Session
	if req.SessionID == "" {
		session = uc.gates.Open(req.Venue.ID, tpl.ID, tpl.Importance, tpl.Category)
	} else {
		session, err = uc.session(req)
		if err != nil {
			return nil, err
		}
	}

	// 6. Переход gate
	switch req.Step {
	case StepExecute:
		session, err = uc.gates.Execute(req.Venue.ID, session.ID)
	case StepConfirm:
		session, err = uc.gates.Confirm(req.Venue.ID, session.ID, req.Yes)
	case StepPIN:
		session, err = uc.gates.SubmitPIN(req.Venue, session.ID, req.PIN)
	}
	if err != nil {
		resp := &Response{Session: session, Prompt: promptFor(session.State), Message: message}
		return resp, mapGateError(err)
	}

	resp := &Response{Session: session, Message: message}
	if session.State != domain.GateExecuting {
		resp.Prompt = promptFor(session.State)
		return resp, nil
	}

	// 7. Отправка заказа
	order, sendErr := uc.send(ctx, req.Venue.ID, *tpl, message)
	uc.metrics.ObserveBotOrder(string(tpl.Importance), sendErr)

	session, err = uc.gates.Complete(req.Venue.ID, session.ID, sendErr)
	if err != nil {
		uc.logger.Error("SendBotOrder: failed to complete session=%s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: failed to complete gate session: %v", ErrInternal, err)
	}
	resp.Session = session
	if sendErr != nil {
		uc.logger.Error("SendBotOrder: failed to send template=%s: %v", tpl.ID, sendErr)
		return resp, nil
	}

	resp.Order = order
	uc.logger.Info("SendBotOrder: order=%s created for venue=%s, type=%s", order.ID, req.Venue.ID, order.OrderType)

	return resp, nil
}

func (uc *UseCase) send(ctx context.Context, venueID string, tpl domain.BotOrderTemplate, message string) (*domain.BotOrder, error) {
	order, err := uc.orderRepo.CreateOrder(ctx, domain.BotOrder{
		VenueID:   venueID,
		OrderType: tpl.OrderType,
		Message:   message,
		Status:    domain.OrderSending,
		CreatedBy: domain.DefaultOrderCreator,
	})
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		order.ID = domain.TempOrderIDPrefix + uc.ids.NewID()
	}
	return order, nil
}

func (uc *UseCase) session(req *Request) (gate.Session, error) {
	session, err := uc.gates.Get(req.Venue.ID, req.SessionID)
	if err != nil {
		uc.logger.Warn("SendBotOrder: session=%s: %v", req.SessionID, err)
		return gate.Session{}, mapGateError(err)
	}
	if session.TemplateID != req.TemplateID {
		uc.logger.Warn("SendBotOrder: session=%s belongs to template=%s", session.ID, session.TemplateID)
		return gate.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// needsCourts шаблон содержит переменную с выбором корта
func needsCourts(tpl domain.BotOrderTemplate) bool {
	for _, v := range tpl.Variables {
		if v.Type.Normalize() == domain.VarCourt {
			return true
		}
	}
	return false
}

func promptFor(state domain.GateState) string {
	switch state {
	case domain.GatePromptSecondConfirm:
		return SecondConfirmPrompt
	case domain.GatePromptPIN:
		return PINPrompt
	default:
		return ""
	}
}

func mapGateError(err error) error {
	switch {
	case errors.Is(err, gate.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, gate.ErrPINMismatch):
		return ErrPINMismatch
	case errors.Is(err, gate.ErrTooManyAttempts):
		return ErrTooManyAttempts
	case errors.Is(err, gate.ErrBusy):
		return ErrBusy
	default:
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
}
