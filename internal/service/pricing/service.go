package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Service сервис правил цен площадки
type Service struct {
	ruleRepo PriceRuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(ruleRepo PriceRuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// ListRules возвращает правила цен площадки
func (s *Service) ListRules(ctx context.Context, venueID string) (*models.RuleListResponse, error) {
	s.logger.Info("ListRules: fetching rules for venue=%s", venueID)

	rules, err := s.ruleRepo.ListPriceRules(ctx, venueID)
	if err != nil {
		s.logger.Error("ListRules: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRuleList(rules), nil
}

// CreateRule создает правило цены
// Правило не должно пересекаться с существующими правилами площадки
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: venue=%s, %s-%s, weekdays=%v, price=%d",
		req.VenueID, req.Start, req.End, req.Weekdays, req.Price)

	// 1. Валидируем правило
	rule, err := req.ToDomainRule()
	if err != nil {
		s.logger.Warn("CreateRule: invalid time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := rule.Validate(); err != nil {
		s.logger.Warn("CreateRule: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем пересечение с существующими правилами
	existing, err := s.ruleRepo.ListPriceRules(ctx, req.VenueID)
	if err != nil {
		s.logger.Error("CreateRule: repository error for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}
	for _, other := range existing {
		if rule.Overlaps(other) {
			s.logger.Warn("CreateRule: %s-%s overlaps rule id=%s", rule.Start, rule.End, other.ID)
			return nil, fmt.Errorf("%w: %s-%s", ErrOverlappingRules, other.Start, other.End)
		}
	}

	// 3. Сохраняем
	created, err := s.ruleRepo.CreatePriceRule(ctx, rule)
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: created rule id=%s for venue=%s", created.ID, req.VenueID)
	resp := models.FromDomainRule(*created)
	return &resp, nil
}

// DeleteRule удаляет правило цены площадки
func (s *Service) DeleteRule(ctx context.Context, venueID, ruleID string) error {
	s.logger.Info("DeleteRule: venue=%s, rule=%s", venueID, ruleID)

	rules, err := s.ruleRepo.ListPriceRules(ctx, venueID)
	if err != nil {
		s.logger.Error("DeleteRule: repository error for venue=%s: %v", venueID, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}
	if !containsRule(rules, ruleID) {
		s.logger.Warn("DeleteRule: rule id=%s not found in venue=%s", ruleID, venueID)
		return ErrRuleNotFound
	}

	if err := s.ruleRepo.DeletePriceRule(ctx, venueID, ruleID); err != nil {
		s.logger.Error("DeleteRule: repository error for rule=%s: %v", ruleID, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: deleted rule id=%s", ruleID)
	return nil
}

// Quote возвращает цену слота по правилам площадки
// Отсутствие подходящего правила дает неопределённую цену, не ноль
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil || req.Date.IsZero() {
		s.logger.Warn("Quote: invalid date=%s or time=%q", req.Date, req.Time)
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}

	rules, err := s.ruleRepo.ListPriceRules(ctx, req.VenueID)
	if err != nil {
		s.logger.Error("Quote: repository error for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Quote - repository error: %v", ErrInternal, err)
	}

	resp := &models.QuoteResponse{
		Date:    req.Date,
		Time:    t.String(),
		Weekday: int(domain.ISOWeekdayOf(req.Date)),
	}
	if price, ok := domain.ResolvePrice(req.VenueID, req.Date, t, rules); ok {
		resp.Price = &price
	}
	return resp, nil
}

func containsRule(rules []domain.PriceRule, id string) bool {
	for _, r := range rules {
		if r.ID == id {
			return true
		}
	}
	return false
}
