package botorders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	botorderRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/botorder"
	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders/models"
)

// DefaultBoardLimit количество последних заказов на панели
const DefaultBoardLimit = 50

// Service сервис каталога шаблонов и панели заказов бота
type Service struct {
	orderRepo   BotOrderRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(orderRepo BotOrderRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListTemplates возвращает активные шаблоны, сгруппированные по категориям
func (s *Service) ListTemplates(ctx context.Context) (*models.TemplateListResponse, error) {
	s.logger.Info("ListTemplates: fetching active templates")

	templates, err := s.orderRepo.ListTemplates(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTemplates: successfully fetched %d templates", len(templates))
	return models.FromDomainTemplates(templates), nil
}

// GetForm возвращает форму шаблона; корты подгружаются только для форм с выбором корта
func (s *Service) GetForm(ctx context.Context, venueID, templateID string) (*models.FormResponse, error) {
	s.logger.Info("GetForm: venue=%s, template=%s", venueID, templateID)

	tpl, err := s.orderRepo.GetTemplate(ctx, templateID)
	if err != nil {
		if errors.Is(err, botorderRepo.ErrTemplateNotFound) {
			s.logger.Warn("GetForm: template=%s not found", templateID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("GetForm: repository error for template=%s: %v", templateID, err)
		return nil, fmt.Errorf("%w: GetForm - repository error: %v", ErrInternal, err)
	}

	cfg := domain.FormConfigFor(*tpl)

	var courts []domain.Court
	if cfg.NeedsCourts {
		courts, err = s.catalogRepo.ListCourts(ctx, venueID)
		if err != nil {
			s.logger.Error("GetForm: failed to list courts for venue=%s: %v", venueID, err)
			return nil, fmt.Errorf("%w: GetForm - list courts: %v", ErrInternal, err)
		}
	}

	return models.FromDomainForm(*tpl, cfg, courts), nil
}

// Board возвращает последние заказы площадки, разложенные по статусу
func (s *Service) Board(ctx context.Context, venueID string) (*models.BoardResponse, error) {
	s.logger.Info("Board: fetching orders for venue=%s", venueID)

	orders, err := s.orderRepo.ListOrders(ctx, venueID, DefaultBoardLimit)
	if err != nil {
		s.logger.Error("Board: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: Board - repository error: %v", ErrInternal, err)
	}

	board := domain.GroupOrders(orders)
	s.logger.Info("Board: venue=%s executing=%d, active=%d, history=%d",
		venueID, len(board.Executing), len(board.Active), len(board.History))
	return models.FromDomainBoard(board), nil
}
