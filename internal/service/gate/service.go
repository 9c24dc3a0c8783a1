package gate

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

const purgeJobName = "gate-session-purge"

// Service хранит сессии confirmation gate в памяти процесса
// Сессия живёт от открытия диалога шаблона до done/cancelled или истечения TTL
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	limiters map[string]*rate.Limiter

	ttl      time.Duration
	pinRate  rate.Limit
	pinBurst int

	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(cfg Config, metrics Metrics, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*session),
		limiters:     make(map[string]*rate.Limiter),
		ttl:          cfg.SessionTTL,
		pinRate:      rate.Limit(cfg.PINAttemptsPerMin / 60),
		pinBurst:     cfg.PINBurst,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open открывает новую сессию в состоянии idle
// Каждое открытие шаблона даёт свежую сессию, прежние не переиспользуются
func (s *Service) Open(venueID, templateID string, importance domain.Importance, category domain.Category) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:         uuid.NewString(),
		venueID:    venueID,
		templateID: templateID,
		gate:       domain.NewGate(importance, category),
		expiresAt:  s.timeProvider.Now().Add(s.ttl),
	}
	s.sessions[sess.id] = sess

	s.logger.Info("Gate.Open: venue=%s, template=%s, session=%s, importance=%s",
		venueID, templateID, sess.id, importance)
	return sess.snapshot()
}

// Get возвращает снимок сессии площадки
func (s *Service) Get(venueID, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(venueID, id)
	if err != nil {
		return Session{}, err
	}
	return sess.snapshot(), nil
}

// Execute нажатие "выполнить": промпт или переход к отправке
func (s *Service) Execute(venueID, id string) (Session, error) {
	return s.transition(venueID, id, "Execute", func(g *domain.Gate) (domain.GateState, error) {
		return g.Execute()
	})
}

// Confirm ответ на второй промпт
func (s *Service) Confirm(venueID, id string, yes bool) (Session, error) {
	return s.transition(venueID, id, "Confirm", func(g *domain.Gate) (domain.GateState, error) {
		return g.Confirm(yes)
	})
}

// SubmitPIN проверяет PIN площадки; попытки ограничены на площадку
func (s *Service) SubmitPIN(venue domain.Venue, id, pin string) (Session, error) {
	if !s.AllowPIN(venue.ID) {
		s.logger.Warn("Gate.SubmitPIN: venue=%s exceeded pin attempts", venue.ID)
		return Session{}, ErrTooManyAttempts
	}

	return s.transition(venue.ID, id, "SubmitPIN", func(g *domain.Gate) (domain.GateState, error) {
		return g.SubmitPIN(pin, venue)
	})
}

// AllowPIN расходует одну попытку ввода PIN площадки
// Лимит общий для всех проверок PIN в консоли
func (s *Service) AllowPIN(venueID string) bool {
	s.mu.Lock()
	limiter := s.limiterFor(venueID)
	s.mu.Unlock()
	return limiter.Allow()
}

// Complete фиксирует результат отправки
func (s *Service) Complete(venueID, id string, sendErr error) (Session, error) {
	return s.transition(venueID, id, "Complete", func(g *domain.Gate) (domain.GateState, error) {
		return g.Complete(sendErr)
	})
}

// Cancel закрывает диалог
func (s *Service) Cancel(venueID, id string) (Session, error) {
	return s.transition(venueID, id, "Cancel", func(g *domain.Gate) (domain.GateState, error) {
		return g.Cancel()
	})
}

// PurgeExpired удаляет истекшие сессии и возвращает их количество
// Сессия в executing не удаляется: отправка ещё может завершиться
func (s *Service) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	purged := 0
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) && sess.gate.State() != domain.GateExecuting {
			delete(s.sessions, id)
			purged++
		}
	}
	if purged > 0 {
		s.logger.Info("Gate.PurgeExpired: purged=%d, remaining=%d", purged, len(s.sessions))
	}
	return purged
}

// Schedule регистрирует периодическую очистку истекших сессий
func (s *Service) Schedule(scheduler gocron.Scheduler, interval time.Duration) (gocron.Job, error) {
	job, err := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.PurgeExpired() }),
		gocron.WithName(purgeJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("gate: failed to schedule %s: %w", purgeJobName, err)
	}
	return job, nil
}

func (s *Service) transition(venueID, id, op string, step func(g *domain.Gate) (domain.GateState, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(venueID, id)
	if err != nil {
		s.logger.Warn("Gate.%s: session=%s: %v", op, id, err)
		return Session{}, err
	}

	from := sess.gate.State()
	to, err := step(sess.gate)
	if from != to {
		s.metrics.ObserveGateTransition(string(from), string(to))
	}
	sess.expiresAt = s.timeProvider.Now().Add(s.ttl)
	snapshot := sess.snapshot()

	if sess.gate.Terminal() {
		delete(s.sessions, sess.id)
	}

	if err != nil {
		s.logger.Warn("Gate.%s: session=%s, state=%s: %v", op, id, to, err)
		return snapshot, mapGateError(err)
	}

	s.logger.Info("Gate.%s: session=%s, %s -> %s", op, id, from, to)
	return snapshot, nil
}

func (s *Service) lookup(venueID, id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok || sess.venueID != venueID {
		return nil, ErrSessionNotFound
	}
	if s.timeProvider.Now().After(sess.expiresAt) && sess.gate.State() != domain.GateExecuting {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) limiterFor(venueID string) *rate.Limiter {
	limiter, ok := s.limiters[venueID]
	if !ok {
		limiter = rate.NewLimiter(s.pinRate, s.pinBurst)
		s.limiters[venueID] = limiter
	}
	return limiter
}

func mapGateError(err error) error {
	switch {
	case errors.Is(err, domain.ErrPINMismatch):
		return ErrPINMismatch
	case errors.Is(err, domain.ErrGateBusy):
		return ErrBusy
	default:
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
}
