package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	createPriceRuleHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/create_price_rule"
	createReservationHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/create_reservation"
	createScheduleOverrideHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/create_schedule_override"
	deleteHaircutHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/delete_haircut"
	deletePriceRuleHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/delete_price_rule"
	deleteScheduleOverrideHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/delete_schedule_override"
	endStaffLunchHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/end_staff_lunch"
	getAccountingHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_accounting"
	getBotOrdersHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_bot_orders"
	getBotTemplateFormHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_bot_template_form"
	getHaircutsTodayHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_haircuts_today"
	getPublicAvailabilityHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_public_availability"
	getReceiptHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_receipt"
	getScheduleHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_schedule"
	getStaffQueueHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_staff_queue"
	getVenueHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_venue"
	getWeekGridHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/get_week_grid"
	listBotTemplatesHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/list_bot_templates"
	listHaircutTypesHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/list_haircut_types"
	listPriceRulesHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/list_price_rules"
	listStaffHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/list_staff"
	markPaidHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/mark_paid"
	openReservationHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/open_reservation"
	quotePriceHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/quote_price"
	registerHaircutHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/register_haircut"
	releaseReservationHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/release_reservation"
	sendBotOrderHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/send_bot_order"
	updateHaircutHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/update_haircut"
	updateStaffStatusHandler "github.com/m04kA/SMC-VenueConsole/internal/api/handlers/update_staff_status"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/config"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore/postgres"
	"github.com/m04kA/SMC-VenueConsole/internal/infra/datastore/supabase"
	agendaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/agenda"
	botorderRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/botorder"
	catalogRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/catalog"
	cronogramaRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/cronograma"
	haircutRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/haircut"
	paymentRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/payment"
	staffRepo "github.com/m04kA/SMC-VenueConsole/internal/infra/storage/staff"
	botOrdersService "github.com/m04kA/SMC-VenueConsole/internal/service/botorders"
	gateService "github.com/m04kA/SMC-VenueConsole/internal/service/gate"
	haircutsService "github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
	pricingService "github.com/m04kA/SMC-VenueConsole/internal/service/pricing"
	reservationsService "github.com/m04kA/SMC-VenueConsole/internal/service/reservations"
	scheduleService "github.com/m04kA/SMC-VenueConsole/internal/service/schedule"
	staffService "github.com/m04kA/SMC-VenueConsole/internal/service/staff"
	venuesService "github.com/m04kA/SMC-VenueConsole/internal/service/venues"
	createReservationUC "github.com/m04kA/SMC-VenueConsole/internal/usecase/create_reservation"
	getWeekGridUC "github.com/m04kA/SMC-VenueConsole/internal/usecase/get_week_grid"
	markPaidUC "github.com/m04kA/SMC-VenueConsole/internal/usecase/mark_paid"
	openReservationUC "github.com/m04kA/SMC-VenueConsole/internal/usecase/open_reservation"
	sendBotOrderUC "github.com/m04kA/SMC-VenueConsole/internal/usecase/send_bot_order"
	"github.com/m04kA/SMC-VenueConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueConsole...")
	log.Info("Configuration loaded from config.toml (backend=%s)", cfg.Backend)

	location, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	var store datastore.Store
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			store = postgres.NewStore(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh), metricsCollector)
			log.Info("Database metrics collection started")
		} else {
			store = postgres.NewStore(db, nil)
		}

	case config.BackendSupabase:
		supabaseStore, err := supabase.NewStore(
			cfg.Supabase.URL,
			cfg.Supabase.ServiceKey,
			time.Duration(cfg.Supabase.Timeout)*time.Second,
			metricsCollector,
		)
		if err != nil {
			log.Fatal("Failed to initialize supabase client: %v", err)
		}
		store = supabaseStore
		log.Info("Supabase client initialized (url=%s, timeout=%ds)", cfg.Supabase.URL, cfg.Supabase.Timeout)
	}

	// Инициализируем репозитории
	catalogRepository := catalogRepo.NewRepository(store)
	agendaRepository := agendaRepo.NewRepository(store)
	paymentRepository := paymentRepo.NewRepository(store)
	cronogramaRepository := cronogramaRepo.NewRepository(store)
	botorderRepository := botorderRepo.NewRepository(store)
	staffRepository := staffRepo.NewRepository(store)
	haircutRepository := haircutRepo.NewRepository(store)

	// Инициализируем сервисы
	venueSvc := venuesService.NewService(catalogRepository, location, log)
	pricingSvc := pricingService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(cronogramaRepository, location, log)
	reservationSvc := reservationsService.NewService(agendaRepository, paymentRepository, catalogRepository, location, log)
	botOrderSvc := botOrdersService.NewService(botorderRepository, catalogRepository, log)
	staffSvc := staffService.NewService(staffRepository, log)
	gateSvc := gateService.NewService(gateService.Config{
		SessionTTL:        time.Duration(cfg.Gate.SessionTTL) * time.Second,
		PINAttemptsPerMin: cfg.Gate.PINAttemptsPerMin,
		PINBurst:          cfg.Gate.PINBurst,
	}, metricsCollector, log)
	// Удаление стрижки расходует тот же лимит PIN, что и заказы боту
	haircutSvc := haircutsService.NewService(haircutRepository, staffRepository, gateSvc, location, log)

	// Фоновая очистка истёкших сессий gate
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		log.Fatal("Failed to create scheduler: %v", err)
	}
	if _, err := gateSvc.Schedule(scheduler, time.Duration(cfg.Gate.CleanupInterval)*time.Second); err != nil {
		log.Fatal("Failed to schedule gate cleanup: %v", err)
	}
	scheduler.Start()
	log.Info("Gate cleanup scheduled every %ds (session ttl=%ds)", cfg.Gate.CleanupInterval, cfg.Gate.SessionTTL)

	// Инициализируем use cases
	getWeekGridUseCase := getWeekGridUC.NewUseCase(
		catalogRepository,
		agendaRepository,
		paymentRepository,
		cronogramaRepository,
		location,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		catalogRepository,
		agendaRepository,
		paymentRepository,
		cronogramaRepository,
		location,
		log,
	)
	openReservationUseCase := openReservationUC.NewUseCase(
		catalogRepository,
		agendaRepository,
		paymentRepository,
		location,
		log,
	)
	markPaidUseCase := markPaidUC.NewUseCase(
		catalogRepository,
		agendaRepository,
		paymentRepository,
		location,
		log,
	)
	sendBotOrderUseCase := sendBotOrderUC.NewUseCase(
		botorderRepository,
		botorderRepository,
		catalogRepository,
		gateSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	getWeekGrid := getWeekGridHandler.NewHandler(getWeekGridUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	openReservation := openReservationHandler.NewHandler(openReservationUseCase, log)
	releaseReservation := releaseReservationHandler.NewHandler(reservationSvc, log)
	markPaid := markPaidHandler.NewHandler(markPaidUseCase, log)
	getReceipt := getReceiptHandler.NewHandler(reservationSvc, log)
	listPriceRules := listPriceRulesHandler.NewHandler(pricingSvc, log)
	createPriceRule := createPriceRuleHandler.NewHandler(pricingSvc, log)
	deletePriceRule := deletePriceRuleHandler.NewHandler(pricingSvc, log)
	quotePrice := quotePriceHandler.NewHandler(pricingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createScheduleOverride := createScheduleOverrideHandler.NewHandler(scheduleSvc, log)
	deleteScheduleOverride := deleteScheduleOverrideHandler.NewHandler(scheduleSvc, log)
	listBotTemplates := listBotTemplatesHandler.NewHandler(botOrderSvc, log)
	getBotTemplateForm := getBotTemplateFormHandler.NewHandler(botOrderSvc, log)
	getBotOrders := getBotOrdersHandler.NewHandler(botOrderSvc, log)
	sendBotOrder := sendBotOrderHandler.NewHandler(sendBotOrderUseCase, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	updateStaffStatus := updateStaffStatusHandler.NewHandler(staffSvc, log)
	getStaffQueue := getStaffQueueHandler.NewHandler(staffSvc, log)
	endStaffLunch := endStaffLunchHandler.NewHandler(staffSvc, log)
	listHaircutTypes := listHaircutTypesHandler.NewHandler(haircutSvc, log)
	registerHaircut := registerHaircutHandler.NewHandler(haircutSvc, log)
	updateHaircut := updateHaircutHandler.NewHandler(haircutSvc, log)
	deleteHaircut := deleteHaircutHandler.NewHandler(haircutSvc, log)
	getHaircutsToday := getHaircutsTodayHandler.NewHandler(haircutSvc, log)
	getAccounting := getAccountingHandler.NewHandler(haircutSvc, log)
	getPublicAvailability := getPublicAvailabilityHandler.NewHandler(venueSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная доступность площадки по slug
	api.HandleFunc("/public/venues/{slug}", getPublicAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT владельца площадки)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(
		middleware.AuthConfig{Secret: cfg.Auth.JWTSecret, Issuer: cfg.Auth.Issuer},
		venueSvc,
		venuesService.ErrVenueNotFound,
		log,
	))

	// --- Площадка и сетка ---
	protected.HandleFunc("/venue", getVenue.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/grid", getWeekGrid.Handle).Methods(http.MethodGet)

	// --- Резервации и оплата ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{agendaId}", openReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{agendaId}", releaseReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{agendaId}/pay", markPaid.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/receipts/{agendaId}", getReceipt.Handle).Methods(http.MethodGet)

	// --- Цены ---
	// quote регистрируется до {ruleId}
	protected.HandleFunc("/prices/quote", quotePrice.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/prices", listPriceRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/prices", createPriceRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/prices/{ruleId}", deletePriceRule.Handle).Methods(http.MethodDelete)

	// --- Cronograma ---
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", createScheduleOverride.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/{date}", deleteScheduleOverride.Handle).Methods(http.MethodDelete)

	// --- Заказы бота ---
	protected.HandleFunc("/bot/templates", listBotTemplates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bot/templates/{templateId}/form", getBotTemplateForm.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bot/templates/{templateId}/send", sendBotOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bot/orders", getBotOrders.Handle).Methods(http.MethodGet)

	// --- Персонал ---
	protected.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/queue", getStaffQueue.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/status", updateStaffStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/end-lunch", endStaffLunch.Handle).Methods(http.MethodPost)

	// --- Стрижки и бухгалтерия ---
	protected.HandleFunc("/haircuts/types", listHaircutTypes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/haircuts/today", getHaircutsToday.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/haircuts", registerHaircut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/haircuts/{haircutId}", updateHaircut.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/haircuts/{haircutId}", deleteHaircut.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/accounting", getAccounting.Handle).Methods(http.MethodGet)

	// CORS для браузерной консоли
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := scheduler.Shutdown(); err != nil {
		log.Error("Failed to stop scheduler: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
