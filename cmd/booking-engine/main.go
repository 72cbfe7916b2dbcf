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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/create_booking"
	createPriceCardHandler "github.com/svcmarket/booking-engine/internal/api/handlers/create_price_card"
	deletePriceCardHandler "github.com/svcmarket/booking-engine/internal/api/handlers/delete_price_card"
	getAvailabilityHandler "github.com/svcmarket/booking-engine/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/svcmarket/booking-engine/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/svcmarket/booking-engine/internal/api/handlers/get_my_bookings"
	getPriceCardHandler "github.com/svcmarket/booking-engine/internal/api/handlers/get_price_card"
	listMyPriceCardsHandler "github.com/svcmarket/booking-engine/internal/api/handlers/list_my_price_cards"
	listPriceCardsHandler "github.com/svcmarket/booking-engine/internal/api/handlers/list_price_cards"
	previewBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/preview_booking"
	replaceAvailabilityHandler "github.com/svcmarket/booking-engine/internal/api/handlers/replace_availability"
	respondBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/respond_booking"
	startBookingHandler "github.com/svcmarket/booking-engine/internal/api/handlers/start_booking"
	updatePriceCardHandler "github.com/svcmarket/booking-engine/internal/api/handlers/update_price_card"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/config"
	"github.com/svcmarket/booking-engine/internal/infra/cache"
	addressRepo "github.com/svcmarket/booking-engine/internal/infra/storage/address"
	availabilityRepo "github.com/svcmarket/booking-engine/internal/infra/storage/availability"
	bookingRepo "github.com/svcmarket/booking-engine/internal/infra/storage/booking"
	pricecardRepo "github.com/svcmarket/booking-engine/internal/infra/storage/pricecard"
	providerRepo "github.com/svcmarket/booking-engine/internal/infra/storage/provider"
	"github.com/svcmarket/booking-engine/internal/notify"
	"github.com/svcmarket/booking-engine/internal/pricing"
	availabilityService "github.com/svcmarket/booking-engine/internal/service/availability"
	bookingsService "github.com/svcmarket/booking-engine/internal/service/bookings"
	pricecardsService "github.com/svcmarket/booking-engine/internal/service/pricecards"
	createBookingUC "github.com/svcmarket/booking-engine/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/svcmarket/booking-engine/internal/usecase/get_available_slots"
	previewBookingUC "github.com/svcmarket/booking-engine/internal/usecase/preview_booking"
	"github.com/svcmarket/booking-engine/pkg/bookref"
	"github.com/svcmarket/booking-engine/pkg/dbmetrics"
	"github.com/svcmarket/booking-engine/pkg/logger"
	"github.com/svcmarket/booking-engine/pkg/metrics"
	"github.com/svcmarket/booking-engine/pkg/simpletxmanager"
	"github.com/svcmarket/booking-engine/pkg/txmanager"
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

	log.Info("Starting booking-engine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кеш публичного расписания (redis опционален)
	var availabilityCache availabilityService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		availabilityCache = cache.NewAvailabilityCache(
			redisClient,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	} else {
		availabilityCache = cache.NewNoopCache()
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		pricecardRepository    *pricecardRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		providerRepository     *providerRepo.Repository
		addressRepository      *addressRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pricecardRepository = pricecardRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		addressRepository = addressRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		pricecardRepository = pricecardRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		addressRepository = addressRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Прайсинг и уведомления
	pricer := pricing.NewEngine()
	notifier := notify.NewLogNotifier(log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		providerRepository,
		notifier,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		providerRepository,
		availabilityCache,
		log,
	)
	pricecardSvc := pricecardsService.NewService(
		pricecardRepository,
		providerRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		pricecardRepository,
		availabilityRepository,
		addressRepository,
		txMgr,
		pricer,
		notifier,
		bookref.New,
		log,
	)
	previewBookingUseCase := previewBookingUC.NewUseCase(pricecardRepository, pricer, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		pricecardRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	previewBooking := previewBookingHandler.NewHandler(previewBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	respondBooking := respondBookingHandler.NewHandler(bookingSvc, log)
	startBooking := startBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailability := replaceAvailabilityHandler.NewHandler(availabilitySvc, log)
	createPriceCard := createPriceCardHandler.NewHandler(pricecardSvc, log)
	updatePriceCard := updatePriceCardHandler.NewHandler(pricecardSvc, log)
	deletePriceCard := deletePriceCardHandler.NewHandler(pricecardSvc, log)
	getPriceCard := getPriceCardHandler.NewHandler(pricecardSvc, log)
	listPriceCards := listPriceCardsHandler.NewHandler(pricecardSvc, log)
	listMyPriceCards := listMyPriceCardsHandler.NewHandler(pricecardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Публичное расписание исполнителя
	api.HandleFunc("/providers/{providerId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Доступные слоты по карточке на дату
	api.HandleFunc("/providers/{providerId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог карточек услуг
	api.HandleFunc("/price-cards", listPriceCards.Handle).Methods(http.MethodGet)
	api.HandleFunc("/price-cards/{id}", getPriceCard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/preview", previewBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/mine", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/provider-respond", respondBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/start", startBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

	// --- Расписание исполнителя ---
	protected.HandleFunc("/availability", replaceAvailability.Handle).Methods(http.MethodPut)

	// --- Карточки услуг (для исполнителей) ---
	protected.HandleFunc("/price-cards", createPriceCard.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/price-cards/mine", listMyPriceCards.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/price-cards/{id}", updatePriceCard.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/price-cards/{id}", deletePriceCard.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
