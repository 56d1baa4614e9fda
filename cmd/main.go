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

	createBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/create_booking"
	createBookingSafeHandler "github.com/sevadoor/booking-service/internal/api/handlers/create_booking_safe"
	deleteBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/sevadoor/booking-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/sevadoor/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/sevadoor/booking-service/internal/api/handlers/get_customer_bookings"
	getWorkerBookingsHandler "github.com/sevadoor/booking-service/internal/api/handlers/get_worker_bookings"
	hardDeleteBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/hard_delete_booking"
	trackBookingHandler "github.com/sevadoor/booking-service/internal/api/handlers/track_booking"
	updateAvailabilityHandler "github.com/sevadoor/booking-service/internal/api/handlers/update_availability"
	updateBlockedDatesHandler "github.com/sevadoor/booking-service/internal/api/handlers/update_blocked_dates"
	updateBookingStatusHandler "github.com/sevadoor/booking-service/internal/api/handlers/update_booking_status"
	"github.com/sevadoor/booking-service/internal/api/middleware"
	"github.com/sevadoor/booking-service/internal/config"
	bookingRepo "github.com/sevadoor/booking-service/internal/infra/storage/booking"
	workerRepo "github.com/sevadoor/booking-service/internal/infra/storage/worker"
	identityClient "github.com/sevadoor/booking-service/internal/integrations/identity"
	availabilityService "github.com/sevadoor/booking-service/internal/service/availability"
	bookingsService "github.com/sevadoor/booking-service/internal/service/bookings"
	createBookingUC "github.com/sevadoor/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/sevadoor/booking-service/internal/usecase/get_available_slots"
	"github.com/sevadoor/booking-service/pkg/dbmetrics"
	"github.com/sevadoor/booking-service/pkg/logger"
	"github.com/sevadoor/booking-service/pkg/metrics"
	"github.com/sevadoor/booking-service/pkg/simpletxmanager"
	"github.com/sevadoor/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент IdentityService
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Репозитории: с обёрткой метрик или напрямую поверх *sql.DB
	var (
		bookingRepository *bookingRepo.Repository
		workerRepository  *workerRepo.Repository
		txBeginner        dbmetrics.TxBeginner
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		workerRepository = workerRepo.NewRepository(wrappedDB)
		txBeginner = wrappedDB
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		workerRepository = workerRepo.NewRepository(db)
		txBeginner = &dbmetrics.SqlDBWrapper{DB: db}
	}

	// Менеджер транзакций: за statement-pooler'ом транзакции недоступны,
	// безопасный путь бронирования будет отвечать явной ошибкой
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Database.TransactionsEnabled {
		txMgr = txmanager.NewTransactionManager(txBeginner)
		log.Info("Transaction manager initialized (serializable path enabled)")
	} else {
		txMgr = simpletxmanager.NewTransactionManager()
		log.Warn("Transactions disabled by config, safe booking path will respond 501")
	}

	// Сервисы
	availabilitySvc := availabilityService.NewService(workerRepository, identity, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		identity,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateBlockedDates := updateBlockedDatesHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBookingSafe := createBookingSafeHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	trackBooking := trackBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	hardDeleteBooking := hardDeleteBookingHandler.NewHandler(bookingSvc, log)
	getWorkerBookings := getWorkerBookingsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность работников ---
	api.HandleFunc("/workers/{workerId}/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workers/{workerId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workers/{workerId}/availability", updateAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/workers/{workerId}/blocked-dates", updateBlockedDates.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Специфичные маршруты регистрируются раньше шаблонных
	api.HandleFunc("/bookings/track/{trackingId}", trackBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/safe", createBookingSafe.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/hard", hardDeleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Списки бронирований ---
	api.HandleFunc("/workers/{workerId}/bookings", getWorkerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// HTTP сервер
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
