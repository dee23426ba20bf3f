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

	backInServiceHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/back_in_service"
	cancelBookingHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/check_availability"
	checkInHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/check_in"
	checkOutHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/check_out"
	completeTaskHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/complete_task"
	createBookingHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/create_booking"
	createResourceHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/create_resource"
	createTaskHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/create_task"
	listBookingsHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/list_bookings"
	listResourcesHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/list_resources"
	listTasksHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/list_tasks"
	occupancySummaryHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/occupancy_summary"
	outOfOrderHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/out_of_order"
	revenueSummaryHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/revenue_summary"
	upcomingBookingsHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/upcoming_bookings"
	updateBookingHandler "github.com/opsdesk/OPS-ResourceService/internal/api/handlers/update_booking"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/config"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
	bookingsService "github.com/opsdesk/OPS-ResourceService/internal/service/bookings"
	housekeepingService "github.com/opsdesk/OPS-ResourceService/internal/service/housekeeping"
	resourcesService "github.com/opsdesk/OPS-ResourceService/internal/service/resources"
	summaryService "github.com/opsdesk/OPS-ResourceService/internal/service/summary"
	backInServiceUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/back_in_service"
	cancelBookingUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/cancel_booking"
	checkAvailabilityUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_availability"
	checkInUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_in"
	checkOutUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_out"
	completeTaskUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/complete_task"
	createBookingUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/create_booking"
	createTaskUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/create_task"
	markOutOfOrderUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/mark_out_of_order"
	updateBookingUC "github.com/opsdesk/OPS-ResourceService/internal/usecase/update_booking"
	"github.com/opsdesk/OPS-ResourceService/pkg/dbmetrics"
	"github.com/opsdesk/OPS-ResourceService/pkg/logger"
	"github.com/opsdesk/OPS-ResourceService/pkg/metrics"
	"github.com/opsdesk/OPS-ResourceService/pkg/simpletxmanager"
	"github.com/opsdesk/OPS-ResourceService/pkg/txmanager"
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

	log.Info("Starting OPS-ResourceService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона для свертки выручки
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		resourceRepository *resourceRepo.Repository
		bookingRepository  *bookingRepo.Repository
		taskRepository     *taskRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы чтения
	resourceSvc := resourcesService.NewService(resourceRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Booking.UpcomingWindowHours, log)
	housekeepingSvc := housekeepingService.NewService(taskRepository, log)
	summarySvc := summaryService.NewService(resourceRepository, bookingRepository, location, log)

	// Инициализируем use cases
	minDuration := cfg.Booking.MinDurationFor
	createBookingUseCase := createBookingUC.NewUseCase(resourceRepository, bookingRepository, txMgr, minDuration, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(resourceRepository, bookingRepository, txMgr, minDuration, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(resourceRepository, bookingRepository, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(resourceRepository, bookingRepository, minDuration, log)
	checkInUseCase := checkInUC.NewUseCase(resourceRepository, bookingRepository, txMgr, log)
	checkOutUseCase := checkOutUC.NewUseCase(resourceRepository, bookingRepository, taskRepository, txMgr, log)
	createTaskUseCase := createTaskUC.NewUseCase(resourceRepository, bookingRepository, taskRepository, txMgr, log)
	completeTaskUseCase := completeTaskUC.NewUseCase(resourceRepository, bookingRepository, taskRepository, txMgr, log)
	markOutOfOrderUseCase := markOutOfOrderUC.NewUseCase(resourceRepository, txMgr, log)
	backInServiceUseCase := backInServiceUC.NewUseCase(resourceRepository, bookingRepository, txMgr, log)

	// Инициализируем handlers
	listResources := listResourcesHandler.NewHandler(resourceSvc, log)
	createResource := createResourceHandler.NewHandler(resourceSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	outOfOrder := outOfOrderHandler.NewHandler(markOutOfOrderUseCase, log)
	backInService := backInServiceHandler.NewHandler(backInServiceUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	upcomingBookings := upcomingBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	listTasks := listTasksHandler.NewHandler(housekeepingSvc, log)
	createTask := createTaskHandler.NewHandler(createTaskUseCase, log)
	completeTask := completeTaskHandler.NewHandler(completeTaskUseCase, log)
	occupancySummary := occupancySummaryHandler.NewHandler(summarySvc, log)
	revenueSummary := revenueSummaryHandler.NewHandler(summarySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все API маршруты работают в контексте арендатора
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// --- Ресурсы ---
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/resources/{resourceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/out-of-order", outOfOrder.Handle).Methods(http.MethodPost)
	api.HandleFunc("/resources/{resourceId}/back-in-service", backInService.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// /bookings/upcoming регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/upcoming", upcomingBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)

	// --- Задачи уборки ---
	api.HandleFunc("/housekeeping-tasks", listTasks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/housekeeping-tasks", createTask.Handle).Methods(http.MethodPost)
	api.HandleFunc("/housekeeping-tasks/{taskId}/complete", completeTask.Handle).Methods(http.MethodPost)

	// --- Сводки ---
	api.HandleFunc("/summary/occupancy", occupancySummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/summary/revenue", revenueSummary.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped")
}
