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
	"github.com/rs/cors"

	analyticsHandler "github.com/sparkleclean/booking-service/internal/api/handlers/analytics"
	assignStaffHandler "github.com/sparkleclean/booking-service/internal/api/handlers/assign_staff"
	authHandler "github.com/sparkleclean/booking-service/internal/api/handlers/auth"
	checkAvailabilityHandler "github.com/sparkleclean/booking-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/sparkleclean/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/sparkleclean/booking-service/internal/api/handlers/delete_booking"
	documentsHandler "github.com/sparkleclean/booking-service/internal/api/handlers/documents"
	listBookingsHandler "github.com/sparkleclean/booking-service/internal/api/handlers/list_bookings"
	locationsHandler "github.com/sparkleclean/booking-service/internal/api/handlers/locations"
	notificationsHandler "github.com/sparkleclean/booking-service/internal/api/handlers/notifications"
	servicesHandler "github.com/sparkleclean/booking-service/internal/api/handlers/services"
	staffHandler "github.com/sparkleclean/booking-service/internal/api/handlers/staff"
	tasksHandler "github.com/sparkleclean/booking-service/internal/api/handlers/tasks"
	updateBookingStatusHandler "github.com/sparkleclean/booking-service/internal/api/handlers/update_booking_status"
	updatePaymentHandler "github.com/sparkleclean/booking-service/internal/api/handlers/update_payment"
	workersHandler "github.com/sparkleclean/booking-service/internal/api/handlers/workers"
	"github.com/sparkleclean/booking-service/internal/api/middleware"
	"github.com/sparkleclean/booking-service/internal/config"
	"github.com/sparkleclean/booking-service/internal/domain"
	bookingRepo "github.com/sparkleclean/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/sparkleclean/booking-service/internal/infra/storage/catalog"
	documentRepo "github.com/sparkleclean/booking-service/internal/infra/storage/document"
	locationRepo "github.com/sparkleclean/booking-service/internal/infra/storage/location"
	notificationRepo "github.com/sparkleclean/booking-service/internal/infra/storage/notification"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
	taskRepo "github.com/sparkleclean/booking-service/internal/infra/storage/task"
	workerRepo "github.com/sparkleclean/booking-service/internal/infra/storage/worker"
	analyticsService "github.com/sparkleclean/booking-service/internal/service/analytics"
	availabilityService "github.com/sparkleclean/booking-service/internal/service/availability"
	bookingsService "github.com/sparkleclean/booking-service/internal/service/bookings"
	catalogService "github.com/sparkleclean/booking-service/internal/service/catalog"
	documentsService "github.com/sparkleclean/booking-service/internal/service/documents"
	locationsService "github.com/sparkleclean/booking-service/internal/service/locations"
	notificationsService "github.com/sparkleclean/booking-service/internal/service/notifications"
	staffService "github.com/sparkleclean/booking-service/internal/service/staff"
	tasksService "github.com/sparkleclean/booking-service/internal/service/tasks"
	workersService "github.com/sparkleclean/booking-service/internal/service/workers"
	assignStaffUC "github.com/sparkleclean/booking-service/internal/usecase/assign_staff"
	createBookingUC "github.com/sparkleclean/booking-service/internal/usecase/create_booking"
	"github.com/sparkleclean/booking-service/pkg/dbmetrics"
	"github.com/sparkleclean/booking-service/pkg/logger"
	"github.com/sparkleclean/booking-service/pkg/metrics"
	"github.com/sparkleclean/booking-service/pkg/simpletxmanager"
	"github.com/sparkleclean/booking-service/pkg/token"
	"github.com/sparkleclean/booking-service/pkg/txmanager"
)

// systemClock is the production time source for the services that
// need "now" (alerts, analytics windows).
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories share one executor; with metrics enabled every query
	// goes through the timing wrapper.
	var (
		bookingRepository      *bookingRepo.Repository
		staffRepository        *staffRepo.Repository
		workerRepository       *workerRepo.Repository
		catalogRepository      *catalogRepo.Repository
		taskRepository         *taskRepo.Repository
		notificationRepository *notificationRepo.Repository
		locationRepository     *locationRepo.Repository
		documentRepository     *documentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		workerRepository = workerRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		documentRepository = documentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		workerRepository = workerRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		documentRepository = documentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Services
	documentsSvc := documentsService.NewService(documentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	availabilitySvc := availabilityService.NewService(bookingRepository, documentsSvc, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, staffRepository, log)
	staffSvc := staffService.NewService(staffRepository, workerRepository, log)
	workersSvc := workersService.NewService(workerRepository, staffRepository, log)
	tasksSvc := tasksService.NewService(taskRepository, log)
	locationsSvc := locationsService.NewService(locationRepository, log)
	notificationsSvc := notificationsService.NewService(notificationRepository, bookingRepository, clock, log)
	analyticsSvc := analyticsService.NewService(bookingRepository, staffRepository, catalogRepository, clock, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		documentsSvc,
		txMgr,
		log,
	)
	assignStaffUseCase := assignStaffUC.NewUseCase(
		bookingRepository,
		staffRepository,
		txMgr,
		log,
	)

	// Session tokens
	tokenManager := token.NewManager(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	assignStaff := assignStaffHandler.NewHandler(assignStaffUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	updatePayment := updatePaymentHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	staff := staffHandler.NewHandler(staffSvc, log)
	workers := workersHandler.NewHandler(workersSvc, log)
	tasks := tasksHandler.NewHandler(tasksSvc, log)
	locations := locationsHandler.NewHandler(locationsSvc, log)
	notifications := notificationsHandler.NewHandler(notificationsSvc, log)
	analytics := analyticsHandler.NewHandler(analyticsSvc, log)
	documents := documentsHandler.NewHandler(documentsSvc, log)
	auth := authHandler.NewHandler(workersSvc, tokenManager, cfg.Auth, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/check-availability", checkAvailability.HandleBookedTimes).Methods(http.MethodGet)
	api.HandleFunc("/services", services.HandlePublicList).Methods(http.MethodGet)
	api.HandleFunc("/settings", documents.HandlePublicSettings).Methods(http.MethodGet)
	api.HandleFunc("/content", documents.HandleGet(domain.DocumentContent)).Methods(http.MethodGet)
	api.HandleFunc("/design", documents.HandleGet(domain.DocumentDesign)).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", auth.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/worker-login", auth.HandleWorkerLogin).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (admin, owner and worker tokens)
	// ============================================================

	staffAPI := api.PathPrefix("").Subrouter()
	staffAPI.Use(middleware.Auth(tokenManager, log, token.RoleAdmin, token.RoleOwner, token.RoleWorker))

	staffAPI.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staffAPI.HandleFunc("/bookings/{bookingId}", listBookings.HandleOne).Methods(http.MethodGet)
	staffAPI.HandleFunc("/tasks", tasks.HandleList).Methods(http.MethodGet)
	staffAPI.HandleFunc("/tasks/{taskId}/status", tasks.HandleUpdateStatus).Methods(http.MethodPatch)
	staffAPI.HandleFunc("/notifications", notifications.HandleFeed).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (admin and owner tokens only)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(tokenManager, log, token.RoleAdmin, token.RoleOwner))

	// Bookings
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/assign", assignStaff.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/payment", updatePayment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings", deleteBooking.HandleAll).Methods(http.MethodDelete)
	admin.HandleFunc("/availability", checkAvailability.HandleStaffSlot).Methods(http.MethodGet)

	// Staff and worker accounts
	admin.HandleFunc("/staff", staff.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/staff", staff.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{staffId}", staff.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{staffId}", staff.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/workers", workers.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/workers", workers.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/workers/{workerId}/password", workers.HandleResetPassword).Methods(http.MethodPatch)

	// Service catalog
	admin.HandleFunc("/admin/services", services.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", services.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", services.HandleDelete).Methods(http.MethodDelete)

	// Tasks
	admin.HandleFunc("/tasks", tasks.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/tasks/{taskId}", tasks.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/tasks/{taskId}", tasks.HandleDelete).Methods(http.MethodDelete)

	// Locations
	admin.HandleFunc("/locations", locations.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/locations", locations.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{locationId}", locations.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{locationId}", locations.HandleDelete).Methods(http.MethodDelete)

	// Notifications and analytics
	admin.HandleFunc("/notifications", notifications.HandleAppend).Methods(http.MethodPost)
	admin.HandleFunc("/analytics", analytics.Handle).Methods(http.MethodGet)

	// Document collections
	admin.HandleFunc("/admin/settings", documents.HandleGet(domain.DocumentSettings)).Methods(http.MethodGet)
	admin.HandleFunc("/admin/settings", documents.HandleMerge(domain.DocumentSettings)).Methods(http.MethodPut)
	admin.HandleFunc("/timeslots", documents.HandleGet(domain.DocumentTimeSlots)).Methods(http.MethodGet)
	admin.HandleFunc("/timeslots", documents.HandleMerge(domain.DocumentTimeSlots)).Methods(http.MethodPut)
	admin.HandleFunc("/content", documents.HandleMerge(domain.DocumentContent)).Methods(http.MethodPut)
	admin.HandleFunc("/design", documents.HandleMerge(domain.DocumentDesign)).Methods(http.MethodPut)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
