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

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers"
	adminAuthHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_auth"
	adminBookingsHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_bookings"
	adminDashboardHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_dashboard"
	adminHotelsHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_hotels"
	adminPlacesHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_places"
	adminServiceBookingsHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_service_bookings"
	adminTransportsHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/admin_transports"
	createBookingHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/create_booking"
	createServiceBookingHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/create_service_booking"
	placesHandler "github.com/m04kA/SMC-CulturalTours/internal/api/handlers/places"
	"github.com/m04kA/SMC-CulturalTours/internal/api/middleware"
	"github.com/m04kA/SMC-CulturalTours/internal/api/session"
	"github.com/m04kA/SMC-CulturalTours/internal/api/view"
	"github.com/m04kA/SMC-CulturalTours/internal/config"
	"github.com/m04kA/SMC-CulturalTours/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/hotel"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	serviceBookingRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/service_booking"
	transportRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/transport"
	authService "github.com/m04kA/SMC-CulturalTours/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-CulturalTours/internal/service/dashboard"
	hotelsService "github.com/m04kA/SMC-CulturalTours/internal/service/hotels"
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
	serviceBookingsService "github.com/m04kA/SMC-CulturalTours/internal/service/service_bookings"
	transportsService "github.com/m04kA/SMC-CulturalTours/internal/service/transports"
	createBookingUC "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_booking"
	createServiceBookingUC "github.com/m04kA/SMC-CulturalTours/internal/usecase/create_service_booking"
	"github.com/m04kA/SMC-CulturalTours/pkg/dbmetrics"
	"github.com/m04kA/SMC-CulturalTours/pkg/logger"
	"github.com/m04kA/SMC-CulturalTours/pkg/metrics"
	"github.com/m04kA/SMC-CulturalTours/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-CulturalTours...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка только пробрасывает запросы и транзакции
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	placeRepository := placeRepo.NewRepository(wrappedDB)
	hotelRepository := hotelRepo.NewRepository(wrappedDB)
	transportRepository := transportRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	serviceBookingRepository := serviceBookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш списка направлений (опционально)
	var placesCache placesService.PlacesCache
	if cfg.Cache.Enabled {
		redisCache := cache.NewPlacesCache(cfg.Cache)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn("Redis is unavailable at %s, places cache disabled: %v", cfg.Cache.Addr, err)
		} else {
			placesCache = redisCache
			log.Info("Places cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.PlacesTTL)
		}
		cancelPing()
	}

	// Инициализируем сервисы
	placesSvc := placesService.NewService(
		placeRepository,
		hotelRepository,
		transportRepository,
		bookingRepository,
		serviceBookingRepository,
		placesCache,
		log,
	)
	hotelsSvc := hotelsService.NewService(hotelRepository, placeRepository, serviceBookingRepository, log)
	transportsSvc := transportsService.NewService(transportRepository, placeRepository, serviceBookingRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, placeRepository, metricsCollector, log)
	serviceBookingsSvc := serviceBookingsService.NewService(
		serviceBookingRepository,
		placeRepository,
		hotelRepository,
		transportRepository,
		metricsCollector,
		log,
	)
	dashboardSvc := dashboardService.NewService(placeRepository, bookingRepository, hotelRepository, log)
	authSvc := authService.NewService(cfg.Admin, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		placeRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	createServiceBookingUseCase := createServiceBookingUC.NewUseCase(
		placeRepository,
		hotelRepository,
		transportRepository,
		bookingRepository,
		serviceBookingRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Сессии, шаблоны и общий ответчик
	sessions := session.NewStore(cfg.Session)
	pages, err := view.New()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}
	responder := handlers.NewResponder(pages, sessions, log)

	// Инициализируем handlers
	placesPublic := placesHandler.NewHandler(placesSvc, cfg.Catalog.States, responder, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, placesSvc, bookingsSvc, responder, log)
	createServiceBooking := createServiceBookingHandler.NewHandler(
		createServiceBookingUseCase,
		placesSvc,
		serviceBookingsSvc,
		responder,
		log,
	)
	adminAuth := adminAuthHandler.NewHandler(authSvc, sessions, responder, log)
	adminDashboard := adminDashboardHandler.NewHandler(dashboardSvc, responder, log)
	adminPlaces := adminPlacesHandler.NewHandler(placesSvc, cfg.Catalog.States, responder, log)
	adminHotels := adminHotelsHandler.NewHandler(hotelsSvc, placesSvc, responder, log)
	adminTransports := adminTransportsHandler.NewHandler(transportsSvc, placesSvc, responder, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingsSvc, responder, log)
	adminServiceBookings := adminServiceBookingsHandler.NewHandler(serviceBookingsSvc, responder, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(responder.RespondNotFound)

	r.Use(middleware.RequestID(log))
	r.Use(middleware.LoadAdmin(sessions))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.HandleFunc("/", placesPublic.Index).Methods(http.MethodGet)
	r.HandleFunc("/place/{placeId}", placesPublic.Detail).Methods(http.MethodGet)

	// --- Бронирование тура ---
	r.HandleFunc("/book/{placeId}", createBooking.Form).Methods(http.MethodGet)
	r.HandleFunc("/book/{placeId}", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/booking-success/{bookingId}", createBooking.Success).Methods(http.MethodGet)

	// --- Бронирование гостиницы и транспорта ---
	r.HandleFunc("/book-services/{placeId}", createServiceBooking.Form).Methods(http.MethodGet)
	r.HandleFunc("/book-services/{placeId}", createServiceBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/service-booking-success/{bookingId}", createServiceBooking.Success).Methods(http.MethodGet)

	// --- Вход администратора ---
	loginLimiter := middleware.NewLoginRateLimiter(cfg.Admin.LoginRatePerMinute, cfg.Admin.LoginBurst, log)
	r.HandleFunc(middleware.LoginPath, adminAuth.LoginForm).Methods(http.MethodGet)
	r.Handle(middleware.LoginPath, loginLimiter.Middleware(http.HandlerFunc(adminAuth.Login))).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", adminAuth.Logout).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют флаг администратора в сессии)
	// ============================================================

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminGate(sessions))

	admin.HandleFunc("", adminDashboard.Handle).Methods(http.MethodGet)

	// --- Направления ---
	admin.HandleFunc("/places", adminPlaces.List).Methods(http.MethodGet)
	admin.HandleFunc("/places/add", adminPlaces.AddForm).Methods(http.MethodGet)
	admin.HandleFunc("/places/add", adminPlaces.Add).Methods(http.MethodPost)
	admin.HandleFunc("/places/{id}/edit", adminPlaces.EditForm).Methods(http.MethodGet)
	admin.HandleFunc("/places/{id}/edit", adminPlaces.Edit).Methods(http.MethodPost)
	admin.HandleFunc("/places/{id}/delete", adminPlaces.Delete).Methods(http.MethodPost)

	// --- Гостиницы ---
	admin.HandleFunc("/hotels", adminHotels.List).Methods(http.MethodGet)
	admin.HandleFunc("/hotels/add", adminHotels.AddForm).Methods(http.MethodGet)
	admin.HandleFunc("/hotels/add", adminHotels.Add).Methods(http.MethodPost)
	admin.HandleFunc("/hotels/{id}/edit", adminHotels.EditForm).Methods(http.MethodGet)
	admin.HandleFunc("/hotels/{id}/edit", adminHotels.Edit).Methods(http.MethodPost)
	admin.HandleFunc("/hotels/{id}/delete", adminHotels.Delete).Methods(http.MethodPost)

	// --- Транспорт ---
	admin.HandleFunc("/transport", adminTransports.List).Methods(http.MethodGet)
	admin.HandleFunc("/transport/add", adminTransports.AddForm).Methods(http.MethodGet)
	admin.HandleFunc("/transport/add", adminTransports.Add).Methods(http.MethodPost)
	admin.HandleFunc("/transport/{id}/edit", adminTransports.EditForm).Methods(http.MethodGet)
	admin.HandleFunc("/transport/{id}/edit", adminTransports.Edit).Methods(http.MethodPost)
	admin.HandleFunc("/transport/{id}/delete", adminTransports.Delete).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", adminBookings.UpdateStatus).Methods(http.MethodPost)
	admin.HandleFunc("/service-bookings", adminServiceBookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/service-bookings/{id}/status", adminServiceBookings.UpdateStatus).Methods(http.MethodPost)

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
