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
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/arena-booking/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/arena-booking/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/arena-booking/internal/api/handlers/create_booking"
	createUserHandler "github.com/m04kA/arena-booking/internal/api/handlers/create_user"
	deleteBookingHandler "github.com/m04kA/arena-booking/internal/api/handlers/delete_booking"
	deleteCustomerHandler "github.com/m04kA/arena-booking/internal/api/handlers/delete_customer"
	exportBookingsHandler "github.com/m04kA/arena-booking/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_booking"
	getBookingQRHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_booking_qr"
	getConflictHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_conflict"
	getLeaderboardHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_leaderboard"
	getUserHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/arena-booking/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/arena-booking/internal/api/handlers/list_bookings"
	listConflictsHandler "github.com/m04kA/arena-booking/internal/api/handlers/list_conflicts"
	listCustomersHandler "github.com/m04kA/arena-booking/internal/api/handlers/list_customers"
	recordActivityHandler "github.com/m04kA/arena-booking/internal/api/handlers/record_activity"
	resolveConflictHandler "github.com/m04kA/arena-booking/internal/api/handlers/resolve_conflict"
	scanConflictsHandler "github.com/m04kA/arena-booking/internal/api/handlers/scan_conflicts"
	updateCustomerHandler "github.com/m04kA/arena-booking/internal/api/handlers/update_customer"
	"github.com/m04kA/arena-booking/internal/api/middleware"
	"github.com/m04kA/arena-booking/internal/catalog"
	"github.com/m04kA/arena-booking/internal/config"
	"github.com/m04kA/arena-booking/internal/conflicts"
	"github.com/m04kA/arena-booking/internal/infra/cache/leaderboard"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
	conflictRepo "github.com/m04kA/arena-booking/internal/infra/storage/conflict"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
	"github.com/m04kA/arena-booking/internal/integrations/bookingfeed"
	bookingsService "github.com/m04kA/arena-booking/internal/service/bookings"
	conflictsService "github.com/m04kA/arena-booking/internal/service/conflicts"
	usersService "github.com/m04kA/arena-booking/internal/service/users"
	confirmBookingUC "github.com/m04kA/arena-booking/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/arena-booking/internal/usecase/create_booking"
	exportBookingsUC "github.com/m04kA/arena-booking/internal/usecase/export_bookings"
	getAvailableSlotsUC "github.com/m04kA/arena-booking/internal/usecase/get_available_slots"
	getBookingQRUC "github.com/m04kA/arena-booking/internal/usecase/get_booking_qr"
	recordActivityUC "github.com/m04kA/arena-booking/internal/usecase/record_activity"
	resolveConflictUC "github.com/m04kA/arena-booking/internal/usecase/resolve_conflict"
	scanConflictsUC "github.com/m04kA/arena-booking/internal/usecase/scan_conflicts"
	"github.com/m04kA/arena-booking/internal/validator"
	"github.com/m04kA/arena-booking/internal/worker/conflictscan"
	"github.com/m04kA/arena-booking/pkg/dbmetrics"
	"github.com/m04kA/arena-booking/pkg/logger"
	"github.com/m04kA/arena-booking/pkg/metrics"
	"github.com/m04kA/arena-booking/pkg/txmanager"
	"github.com/m04kA/arena-booking/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("ARENA_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}
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

	log.Info("Starting arena-booking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Инициализируем метрики (если включены). Без метрик обёртка БД работает как обычный *sql.DB
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	conflictRepository := conflictRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш рейтинга (опционально). Недоступный Redis не мешает старту
	var (
		confirmCache  confirmBookingUC.LeaderboardCache
		activityCache recordActivityUC.LeaderboardCache
		usersCache    usersService.LeaderboardCache
	)
	if cfg.Redis.Enabled() {
		leaderboardCache := leaderboard.NewCache(
			leaderboard.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
			cfg.Redis.KeyPrefix,
		)
		defer leaderboardCache.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := leaderboardCache.Ping(pingCtx); err != nil {
			log.Warn("Redis is not reachable at %s, leaderboard falls back to database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Leaderboard cache connected (redis=%s)", cfg.Redis.Addr)
		}
		cancelPing()

		confirmCache, activityCache, usersCache = leaderboardCache, leaderboardCache, leaderboardCache
	}

	// Внешняя лента бронирований (опционально)
	var feed createBookingUC.FeedPublisher
	if cfg.BookingFeed.URL != "" {
		feed = bookingfeed.NewClient(
			cfg.BookingFeed.URL,
			time.Duration(cfg.BookingFeed.Timeout)*time.Second,
			log,
		)
		log.Info("Booking feed enabled (url=%s timeout=%ds)", cfg.BookingFeed.URL, cfg.BookingFeed.Timeout)
	}

	// Ядро: каталог слотов, валидатор, классификатор конфликтов
	firstSlot, err := types.NewTimeStringFromString(cfg.Booking.FirstSlot)
	if err != nil {
		log.Fatal("Invalid booking.first_slot: %v", err)
	}
	lastSlot, err := types.NewTimeStringFromString(cfg.Booking.LastSlot)
	if err != nil {
		log.Fatal("Invalid booking.last_slot: %v", err)
	}
	slotCatalog, err := catalog.New(firstSlot, lastSlot, cfg.Booking.StepMinutes)
	if err != nil {
		log.Fatal("Invalid slot catalog: %v", err)
	}

	bookingValidator := validator.New(validator.Options{
		Location: location,
		Price:    cfg.Booking.DefaultPrice,
		Venue:    cfg.Booking.DefaultVenue,
	})
	classifier := conflicts.NewClassifier(cfg.Conflicts.BufferMinutes)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	conflictSvc := conflictsService.NewService(conflictRepository, log)
	userSvc := usersService.NewService(userRepository, usersCache, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		bookingValidator,
		feed,
		metricsCollector,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, slotCatalog, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		confirmCache,
		metricsCollector,
		txMgr,
		log,
	)
	scanConflictsUseCase := scanConflictsUC.NewUseCase(
		bookingRepository,
		conflictRepository,
		classifier,
		metricsCollector,
		txMgr,
		log,
	)
	resolveConflictUseCase := resolveConflictUC.NewUseCase(
		conflictRepository,
		bookingRepository,
		slotCatalog,
		location,
		txMgr,
		log,
	)
	recordActivityUseCase := recordActivityUC.NewUseCase(
		userRepository,
		activityCache,
		metricsCollector,
		txMgr,
		log,
	)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(bookingRepository, location, log)
	getBookingQRUseCase := getBookingQRUC.NewUseCase(bookingRepository, cfg.Booking.PublicURL, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingQR := getBookingQRHandler.NewHandler(getBookingQRUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, location, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	scanConflicts := scanConflictsHandler.NewHandler(scanConflictsUseCase, log)
	listConflicts := listConflictsHandler.NewHandler(conflictSvc, log)
	getConflict := getConflictHandler.NewHandler(conflictSvc, log)
	resolveConflict := resolveConflictHandler.NewHandler(resolveConflictUseCase, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	recordActivity := recordActivityHandler.NewHandler(recordActivityUseCase, log)
	getLeaderboard := getLeaderboardHandler.NewHandler(userSvc, log)
	listCustomers := listCustomersHandler.NewHandler(userSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(userSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(userSvc, log)

	// Контекст фоновых задач: воркер конфликтов, очистка rate limiter
	bgCtx, stopBackground := context.WithCancel(context.Background())

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identify(cfg.Admin.Token))

	// ============================================================
	// PUBLIC ROUTES (X-User-ID опционален)
	// ============================================================

	// Слоты дня со сводкой доступности
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (с ограничением частоты)
	var createBookingHTTP http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		createBookingHTTP = limiter.Limit(createBookingHTTP)
		go limiter.Cleanup(bgCtx)
		log.Info("Booking rate limit: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/bookings", createBookingHTTP).Methods(http.MethodPost)

	// Получение и отмена бронирования (сервис проверяет владельца)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// QR-код для передачи бронирования
	api.HandleFunc("/bookings/{bookingId}/qr", getBookingQR.Handle).Methods(http.MethodGet)

	// Подтверждение оплаты выполняет администратор
	api.Handle("/bookings/{bookingId}/confirm",
		middleware.AdminOnly(http.HandlerFunc(confirmBooking.Handle))).Methods(http.MethodPatch)

	// --- Программа лояльности ---
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", getLeaderboard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Начисление очков за активность
	protected.HandleFunc("/users/{userId}/activities", recordActivity.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/export", exportBookings.Handle).Methods(http.MethodGet)

	// --- Конфликты ---
	admin.HandleFunc("/conflicts/scan", scanConflicts.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/conflicts", listConflicts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/conflicts/{conflictId}", getConflict.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/conflicts/{conflictId}/resolve", resolveConflict.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	admin.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{userId}", updateCustomer.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/customers/{userId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// CORS поверх всего роутера
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler(r)

	// Фоновое сканирование конфликтов
	workerDone := make(chan struct{})
	scanWorker := conflictscan.New(scanConflictsUseCase, cfg.Conflicts.ScanInterval(), log)
	go func() {
		defer close(workerDone)
		scanWorker.Run(bgCtx)
	}()

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

	// Останавливаем фоновые задачи и сбор метрик connection pool
	stopBackground()
	<-workerDone
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
