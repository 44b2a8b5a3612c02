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

	createReservationHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/create_reservation"
	getCategoriesHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/get_categories"
	getScheduleHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/health"
	lookupReservationsHandler "github.com/m04kA/SMC-VisitService/internal/api/handlers/lookup_reservations"
	"github.com/m04kA/SMC-VisitService/internal/api/middleware"
	"github.com/m04kA/SMC-VisitService/internal/config"
	"github.com/m04kA/SMC-VisitService/internal/infra/cache"
	categoryRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/category"
	reservationRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/reservation"
	categoriesService "github.com/m04kA/SMC-VisitService/internal/service/categories"
	createReservationUC "github.com/m04kA/SMC-VisitService/internal/usecase/create_reservation"
	getScheduleUC "github.com/m04kA/SMC-VisitService/internal/usecase/get_schedule"
	lookupReservationsUC "github.com/m04kA/SMC-VisitService/internal/usecase/lookup_reservations"
	"github.com/m04kA/SMC-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
	"github.com/m04kA/SMC-VisitService/pkg/metrics"
	"github.com/m04kA/SMC-VisitService/pkg/txmanager"
)

// queryCache кэш запросов, общий для use cases (Redis или no-op)
type queryCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	log = log.With("service", cfg.Metrics.ServiceName)

	log.Info("Starting SMC-VisitService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех вызовов.
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)

	// Кэш запросов
	var queries queryCache = cache.Noop{}
	healthChecks := map[string]healthHandler.Pinger{
		"postgres": wrappedDB,
	}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisCache := cache.NewRedisCache(redisClient, cfg.Cache.Prefix, cfg.CacheTTL(), metricsCollector)
		if err := redisCache.Ping(context.Background()); err != nil {
			// Сервис работает и без кэша: ошибки кэша только логируются
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Query cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTL)
		}
		queries = redisCache
		healthChecks["redis"] = healthHandler.PingFunc(redisCache.Ping)
	} else {
		log.Info("Query cache disabled")
	}

	// Инициализируем репозитории
	categoryRepository := categoryRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	categorySvc := categoriesService.NewService(categoryRepository, queries, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(
		categorySvc,
		reservationRepository,
		queries,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		queries,
		metricsCollector,
		log,
	)

	lookupReservationsUseCase := lookupReservationsUC.NewUseCase(
		reservationRepository,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getCategories := getCategoriesHandler.NewHandler(categorySvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	lookupReservations := lookupReservationsHandler.NewHandler(lookupReservationsUseCase, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Лимитер поиска бронирований по IP
	trustedProxies, err := cfg.RateLimit.TrustedProxyPrefixes()
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}
	lookupLimiter := middleware.NewIPRateLimiter(
		cfg.RateLimit.LookupPerMinute,
		cfg.RateLimit.LookupBurst,
		time.Duration(cfg.RateLimit.VisitorTTL)*time.Second,
		trustedProxies,
		log,
	)
	go lookupLimiter.RunCleanup(time.Minute, stopCh)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Расписание на день по всем категориям
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Список категорий визитов
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Поиск бронирований по телефону и PIN (с ограничением частоты)
	api.Handle("/reservations/lookup",
		lookupLimiter.Middleware()(http.HandlerFunc(lookupReservations.Handle))).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи (статистика пула, очистка лимитера)
	close(stopCh)

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
