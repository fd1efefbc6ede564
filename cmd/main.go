package main

import (
	"contacts-web-server/config"
	_ "contacts-web-server/docs"
	"contacts-web-server/internal/handler"
	"contacts-web-server/internal/middleware"
	"contacts-web-server/internal/model"
	"contacts-web-server/internal/repository"
	"contacts-web-server/internal/security"
	"contacts-web-server/internal/service"
	"contacts-web-server/internal/util"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// лимиты запросов по маршрутам
var (
	limitMe     = middleware.Limit{Name: "users_me", Times: 1, Window: 20 * time.Second}
	limitAvatar = middleware.Limit{Name: "users_avatar", Times: 1, Window: 20 * time.Second}
	limitList   = middleware.Limit{Name: "contacts_list", Times: 10, Window: time.Minute}
	limitGet    = middleware.Limit{Name: "contacts_get", Times: 10, Window: time.Minute}
	limitCreate = middleware.Limit{Name: "contacts_create", Times: 3, Window: time.Minute}
	limitUpdate = middleware.Limit{Name: "contacts_update", Times: 5, Window: time.Minute}
	limitDelete = middleware.Limit{Name: "contacts_delete", Times: 3, Window: time.Minute}
	privileged  = []model.Role{model.RoleAdmin, model.RoleModerator}
)

const bcryptRounds = 12

type handlers struct {
	auth    *handler.AuthenticationHandler
	user    *handler.UserHandler
	contact *handler.ContactHandler
	health  *handler.HealthHandler
}

// @title Contacts Application
// @version 1.0
// @description REST API для работы с контактами

// @host localhost:8000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := util.NewLogger(util.LogConfig{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		App:    "contacts-web-server",
		Env:    cfg.Log.Env,
	})
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к БД", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("ошибка при закрытии БД", zap.Error(err))
		}
	}()

	if cfg.DatabaseConfig.AutoMigrate {
		if err := config.MigrateDatabase(db); err != nil {
			logger.Fatal("ошибка миграций", zap.Error(err))
		}
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		logger.Fatal("ошибка подключения к Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("ошибка при закрытии Redis", zap.Error(err))
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		logger.Fatal("ошибка инициализации S3", zap.Error(err))
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		logger.Fatal("ошибка инициализации JWT", zap.Error(err))
	}

	userRepository := repository.NewUserRepository(db)
	contactRepository := repository.NewContactRepository(db)
	cacheRepository := repository.NewCacheRepository(redisClient, cfg.TTL.Session)
	rateLimitRepository := repository.NewRateLimitRepository(redisClient)

	authService := service.NewAuthenticationService(
		userRepository,
		cacheRepository,
		jwtService,
		security.NewBcryptHasher(bcryptRounds),
		service.NewMailService(&cfg.Mail),
		cfg.TTL.CacheTimeout,
	)
	userService := service.NewUserService(userRepository, cacheRepository, s3Service, cfg.TTL.CacheTimeout)
	contactService := service.NewContactService(contactRepository)

	banList, err := middleware.NewBanList(&cfg.Security)
	if err != nil {
		logger.Fatal("ошибка списка блокировок", zap.Error(err))
	}
	proxies, err := middleware.NewTrustedProxies(cfg.Security.TrustedProxies)
	if err != nil {
		logger.Fatal("ошибка списка доверенных прокси", zap.Error(err))
	}

	srv, router := config.SetupServer(cfg.ServerAddr)
	registerMiddleware(router, cfg, logger, proxies, banList)
	registerRoutes(router, handlers{
		auth:    handler.NewAuthenticationHandler(authService).WithPublicBaseURL(cfg.PublicBaseURL),
		user:    handler.NewUserHandler(userService),
		contact: handler.NewContactHandler(contactService),
		health:  handler.NewHealthHandler(db),
	}, authService, rateLimitRepository)

	runServer(ctx, srv, logger)
}

func registerMiddleware(router chi.Router, cfg *config.AppConfig, logger *zap.Logger, proxies *middleware.TrustedProxies, banList *middleware.BanList) {
	router.Use(chimiddleware.RequestID)
	router.Use(proxies.Middleware)
	router.Use(middleware.RequestLogger(logger.With(zap.String("component", "http"))))
	router.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Middleware)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(banList.Middleware)
}

func registerRoutes(router chi.Router, h handlers, authenticator security.Authenticator, limiter *repository.RateLimitRepository) {
	limited := func(limit middleware.Limit) func(http.Handler) http.Handler {
		return middleware.RateLimit(limiter, limit)
	}

	router.Get("/", h.health.Index)
	router.Get("/api/healthchecker", h.health.HealthChecker)
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.auth.Signup)
		r.Post("/login", h.auth.Login)
		r.Get("/refresh_token", h.auth.RefreshToken)
		r.Get("/confirmed_email/{token}", h.auth.ConfirmedEmail)
		r.Post("/request_email", h.auth.RequestEmail)
	})

	router.Group(func(r chi.Router) {
		r.Use(security.JWTMiddleware(authenticator))

		r.Route("/api/users", func(r chi.Router) {
			r.With(limited(limitMe)).Get("/me", h.user.GetCurrentUser)
			r.With(limited(limitAvatar)).Patch("/avatar", h.user.UpdateAvatar)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.With(limited(limitList)).Get("/", h.contact.ListContacts)
			r.With(limited(limitCreate)).Post("/", h.contact.CreateContact)
			r.With(security.RequireRoles(privileged...)).Get("/all", h.contact.ListAllContacts)
			r.With(limited(limitGet)).Get("/{contact_id}", h.contact.GetContact)
			r.With(limited(limitUpdate)).Put("/{contact_id}", h.contact.UpdateContact)
			r.With(limited(limitDelete)).Delete("/{contact_id}", h.contact.DeleteContact)
		})

		r.Route("/api/search", func(r chi.Router) {
			r.Get("/by_firstname/{value}", h.contact.SearchByFirstName)
			r.Get("/by_lastname/{value}", h.contact.SearchByLastName)
			r.Get("/by_email/{value}", h.contact.SearchByEmail)
			r.With(security.RequireRoles(privileged...)).Get("/by_complex/{value}", h.contact.SearchComplex)
		})

		r.With(security.RequireRoles(privileged...)).Get("/api/birthday/{shift_days}", h.contact.UpcomingBirthdays)
	})
}

func runServer(ctx context.Context, server *http.Server, logger *zap.Logger) {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ошибка работы сервера", zap.Error(err))
		}
	case sig := <-signalChannel:
		logger.Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logger.Warn("ошибка при остановке сервера", zap.Error(err))
	} else {
		logger.Info("сервер успешно остановлен")
	}
}
