// Package bootstrap wires configuration, storage and the HTTP layer together
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/devkip/clubhub/internal/app/auth"
	appControllers "github.com/devkip/clubhub/internal/app/controllers"
	appMigrations "github.com/devkip/clubhub/internal/app/migrations"
	appRepos "github.com/devkip/clubhub/internal/app/repositories"
	appRoutes "github.com/devkip/clubhub/internal/app/routes"
	appServices "github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/cache"
	"github.com/devkip/clubhub/internal/config"
	"github.com/devkip/clubhub/internal/db"
	appMiddleware "github.com/devkip/clubhub/internal/middleware"
	pkgAuth "github.com/devkip/clubhub/internal/pkg/auth"
	"github.com/devkip/clubhub/internal/pkg/email"
	"github.com/devkip/clubhub/internal/pkg/helpers"
	"github.com/devkip/clubhub/internal/pkg/logger"
	"github.com/devkip/clubhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	ProfileService    appServices.ProfileService
	BlogService       appServices.BlogService
	EventService      appServices.EventService
	GalleryService    appServices.GalleryService
	StatsService      appServices.StatsService
	AuthController    *appControllers.AuthController
	ProfileController *appControllers.ProfileController
	BlogController    *appControllers.BlogController
	EventController   *appControllers.EventController
	GalleryController *appControllers.GalleryController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	TokenJanitor      *appServices.TokenJanitor
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AllowList         *appAuth.AllowList
	Cache             *cache.Client
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupCache connects the Redis cache. A missing Redis is logged, not fatal:
// the cache client degrades to a permanent miss.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.Client {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("Redis not configured, running without cache")
		return nil
	}

	client := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, continuing without cache")
	} else {
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	}

	return client
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, cacheClient *cache.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Cache: cacheClient}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.AllowList = appAuth.NewAllowList(cfg.Admin.Emails)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr)

	googleProvider := pkgAuth.NewGoogleProvider(
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleCallbackURL,
	)

	deps.ProfileService = appServices.NewProfileService(deps.Repos.RecordRepository, lgr)
	deps.BlogService = appServices.NewBlogService(deps.Repos.RecordRepository, cacheClient, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.RecordRepository, cacheClient, lgr)
	deps.GalleryService = appServices.NewGalleryService(deps.Repos.RecordRepository, lgr)
	deps.StatsService = appServices.NewStatsService(deps.Repos.UserRepository, cacheClient, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.VerificationTokenRepository,
		deps.Repos.PasswordResetTokenRepository,
		deps.ProfileService,
		deps.JWTService,
		emailService,
		googleProvider,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AllowList)

	deps.TokenJanitor = appServices.NewTokenJanitor(
		deps.Repos.TokenRepository,
		deps.Repos.VerificationTokenRepository,
		deps.Repos.PasswordResetTokenRepository,
		1*time.Hour,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AllowList, deps.StatsService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.BlogController,
		deps.EventController,
		deps.GalleryController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
