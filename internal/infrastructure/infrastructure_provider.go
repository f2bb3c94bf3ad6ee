package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain/intake"
	"checkpoint-server/internal/infrastructure/auth"
	"checkpoint-server/internal/infrastructure/database"
	"checkpoint-server/internal/infrastructure/database/repository"
	"checkpoint-server/internal/infrastructure/extraction"
	"checkpoint-server/internal/infrastructure/logger"
	"checkpoint-server/internal/infrastructure/mailer"
	"checkpoint-server/internal/utils/httpclients"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideExtractor wires the completion-backed field extractor.
func ProvideExtractor(cfg *config.Config) *extraction.GroqExtractor {
	client := httpclients.NewClient("completion")
	client.SetTimeout(cfg.CompletionTimeout)
	return extraction.NewGroqExtractor(client, cfg)
}

// ProvideMailer wires the order notification mailer.
func ProvideMailer(cfg *config.Config) *mailer.ResendMailer {
	client := httpclients.NewClient("mail")
	client.SetTimeout(cfg.MailTimeout)
	return mailer.NewResendMailer(client, cfg)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB           *gorm.DB
	TokenManager *auth.TokenManager
	Logger       zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	tokenManager *auth.TokenManager,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:           db,
		TokenManager: tokenManager,
		Logger:       logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// External services
	ProvideExtractor,
	wire.Bind(new(intake.Extractor), new(*extraction.GroqExtractor)),
	ProvideMailer,
	wire.Bind(new(mailer.Mailer), new(*mailer.ResendMailer)),

	// Auth
	auth.NewTokenManager,

	// Logger
	logger.GetLogger,

	// Infrastructure struct
	NewInfrastructure,
)
