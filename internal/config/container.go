package config

import (
	"book-club-server/internal/catalog"
	"book-club-server/internal/domain"
	"book-club-server/internal/localstore"
	"book-club-server/internal/repository"
	"book-club-server/internal/service"
	"book-club-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Store             *localstore.Store
	Catalog           domain.Catalog
	SessionService    domain.SessionService
	PreferenceService domain.PreferenceService
	ReviewService     domain.ReviewService
}

// NewContainer creates a new dependency injection container and
// restores all three stores from local storage.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	store, err := localstore.Open(config.GetDataPath(), appLogger)
	if err != nil {
		return nil, err
	}

	bookCatalog := catalog.New()
	ambient := service.NewAmbientThemeSource(config.GetSystemTheme())

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(store, appLogger)
	preferenceRepo := repository.NewPreferenceRepository(store, appLogger)
	reviewRepo := repository.NewReviewRepository(store, appLogger)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, appLogger)
	preferenceService := service.NewPreferenceService(preferenceRepo, ambient, appLogger)
	reviewService := service.NewReviewService(reviewRepo, bookCatalog, appLogger)

	// Restore persisted state before serving anything
	sessionService.Restore()
	preferenceService.Restore()
	reviewService.Restore()

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Store:             store,
		Catalog:           bookCatalog,
		SessionService:    sessionService,
		PreferenceService: preferenceService,
		ReviewService:     reviewService,
	}, nil
}

// Close releases the underlying local store.
func (c *Container) Close() error {
	return c.Store.Close()
}
