// internal/wire/wire.go
package wire

import (
	"net/http"

	"hunarhub/internal/adaptor"
	"hunarhub/internal/data/repository"
	"hunarhub/internal/usecase"
	"hunarhub/pkg/middleware"
	"hunarhub/pkg/storage"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, store *storage.LocalStorage, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, store, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, repo, config, store, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	store *storage.LocalStorage,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireEntrepreneur(r, handler.Entrepreneur, repo, config, logger)
	wireProduct(r, handler.Product, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wireOffering(r, handler.Offering, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireAdmin(r, handler.Admin, repo, config, logger)

	// Uploaded images are served straight from local storage
	uploads := http.StripPrefix(config.Upload.PublicURL+"/", http.FileServer(http.Dir(store.Dir())))
	r.Get(config.Upload.PublicURL+"/*", uploads.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
