package handlers

import (
	"DocKeeper/internal/auth"
	"DocKeeper/internal/config"
	"DocKeeper/internal/middleware"
	"DocKeeper/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	cardService *service.CardService,
	tokens *auth.TokenManager,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, tokens, logger)
	cardHandler := NewCardHandler(cardService, logger, config)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth routes
	r.Post("/api/auth/register", userHandler.Register)
	r.Post("/api/auth/login", userHandler.Login)

	// Card routes — только с валидным токеном
	r.Route("/api/cards", func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))
		r.Post("/", cardHandler.Create)
		r.Get("/", cardHandler.List)
		r.Patch("/{id}", cardHandler.Update)
		r.Delete("/{id}", cardHandler.Delete)
	})

	return &Handler{Router: r}
}
