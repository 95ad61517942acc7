package handlers

import (
	"UserCRUD/internal/config"
	"UserCRUD/internal/middleware"
	"UserCRUD/internal/service"
	"encoding/json"
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
	documentService *service.DocumentService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)
	documentHandler := NewDocumentHandler(documentService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/status", userHandler.Status)

	// Document routes
	r.Route("/api/collections/{collection}/documents", func(r chi.Router) {
		r.Get("/", documentHandler.List)
		r.Post("/", documentHandler.Create)
		r.Get("/{id}", documentHandler.Get)
		r.Put("/{id}", documentHandler.Replace)
		r.Delete("/{id}", documentHandler.Delete)
	})

	return &Handler{Router: r}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
