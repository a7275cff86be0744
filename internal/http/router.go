package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ragagent-api/internal/handlers"
	"ragagent-api/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService service.ChatService
	// CredentialSet reports whether an inference token was configured; surfaced by /health.
	CredentialSet  bool
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(CORS(deps.AllowedOrigins))

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	healthHandler := handlers.NewHealthHandler(deps.CredentialSet)

	// The chat handler answers non-POST methods itself with a JSON error body.
	r.Handle("/chat", chatHandler)
	r.Route("/api", func(r chi.Router) {
		r.Handle("/chat", chatHandler)
	})

	r.Method(http.MethodGet, "/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
