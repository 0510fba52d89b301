package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaharia-lab/topicast/internal/service"
)

const errInvalidJSONBody = "invalid JSON body"

// Server holds all dependencies for the REST API handlers.
type Server struct {
	broadcastSvc service.BroadcastService
	logger       *slog.Logger
}

// New creates a new API Server backed by the provided services.
func New(broadcastSvc service.BroadcastService, logger *slog.Logger) *Server {
	return &Server{
		broadcastSvc: broadcastSvc,
		logger:       logger,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/broadcast", s.handleBroadcast)
		r.Get("/broadcast/test", s.handleTestBroadcast)
	})

	r.Get("/version", s.handleVersion)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
