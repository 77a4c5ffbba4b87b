// Package ops exposes the operational HTTP endpoints: liveness and a
// small statistics snapshot. It never mutates anything.
package ops

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StatsSource interface {
	UserCount() int
	EdgeCount() int
	ConnCount() int
}

type Handler struct {
	stats StatsSource
}

func New(stats StatsSource) *Handler {
	return &Handler{stats: stats}
}

func (h *Handler) InitRoutes(r chi.Router) {
	r.Get("/health", h.health)
	r.Get("/stats", h.getStats)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) getStats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]int{
		"users":       h.stats.UserCount(),
		"edges":       h.stats.EdgeCount(),
		"connections": h.stats.ConnCount(),
	})
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to write ops response", zap.Error(err))
	}
}
