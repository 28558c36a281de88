package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	mid "github.com/ovenworks/bakeplan/internal/middleware"
	"github.com/ovenworks/bakeplan/internal/planner"
	authpkg "github.com/ovenworks/bakeplan/pkg/auth"
)

// Handler groups dependencies for route handlers.
type Handler struct {
	auth    authpkg.Authenticator
	planner *planner.Planner
	log     *logrus.Logger
}

// NewRouter wires the production-plan API. /health stays public; the plan
// route requires a valid bearer token.
func NewRouter(a authpkg.Authenticator, p *planner.Planner, log *logrus.Logger) http.Handler {
	h := &Handler{auth: a, planner: p, log: log}
	r := chi.NewRouter()

	r.Get("/health", h.health)

	r.Group(func(r chi.Router) {
		r.Use(mid.RequireAuth(h.auth))
		r.Get("/api/production-plan", h.productionPlan)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
