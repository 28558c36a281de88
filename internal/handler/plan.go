package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ovenworks/bakeplan/internal/planner"
)

const planTimeout = 30 * time.Second

// productionPlan computes the plan for ?site_id=S&date=YYYY-MM-DD.
// Both parameters are required and validated before any store access.
func (h *Handler) productionPlan(w http.ResponseWriter, r *http.Request) {
	siteID := r.URL.Query().Get("site_id")
	if siteID == "" {
		http.Error(w, "site_id missing", http.StatusBadRequest)
		return
	}
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		http.Error(w, "date missing", http.StatusBadRequest)
		return
	}
	deliveryDate, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), planTimeout)
	defer cancel()

	plan, err := h.planner.BuildPlan(ctx, siteID, deliveryDate)
	if errors.Is(err, planner.ErrSiteNotFound) {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}
	if err != nil {
		// Never serve a partial plan: any store failure fails the request.
		h.log.WithFields(logrus.Fields{
			"site_id": siteID,
			"date":    dateStr,
		}).WithError(err).Error("build production plan")
		http.Error(w, "failed to build production plan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}
