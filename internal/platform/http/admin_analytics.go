package http

import (
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type AnalyticsHandler struct {
	AnalyticsService *service.AnalyticsService
}

// ServeHTTP godoc
//
//	@Summary		Analytics Summary
//	@Description	Aggregate dashboard numbers: event totals and trends, regional and category
//	@Description	breakdowns, top constituencies and cadres, and media byte reach.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	domain.AnalyticsSummary	"the summary"
//	@Security		BearerAuth
//	@Router			/v1/admin/analytics [get].
func (h *AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.AnalyticsService.Summary(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to build analytics summary", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to build analytics summary")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, summary)
}

type TopConstituenciesHandler struct {
	AnalyticsService *service.AnalyticsService
}

// ServeHTTP godoc
//
//	@Summary		Top Constituencies
//	@Description	Public leaderboard of constituencies ranked by approved event count.
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{array}	domain.GroupCount	"constituency counts"
//	@Router			/v1/analytics/top-constituencies [get].
func (h *TopConstituenciesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.AnalyticsService.TopConstituencies(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to rank constituencies", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to rank constituencies")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, counts)
}
