package http

import (
	"errors"
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type LeaderListHandler struct {
	LeaderService *service.LeaderService
}

// ServeHTTP godoc
//
//	@Summary		Leader Directory
//	@Description	List the public leader directory, verified profiles first.
//	@Tags			Leaders
//	@Produce		json
//	@Param			page		query		int	false	"Page number"
//	@Param			pageSize	query		int	false	"Page size"
//	@Success		200			{object}	apiclient.LeaderListResponse	"leaders, total, page, pageSize"
//	@Router			/v1/leaders [get].
func (h *LeaderListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	listings, total, err := h.LeaderService.ListLeaders(ctx, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list leaders", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list leaders")
		return
	}

	out := apiclient.LeaderListResponse{
		Leaders:  make([]apiclient.Leader, 0, len(listings)),
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
	for _, l := range listings {
		out.Leaders = append(out.Leaders, toLeader(l.Profile, l.Name, l.State))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type LeaderGetHandler struct {
	LeaderService *service.LeaderService
}

// ServeHTTP godoc
//
//	@Summary		Leader Profile Page
//	@Description	Resolve one leader's public page by slug, including their recent media bytes.
//	@Description	Deactivated leaders resolve to 404.
//	@Tags			Leaders
//	@Produce		json
//	@Param			slug	path		string							true	"Leader slug"
//	@Success		200		{object}	apiclient.LeaderPageResponse	"leader, mediaBytes"
//	@Failure		404		{object}	apiclient.ErrorResponse			"error"
//	@Router			/v1/leaders/{slug} [get].
func (h *LeaderGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.LeaderService.GetBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaderNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to get leader", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to get leader")
		}
		return
	}

	out := apiclient.LeaderPageResponse{
		Leader:     toLeader(page.Profile, page.Name, page.State),
		MediaBytes: make([]apiclient.MediaByte, 0, len(page.MediaBytes)),
	}
	for _, mb := range page.MediaBytes {
		out.MediaBytes = append(out.MediaBytes, toMediaByte(mb))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
