package http

import (
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type BannerListHandler struct {
	BannerService *service.BannerService
}

// ServeHTTP godoc
//
//	@Summary		Homepage Banners
//	@Description	List active homepage banners in carousel order.
//	@Tags			Banners
//	@Produce		json
//	@Success		200	{object}	apiclient.BannerListResponse	"banners"
//	@Router			/v1/banners [get].
func (h *BannerListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	banners, err := h.BannerService.ActiveBanners(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list banners", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list banners")
		return
	}

	out := apiclient.BannerListResponse{Banners: make([]apiclient.Banner, 0, len(banners))}
	for _, b := range banners {
		out.Banners = append(out.Banners, toBanner(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
