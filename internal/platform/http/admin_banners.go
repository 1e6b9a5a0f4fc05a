package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type BannerCreateHandler struct {
	BannerService *service.BannerService
}

// ServeHTTP godoc
//
//	@Summary		Create Banner
//	@Description	Add a homepage banner from an already-hosted image URL. New banners start
//	@Description	active.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.BannerRequest	true	"Banner"
//	@Success		201		{object}	apiclient.Banner		"the created banner"
//	@Failure		400		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/banners [post].
func (h *BannerCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiclient.BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	banner, err := h.BannerService.CreateBanner(ctx, service.BannerInput{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		Link:     req.Link,
		Position: req.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBannerInvalid):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to create banner", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create banner")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBanner(banner))
}

type AdminBannerListHandler struct {
	BannerService *service.BannerService
}

// ServeHTTP godoc
//
//	@Summary		List Banners
//	@Description	List every banner, hidden ones included, for the admin console.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	apiclient.BannerListResponse	"banners"
//	@Security		BearerAuth
//	@Router			/v1/admin/banners [get].
func (h *AdminBannerListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	banners, err := h.BannerService.AllBanners(ctx)
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

type BannerUpdateHandler struct {
	BannerService *service.BannerService
}

// ServeHTTP godoc
//
//	@Summary		Update Banner
//	@Description	Patch a banner's title, link, carousel position or active flag. Omitted
//	@Description	fields are left unchanged.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path	string							true	"Banner id"
//	@Param			request	body	apiclient.BannerUpdateRequest	true	"Changes"
//	@Success		204		"updated"
//	@Failure		404		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/banners/{id} [patch].
func (h *BannerUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiclient.BannerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.BannerService.UpdateBanner(ctx, r.PathValue("id"), store.BannerUpdate{
		Title:    req.Title,
		Link:     req.Link,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBannerNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to update banner", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update banner")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type BannerDeleteHandler struct {
	BannerService *service.BannerService
}

// ServeHTTP godoc
//
//	@Summary		Delete Banner
//	@Description	Remove a banner from the carousel permanently.
//	@Tags			Admin
//	@Param			id	path	string	true	"Banner id"
//	@Success		204	"deleted"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/banners/{id} [delete].
func (h *BannerDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.BannerService.DeleteBanner(ctx, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrBannerNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to delete banner", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to delete banner")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
