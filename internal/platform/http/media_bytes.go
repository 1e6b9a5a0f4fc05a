package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type MediaByteCreateHandler struct {
	MediaByteService *service.MediaByteService
}

// ServeHTTP godoc
//
//	@Summary		Publish Media Byte
//	@Description	Publish a short video message. Only LEADER accounts can post media bytes;
//	@Description	YouTube links are validated, uploaded file URLs are accepted as-is.
//	@Tags			MediaBytes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.MediaByteRequest	true	"Media byte"
//	@Success		201		{object}	apiclient.MediaByte			"the created media byte"
//	@Failure		400		{object}	apiclient.ErrorResponse		"error"
//	@Failure		403		{object}	apiclient.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/media-bytes [post].
func (h *MediaByteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.MediaByteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	mb, err := h.MediaByteService.CreateMediaByte(ctx, httpx.UserIDFromContext(ctx), service.MediaByteInput{
		VideoURL:  req.VideoURL,
		VideoType: domain.VideoType(req.VideoType),
		Message:   req.Message,
		Language:  req.Language,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaByteInvalid):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotALeader),
			errors.Is(err, service.ErrPostingDisabled):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			log.Error("failed to create media byte", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create media byte")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMediaByte(mb))
}

type MediaByteListHandler struct {
	MediaByteService *service.MediaByteService
}

// ServeHTTP godoc
//
//	@Summary		List Media Bytes
//	@Description	List media bytes newest first, optionally narrowed to one leader by user id.
//	@Tags			MediaBytes
//	@Produce		json
//	@Param			userId		query		string	false	"Filter by leader's user id"
//	@Param			page		query		int		false	"Page number"
//	@Param			pageSize	query		int		false	"Page size"
//	@Success		200			{object}	apiclient.MediaByteListResponse	"mediaBytes, total, page, pageSize"
//	@Router			/v1/media-bytes [get].
func (h *MediaByteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	bytes, total, err := h.MediaByteService.List(ctx, r.URL.Query().Get("userId"), page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list media bytes", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list media bytes")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMediaByteList(bytes, total, page))
}

type MediaByteViewHandler struct {
	MediaByteService *service.MediaByteService
}

// ServeHTTP godoc
//
//	@Summary		View Media Byte
//	@Description	Fetch one media byte and count the view.
//	@Tags			MediaBytes
//	@Produce		json
//	@Param			id	path		string					true	"Media byte id"
//	@Success		200	{object}	apiclient.MediaByte		"the media byte"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Router			/v1/media-bytes/{id} [get].
func (h *MediaByteViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mb, err := h.MediaByteService.View(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaByteNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to get media byte", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to get media byte")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMediaByte(mb))
}

type MediaByteDeleteHandler struct {
	MediaByteService *service.MediaByteService
}

// ServeHTTP godoc
//
//	@Summary		Delete Media Byte
//	@Description	Remove a media byte. Owners may delete their own; admins may delete any.
//	@Tags			MediaBytes
//	@Param			id	path	string	true	"Media byte id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	apiclient.ErrorResponse	"error"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/media-bytes/{id} [delete].
func (h *MediaByteDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MediaByteService.Delete(ctx, r.PathValue("id"),
		httpx.UserIDFromContext(ctx), domain.Role(httpx.RoleFromContext(ctx)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaByteNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotAuthorized):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to delete media byte", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to delete media byte")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
