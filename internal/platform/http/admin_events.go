package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type ModerationQueueHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Moderation Queue
//	@Description	List events of any status for review, newest first. Defaults to all statuses;
//	@Description	pass status=PENDING for the open queue.
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string	false	"Filter by status"
//	@Param			page		query		int		false	"Page number"
//	@Param			pageSize	query		int		false	"Page size"
//	@Success		200			{object}	apiclient.EventListResponse	"events, total, page, pageSize"
//	@Security		BearerAuth
//	@Router			/v1/admin/events [get].
func (h *ModerationQueueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	filter := store.EventFilter{
		Status: domain.ContentStatus(r.URL.Query().Get("status")),
	}

	events, total, err := h.EventService.ListForModeration(ctx, filter, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list moderation queue", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEventList(events, total, page))
}

type ModerateHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Moderate Event
//	@Description	Approve or reject a submitted event. Approved events enter the public feed.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path	string						true	"Event id"
//	@Param			request	body	apiclient.ModerateRequest	true	"Verdict: APPROVED or REJECTED"
//	@Success		204		"moderated"
//	@Failure		400		{object}	apiclient.ErrorResponse	"error"
//	@Failure		404		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/events/{id}/moderate [post].
func (h *ModerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiclient.ModerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.EventService.Moderate(ctx, r.PathValue("id"), domain.ContentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventInvalid):
			httpx.WriteError(w, http.StatusBadRequest, "status must be APPROVED or REJECTED")
		case errors.Is(err, service.ErrEventNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to moderate event", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to moderate event")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
