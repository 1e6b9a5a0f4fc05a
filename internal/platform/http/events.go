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

type EventCreateHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Submit Event Report
//	@Description	Record a field activity report. The event enters the PENDING moderation queue
//	@Description	unless auto-approval is enabled by an admin.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.EventRequest	true	"Event report"
//	@Success		201		{object}	apiclient.Event			"the created event"
//	@Failure		400		{object}	apiclient.ErrorResponse	"error"
//	@Failure		403		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/events [post].
func (h *EventCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in := service.EventInput{
		Title:        req.Title,
		Category:     domain.EventCategory(req.Category),
		Description:  req.Description,
		State:        req.State,
		District:     req.District,
		Constituency: req.Constituency,
		Language:     req.Language,
		ImageURLs:    req.ImageURLs,
	}
	for _, link := range req.SocialLinks {
		in.SocialLinks = append(in.SocialLinks, service.SocialLinkInput{
			Platform:     domain.SocialPlatform(link.Platform),
			URL:          link.URL,
			ThumbnailURL: link.ThumbnailURL,
		})
	}

	event, err := h.EventService.CreateEvent(ctx, httpx.UserIDFromContext(ctx), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventInvalid),
			errors.Is(err, service.ErrTooManyImages):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPostingDisabled):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			log.Error("failed to create event", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create event")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toEvent(event))
}

type EventFeedHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Public Event Feed
//	@Description	List approved events newest first, optionally narrowed by state, district,
//	@Description	constituency or category. Only APPROVED events ever appear here.
//	@Tags			Events
//	@Produce		json
//	@Param			state			query		string	false	"Filter by state"
//	@Param			district		query		string	false	"Filter by district"
//	@Param			constituency	query		string	false	"Filter by constituency"
//	@Param			category		query		string	false	"Filter by category"
//	@Param			page			query		int		false	"Page number"
//	@Param			pageSize		query		int		false	"Page size"
//	@Success		200				{object}	apiclient.EventListResponse	"events, total, page, pageSize"
//	@Router			/v1/events [get].
func (h *EventFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	filter := store.EventFilter{
		State:        q.Get("state"),
		District:     q.Get("district"),
		Constituency: q.Get("constituency"),
		Category:     domain.EventCategory(q.Get("category")),
	}
	page := parsePage(r).Normalize(service.DefaultPageSize)

	events, total, err := h.EventService.PublicFeed(ctx, filter, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list events", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEventList(events, total, page))
}

type EventGetHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Get Event
//	@Description	Fetch one event by id. Pending and rejected events are visible only to their
//	@Description	author and to admins; everyone else sees 404.
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string					true	"Event id"
//	@Success		200	{object}	apiclient.Event			"the event"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Router			/v1/events/{id} [get].
func (h *EventGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	event, err := h.EventService.GetEvent(ctx, r.PathValue("id"),
		httpx.UserIDFromContext(ctx), domain.Role(httpx.RoleFromContext(ctx)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to get event", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to get event")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEvent(event))
}

type EventDeleteHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Delete Event
//	@Description	Remove an event. Authors may delete their own events; admins may delete any.
//	@Tags			Events
//	@Param			id	path	string	true	"Event id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	apiclient.ErrorResponse	"error"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/events/{id} [delete].
func (h *EventDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.EventService.DeleteEvent(ctx, r.PathValue("id"),
		httpx.UserIDFromContext(ctx), domain.Role(httpx.RoleFromContext(ctx)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotAuthorized):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to delete event", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to delete event")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
