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

// CommentCreateHandler attaches comments to one parent kind; the router
// mounts one instance under events and another under media bytes.
type CommentCreateHandler struct {
	CommentService *service.CommentService

	// ParentParam names the path parameter ("id") and ForMediaByte
	// selects which parent field it fills.
	ForMediaByte bool
}

// ServeHTTP godoc
//
//	@Summary		Create Comment
//	@Description	Attach a comment to an approved event or a media byte.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Parent id"
//	@Param			request	body		apiclient.CommentRequest	true	"Comment"
//	@Success		201		{object}	apiclient.Comment			"the created comment"
//	@Failure		400		{object}	apiclient.ErrorResponse		"error"
//	@Failure		404		{object}	apiclient.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/events/{id}/comments [post].
func (h *CommentCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in := service.CommentInput{Content: req.Content}
	if h.ForMediaByte {
		in.MediaByteID = r.PathValue("id")
	} else {
		in.EventID = r.PathValue("id")
	}

	comment, err := h.CommentService.CreateComment(ctx, httpx.UserIDFromContext(ctx), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentInvalid):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrParentNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPostingDisabled):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			log.Error("failed to create comment", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toComment(comment))
}

// CommentListHandler lists comments for one parent kind.
type CommentListHandler struct {
	CommentService *service.CommentService
	ForMediaByte   bool
}

// ServeHTTP godoc
//
//	@Summary		List Comments
//	@Description	List comments on an event or a media byte, newest first.
//	@Tags			Comments
//	@Produce		json
//	@Param			id			path		string	true	"Parent id"
//	@Param			page		query		int		false	"Page number"
//	@Param			pageSize	query		int		false	"Page size"
//	@Success		200			{object}	apiclient.CommentListResponse	"comments, total, page, pageSize"
//	@Router			/v1/events/{id}/comments [get].
func (h *CommentListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	var filter store.CommentFilter
	if h.ForMediaByte {
		filter.MediaByteID = r.PathValue("id")
	} else {
		filter.EventID = r.PathValue("id")
	}

	comments, total, err := h.CommentService.ListComments(ctx, filter, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list comments", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}

	out := apiclient.CommentListResponse{
		Comments: make([]apiclient.Comment, 0, len(comments)),
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
	for _, c := range comments {
		out.Comments = append(out.Comments, toComment(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
