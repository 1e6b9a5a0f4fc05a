package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Mint Invite
//	@Description	Create a single-use invite code granting a role. Only a super admin can mint
//	@Description	ADMIN or SUPER_ADMIN invites.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.InviteMintRequest	true	"Invite request"
//	@Success		201		{object}	apiclient.Invite			"the minted invite"
//	@Failure		400		{object}	apiclient.ErrorResponse		"error"
//	@Failure		403		{object}	apiclient.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.InviteMintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	invite, err := h.InviteService.MintInvite(ctx,
		domain.Role(req.Role), req.ExpiresAt,
		httpx.UserIDFromContext(ctx), domain.Role(httpx.RoleFromContext(ctx)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrInvalidExpiry):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAdminInviteForbidden):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			log.Error("failed to mint invite", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to mint invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apiclient.Invite{
		ID:        invite.ID,
		Code:      invite.Code,
		Role:      string(invite.Role),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	})
}

type InviteListHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Invites
//	@Description	List invites newest first with creator and consumer names. The used query
//	@Description	parameter narrows to consumed or outstanding invites.
//	@Tags			Admin
//	@Produce		json
//	@Param			used		query		bool	false	"Filter by used state"
//	@Param			page		query		int		false	"Page number"
//	@Param			pageSize	query		int		false	"Page size"
//	@Success		200			{object}	apiclient.InviteListResponse	"invites, total, page, pageSize"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	var used *bool
	if raw := r.URL.Query().Get("used"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "used must be true or false")
			return
		}
		used = &v
	}

	invites, total, err := h.InviteService.ListInvites(ctx, used, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invites", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list invites")
		return
	}

	out := apiclient.InviteListResponse{
		Invites:  make([]apiclient.Invite, 0, len(invites)),
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
	for _, inv := range invites {
		out.Invites = append(out.Invites, toInvite(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type InviteDeleteHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Delete Invite
//	@Description	Remove an outstanding invite. Consumed invites are part of the provisioning
//	@Description	audit trail and cannot be deleted.
//	@Tags			Admin
//	@Param			id	path	string	true	"Invite id"
//	@Success		204	"deleted"
//	@Failure		404	{object}	apiclient.ErrorResponse	"error"
//	@Failure		409	{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites/{id} [delete].
func (h *InviteDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.InviteService.DeleteInvite(ctx, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInviteConsumed):
			httpx.WriteError(w, http.StatusConflict, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to delete invite", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to delete invite")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
