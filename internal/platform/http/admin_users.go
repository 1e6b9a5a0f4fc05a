package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type UserListHandler struct {
	AdminUserService *service.AdminUserService
}

// ServeHTTP godoc
//
//	@Summary		List Users
//	@Description	List accounts with per-content totals, optionally narrowed by role or a
//	@Description	name/mobile search term.
//	@Tags			Admin
//	@Produce		json
//	@Param			role		query		string	false	"Filter by role"
//	@Param			isActive	query		bool	false	"Filter by active flag"
//	@Param			search		query		string	false	"Match name or mobile"
//	@Param			page		query		int		false	"Page number"
//	@Param			pageSize	query		int		false	"Page size"
//	@Success		200			{object}	apiclient.UserListResponse	"users, total, page, pageSize"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [get].
func (h *UserListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r).Normalize(service.DefaultPageSize)

	q := r.URL.Query()
	filter := store.UserFilter{
		Role:   domain.Role(q.Get("role")),
		Search: q.Get("search"),
	}
	if raw := q.Get("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "isActive must be true or false")
			return
		}
		filter.IsActive = &v
	}

	users, total, err := h.AdminUserService.ListUsers(ctx, filter, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	out := apiclient.UserListResponse{
		Users:    make([]apiclient.AdminUser, 0, len(users)),
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
	for _, u := range users {
		out.Users = append(out.Users, toAdminUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type UserFlagsHandler struct {
	AdminUserService *service.AdminUserService
}

// ServeHTTP godoc
//
//	@Summary		Update User Flags
//	@Description	Toggle an account's is_active / can_post flags. The super admin account is
//	@Description	immutable and admins cannot change their own flags.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path	string						true	"User id"
//	@Param			request	body	apiclient.UserFlagsRequest	true	"Flag changes"
//	@Success		204		"updated"
//	@Failure		403		{object}	apiclient.ErrorResponse	"error"
//	@Failure		404		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id}/flags [patch].
func (h *UserFlagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiclient.UserFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.AdminUserService.SetUserFlags(ctx,
		httpx.UserIDFromContext(ctx), r.PathValue("id"), req.IsActive, req.CanPost)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSuperAdminLocked),
			errors.Is(err, service.ErrSelfflagForbidden):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to update user flags", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update user flags")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
