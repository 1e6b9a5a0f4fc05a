package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

type RegisterHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP godoc
//
//	@Summary		Member Registration Endpoint
//	@Description	Register a new member using a single-use invite code. The invite determines the role
//	@Description	granted to the account; LEADER invites also provision a public profile with a unique slug.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apiclient.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	apiclient.RegisterResponse	"success, message, user"
//	@Failure		400		{object}	apiclient.ErrorResponse		"error"
//	@Failure		500		{object}	apiclient.ErrorResponse		"error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.RegisterService.Register(ctx, service.RegisterInput{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Password:     req.Password,
		InviteCode:   req.InviteCode,
		State:        req.State,
		District:     req.District,
		Constituency: req.Constituency,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrInvalidMobileFormat),
			errors.Is(err, service.ErrDuplicateMobile),
			errors.Is(err, service.ErrInvalidInviteCode),
			errors.Is(err, service.ErrInviteAlreadyUsed),
			errors.Is(err, service.ErrInviteExpired),
			errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apiclient.RegisterResponse{
		Success: true,
		Message: "Registration successful",
		User:    toUser(user),
	})
}
