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

type SettingsListHandler struct {
	SettingsService *service.SettingsService
}

// ServeHTTP godoc
//
//	@Summary		List Settings
//	@Description	Return every platform setting for the admin panel.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	apiclient.SettingsResponse	"settings"
//	@Security		BearerAuth
//	@Router			/v1/admin/settings [get].
func (h *SettingsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.SettingsService.All(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list settings", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list settings")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apiclient.SettingsResponse{Settings: settings})
}

type SettingUpdateHandler struct {
	SettingsService *service.SettingsService
}

// ServeHTTP godoc
//
//	@Summary		Update Setting
//	@Description	Upsert one known setting key, e.g. auto_approve_posts.
//	@Tags			Admin
//	@Accept			json
//	@Param			key		path	string							true	"Setting key"
//	@Param			request	body	apiclient.SettingUpdateRequest	true	"New value"
//	@Success		204		"updated"
//	@Failure		400		{object}	apiclient.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/admin/settings/{key} [put].
func (h *SettingUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiclient.SettingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.SettingsService.Set(ctx, r.PathValue("key"), req.Value); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSetting):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			slogx.FromContext(ctx).Error("failed to update setting", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update setting")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
