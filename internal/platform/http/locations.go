package http

import (
	"net/http"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

// LocationsHandler serves the seeded state/district/constituency
// lookup tables consumed by registration and filter forms.
type LocationsHandler struct {
	LocationService *service.LocationService
}

// States godoc
//
//	@Summary		List States
//	@Description	List the seeded states with Telugu display names.
//	@Tags			Locations
//	@Produce		json
//	@Success		200	{array}	apiclient.State	"states"
//	@Router			/v1/locations/states [get].
func (h *LocationsHandler) States(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	states, err := h.LocationService.States(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list states", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list states")
		return
	}

	out := make([]apiclient.State, 0, len(states))
	for _, s := range states {
		out = append(out, apiclient.State{ID: s.ID, Name: s.Name, NameTE: s.NameTE})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Districts godoc
//
//	@Summary		List Districts
//	@Description	List the districts of one state.
//	@Tags			Locations
//	@Produce		json
//	@Param			id	path	string	true	"State id"
//	@Success		200	{array}	apiclient.District	"districts"
//	@Router			/v1/locations/states/{id}/districts [get].
func (h *LocationsHandler) Districts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	districts, err := h.LocationService.Districts(ctx, r.PathValue("id"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list districts", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list districts")
		return
	}

	out := make([]apiclient.District, 0, len(districts))
	for _, d := range districts {
		out = append(out, apiclient.District{ID: d.ID, StateID: d.StateID, Name: d.Name, NameTE: d.NameTE})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Constituencies godoc
//
//	@Summary		List Constituencies
//	@Description	List the constituencies of one district.
//	@Tags			Locations
//	@Produce		json
//	@Param			id	path	string	true	"District id"
//	@Success		200	{array}	apiclient.Constituency	"constituencies"
//	@Router			/v1/locations/districts/{id}/constituencies [get].
func (h *LocationsHandler) Constituencies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	constituencies, err := h.LocationService.Constituencies(ctx, r.PathValue("id"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list constituencies", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list constituencies")
		return
	}

	out := make([]apiclient.Constituency, 0, len(constituencies))
	for _, c := range constituencies {
		out = append(out, apiclient.Constituency{ID: c.ID, DistrictID: c.DistrictID, Name: c.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
