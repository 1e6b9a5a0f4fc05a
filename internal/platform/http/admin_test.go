package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpoints_RoleGate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	cadre := env.seedUser(t, "Plain Cadre", domain.RoleCadre, "secret123")
	client := env.login(t, cadre.Mobile, "secret123")

	_, err := client.MintInvite(context.Background(), apiclient.InviteMintRequest{Role: "CADRE"})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)

	// Unauthenticated callers are rejected before the role check.
	_, err = env.Client.ListUsers(context.Background(), apiclient.UserListOptions{})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestModerationFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.seedUser(t, "Moderator", domain.RoleAdmin, "secret123")
	cadre := env.seedUser(t, "Field Cadre", domain.RoleCadre, "secret123")

	adminClient := env.login(t, admin.Mobile, "secret123")
	cadreClient := env.login(t, cadre.Mobile, "secret123")

	event, err := cadreClient.CreateEvent(context.Background(), apiclient.EventRequest{
		Title:       "Ward meeting",
		Category:    "MEETING",
		Description: "Monthly ward committee meeting.",
		State:       "Telangana",
		District:    "Warangal",
	})
	require.NoError(t, err)
	require.Equal(t, "PENDING", event.Status)

	queue, err := adminClient.ModerationQueue(context.Background(), "PENDING", 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, queue.Total)

	require.NoError(t, adminClient.ModerateEvent(context.Background(), event.ID, "APPROVED"))

	feed, err := env.Client.Feed(context.Background(), apiclient.EventFeedOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 1, feed.Total)

	// A rejected verdict on an unknown event is a 404.
	err = adminClient.ModerateEvent(context.Background(), "no-such-id", "REJECTED")
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestUserFlagsEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.seedUser(t, "Flag Admin", domain.RoleAdmin, "secret123")
	cadre := env.seedUser(t, "Target Cadre", domain.RoleCadre, "secret123")
	adminClient := env.login(t, admin.Mobile, "secret123")

	blocked := false
	err := adminClient.SetUserFlags(context.Background(), cadre.ID,
		apiclient.UserFlagsRequest{CanPost: &blocked})
	require.NoError(t, err)

	cadreClient := env.login(t, cadre.Mobile, "secret123")
	_, err = cadreClient.CreateEvent(context.Background(), apiclient.EventRequest{
		Title:       "Blocked report",
		Category:    "OUTREACH",
		Description: "Should never be accepted.",
		State:       "Telangana",
		District:    "Warangal",
	})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)

	// Admins cannot flip their own flags.
	err = adminClient.SetUserFlags(context.Background(), admin.ID,
		apiclient.UserFlagsRequest{CanPost: &blocked})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)
}
