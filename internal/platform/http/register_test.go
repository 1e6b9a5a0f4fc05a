package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint_Contract(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedInvite(t, "WELCOME1", domain.RoleCadre)

	body, err := json.Marshal(apiclient.RegisterRequest{
		Name:       "Ravi Kumar",
		Mobile:     "9876543210",
		Password:   "secret123",
		InviteCode: "WELCOME1",
		State:      "Andhra Pradesh",
		District:   "Guntur",
	})
	require.NoError(t, err)

	resp, err := http.Post(env.Server.URL+"/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Assert the exact envelope shape, not just the decoded struct.
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, true, envelope["success"])
	require.NotEmpty(t, envelope["message"])

	user, ok := envelope["user"].(map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, user["id"])
	require.Equal(t, "Ravi Kumar", user["name"])
	require.Equal(t, "9876543210", user["mobile"])
	require.Equal(t, "CADRE", user["role"])
}

func TestRegisterEndpoint_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedInvite(t, "ONETIME1", domain.RoleCadre)

	cases := []struct {
		name    string
		req     apiclient.RegisterRequest
		message string
	}{
		{
			name: "missing field",
			req: apiclient.RegisterRequest{
				Mobile: "9876543210", Password: "secret123", InviteCode: "ONETIME1",
			},
			message: "missing required field",
		},
		{
			name: "bad mobile",
			req: apiclient.RegisterRequest{
				Name: "R", Mobile: "12345", Password: "secret123", InviteCode: "ONETIME1",
			},
			message: "mobile must be exactly 10 digits",
		},
		{
			name: "unknown invite",
			req: apiclient.RegisterRequest{
				Name: "R", Mobile: "9876543211", Password: "secret123", InviteCode: "NOPE9999",
			},
			message: "invalid invite code",
		},
		{
			name: "weak password",
			req: apiclient.RegisterRequest{
				Name: "R", Mobile: "9876543211", Password: "short", InviteCode: "ONETIME1",
			},
			message: "password must be at least 6 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.Client.Register(context.Background(), tc.req)

			var apiErr *apiclient.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadRequest, apiErr.Status)
			require.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestRegisterEndpoint_UsedInvite(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedInvite(t, "REUSE001", domain.RoleCadre)

	first := apiclient.RegisterRequest{
		Name: "First", Mobile: "9876540001", Password: "secret123", InviteCode: "REUSE001",
	}
	_, err := env.Client.Register(context.Background(), first)
	require.NoError(t, err)

	second := apiclient.RegisterRequest{
		Name: "Second", Mobile: "9876540002", Password: "secret123", InviteCode: "REUSE001",
	}
	_, err = env.Client.Register(context.Background(), second)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "invite has already been used", apiErr.Message)
}

func TestRegisterEndpoint_LeaderSlug(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedInvite(t, "LEADHERE", domain.RoleLeader)

	resp, err := env.Client.Register(context.Background(), apiclient.RegisterRequest{
		Name: "Sita Devi", Mobile: "9876540010", Password: "secret123", InviteCode: "LEADHERE",
	})
	require.NoError(t, err)
	require.Equal(t, "LEADER", resp.User.Role)

	page, err := env.Client.GetLeader(context.Background(), "sita-devi")
	require.NoError(t, err)
	require.Equal(t, "Sita Devi", page.Leader.Name)
	require.Equal(t, "Party Leader", page.Leader.Designation)
}
