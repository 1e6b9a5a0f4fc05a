package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint_InactiveLooksLikeBadCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	dormant := env.seedUser(t, "Dormant User", domain.RoleCadre, "secret123")
	inactive := false
	require.NoError(t, env.Store.Users().UpdateFlags(context.Background(), dormant.ID, &inactive, nil))

	_, err := env.Client.Login(context.Background(), dormant.Mobile, "secret123")
	var inactiveErr *apiclient.APIError
	require.ErrorAs(t, err, &inactiveErr)

	active := env.seedUser(t, "Active User", domain.RoleCadre, "secret123")
	_, err = env.Client.Login(context.Background(), active.Mobile, "wrong-pass")
	var badPassErr *apiclient.APIError
	require.ErrorAs(t, err, &badPassErr)

	// A deactivated account must answer exactly like a wrong password so
	// callers cannot tell which accounts exist but are blocked.
	require.Equal(t, http.StatusUnauthorized, inactiveErr.Status)
	require.Equal(t, badPassErr.Status, inactiveErr.Status)
	require.Equal(t, badPassErr.Message, inactiveErr.Message)
}
