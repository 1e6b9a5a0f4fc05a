package platform_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for platform end-to-end tests.
 * This includes container setup, login helpers, and invite minting.
 */

const (
	testImageName = "prajasetu-test:latest"

	jwtSecret     = "e2e-secret-0123456789abcdef0123456789"
	adminName     = "Super Admin"
	adminMobile   = "9999999999"
	adminPassword = "Admin123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Platform Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Platform Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/server/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupPlatformContainer starts the platform in a container and returns
// the base URL.
func setupPlatformContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PLATFORM_JWT_SECRET":     jwtSecret,
			"PLATFORM_DATABASE_FILE":  "/tmp/platform.db",
			"PLATFORM_ADMIN_NAME":     adminName,
			"PLATFORM_ADMIN_MOBILE":   adminMobile,
			"PLATFORM_ADMIN_PASSWORD": adminPassword,
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// Lift the strict production limits so rapid test requests
			// don't trip them.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// loginAdmin signs in as the seeded super admin and returns an
// authenticated client.
func loginAdmin(t *testing.T, client *apiclient.Client) *apiclient.Client {
	t.Helper()

	resp, err := client.Login(t.Context(), adminMobile, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "SUPER_ADMIN", resp.User.Role)

	return client.WithToken(resp.Token)
}

// mintInvite mints a fresh invite for the given role via the admin API.
func mintInvite(t *testing.T, admin *apiclient.Client, role string) string {
	t.Helper()

	invite, err := admin.MintInvite(t.Context(), apiclient.InviteMintRequest{Role: role})
	require.NoError(t, err)
	require.Len(t, invite.Code, 8)

	return invite.Code
}

// registerMember registers an account through an invite and returns an
// authenticated client for it.
func registerMember(t *testing.T, client *apiclient.Client, name, mobile, code string) *apiclient.Client {
	t.Helper()

	reg, err := client.Register(t.Context(), apiclient.RegisterRequest{
		Name:       name,
		Mobile:     mobile,
		Password:   "secret123",
		InviteCode: code,
		State:      "Andhra Pradesh",
		District:   "Guntur",
	})
	require.NoError(t, err)
	require.True(t, reg.Success)

	login, err := client.Login(t.Context(), mobile, "secret123")
	require.NoError(t, err)

	return client.WithToken(login.Token)
}
