package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithUser(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithContext(context.Background(), logger)

	FromContext(WithUser(ctx, "user-1")).Info("hello")
	require.Contains(t, buf.String(), `"user_id":"user-1"`)

	// Anonymous requests leave the logger untouched.
	buf.Reset()
	FromContext(WithUser(ctx, "")).Info("hello")
	require.NotContains(t, buf.String(), "user_id")
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithContext(context.Background(), logger)

	FromContext(WithRequestID(ctx, "req-42")).Info("hello")
	require.Contains(t, buf.String(), `"req_id":"req-42"`)
}
