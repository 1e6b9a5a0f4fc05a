package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestHS256_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := NewVerifierHS256(testSecret, "platform-test")
	require.NoError(t, err)

	claims := NewAccessClaims(
		"user-1", "Ravi Kumar", "9876543210", "CADRE",
		time.Hour, "platform-test", time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "Ravi Kumar", got.Name)
	require.Equal(t, "9876543210", got.Mobile)
	require.Equal(t, "CADRE", got.Role)
}

func TestHS256_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := NewVerifierHS256([]byte("ffffffffffffffffffffffffffffffff"), "platform-test")
	require.NoError(t, err)

	claims := NewAccessClaims("user-1", "Ravi", "9876543210", "CADRE",
		time.Hour, "platform-test", time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256_RejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := NewVerifierHS256(testSecret, "platform-test")
	require.NoError(t, err)

	claims := NewAccessClaims("user-1", "Ravi", "9876543210", "CADRE",
		time.Hour, "platform-test", time.Now().UTC().Add(-2*time.Hour))

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := NewVerifierHS256(testSecret, "platform-test")
	require.NoError(t, err)

	claims := NewAccessClaims("user-1", "Ravi", "9876543210", "CADRE",
		time.Hour, "someone-else", time.Now().UTC())

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256([]byte("too-short"))
	require.Error(t, err)

	_, err = NewVerifierHS256([]byte("too-short"), "platform-test")
	require.Error(t, err)
}

func TestHS256_RejectsMalformed(t *testing.T) {
	t.Parallel()

	verifier, err := NewVerifierHS256(testSecret, "platform-test")
	require.NoError(t, err)

	_, err = verifier.Verify("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformed)
}
