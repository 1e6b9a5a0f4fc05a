package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// inviteCharset deliberately omits 0/O and 1/I/L so codes survive being
// read aloud over the phone or copied from a printed pamphlet.
const inviteCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// DefaultInviteCodeLength matches the length of hand-issued party codes.
const DefaultInviteCodeLength = 8

// GenerateInviteCode creates a cryptographically random, human-friendly
// invite code of the given length.
func GenerateInviteCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("cryptox: invite code length must be positive, got %d", length)
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCharset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to generate invite code: %w", err)
		}
		code[i] = inviteCharset[n.Int64()]
	}
	return string(code), nil
}
