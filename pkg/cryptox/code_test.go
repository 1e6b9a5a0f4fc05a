package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	t.Parallel()

	code, err := GenerateInviteCode(DefaultInviteCodeLength)
	require.NoError(t, err)
	require.Len(t, code, DefaultInviteCodeLength)

	for _, c := range code {
		require.True(t, strings.ContainsRune(inviteCharset, c),
			"unexpected character %q in code %q", c, code)
	}
}

func TestGenerateInviteCode_InvalidLength(t *testing.T) {
	t.Parallel()

	_, err := GenerateInviteCode(0)
	require.Error(t, err)
	_, err = GenerateInviteCode(-5)
	require.Error(t, err)
}
