package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gumutoni/tasktidy/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	require.NoError(t, password.Compare(hash, "pw123"))
	require.Error(t, password.Compare(hash, "wrong"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("pw123")
	require.NoError(t, err)
	second, err := password.Hash("pw123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
