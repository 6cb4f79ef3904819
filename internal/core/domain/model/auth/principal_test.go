package auth_test

import (
	"testing"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("should create valid principal", func(t *testing.T) {
		id := kernel.NewUUID()

		principal, err := auth.NewPrincipal(id, "Ada Lovelace", false)

		require.NoError(t, err)
		require.NoError(t, principal.Validate())
		assert.True(t, principal.ID().IsEqual(id))
		assert.Equal(t, "Ada Lovelace", principal.Name())
		assert.False(t, principal.IsAdmin())
	})

	t.Run("should create admin principal", func(t *testing.T) {
		principal, err := auth.NewPrincipal(kernel.NewUUID(), "Root", true)

		require.NoError(t, err)
		assert.True(t, principal.IsAdmin())
	})

	t.Run("should allow empty name", func(t *testing.T) {
		principal, err := auth.NewPrincipal(kernel.NewUUID(), "", false)

		require.NoError(t, err)
		assert.Empty(t, principal.Name())
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := auth.NewPrincipal(id, "Ada Lovelace", false)

		require.Error(t, err)
	})
}

func TestPrincipal_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	first, err := auth.NewPrincipal(id, "Ada", false)
	require.NoError(t, err)
	same, err := auth.NewPrincipal(id, "Ada (admin)", true)
	require.NoError(t, err)
	other, err := auth.NewPrincipal(kernel.NewUUID(), "Ada", false)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
}

func TestPrincipal_Validate(t *testing.T) {
	t.Run("zero value principal is invalid", func(t *testing.T) {
		var principal auth.Principal

		err := principal.Validate()

		require.Error(t, err)
		assert.Equal(t, auth.ErrPrincipalIsNotConstructed, err)
	})
}
