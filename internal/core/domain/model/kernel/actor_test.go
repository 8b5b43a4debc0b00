package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for input, want := range map[string]kernel.Role{
		"customer": kernel.RoleCustomer,
		"Courier":  kernel.RoleCourier,
		" ADMIN ":  kernel.RoleAdmin,
	} {
		role, err := kernel.ParseRole(input)

		require.NoError(t, err, input)
		assert.Equal(t, want, role)
	}

	_, err := kernel.ParseRole("merchant")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleCourier)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.UserID().IsEqual(id))
		assert.True(t, actor.IsCourier())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("root"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects nil user", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleAdmin)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var actor kernel.Actor

		require.ErrorIs(t, actor.Validate(), kernel.ErrActorIsNotConstructed)
	})
}
