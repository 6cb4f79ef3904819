package commands_test

import (
	"testing"
	"time"

	"travelorder/internal/core/application/usecases/commands"
	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTravelOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		principal := requesterPrincipal(t)
		period := futurePeriod(t)

		cmd, err := commands.NewCreateTravelOrderCommand(principal, "Grace Hopper", "London", "Paris", period)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.Principal().IsEqual(principal))
		assert.Equal(t, "Grace Hopper", cmd.RequesterName())
		assert.Equal(t, "London", cmd.Origin())
		assert.Equal(t, "Paris", cmd.Destination())
		assert.True(t, cmd.Period().IsEqual(period))
	})

	t.Run("should default requester name to principal name", func(t *testing.T) {
		principal := requesterPrincipal(t)

		cmd, err := commands.NewCreateTravelOrderCommand(principal, "", "", "Paris", futurePeriod(t))

		require.NoError(t, err)
		assert.Equal(t, principal.Name(), cmd.RequesterName())
	})

	t.Run("should reject zero value principal as unauthenticated", func(t *testing.T) {
		var anonymous auth.Principal

		_, err := commands.NewCreateTravelOrderCommand(anonymous, "Ada", "", "Paris", futurePeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject empty destination", func(t *testing.T) {
		_, err := commands.NewCreateTravelOrderCommand(
			requesterPrincipal(t), "Ada", "", "", futurePeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing requester name when principal has none", func(t *testing.T) {
		nameless, err := auth.NewPrincipal(kernel.NewUUID(), "", false)
		require.NoError(t, err)

		_, err = commands.NewCreateTravelOrderCommand(nameless, "", "", "Paris", futurePeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject travel window starting in the past", func(t *testing.T) {
		start := time.Now().AddDate(0, 0, -10)
		pastPeriod, err := kernel.NewPeriod(start, start.AddDate(0, 0, 5))
		require.NoError(t, err)

		_, err = commands.NewCreateTravelOrderCommand(
			requesterPrincipal(t), "Ada", "", "Paris", pastPeriod)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "starts in the past")
	})

	t.Run("should reject zero value period", func(t *testing.T) {
		var zeroPeriod kernel.Period

		_, err := commands.NewCreateTravelOrderCommand(
			requesterPrincipal(t), "Ada", "", "Paris", zeroPeriod)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateTravelOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateTravelOrderCommandIsNotConstructed)
	})
}
