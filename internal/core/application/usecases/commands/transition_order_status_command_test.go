package commands_test

import (
	"testing"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderStatusCommand(id, order.Released)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Released, cmd.NewStatus())
}

func TestNewTransitionOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(kernel.UUID{}, order.Released)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestTransitionOrderStatusCommand_NotConstructed(t *testing.T) {
	cmd := commands.TransitionOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderStatusCommandIsNotConstructed)
}
