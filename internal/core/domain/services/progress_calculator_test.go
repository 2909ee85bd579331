package services_test

import (
	"testing"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperationWithStatus(t *testing.T, sequence int, status operation.Status) *operation.Operation {
	t.Helper()
	op, err := operation.NewOperation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"OP", sequence, 10,
	)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	switch status {
	case operation.InProgress:
		require.NoError(t, op.TransitionTo(operation.InProgress, now))
	case operation.Blocked:
		require.NoError(t, op.TransitionTo(operation.Blocked, now))
	case operation.Completed:
		require.NoError(t, op.TransitionTo(operation.InProgress, now))
		require.NoError(t, op.TransitionTo(operation.Completed, now))
	case operation.Waiting, operation.Unknown:
	}
	return op
}

func TestProgressCalculator_Calculate(t *testing.T) {
	calculator := services.NewProgressCalculator()

	t.Run("half completed yields fifty percent and first waiting operation", func(t *testing.T) {
		first := newOperationWithStatus(t, 10, operation.Completed)
		second := newOperationWithStatus(t, 20, operation.Completed)
		third := newOperationWithStatus(t, 30, operation.Waiting)
		fourth := newOperationWithStatus(t, 40, operation.Waiting)

		progress, err := calculator.Calculate([]*operation.Operation{first, second, third, fourth})

		require.NoError(t, err)
		assert.Equal(t, 4, progress.Total)
		assert.Equal(t, 50, progress.OverallProgress)
		assert.Equal(t, 2, progress.StatusCounts[operation.Completed.String()])
		assert.Equal(t, 2, progress.StatusCounts[operation.Waiting.String()])
		require.NotNil(t, progress.CurrentOperation)
		assert.True(t, progress.CurrentOperation.IsEqual(third),
			"the first non-completed operation in sequence order is current")
	})

	t.Run("empty set yields zero progress and no current operation", func(t *testing.T) {
		progress, err := calculator.Calculate(nil)

		require.NoError(t, err)
		assert.Equal(t, 0, progress.Total)
		assert.Equal(t, 0, progress.OverallProgress)
		assert.Nil(t, progress.CurrentOperation)
	})

	t.Run("all completed leaves no current operation", func(t *testing.T) {
		first := newOperationWithStatus(t, 10, operation.Completed)
		second := newOperationWithStatus(t, 20, operation.Completed)

		progress, err := calculator.Calculate([]*operation.Operation{first, second})

		require.NoError(t, err)
		assert.Equal(t, 100, progress.OverallProgress)
		assert.Nil(t, progress.CurrentOperation)
	})

	t.Run("rounds to nearest whole percent", func(t *testing.T) {
		ops := []*operation.Operation{
			newOperationWithStatus(t, 10, operation.Completed),
			newOperationWithStatus(t, 20, operation.Waiting),
			newOperationWithStatus(t, 30, operation.Waiting),
		}

		progress, err := calculator.Calculate(ops)

		require.NoError(t, err)
		assert.Equal(t, 33, progress.OverallProgress)
	})

	t.Run("current operation order is input order independent", func(t *testing.T) {
		early := newOperationWithStatus(t, 10, operation.Blocked)
		late := newOperationWithStatus(t, 20, operation.InProgress)

		progress, err := calculator.Calculate([]*operation.Operation{late, early})

		require.NoError(t, err)
		require.NotNil(t, progress.CurrentOperation)
		assert.True(t, progress.CurrentOperation.IsEqual(early))
	})

	t.Run("rejects operations built outside a constructor", func(t *testing.T) {
		_, err := calculator.Calculate([]*operation.Operation{{}})

		require.ErrorIs(t, err, operation.ErrOperationIsNotConstructed)
	})
}
