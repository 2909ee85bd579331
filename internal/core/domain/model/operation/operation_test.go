package operation_test

import (
	"testing"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperation(t *testing.T, plannedQuantity float64) *operation.Operation {
	t.Helper()
	op, err := operation.NewOperation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"OP-010", 10, plannedQuantity,
	)
	require.NoError(t, err)
	return op
}

func TestNewOperation(t *testing.T) {
	t.Run("creates waiting operation with zero completed quantity", func(t *testing.T) {
		op := newTestOperation(t, 100)

		require.NoError(t, op.Validate())
		assert.Equal(t, operation.Waiting, op.Status())
		assert.InDelta(t, 0.0, op.CompletedQuantity(), 0.0001)
		assert.InDelta(t, 100.0, op.PlannedQuantity(), 0.0001)
		assert.Equal(t, 10, op.Sequence())
		assert.Equal(t, "OP-010", op.OperationCode())
		assert.Equal(t, 1, op.Version())
		assert.Nil(t, op.ActualStartTime())
		assert.Nil(t, op.ActualEndTime())
	})

	t.Run("rejects empty operation code", func(t *testing.T) {
		_, err := operation.NewOperation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", 10, 100,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive planned quantity", func(t *testing.T) {
		_, err := operation.NewOperation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"OP-010", 10, 0,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "plannedQuantity is invalid")
	})

	t.Run("rejects negative sequence", func(t *testing.T) {
		_, err := operation.NewOperation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"OP-010", -1, 100,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sequence is invalid")
	})
}

func TestOperationStatus_TransitionTable(t *testing.T) {
	allowed := map[operation.Status][]operation.Status{
		operation.Waiting:    {operation.InProgress, operation.Blocked},
		operation.InProgress: {operation.Completed, operation.Blocked},
		operation.Blocked:    {operation.Waiting, operation.InProgress},
		operation.Completed:  {},
	}
	all := []operation.Status{operation.Waiting, operation.InProgress, operation.Completed, operation.Blocked}

	contains := func(set []operation.Status, s operation.Status) bool {
		for _, v := range set {
			if v == s {
				return true
			}
		}
		return false
	}

	for from, nexts := range allowed {
		for _, to := range all {
			got, err := from.TransitionTo(to)
			if contains(nexts, to) {
				require.NoError(t, err, "%s -> %s must be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s must be rejected", from, to)
			}
		}
	}

	assert.True(t, operation.Completed.IsTerminal())
	assert.False(t, operation.Blocked.IsTerminal())
}

func TestOperation_TransitionTo(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("start stamps actual start time once", func(t *testing.T) {
		op := newTestOperation(t, 100)

		require.NoError(t, op.TransitionTo(operation.InProgress, now))
		require.NotNil(t, op.ActualStartTime())
		assert.True(t, op.ActualStartTime().Equal(now))

		// Block and resume: the original stamp must survive.
		require.NoError(t, op.TransitionTo(operation.Blocked, now.Add(time.Hour)))
		require.NoError(t, op.TransitionTo(operation.InProgress, now.Add(2*time.Hour)))
		assert.True(t, op.ActualStartTime().Equal(now), "re-entering InProgress must not overwrite the stamp")
	})

	t.Run("manual completion forces quantity up to planned", func(t *testing.T) {
		op := newTestOperation(t, 100)
		require.NoError(t, op.TransitionTo(operation.InProgress, now))
		_, err := op.UpdateCompletedQuantity(40, now)
		require.NoError(t, err)

		require.NoError(t, op.TransitionTo(operation.Completed, now.Add(time.Hour)))

		assert.Equal(t, operation.Completed, op.Status())
		assert.InDelta(t, 100.0, op.CompletedQuantity(), 0.0001,
			"an operation cannot complete while under-reporting output")
		require.NotNil(t, op.ActualEndTime())
	})

	t.Run("illegal edge leaves operation untouched", func(t *testing.T) {
		op := newTestOperation(t, 100)

		err := op.TransitionTo(operation.Completed, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, operation.Waiting, op.Status())
		assert.Equal(t, 1, op.Version())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		op := newTestOperation(t, 100)
		require.NoError(t, op.TransitionTo(operation.InProgress, now))
		require.NoError(t, op.TransitionTo(operation.Completed, now))

		for _, next := range []operation.Status{operation.Waiting, operation.InProgress, operation.Blocked} {
			require.ErrorIs(t, op.TransitionTo(next, now), errs.ErrInvalidTransition)
		}
	})
}

func TestOperation_UpdateCompletedQuantity(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("accepts quantity within bounds", func(t *testing.T) {
		op := newTestOperation(t, 100)
		require.NoError(t, op.TransitionTo(operation.InProgress, now))

		completed, err := op.UpdateCompletedQuantity(60, now)

		require.NoError(t, err)
		assert.False(t, completed)
		assert.InDelta(t, 60.0, op.CompletedQuantity(), 0.0001)
		assert.Equal(t, operation.InProgress, op.Status())
	})

	t.Run("rejects quantity outside bounds without mutating", func(t *testing.T) {
		op := newTestOperation(t, 100)
		require.NoError(t, op.TransitionTo(operation.InProgress, now))
		versionBefore := op.Version()

		for _, q := range []float64{-1, 100.5} {
			completed, err := op.UpdateCompletedQuantity(q, now)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.False(t, completed)
			assert.InDelta(t, 0.0, op.CompletedQuantity(), 0.0001)
			assert.Equal(t, versionBefore, op.Version())
		}
	})

	t.Run("reaching planned quantity while in progress auto-completes", func(t *testing.T) {
		op := newTestOperation(t, 100)
		require.NoError(t, op.TransitionTo(operation.InProgress, now))

		completed, err := op.UpdateCompletedQuantity(100, now.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, operation.Completed, op.Status())
		require.NotNil(t, op.ActualEndTime())
		assert.True(t, op.ActualEndTime().Equal(now.Add(time.Hour)))
	})

	t.Run("reaching planned quantity while waiting does not auto-complete", func(t *testing.T) {
		op := newTestOperation(t, 100)

		completed, err := op.UpdateCompletedQuantity(100, now)

		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, operation.Waiting, op.Status())
		assert.Nil(t, op.ActualEndTime())
	})
}

func TestRestoreOperation(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		started := time.Date(2025, 2, 1, 7, 30, 0, 0, time.UTC)
		op, err := operation.RestoreOperation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"OP-020", 20, 100, 40,
			operation.InProgress,
			nil, nil,
			&started, nil,
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, operation.InProgress, op.Status())
		assert.InDelta(t, 40.0, op.CompletedQuantity(), 0.0001)
		assert.Equal(t, 3, op.Version())
	})

	t.Run("rejects completed quantity above planned", func(t *testing.T) {
		_, err := operation.RestoreOperation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"OP-020", 20, 100, 150,
			operation.InProgress,
			nil, nil, nil, nil,
			1,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
