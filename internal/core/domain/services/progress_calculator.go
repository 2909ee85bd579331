package services

import (
	"math"
	"sort"

	"mes/internal/core/domain/model/operation"
)

// OperationProgress is the roll-up of one order's operations.
//
// StatusCounts buckets the operations by status name. OverallProgress is
// the completed share as a whole percentage. CurrentOperation points at
// the operation the shop floor should be working on next and is nil once
// every operation has completed.
type OperationProgress struct {
	Total            int
	StatusCounts     map[string]int
	OverallProgress  int
	CurrentOperation *operation.Operation
}

// ProgressCalculator is a domain service that folds an order's operations
// into an OperationProgress.
//
// Business rules:
//   - OverallProgress = round(100 * completed / total), 0 for an empty set
//   - CurrentOperation is the first non-completed operation ordered by
//     (sequence, id); ties on sequence resolve by id so the pick is stable
//   - The input slice is never mutated
type ProgressCalculator struct{}

// NewProgressCalculator creates a new ProgressCalculator instance.
func NewProgressCalculator() ProgressCalculator {
	return ProgressCalculator{}
}

// Calculate builds the progress roll-up for the given operations.
// Every operation must be constructor-built; an empty slice yields an
// empty roll-up with zero progress.
func (p ProgressCalculator) Calculate(operations []*operation.Operation) (OperationProgress, error) {
	progress := OperationProgress{
		StatusCounts: make(map[string]int),
	}

	for _, op := range operations {
		if err := op.Validate(); err != nil {
			return OperationProgress{}, err
		}

		progress.Total++
		progress.StatusCounts[op.Status().String()]++
	}

	if progress.Total == 0 {
		return progress, nil
	}

	completed := progress.StatusCounts[operation.Completed.String()]
	progress.OverallProgress = int(math.Round(100 * float64(completed) / float64(progress.Total)))
	progress.CurrentOperation = p.findCurrentOperation(operations)

	return progress, nil
}

// findCurrentOperation picks the first non-completed operation by
// (sequence, id) order, nil when all operations are complete.
func (p ProgressCalculator) findCurrentOperation(operations []*operation.Operation) *operation.Operation {
	remaining := make([]*operation.Operation, 0, len(operations))
	for _, op := range operations {
		if op.Status() != operation.Completed {
			remaining = append(remaining, op)
		}
	}
	if len(remaining) == 0 {
		return nil
	}

	sort.Slice(remaining, func(i, j int) bool {
		if remaining[i].Sequence() != remaining[j].Sequence() {
			return remaining[i].Sequence() < remaining[j].Sequence()
		}
		return remaining[i].ID().String() < remaining[j].ID().String()
	})

	return remaining[0]
}
