package services

import (
	"mes/internal/core/domain/model/labor"
)

// LaborSummary is the roll-up of one operation's labor assignments.
type LaborSummary struct {
	WorkerCount      int
	TotalActualHours float64

	// TotalCost is the sum of actual hours times hourly rate across
	// assignments.
	TotalCost float64

	// AverageEfficiency is the mean of per-assignment efficiency, where
	// each assignment contributes 100 * actual / planned. Assignments with
	// zero planned hours contribute 100 so they cannot divide by zero.
	AverageEfficiency float64
}

// LaborCalculator is a domain service that folds labor assignments into a
// LaborSummary. Assignments that have not clocked out yet contribute zero
// hours and zero cost but still count as workers.
type LaborCalculator struct{}

// NewLaborCalculator creates a new LaborCalculator instance.
func NewLaborCalculator() LaborCalculator {
	return LaborCalculator{}
}

// Summarize builds the labor roll-up for the given assignments.
// Every assignment must be constructor-built; an empty slice yields a
// zero summary.
func (l LaborCalculator) Summarize(assignments []*labor.Assignment) (LaborSummary, error) {
	var summary LaborSummary
	var efficiencySum float64

	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return LaborSummary{}, err
		}

		summary.WorkerCount++

		var hours float64
		if a.ActualHours() != nil {
			hours = *a.ActualHours()
		}
		summary.TotalActualHours += hours
		summary.TotalCost += hours * a.HourlyRate()

		if a.PlannedHours() == 0 {
			efficiencySum += 100
		} else {
			efficiencySum += 100 * hours / a.PlannedHours()
		}
	}

	if summary.WorkerCount > 0 {
		summary.AverageEfficiency = efficiencySum / float64(summary.WorkerCount)
	}

	return summary, nil
}
