package services

import (
	"math"

	"mes/internal/core/domain/model/quality"
)

// OverallQuality is the single verdict derived from a set of quality
// checks. It extends the per-check status vocabulary with Mixed, which
// covers closed sets that neither fully passed nor contain a failure.
type OverallQuality string

const (
	OverallFailed     OverallQuality = "Failed"
	OverallInProgress OverallQuality = "InProgress"
	OverallPending    OverallQuality = "Pending"
	OverallPassed     OverallQuality = "Passed"
	OverallMixed      OverallQuality = "Mixed"
)

// QualitySummary is the roll-up of one order's quality checks.
type QualitySummary struct {
	Total         int
	StatusCounts  map[string]int
	OverallStatus OverallQuality

	// FirstPassYield is the passed share of decided checks as a whole
	// percentage, 0 when nothing has been decided yet.
	FirstPassYield int

	// CriticalFailures counts required checks whose recorded result is Fail.
	CriticalFailures int
}

// QualityEvaluator is a domain service that folds quality checks into a
// QualitySummary.
//
// Verdict precedence: any Failed check fails the whole set; otherwise any
// InProgress keeps it in progress; otherwise any Pending keeps it pending;
// otherwise the set passed when every check passed or was skipped; anything
// left is Mixed.
type QualityEvaluator struct{}

// NewQualityEvaluator creates a new QualityEvaluator instance.
func NewQualityEvaluator() QualityEvaluator {
	return QualityEvaluator{}
}

// Summarize builds the quality roll-up for the given checks.
// Every check must be constructor-built; an empty slice yields a Pending
// summary with zero yield.
func (q QualityEvaluator) Summarize(checks []*quality.Check) (QualitySummary, error) {
	summary := QualitySummary{
		StatusCounts: make(map[string]int),
	}

	for _, c := range checks {
		if err := c.Validate(); err != nil {
			return QualitySummary{}, err
		}

		summary.Total++
		summary.StatusCounts[c.Status().String()]++

		if c.IsRequired() && c.Result() != nil && *c.Result() == quality.Fail {
			summary.CriticalFailures++
		}
	}

	passed := summary.StatusCounts[quality.Passed.String()]
	failed := summary.StatusCounts[quality.Failed.String()]
	skipped := summary.StatusCounts[quality.Skipped.String()]

	summary.OverallStatus = q.verdict(summary, passed, skipped)
	if passed+failed > 0 {
		summary.FirstPassYield = int(math.Round(100 * float64(passed) / float64(passed+failed)))
	}

	return summary, nil
}

func (q QualityEvaluator) verdict(summary QualitySummary, passed, skipped int) OverallQuality {
	switch {
	case summary.StatusCounts[quality.Failed.String()] > 0:
		return OverallFailed
	case summary.StatusCounts[quality.InProgress.String()] > 0:
		return OverallInProgress
	case summary.Total == 0 || summary.StatusCounts[quality.Pending.String()] > 0:
		return OverallPending
	case passed == summary.Total || passed+skipped == summary.Total:
		return OverallPassed
	default:
		return OverallMixed
	}
}
