// Package services provides stateless domain services that compute
// execution roll-ups across collections of aggregates. It implements the
// read-side business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ProgressCalculator: per-status operation buckets and overall progress
//   - QualityEvaluator: quality check summaries with yield and failures
//   - LaborCalculator: labor hour, cost and efficiency totals
//
// All services are pure: they validate their inputs, fold over them and
// return value objects without touching persistence.
package services
