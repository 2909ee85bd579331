// Package operation provides the Order Operation aggregate: one
// work-center step within a manufacturing order's routing. Operations
// track per-step quantity progress and follow a state machine in which
// blocked steps may resume, and reporting the full planned quantity while
// in progress completes the step automatically.
package operation
