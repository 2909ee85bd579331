// Package quality provides the Quality Check aggregate: a single
// inspection instance tied to a manufacturing order and optionally one of
// its operations. Unlike the order and operation machines, Passed and
// Failed are not terminal here: re-inspection is always permitted,
// modeling rework on the shop floor.
package quality
