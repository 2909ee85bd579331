// Package labor provides the Labor Assignment aggregate: an operator's
// time allocation to an order operation. Assignments track clock-in/out
// and break state; worked hours are derived once, at clock-out, from raw
// elapsed time (breaks are not subtracted).
package labor
