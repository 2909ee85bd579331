package quality

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Result is the recorded outcome of an inspection cycle. It is optional
// until an inspector records it; the check's status is derived from it.
type Result int

const (
	// ResultUnknown represents an invalid or undefined result.
	ResultUnknown Result = iota

	// Pass indicates the measured value met the specification.
	Pass

	// Fail indicates the measured value violated the specification.
	Fail

	// ConditionalPass indicates acceptance with a documented deviation.
	ConditionalPass

	// NotApplicable indicates the check does not apply to this order.
	NotApplicable
)

func getResultStrings() map[Result]string {
	return map[Result]string{
		ResultUnknown:   "Unknown",
		Pass:            "Pass",
		Fail:            "Fail",
		ConditionalPass: "ConditionalPass",
		NotApplicable:   "NotApplicable",
	}
}

// Validate checks if the Result value is valid.
func (r Result) Validate() error {
	if r == ResultUnknown {
		return errs.NewValueIsInvalidErrorWithCause("result is invalid", fmt.Errorf("%d is not a valid result", r))
	}
	if _, ok := getResultStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("result is invalid", fmt.Errorf("%d is not a valid result", r))
	}
	return nil
}

// String returns the human-readable name of the result.
func (r Result) String() string {
	if str, ok := getResultStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// ResultFromString parses a result from its string name, as carried by
// API requests. Only valid results parse.
func ResultFromString(name string) (Result, error) {
	for result, str := range getResultStrings() {
		if result != ResultUnknown && str == name {
			return result, nil
		}
	}
	return ResultUnknown, errs.NewValueIsInvalidErrorWithCause("result is invalid", fmt.Errorf("%q is not a valid result", name))
}

// Status derives the check status implied by recording this result:
// Pass and ConditionalPass close the cycle as Passed, Fail as Failed,
// NotApplicable as Skipped.
func (r Result) Status() Status {
	switch r {
	case Pass, ConditionalPass:
		return Passed
	case Fail:
		return Failed
	case NotApplicable:
		return Skipped
	default:
		return Unknown
	}
}
