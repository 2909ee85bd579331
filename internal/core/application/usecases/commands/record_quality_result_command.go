package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/quality"
	"mes/internal/pkg/guard"
)

var ErrRecordQualityResultCommandIsNotConstructed = errors.New(
	"RecordQualityResultCommand must be created via NewRecordQualityResultCommand constructor",
)

// RecordQualityResultCommand represents an inspector's verdict on a quality
// check. Recording a result closes the current inspection cycle: the status
// is derived from the result and the end timestamp is always refreshed.
type RecordQualityResultCommand struct { //nolint:recvcheck //using for validation
	checkID kernel.UUID
	result  quality.Result

	// measuredValue is optional; not every inspection is numeric
	measuredValue *float64
	notes         string
	inspector     string

	guard guard.ConstructorGuard
}

// NewRecordQualityResultCommand creates a command to record an inspection
// verdict. Measured value, notes and inspector are optional.
func NewRecordQualityResultCommand(
	checkID kernel.UUID,
	result quality.Result,
	measuredValue *float64,
	notes, inspector string,
) (RecordQualityResultCommand, error) {
	cmd := RecordQualityResultCommand{
		measuredValue: measuredValue,
		notes:         notes,
		inspector:     inspector,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setResult(result),
	); err != nil {
		return RecordQualityResultCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordQualityResultCommandIsNotConstructed if validation fails.
func (c RecordQualityResultCommand) Validate() error {
	return c.guard.Validate(ErrRecordQualityResultCommandIsNotConstructed)
}

// CheckID returns the unique identifier of the check being judged.
func (c RecordQualityResultCommand) CheckID() kernel.UUID {
	return c.checkID
}

// Result returns the recorded verdict.
func (c RecordQualityResultCommand) Result() quality.Result {
	return c.result
}

// MeasuredValue returns the optional numeric measurement.
func (c RecordQualityResultCommand) MeasuredValue() *float64 {
	return c.measuredValue
}

// Notes returns the optional inspection notes.
func (c RecordQualityResultCommand) Notes() string {
	return c.notes
}

// Inspector returns the optional inspector identity.
func (c RecordQualityResultCommand) Inspector() string {
	return c.inspector
}

func (c *RecordQualityResultCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}

	c.checkID = checkID
	return nil
}

func (c *RecordQualityResultCommand) setResult(result quality.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}

	c.result = result
	return nil
}
