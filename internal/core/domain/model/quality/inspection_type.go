package quality

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// InspectionType classifies what kind of inspection a check performs.
type InspectionType int

const (
	// InspectionUnknown represents an invalid or undefined type.
	InspectionUnknown InspectionType = iota

	// Visual is a by-eye surface or assembly inspection.
	Visual

	// Dimensional measures a physical dimension against bounds.
	Dimensional

	// Functional exercises the part's behavior.
	Functional

	// Material verifies material composition or certification.
	Material

	// Safety verifies a safety-critical property.
	Safety

	// Custom covers site-specific checks outside the standard set.
	Custom
)

func getInspectionTypeStrings() map[InspectionType]string {
	return map[InspectionType]string{
		InspectionUnknown: "Unknown",
		Visual:            "Visual",
		Dimensional:       "Dimensional",
		Functional:        "Functional",
		Material:          "Material",
		Safety:            "Safety",
		Custom:            "Custom",
	}
}

// Validate checks if the InspectionType value is valid.
func (it InspectionType) Validate() error {
	if it == InspectionUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"inspectionType is invalid", fmt.Errorf("%d is not a valid inspection type", it))
	}
	if _, ok := getInspectionTypeStrings()[it]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"inspectionType is invalid", fmt.Errorf("%d is not a valid inspection type", it))
	}
	return nil
}

// String returns the human-readable name of the inspection type.
func (it InspectionType) String() string {
	if str, ok := getInspectionTypeStrings()[it]; ok {
		return str
	}
	return "Unknown"
}
