package labor

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Role distinguishes the lead operator from helpers on an operation.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Primary is the operator responsible for the operation.
	Primary

	// Assistant supports the primary operator.
	Assistant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		Primary:     "Primary",
		Assistant:   "Assistant",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != Primary && r != Assistant {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
