// Package access is the role gate evaluated before every mutating engine
// operation and every role-scoped read. It is a pure predicate over an
// authenticated identity and a required role set.
package access

import (
	"errors"
	"fmt"
	"strings"

	"go-hospital-booking/internal/domain/entity"
)

// PermissionError reports a role requirement the caller does not meet.
type PermissionError struct {
	Required []entity.Role
}

func (e *PermissionError) Error() string {
	names := make([]string, len(e.Required))
	for i, r := range e.Required {
		names[i] = r.String()
	}
	return fmt.Sprintf("Only %s has permission to perform this action", strings.Join(names, " or "))
}

// Require allows the identity through when its role is in the allowed set.
// Unknown roles are always denied.
func Require(id entity.Identity, allowed ...entity.Role) error {
	switch id.Role {
	case entity.RolePatient, entity.RoleDoctor, entity.RoleAdmin:
		for _, r := range allowed {
			if id.Role == r {
				return nil
			}
		}
	}
	return &PermissionError{Required: allowed}
}

// IsPermission reports whether err is a role gate denial.
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
