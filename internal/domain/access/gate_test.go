package access

import (
	"errors"
	"testing"

	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func identity(role entity.Role) entity.Identity {
	return entity.Identity{ID: uuid.New(), Email: "user@example.com", Role: role}
}

func TestRequireAllowsListedRoles(t *testing.T) {
	require.NoError(t, Require(identity(entity.RoleDoctor), entity.RoleDoctor))
	require.NoError(t, Require(identity(entity.RolePatient), entity.RolePatient, entity.RoleDoctor))
	require.NoError(t, Require(identity(entity.RoleAdmin), entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient))
}

func TestRequireDeniesOtherRoles(t *testing.T) {
	err := Require(identity(entity.RolePatient), entity.RoleDoctor)
	require.Error(t, err)
	require.True(t, IsPermission(err))
	require.EqualError(t, err, "Only doctor has permission to perform this action")

	err = Require(identity(entity.RoleAdmin), entity.RolePatient, entity.RoleDoctor)
	require.EqualError(t, err, "Only patient or doctor has permission to perform this action")
}

func TestRequireDeniesUnknownRole(t *testing.T) {
	err := Require(identity(entity.Role("superuser")), entity.RolePatient, entity.RoleDoctor, entity.RoleAdmin)
	require.True(t, IsPermission(err))
}

func TestIsPermissionIgnoresOtherErrors(t *testing.T) {
	require.False(t, IsPermission(errors.New("boom")))
	require.False(t, IsPermission(nil))
}
