package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRole(t *testing.T) {
	t.Run(`управлять заявками могут администратор и HR`, func(t *testing.T) {
		require.Equal(t, true, UserRoleAdmin.IsStaff())
		require.Equal(t, true, UserRoleHR.IsStaff())
		require.Equal(t, false, UserRoleEmployee.IsStaff())
	})

	t.Run(`валидация роли`, func(t *testing.T) {
		require.Equal(t, true, UserRoleEmployee.IsValid())
		require.Equal(t, false, UserRole("MANAGER_ROLE").IsValid())
	})

	t.Run(`человекочитаемое имя для неизвестной роли`, func(t *testing.T) {
		require.Equal(t, "Администратор", UserRoleAdmin.ToHuman())
		require.Equal(t, "X_ROLE", UserRole("X_ROLE").ToHuman())
	})
}
