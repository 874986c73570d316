package usecase

import (
	"context"
	"testing"

	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestListAuditLogsAdminOnly(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := NewAuditLogUsecase(db, testLogger(), repository.NewAuditLogRepository())
	admin := seedUser(t, db, "admin@example.com", "Admin", entity.RoleAdmin)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)

	audit := testAuditService(db)
	audit.Record(context.Background(), &patient.ID, entity.AuditActionUserLogin, entity.JSON{"email": patient.Email})
	audit.Record(context.Background(), &patient.ID, entity.AuditActionUserLogout, nil)

	_, err := uc.ListAuditLogs(context.Background(), patient.Identity(), &entity.ListOptions{Limit: 10})
	require.True(t, access.IsPermission(err))

	resp, err := uc.ListAuditLogs(context.Background(), admin.Identity(), &entity.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Total)
	// Newest entries come first.
	require.Equal(t, entity.AuditActionUserLogout, resp.Logs[0].Action)
}
