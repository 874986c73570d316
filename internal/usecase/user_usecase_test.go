package usecase

import (
	"context"
	"testing"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pat@example.com",
		Password: "s3cret-pass",
		FullName: "Pat Jones",
		Role:     "patient",
	})
	require.NoError(t, err)
	require.Equal(t, "pat@example.com", resp.Email)
	require.Equal(t, "patient", resp.Role)
	require.NotEqual(t, uuid.Nil, resp.ID)

	// The stored password is a bcrypt hash, never the plaintext.
	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))

	var auditCount int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionUserRegister).Count(&auditCount).Error)
	require.EqualValues(t, 1, auditCount)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)

	req := &dto.RegisterRequest{
		Email:    "pat@example.com",
		Password: "s3cret-pass",
		FullName: "Pat Jones",
		Role:     "patient",
	}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pat@example.com",
		Password: "s3cret-pass",
		FullName: "Pat Jones",
		Role:     "nurse",
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pat@example.com",
		Password: "s3cret-pass",
		FullName: "Pat Jones",
		Role:     "patient",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "wrong-pass",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts fail the same way as bad passwords.
	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)
	user := seedUser(t, db, "pat@example.com", "Pat Jones", entity.RolePatient)

	resp, err := uc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, resp.Email)
	require.Nil(t, resp.DoctorProfile)

	_, err = uc.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserIncludesDoctorProfile(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	profile := &entity.DoctorProfile{UserID: doctor.ID, Specialization: "Cardiology", ExperienceYears: 9}
	require.NoError(t, db.Create(profile).Error)

	resp, err := uc.GetUser(context.Background(), doctor.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.DoctorProfile)
	require.Equal(t, "Cardiology", resp.DoctorProfile.Specialization)
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)
	user := seedUser(t, db, "pat@example.com", "Pat Jones", entity.RolePatient)
	admin := seedUser(t, db, "admin@example.com", "Admin", entity.RoleAdmin)
	other := seedUser(t, db, "other@example.com", "Other", entity.RolePatient)

	newName := "Patricia Jones"
	resp, err := uc.UpdateUser(context.Background(), user.Identity(), user.ID, &dto.UpdateUserRequest{
		FullName: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, newName, resp.FullName)
	require.Equal(t, "pat@example.com", resp.Email)

	// Non-admins cannot touch other accounts.
	_, err = uc.UpdateUser(context.Background(), other.Identity(), user.ID, &dto.UpdateUserRequest{
		FullName: &newName,
	})
	require.True(t, access.IsPermission(err))

	adminName := "Renamed By Admin"
	resp, err = uc.UpdateUser(context.Background(), admin.Identity(), user.ID, &dto.UpdateUserRequest{
		FullName: &adminName,
	})
	require.NoError(t, err)
	require.Equal(t, adminName, resp.FullName)

	_, err = uc.UpdateUser(context.Background(), admin.Identity(), uuid.New(), &dto.UpdateUserRequest{
		FullName: &adminName,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)
	user := seedUser(t, db, "pat@example.com", "Pat Jones", entity.RolePatient)
	admin := seedUser(t, db, "admin@example.com", "Admin", entity.RoleAdmin)

	err := uc.DeleteUser(context.Background(), user.Identity(), user.ID)
	require.True(t, access.IsPermission(err))

	require.NoError(t, uc.DeleteUser(context.Background(), admin.Identity(), user.ID))

	_, err = uc.GetUser(context.Background(), user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	err = uc.DeleteUser(context.Background(), admin.Identity(), user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestUserUsecase(db)
	seedUser(t, db, "alice@example.com", "Alice Moreau", entity.RolePatient)
	seedUser(t, db, "bob@example.com", "Bob Chen", entity.RoleDoctor)
	seedUser(t, db, "carol@example.com", "Carol Chen", entity.RolePatient)

	resp, err := uc.ListUsers(context.Background(), &dto.ListUsersQuery{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, resp.Total)

	// Search matches name and email case-insensitively.
	resp, err = uc.ListUsers(context.Background(), &dto.ListUsersQuery{Limit: 10, Search: "chen"})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Total)

	resp, err = uc.ListUsers(context.Background(), &dto.ListUsersQuery{Limit: 10, Role: "doctor"})
	require.NoError(t, err)
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, "Bob Chen", resp.Users[0].FullName)

	resp, err = uc.ListUsers(context.Background(), &dto.ListUsersQuery{
		Limit: 10, SortBy: "full_name", SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Equal(t, "Carol Chen", resp.Users[0].FullName)

	resp, err = uc.ListUsers(context.Background(), &dto.ListUsersQuery{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.EqualValues(t, 3, resp.Total)
}
