package usecase

import (
	"context"
	"testing"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctorProfile(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestDoctorProfileUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	resp, err := uc.CreateProfile(context.Background(), doctor.Identity(), &dto.CreateDoctorProfileRequest{
		Specialization:  "Cardiology",
		ExperienceYears: 12,
		AcademicHistory: map[string]interface{}{"md": "Sorbonne"},
		Bio:             "Cardiologist",
		ConsultationFee: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.Equal(t, doctor.ID, resp.UserID)
	require.Equal(t, "Cardiology", resp.Specialization)
	require.Equal(t, "Dr. Chen", resp.FullName)
	require.True(t, resp.ConsultationFee.Equal(decimal.NewFromInt(150)))

	_, err = uc.CreateProfile(context.Background(), doctor.Identity(), &dto.CreateDoctorProfileRequest{
		Specialization: "Cardiology",
	})
	require.ErrorIs(t, err, ErrDoctorProfileExists)
}

func TestCreateDoctorProfileRequiresDoctor(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestDoctorProfileUsecase(db)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)

	_, err := uc.CreateProfile(context.Background(), patient.Identity(), &dto.CreateDoctorProfileRequest{
		Specialization: "Cardiology",
	})
	require.True(t, access.IsPermission(err))
}

func TestUpdateDoctorProfilePartial(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestDoctorProfileUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	_, err := uc.CreateProfile(context.Background(), doctor.Identity(), &dto.CreateDoctorProfileRequest{
		Specialization:  "Cardiology",
		ExperienceYears: 12,
		ConsultationFee: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	bio := "Senior cardiologist"
	fee := decimal.NewFromFloat(175.50)
	resp, err := uc.UpdateProfile(context.Background(), doctor.Identity(), &dto.UpdateDoctorProfileRequest{
		Bio:             &bio,
		ConsultationFee: &fee,
	})
	require.NoError(t, err)
	require.Equal(t, bio, resp.Bio)
	require.True(t, resp.ConsultationFee.Equal(fee))
	// Untouched fields keep their values.
	require.Equal(t, "Cardiology", resp.Specialization)
	require.Equal(t, 12, resp.ExperienceYears)
}

func TestUpdateDoctorProfileMissing(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestDoctorProfileUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	bio := "Bio"
	_, err := uc.UpdateProfile(context.Background(), doctor.Identity(), &dto.UpdateDoctorProfileRequest{Bio: &bio})
	require.ErrorIs(t, err, ErrDoctorProfileNotFound)

	_, err = uc.GetProfile(context.Background(), doctor.Identity())
	require.ErrorIs(t, err, ErrDoctorProfileNotFound)
}

func TestGetDoctorProfile(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestDoctorProfileUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	_, err := uc.CreateProfile(context.Background(), doctor.Identity(), &dto.CreateDoctorProfileRequest{
		Specialization:  "Dermatology",
		AcademicHistory: map[string]interface{}{"residency": "CHU Lille"},
	})
	require.NoError(t, err)

	resp, err := uc.GetProfile(context.Background(), doctor.Identity())
	require.NoError(t, err)
	require.Equal(t, "Dermatology", resp.Specialization)
	require.Equal(t, "CHU Lille", resp.AcademicHistory["residency"])
}
