package usecase

import (
	"context"
	"errors"

	"go-hospital-booking/internal/converter"
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/domain/repository"
	"go-hospital-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrDoctorProfileExists   = errors.New("doctor profile already exists")
)

type DoctorProfileUsecase interface {
	CreateProfile(ctx context.Context, caller entity.Identity, req *dto.CreateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	UpdateProfile(ctx context.Context, caller entity.Identity, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	GetProfile(ctx context.Context, caller entity.Identity) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *doctorProfileUsecase) CreateProfile(ctx context.Context, caller entity.Identity, req *dto.CreateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.profileRepo.FindByUserID(tx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorProfileExists
	}

	profile := &entity.DoctorProfile{
		UserID:          caller.ID,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		AcademicHistory: entity.JSON(req.AcademicHistory),
		Bio:             req.Bio,
		ConsultationFee: req.ConsultationFee,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		if isUniqueViolation(err, "user_id") {
			return nil, ErrDoctorProfileExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionProfileCreate, entity.JSON{
		"profile_id":     profile.ID.String(),
		"specialization": profile.Specialization,
	})

	full, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), caller.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload doctor profile %s: %+v", profile.ID, err)
		return converter.DoctorProfileToResponse(profile), nil
	}
	return converter.DoctorProfileToResponse(full), nil
}

func (u *doctorProfileUsecase) UpdateProfile(ctx context.Context, caller entity.Identity, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	if req.Specialization != nil {
		profile.Specialization = *req.Specialization
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.AcademicHistory != nil {
		profile.AcademicHistory = entity.JSON(req.AcademicHistory)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
	}

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionProfileUpdate, entity.JSON{
		"profile_id": profile.ID.String(),
	})

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) GetProfile(ctx context.Context, caller entity.Identity) (*dto.DoctorProfileResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}
